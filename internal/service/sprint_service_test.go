package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmercier/orchestrator/internal/domain"
	"github.com/jmercier/orchestrator/internal/planning"
	"github.com/jmercier/orchestrator/internal/repository"
	"github.com/jmercier/orchestrator/internal/testutil"
)

func newSprintServiceForTest(t *testing.T) (SprintService, *sql.DB) {
	t.Helper()
	conn := testutil.NewTestDB(t)
	return NewSprintService(conn, testutil.NewTestUoW(conn)), conn
}

func TestSprintServiceCreate(t *testing.T) {
	svc, conn := newSprintServiceForTest(t)
	ctx := context.Background()

	s := testutil.NewTestSprint("Sprint 1")
	s.ID = ""
	require.NoError(t, svc.Create(ctx, s))
	assert.NotEmpty(t, s.ID)

	logs := latestLogs(t, conn)
	require.Len(t, logs, 1)
	assert.Equal(t, "Added Sprint", logs[0].Action)
	assert.Equal(t, "New sprint created.", logs[0].Details)
}

func TestSprintServiceCreateRejectsOverlap(t *testing.T) {
	svc, _ := newSprintServiceForTest(t)
	ctx := context.Background()

	first := testutil.NewTestSprint("Sprint 1", testutil.WithSprintDates("2026-03-01", "2026-03-14"))
	require.NoError(t, svc.Create(ctx, first))

	// Shares the boundary day, which counts as overlapping.
	second := testutil.NewTestSprint("Sprint 2", testutil.WithSprintDates("2026-03-14", "2026-03-27"))
	err := svc.Create(ctx, second)
	var overlapErr *planning.SprintOverlapError
	require.ErrorAs(t, err, &overlapErr)
	assert.Equal(t, "Sprint 1", overlapErr.ConflictName)
}

func TestSprintServiceCreateAllowsOverlapAcrossSystems(t *testing.T) {
	svc, _ := newSprintServiceForTest(t)
	ctx := context.Background()

	first := testutil.NewTestSprint("TOM Sprint", testutil.WithSprintDates("2026-03-01", "2026-03-14"))
	require.NoError(t, svc.Create(ctx, first))

	second := testutil.NewTestSprint("EOM Sprint",
		testutil.WithSprintDates("2026-03-01", "2026-03-14"),
		testutil.WithSprintSystem(domain.SystemEOM))
	assert.NoError(t, svc.Create(ctx, second))
}

func TestSprintServiceSaveRejectsInvertedDates(t *testing.T) {
	svc, _ := newSprintServiceForTest(t)
	ctx := context.Background()

	s := testutil.NewTestSprint("Sprint 1")
	require.NoError(t, svc.Create(ctx, s))

	edited := s.Clone()
	edited.StartDate = "2026-03-20"
	edited.EndDate = "2026-03-10"
	err := svc.Save(ctx, edited)
	var orderErr *planning.DateOrderError
	assert.ErrorAs(t, err, &orderErr)
}

func TestSprintServiceSaveRecomputesFeatureDates(t *testing.T) {
	svc, conn := newSprintServiceForTest(t)
	featureSvc := NewFeatureService(conn, testutil.NewTestUoW(conn))
	ctx := context.Background()

	s := testutil.NewTestSprint("Sprint 1", testutil.WithSprintDates("2026-03-01", "2026-03-14"))
	require.NoError(t, svc.Create(ctx, s))

	f := testutil.NewTestFeature("Tracker")
	require.NoError(t, featureSvc.Create(ctx, f))
	_, err := featureSvc.Allocate(ctx, f.ID, s.ID, 3)
	require.NoError(t, err)

	edited := s.Clone()
	edited.StartDate = "2026-05-01"
	edited.EndDate = "2026-05-14"
	require.NoError(t, svc.Save(ctx, edited))

	got, err := featureSvc.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01", got.StartDate)
	assert.Equal(t, "2026-05-14", got.EndDate)

	logs := latestLogs(t, conn)
	assert.Equal(t, "Updated Sprint", logs[0].Action)
	assert.Contains(t, logs[0].Details, `Changed startDate from "2026-03-01" to "2026-05-01"`)
}

func TestSprintServiceSaveNoChangeNoLog(t *testing.T) {
	svc, conn := newSprintServiceForTest(t)
	ctx := context.Background()

	s := testutil.NewTestSprint("Sprint 1")
	require.NoError(t, svc.Create(ctx, s))
	require.NoError(t, svc.Save(ctx, s.Clone()))

	logs := latestLogs(t, conn)
	assert.Len(t, logs, 1)
}

func TestSprintServiceSetClosed(t *testing.T) {
	svc, conn := newSprintServiceForTest(t)
	ctx := context.Background()

	s := testutil.NewTestSprint("Sprint 1")
	require.NoError(t, svc.Create(ctx, s))

	require.NoError(t, svc.SetClosed(ctx, s.ID, true))
	got, err := svc.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, got.IsClosed)

	logs := latestLogs(t, conn)
	require.Len(t, logs, 2)
	assert.Equal(t, "Updated Sprint", logs[0].Action)

	// Closing an already-closed sprint is a no-op.
	require.NoError(t, svc.SetClosed(ctx, s.ID, true))
	assert.Len(t, latestLogs(t, conn), 2)
}

func TestSprintServiceDeleteCascades(t *testing.T) {
	svc, conn := newSprintServiceForTest(t)
	featureSvc := NewFeatureService(conn, testutil.NewTestUoW(conn))
	ctx := context.Background()

	doomed := testutil.NewTestSprint("Doomed", testutil.WithSprintDates("2026-03-01", "2026-03-14"))
	survivor := testutil.NewTestSprint("Survivor", testutil.WithSprintDates("2026-04-01", "2026-04-14"))
	require.NoError(t, svc.Create(ctx, doomed))
	require.NoError(t, svc.Create(ctx, survivor))

	allocated := testutil.NewTestFeature("Split work")
	require.NoError(t, featureSvc.Create(ctx, allocated))
	_, err := featureSvc.Allocate(ctx, allocated.ID, doomed.ID, 2)
	require.NoError(t, err)
	_, err = featureSvc.Allocate(ctx, allocated.ID, survivor.ID, 3)
	require.NoError(t, err)

	untouched := testutil.NewTestFeature("Unrelated")
	require.NoError(t, featureSvc.Create(ctx, untouched))

	require.NoError(t, svc.Delete(ctx, doomed.ID))

	_, err = svc.GetByID(ctx, doomed.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := featureSvc.GetByID(ctx, allocated.ID)
	require.NoError(t, err)
	require.Len(t, got.Allocations, 1)
	assert.Equal(t, survivor.ID, got.Allocations[0].SprintID)
	assert.Equal(t, "2026-04-01", got.StartDate)
	assert.Equal(t, "2026-04-14", got.EndDate)

	other, err := featureSvc.GetByID(ctx, untouched.ID)
	require.NoError(t, err)
	assert.Empty(t, other.Allocations)

	logs := latestLogs(t, conn)
	assert.Equal(t, "Deleted Sprint", logs[0].Action)
	assert.Equal(t, "Sprint removed.", logs[0].Details)
	assert.Equal(t, "Doomed", logs[0].EntityName)
}

func TestSprintServiceDeleteRollsBack(t *testing.T) {
	conn := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(conn)
	svc := NewSprintService(conn, uow)
	featureSvc := NewFeatureService(conn, uow)
	ctx := context.Background()

	s := testutil.NewTestSprint("Sticky")
	require.NoError(t, svc.Create(ctx, s))

	f := testutil.NewTestFeature("Attached")
	require.NoError(t, featureSvc.Create(ctx, f))
	_, err := featureSvc.Allocate(ctx, f.ID, s.ID, 2)
	require.NoError(t, err)

	boom := errors.New("disk full")
	// Cascade writes: feature update, allocation clear, sprint delete,
	// then the log insert, which is forced to fail.
	failing := &testutil.FailOnNthExecUoW{DB: conn, FailOn: 4, Err: boom}
	err = NewSprintService(conn, failing).Delete(ctx, s.ID)
	require.ErrorIs(t, err, boom)

	got, err := featureSvc.GetByID(ctx, f.ID)
	require.NoError(t, err)
	require.Len(t, got.Allocations, 1)

	_, err = svc.GetByID(ctx, s.ID)
	assert.NoError(t, err)
}
