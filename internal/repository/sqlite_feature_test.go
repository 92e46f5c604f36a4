package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmercier/orchestrator/internal/domain"
	"github.com/jmercier/orchestrator/internal/testutil"
)

func TestFeatureRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteFeatureRepo(database)
	ctx := context.Background()

	f := testutil.NewTestFeature("Checkout Redesign",
		testutil.WithPriority(domain.PriorityHigh),
		testutil.WithPrograms("Commerce", "Platform"),
		testutil.WithAllocation("s1", 4),
		testutil.WithAllocation("s2", 3),
	)
	require.NoError(t, repo.Create(ctx, f))

	got, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f.Name, got.Name)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Equal(t, []string{"Commerce", "Platform"}, got.Programs)
	require.Len(t, got.Allocations, 2)
	assert.Equal(t, domain.SprintAllocation{SprintID: "s1", Points: 4}, got.Allocations[0])
	assert.Equal(t, domain.SprintAllocation{SprintID: "s2", Points: 3}, got.Allocations[1])
	assert.WithinDuration(t, f.CreatedAt, got.CreatedAt, time.Second)
}

func TestFeatureRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteFeatureRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFeatureRepo_UpdateRewritesAllocations(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteFeatureRepo(database)
	ctx := context.Background()

	f := testutil.NewTestFeature("Search", testutil.WithAllocation("s1", 4))
	require.NoError(t, repo.Create(ctx, f))

	f.Status = domain.StatusInProgress
	f.Allocations = []domain.SprintAllocation{{SprintID: "s2", Points: 6}}
	require.NoError(t, repo.Update(ctx, f))

	got, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, got.Status)
	require.Len(t, got.Allocations, 1)
	assert.Equal(t, "s2", got.Allocations[0].SprintID)
}

func TestFeatureRepo_UpdateMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteFeatureRepo(database)

	f := testutil.NewTestFeature("Ghost")
	err := repo.Update(context.Background(), f)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFeatureRepo_ListBySystem(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteFeatureRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestFeature("A", testutil.WithSystem(domain.SystemTOM))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestFeature("B", testutil.WithSystem(domain.SystemEOM))))

	tom, err := repo.ListBySystem(ctx, domain.SystemTOM)
	require.NoError(t, err)
	require.Len(t, tom, 1)
	assert.Equal(t, "A", tom[0].Name)

	all, err := repo.ListBySystem(ctx, domain.SystemGlobal)
	require.NoError(t, err)
	assert.Len(t, all, 2, "the global sentinel lists every system")
}

func TestFeatureRepo_DeleteCascadesAllocations(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteFeatureRepo(database)
	ctx := context.Background()

	f := testutil.NewTestFeature("Doomed", testutil.WithAllocation("s1", 5))
	require.NoError(t, repo.Create(ctx, f))
	require.NoError(t, repo.Delete(ctx, f.ID))

	_, err := repo.GetByID(ctx, f.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM feature_allocations WHERE feature_id = ?`, f.ID).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestFeatureRepo_EmptyProgramsRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteFeatureRepo(database)
	ctx := context.Background()

	f := testutil.NewTestFeature("No Programs")
	require.NoError(t, repo.Create(ctx, f))

	got, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Programs)
}
