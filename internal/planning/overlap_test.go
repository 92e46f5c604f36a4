package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmercier/orchestrator/internal/domain"
)

func sprint(id, start, end string) *domain.Sprint {
	return &domain.Sprint{ID: id, Name: "Sprint " + id, StartDate: start, EndDate: end}
}

func TestSprintsOverlap_Intersecting(t *testing.T) {
	a := sprint("a", "2026-03-01", "2026-03-14")
	b := sprint("b", "2026-03-10", "2026-03-24")
	assert.True(t, SprintsOverlap(a, b))
	assert.True(t, SprintsOverlap(b, a), "overlap is symmetric")
}

func TestSprintsOverlap_AdjacentRangesDoNot(t *testing.T) {
	a := sprint("a", "2026-03-01", "2026-03-14")
	b := sprint("b", "2026-03-15", "2026-03-30")
	assert.False(t, SprintsOverlap(a, b))
	assert.False(t, SprintsOverlap(b, a))
}

func TestSprintsOverlap_TouchingEndpointsDo(t *testing.T) {
	// Closed intervals: ending the day another starts is an overlap.
	a := sprint("a", "2026-03-01", "2026-03-14")
	b := sprint("b", "2026-03-14", "2026-03-30")
	assert.True(t, SprintsOverlap(a, b))
	assert.True(t, SprintsOverlap(b, a))
}

func TestSprintsOverlap_Containment(t *testing.T) {
	outer := sprint("a", "2026-03-01", "2026-03-31")
	inner := sprint("b", "2026-03-10", "2026-03-12")
	assert.True(t, SprintsOverlap(outer, inner))
	assert.True(t, SprintsOverlap(inner, outer))
}

func TestSprintsOverlap_MalformedDatesFailSafe(t *testing.T) {
	a := sprint("a", "not-a-date", "2026-03-14")
	b := sprint("b", "2026-03-01", "2026-03-30")
	assert.False(t, SprintsOverlap(a, b))
	assert.False(t, SprintsOverlap(b, a))
}

func TestSprintsOverlap_InvertedRangeFailSafe(t *testing.T) {
	a := sprint("a", "2026-03-14", "2026-03-01")
	b := sprint("b", "2026-03-01", "2026-03-30")
	assert.False(t, SprintsOverlap(a, b))
	assert.False(t, SprintsOverlap(b, a))
}

func TestValidateSprintSave_RejectsOverlap(t *testing.T) {
	draft := sprint("a", "2026-03-10", "2026-03-24")
	others := []*domain.Sprint{sprint("b", "2026-03-01", "2026-03-14")}

	err := ValidateSprintSave(draft, others)

	var overlapErr *SprintOverlapError
	assert.ErrorAs(t, err, &overlapErr)
	assert.Equal(t, "Sprint b", overlapErr.ConflictName)
}

func TestValidateSprintSave_ExcludesSelf(t *testing.T) {
	draft := sprint("a", "2026-03-01", "2026-03-14")
	stored := sprint("a", "2026-03-01", "2026-03-10")
	assert.NoError(t, ValidateSprintSave(draft, []*domain.Sprint{stored}))
}

func TestValidateSprintSave_RejectsInvertedRange(t *testing.T) {
	draft := sprint("a", "2026-03-14", "2026-03-01")

	err := ValidateSprintSave(draft, nil)

	var orderErr *DateOrderError
	assert.ErrorAs(t, err, &orderErr)
}

func TestValidateSprintSave_AcceptsCleanDraft(t *testing.T) {
	draft := sprint("a", "2026-04-01", "2026-04-14")
	others := []*domain.Sprint{sprint("b", "2026-03-01", "2026-03-14")}
	assert.NoError(t, ValidateSprintSave(draft, others))
}
