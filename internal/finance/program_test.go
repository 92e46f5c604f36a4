package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmercier/orchestrator/internal/domain"
)

func TestProgramFinancials_SplitsCostEvenly(t *testing.T) {
	features := []*domain.Feature{
		{ID: "f1", EstimatedCost: 900, Programs: []string{"Commerce", "Platform", "Data"}},
		{ID: "f2", EstimatedCost: 100, Programs: []string{"Commerce"}},
	}

	got := ProgramFinancials(features)
	require.Len(t, got, 3)

	assert.Equal(t, ProgramCost{Name: "Commerce", Cost: 400}, got[0])
	assert.Equal(t, 300.0, got[1].Cost)
	assert.Equal(t, 300.0, got[2].Cost)
	assert.Equal(t, []string{"Data", "Platform"}, []string{got[1].Name, got[2].Name}, "ties order alphabetically")
}

func TestProgramFinancials_UnassignedBucket(t *testing.T) {
	features := []*domain.Feature{{ID: "f1", EstimatedCost: 5000}}

	got := ProgramFinancials(features)
	require.Len(t, got, 1)
	assert.Equal(t, UnassignedProgram, got[0].Name)
	assert.Equal(t, 5000.0, got[0].Cost)
}

func TestProgramReadiness(t *testing.T) {
	features := []*domain.Feature{
		{Status: domain.StatusCompleted},
		{Status: domain.StatusCompleted},
		{Status: domain.StatusInProgress},
	}
	assert.Equal(t, 67, ProgramReadiness(features))
	assert.Equal(t, 0, ProgramReadiness(nil))
}

func TestStats(t *testing.T) {
	features := []*domain.Feature{
		{Points: 5, Priority: domain.PriorityCritical, Status: domain.StatusInProgress},
		{Points: 8, Priority: domain.PriorityHigh},
		{Points: 3, Priority: domain.PriorityHigh, Status: domain.StatusInProgress},
	}

	got := Stats(features)
	assert.Equal(t, 16, got.TotalPoints)
	assert.Equal(t, 5.3, got.AvgPoints, "average is rounded to one decimal")
	assert.Equal(t, 1, got.CriticalCount)
	assert.Equal(t, 2, got.HighCount)
	assert.Equal(t, 2, got.InProgressCount)
}

func TestStats_EmptyIsZeroSafe(t *testing.T) {
	got := Stats(nil)
	assert.Equal(t, FeatureStats{}, got)
}
