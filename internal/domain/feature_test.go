package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocatedPoints_SumsAcrossSprints(t *testing.T) {
	f := &Feature{
		Points: 10,
		Allocations: []SprintAllocation{
			{SprintID: "s1", Points: 4},
			{SprintID: "s2", Points: 5},
		},
	}
	assert.Equal(t, 9, f.AllocatedPoints())
	assert.Equal(t, 1, f.RemainingPoints())
}

func TestAllocatedPoints_EmptyList(t *testing.T) {
	f := &Feature{Points: 8}
	assert.Equal(t, 0, f.AllocatedPoints())
	assert.Equal(t, 8, f.RemainingPoints())
}

func TestRemainingPoints_NeverNegative(t *testing.T) {
	f := &Feature{
		Points:      3,
		Allocations: []SprintAllocation{{SprintID: "s1", Points: 5}},
	}
	assert.Equal(t, 0, f.RemainingPoints())
}

func TestAllocatedTo(t *testing.T) {
	f := &Feature{Allocations: []SprintAllocation{{SprintID: "s1", Points: 2}}}
	assert.True(t, f.AllocatedTo("s1"))
	assert.False(t, f.AllocatedTo("s2"))
}

func TestFeatureClone_IsIndependent(t *testing.T) {
	f := &Feature{
		Name:        "Auth",
		Programs:    []string{"Security"},
		Allocations: []SprintAllocation{{SprintID: "s1", Points: 2}},
	}
	c := f.Clone()
	c.Programs[0] = "Changed"
	c.Allocations[0].Points = 9

	assert.Equal(t, "Security", f.Programs[0])
	assert.Equal(t, 2, f.Allocations[0].Points)
}

func TestPriorityScore_Ordering(t *testing.T) {
	assert.Equal(t, 0, PriorityCritical.Score())
	assert.Equal(t, 1, PriorityHigh.Score())
	assert.Equal(t, 2, PriorityMedium.Score())
	assert.Equal(t, 3, PriorityLow.Score())
}
