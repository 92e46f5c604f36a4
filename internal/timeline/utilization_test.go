package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmercier/orchestrator/internal/domain"
)

func TestSprintUtilization(t *testing.T) {
	s := &domain.Sprint{ID: "s1", Capacity: 20}
	features := []*domain.Feature{
		{ID: "f1", Allocations: []domain.SprintAllocation{{SprintID: "s1", Points: 8}}},
		{ID: "f2", Allocations: []domain.SprintAllocation{
			{SprintID: "s1", Points: 5},
			{SprintID: "s2", Points: 3},
		}},
	}

	got := SprintUtilization(s, features)
	assert.Equal(t, Utilization{Used: 13, Capacity: 20, Percent: 65}, got)
}

func TestSprintUtilization_ZeroCapacity(t *testing.T) {
	s := &domain.Sprint{ID: "s1"}
	features := []*domain.Feature{
		{ID: "f1", Allocations: []domain.SprintAllocation{{SprintID: "s1", Points: 8}}},
	}

	got := SprintUtilization(s, features)
	assert.Equal(t, 8, got.Used)
	assert.Equal(t, 0, got.Percent)
}

func TestSprintUtilization_EmptySprint(t *testing.T) {
	got := SprintUtilization(&domain.Sprint{ID: "s9", Capacity: 10}, nil)
	assert.Equal(t, Utilization{Capacity: 10}, got)
}
