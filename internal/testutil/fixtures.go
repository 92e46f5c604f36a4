package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmercier/orchestrator/internal/domain"
)

// Feature options
type FeatureOption func(*domain.Feature)

func WithPriority(p domain.Priority) FeatureOption {
	return func(f *domain.Feature) {
		f.Priority = p
	}
}

func WithStatus(s domain.Status) FeatureOption {
	return func(f *domain.Feature) {
		f.Status = s
	}
}

func WithDates(start, end string) FeatureOption {
	return func(f *domain.Feature) {
		f.StartDate = start
		f.EndDate = end
	}
}

func WithCost(cost float64) FeatureOption {
	return func(f *domain.Feature) {
		f.EstimatedCost = cost
	}
}

func WithPoints(points int) FeatureOption {
	return func(f *domain.Feature) {
		f.Points = points
	}
}

func WithOwner(owner string) FeatureOption {
	return func(f *domain.Feature) {
		f.Owner = owner
	}
}

func WithPrograms(programs ...string) FeatureOption {
	return func(f *domain.Feature) {
		f.Programs = programs
	}
}

func WithSystem(sys domain.System) FeatureOption {
	return func(f *domain.Feature) {
		f.System = sys
	}
}

func WithAllocation(sprintID string, points int) FeatureOption {
	return func(f *domain.Feature) {
		f.Allocations = append(f.Allocations, domain.SprintAllocation{SprintID: sprintID, Points: points})
	}
}

func NewTestFeature(name string, opts ...FeatureOption) *domain.Feature {
	now := time.Now().UTC()
	f := &domain.Feature{
		ID:            uuid.New().String(),
		Name:          name,
		Priority:      domain.PriorityMedium,
		Status:        domain.StatusBacklog,
		StartDate:     "2026-01-01",
		EndDate:       "2026-03-31",
		EstimatedCost: 5000,
		Points:        8,
		Owner:         "Test Owner",
		System:        domain.SystemTOM,
		JiraNumber:    "TEST-1",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Sprint options
type SprintOption func(*domain.Sprint)

func WithSprintDates(start, end string) SprintOption {
	return func(s *domain.Sprint) {
		s.StartDate = start
		s.EndDate = end
	}
}

func WithCapacity(capacity int) SprintOption {
	return func(s *domain.Sprint) {
		s.Capacity = capacity
	}
}

func WithClosed() SprintOption {
	return func(s *domain.Sprint) {
		s.IsClosed = true
	}
}

func WithSprintSystem(sys domain.System) SprintOption {
	return func(s *domain.Sprint) {
		s.System = sys
	}
}

func NewTestSprint(name string, opts ...SprintOption) *domain.Sprint {
	now := time.Now().UTC()
	s := &domain.Sprint{
		ID:                   uuid.New().String(),
		Name:                 name,
		StartDate:            "2026-03-01",
		EndDate:              "2026-03-14",
		TargetDeploymentDate: "2026-03-20",
		Capacity:             20,
		System:               domain.SystemTOM,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Log options
type LogOption func(*domain.LogEntry)

func WithLogTimestamp(t time.Time) LogOption {
	return func(e *domain.LogEntry) {
		e.Timestamp = t
	}
}

func WithLogDetails(details string) LogOption {
	return func(e *domain.LogEntry) {
		e.Details = details
	}
}

func NewTestLogEntry(kind domain.EntityKind, entityName, action string, opts ...LogOption) *domain.LogEntry {
	e := &domain.LogEntry{
		ID:         uuid.New().String(),
		Timestamp:  time.Now().UTC(),
		Kind:       kind,
		EntityID:   uuid.New().String(),
		EntityName: entityName,
		Action:     action,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
