package domain

import "time"

// SprintAllocation commits a slice of a feature's effort to one sprint.
// The sprint is referenced by id only; resolving it against the current
// sprint collection is the caller's job.
type SprintAllocation struct {
	SprintID string
	Points   int
}

// Feature is a plannable unit of product work. StartDate and EndDate are
// YYYY-MM-DD strings; when the feature has at least one allocation they are
// derived from the allocated sprints' ranges rather than authored directly.
type Feature struct {
	ID            string
	Name          string
	Description   string
	Priority      Priority
	Status        Status
	StartDate     string
	EndDate       string
	EstimatedCost float64
	Points        int
	Owner         string
	Programs      []string
	System        System
	JiraNumber    string
	Allocations   []SprintAllocation

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AllocatedPoints sums the points committed across all sprint allocations.
func (f *Feature) AllocatedPoints() int {
	total := 0
	for _, a := range f.Allocations {
		total += a.Points
	}
	return total
}

// RemainingPoints returns the unallocated headroom, never negative.
func (f *Feature) RemainingPoints() int {
	if r := f.Points - f.AllocatedPoints(); r > 0 {
		return r
	}
	return 0
}

// AllocatedTo reports whether the feature holds an allocation for sprintID.
func (f *Feature) AllocatedTo(sprintID string) bool {
	for _, a := range f.Allocations {
		if a.SprintID == sprintID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy. Engine functions operate on clones so a
// rejected mutation never leaves a half-modified feature behind.
func (f *Feature) Clone() *Feature {
	c := *f
	c.Programs = append([]string(nil), f.Programs...)
	c.Allocations = append([]SprintAllocation(nil), f.Allocations...)
	return &c
}
