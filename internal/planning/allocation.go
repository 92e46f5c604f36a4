package planning

import "github.com/jmercier/orchestrator/internal/domain"

// AddAllocation returns a copy of f with an allocation to sprintID
// appended. If the feature is already allocated to that sprint the
// copy is unchanged (idempotent). A negative points value sizes the
// allocation to the feature's remaining headroom. Closed-sprint policy
// is the caller's: this function never inspects the sprint itself.
func AddAllocation(f *domain.Feature, sprintID string, points int) *domain.Feature {
	c := f.Clone()
	if c.AllocatedTo(sprintID) {
		return c
	}
	if points < 0 {
		points = c.RemainingPoints()
	}
	c.Allocations = append(c.Allocations, domain.SprintAllocation{SprintID: sprintID, Points: points})
	return c
}

// RemoveAllocation returns a copy of f without any allocation to
// sprintID. No-op copy when none exists.
func RemoveAllocation(f *domain.Feature, sprintID string) *domain.Feature {
	c := f.Clone()
	kept := c.Allocations[:0]
	for _, a := range c.Allocations {
		if a.SprintID != sprintID {
			kept = append(kept, a)
		}
	}
	c.Allocations = kept
	return c
}

// SetAllocationPoints returns a copy of f with the sprintID allocation
// set to points, clamped to be non-negative. When the new value plus
// the sum of every other allocation would exceed the feature's total
// points, it returns an OverAllocationError and f is left untouched.
func SetAllocationPoints(f *domain.Feature, sprintID string, points int) (*domain.Feature, error) {
	if points < 0 {
		points = 0
	}
	otherSum := 0
	for _, a := range f.Allocations {
		if a.SprintID != sprintID {
			otherSum += a.Points
		}
	}
	if points+otherSum > f.Points {
		return nil, &OverAllocationError{FeatureName: f.Name, Requested: points, Limit: f.Points}
	}
	c := f.Clone()
	for i := range c.Allocations {
		if c.Allocations[i].SprintID == sprintID {
			c.Allocations[i].Points = points
		}
	}
	return c, nil
}

// RecomputeDates returns a copy of f whose start/end range is the union
// of the date ranges of the sprints it is allocated to. A feature with
// no allocations keeps its authored dates, as does one whose
// allocations all reference sprints missing from the collection
// (dangling references are skipped, not raised). Must be re-run after
// every allocation change and after any sprint edit or deletion.
func RecomputeDates(f *domain.Feature, sprints []*domain.Sprint) *domain.Feature {
	c := f.Clone()
	if len(c.Allocations) == 0 {
		return c
	}

	byID := make(map[string]*domain.Sprint, len(sprints))
	for _, s := range sprints {
		byID[s.ID] = s
	}

	var minStart, maxEnd string
	resolved := false
	for _, a := range c.Allocations {
		s, ok := byID[a.SprintID]
		if !ok {
			continue
		}
		if !resolved || s.StartDate < minStart {
			minStart = s.StartDate
		}
		if !resolved || s.EndDate > maxEnd {
			maxEnd = s.EndDate
		}
		resolved = true
	}
	if !resolved {
		return c
	}
	c.StartDate = minStart
	c.EndDate = maxEnd
	return c
}
