package planning

import "github.com/jmercier/orchestrator/internal/domain"

// CascadeDeleteSprint computes the full feature set as it must look
// after sprintID is deleted: every allocation referencing the sprint
// is removed and the owning feature's dates are recomputed against the
// surviving sprints. Features untouched by the sprint pass through
// as-is. The whole result is computed before anything is committed so
// a partial cascade can never leave dangling references behind.
func CascadeDeleteSprint(sprintID string, features []*domain.Feature, sprints []*domain.Sprint) []*domain.Feature {
	remaining := make([]*domain.Sprint, 0, len(sprints))
	for _, s := range sprints {
		if s.ID != sprintID {
			remaining = append(remaining, s)
		}
	}

	out := make([]*domain.Feature, len(features))
	for i, f := range features {
		if !f.AllocatedTo(sprintID) {
			out[i] = f
			continue
		}
		out[i] = RecomputeDates(RemoveAllocation(f, sprintID), remaining)
	}
	return out
}
