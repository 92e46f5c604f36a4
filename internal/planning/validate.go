package planning

import "github.com/jmercier/orchestrator/internal/domain"

// ValidateSprintSave checks a drafted sprint against the rest of the
// collection before it is persisted. The draft is identity-excluded,
// so editing a sprint never collides with its own stored copy. Returns
// a SprintOverlapError or DateOrderError, or nil when the draft is
// safe to save. Runs only at explicit save points, not on every edit.
func ValidateSprintSave(draft *domain.Sprint, others []*domain.Sprint) error {
	for _, s := range others {
		if s.ID == draft.ID {
			continue
		}
		if SprintsOverlap(draft, s) {
			return &SprintOverlapError{SprintName: draft.Name, ConflictName: s.Name}
		}
	}
	if start, end, ok := draft.Range(); ok && start.After(end) {
		return &DateOrderError{StartDate: draft.StartDate, EndDate: draft.EndDate}
	}
	return nil
}
