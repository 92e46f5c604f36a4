package planning

import "github.com/jmercier/orchestrator/internal/domain"

// SprintsOverlap reports whether two sprints' date ranges intersect.
// Ranges are closed on both ends, so a sprint ending the day another
// starts counts as an overlap. Malformed dates and inverted ranges on
// either side read as "no overlap" rather than an error: an
// in-progress edit never blocks unrelated saves.
func SprintsOverlap(a, b *domain.Sprint) bool {
	aStart, aEnd, ok := a.Range()
	if !ok {
		return false
	}
	bStart, bEnd, ok := b.Range()
	if !ok {
		return false
	}
	if aStart.After(aEnd) || bStart.After(bEnd) {
		return false
	}
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}
