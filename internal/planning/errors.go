package planning

import "fmt"

// OverAllocationError rejects a points assignment that would push a
// feature past its total points. Always recoverable: retry with a
// smaller value.
type OverAllocationError struct {
	FeatureName string
	Requested   int
	Limit       int
}

func (e *OverAllocationError) Error() string {
	return fmt.Sprintf("cannot allocate %d pts: total for %q would exceed its limit of %d pts", e.Requested, e.FeatureName, e.Limit)
}

// SprintOverlapError rejects a sprint save whose date range collides
// with another sprint in the same scope.
type SprintOverlapError struct {
	SprintName   string
	ConflictName string
}

func (e *SprintOverlapError) Error() string {
	return fmt.Sprintf("sprint %q overlaps with %q", e.SprintName, e.ConflictName)
}

// DateOrderError rejects a range whose start date falls after its end
// date.
type DateOrderError struct {
	StartDate string
	EndDate   string
}

func (e *DateOrderError) Error() string {
	return fmt.Sprintf("start date %s is after end date %s", e.StartDate, e.EndDate)
}
