package domain

import "time"

// Sprint is a time-boxed capacity container. Closed sprints are read-only
// for allocation purposes: existing allocations stand, new edits are
// rejected at the call site.
type Sprint struct {
	ID                   string
	Name                 string
	StartDate            string
	EndDate              string
	TargetDeploymentDate string
	Capacity             int
	IsClosed             bool
	System               System

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range parses the sprint's date range. ok is false when either endpoint
// is malformed; callers treat that as "no range" rather than an error.
func (s *Sprint) Range() (start, end time.Time, ok bool) {
	start, err := ParseDate(s.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = ParseDate(s.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func (s *Sprint) Clone() *Sprint {
	c := *s
	return &c
}
