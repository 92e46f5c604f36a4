package timeline

import (
	"time"

	"github.com/jmercier/orchestrator/internal/domain"
)

// DateRange is an inclusive calendar window used to override the
// feature-derived timeline extent.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// TimelineMonths produces one anchor (first of the month, UTC) per
// calendar month covered by the timeline. With an override the window
// is taken as given; otherwise it spans the min start to the max end
// across all features, skipping unparseable dates. No features (or
// none with parseable dates) yields an empty sequence, which callers
// must handle as "nothing to draw".
func TimelineMonths(features []*domain.Feature, override *DateRange) []time.Time {
	var min, max time.Time
	if override != nil {
		min, max = override.Start, override.End
	} else {
		found := false
		for _, f := range features {
			for _, raw := range []string{f.StartDate, f.EndDate} {
				d, err := domain.ParseDate(raw)
				if err != nil {
					continue
				}
				if !found || d.Before(min) {
					min = d
				}
				if !found || d.After(max) {
					max = d
				}
				found = true
			}
		}
		if !found {
			return nil
		}
	}

	current := time.Date(min.Year(), min.Month(), 1, 0, 0, 0, 0, time.UTC)
	limit := time.Date(max.Year(), max.Month(), 1, 0, 0, 0, 0, time.UTC)
	var out []time.Time
	for !current.After(limit) {
		out = append(out, current)
		current = current.AddDate(0, 1, 0)
	}
	return out
}

// MonthLabel renders a timeline anchor the way the month axis shows it.
func MonthLabel(anchor time.Time) string {
	return anchor.Format("Jan 06")
}

// RangePresets are the quick timeline overrides for the current month,
// quarter and year around now.
type RangePresets struct {
	Month   DateRange
	Quarter DateRange
	Year    DateRange
}

// PresetsAt computes the month/quarter/year windows containing now.
func PresetsAt(now time.Time) RangePresets {
	year, month, _ := now.Date()
	quarterStart := time.Month((int(month)-1)/3*3 + 1)

	return RangePresets{
		Month: DateRange{
			Start: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC),
		},
		Quarter: DateRange{
			Start: time.Date(year, quarterStart, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, quarterStart+3, 0, 0, 0, 0, 0, time.UTC),
		},
		Year: DateRange{
			Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}
