package timeline

import (
	"time"

	"github.com/jmercier/orchestrator/internal/domain"
)

// DatePosition interpolates a date's horizontal position as a
// percentage of the visible timeline. The window runs from the first
// month anchor to the last day of the final month, or the override
// range when given. Out-of-range dates clamp to the edges instead of
// extrapolating, and a zero-width or inverted window positions
// everything at 0. Malformed dates also read as 0.
func DatePosition(dateStr string, months []time.Time, override *DateRange) float64 {
	if len(months) == 0 {
		return 0
	}
	d, err := domain.ParseDate(dateStr)
	if err != nil {
		return 0
	}

	var min, max time.Time
	if override != nil {
		min, max = override.Start, override.End
	} else {
		min = months[0]
		last := months[len(months)-1]
		max = time.Date(last.Year(), last.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	}

	total := max.Sub(min)
	if total <= 0 {
		return 0
	}
	pos := float64(d.Sub(min)) / float64(total) * 100
	if pos < 0 {
		return 0
	}
	if pos > 100 {
		return 100
	}
	return pos
}
