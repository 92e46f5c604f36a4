package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func janOnly() []time.Time {
	return []time.Time{day(2026, time.January, 1)}
}

func TestDatePosition_Interpolates(t *testing.T) {
	// January 2026 spans the 1st through the 31st: the 16th is halfway.
	got := DatePosition("2026-01-16", janOnly(), nil)
	assert.InDelta(t, 50.0, got, 0.001)

	assert.Equal(t, 0.0, DatePosition("2026-01-01", janOnly(), nil))
	assert.Equal(t, 100.0, DatePosition("2026-01-31", janOnly(), nil))
}

func TestDatePosition_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, 0.0, DatePosition("2025-11-01", janOnly(), nil))
	assert.Equal(t, 100.0, DatePosition("2026-06-01", janOnly(), nil))
}

func TestDatePosition_EmptyTimeline(t *testing.T) {
	assert.Equal(t, 0.0, DatePosition("2026-01-16", nil, nil))
}

func TestDatePosition_MalformedDate(t *testing.T) {
	assert.Equal(t, 0.0, DatePosition("whenever", janOnly(), nil))
}

func TestDatePosition_ZeroOrInvertedOverrideSpan(t *testing.T) {
	same := day(2026, time.January, 10)
	zero := &DateRange{Start: same, End: same}
	assert.Equal(t, 0.0, DatePosition("2026-01-10", janOnly(), zero))

	inverted := &DateRange{Start: day(2026, time.February, 1), End: day(2026, time.January, 1)}
	assert.Equal(t, 0.0, DatePosition("2026-01-15", janOnly(), inverted))
}

func TestDatePosition_OverrideWindow(t *testing.T) {
	override := &DateRange{Start: day(2026, time.January, 1), End: day(2026, time.January, 11)}
	got := DatePosition("2026-01-06", janOnly(), override)
	assert.InDelta(t, 50.0, got, 0.001)
}
