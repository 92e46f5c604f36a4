package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmercier/orchestrator/internal/finance"
)

func TestFormatMonthly(t *testing.T) {
	out := FormatMonthly([]finance.MonthlyPoint{
		{Key: "2026-01", Month: "Jan 26", Payment: 1000, Cumulative: 1000},
		{Key: "2026-02", Month: "Feb 26", Payment: 5000, Cumulative: 6000},
	})
	assert.Contains(t, out, "Jan 26")
	assert.Contains(t, out, "$5,000")
	assert.Contains(t, out, "$6,000")
}

func TestFormatMonthlyEmpty(t *testing.T) {
	assert.Contains(t, FormatMonthly(nil), "No completed months")
}

func TestFormatComparison(t *testing.T) {
	out := FormatComparison([]finance.ComparisonPoint{
		{Key: "2026-01", Month: "Jan 26", Budget: 1000, RunRate: 2000, Diff: 1000},
	})
	assert.Contains(t, out, "Jan 26")
	assert.Contains(t, out, "$2,000")
	assert.Contains(t, out, "Run Rate")
}

func TestFormatPrograms(t *testing.T) {
	out := FormatPrograms([]finance.ProgramCost{
		{Name: "Core", Cost: 4500},
		{Name: "Unassigned", Cost: 300},
	}, 67)
	assert.Contains(t, out, "Core")
	assert.Contains(t, out, "$4,500")
	assert.Contains(t, out, "67%")
}

func TestFormatStats(t *testing.T) {
	out := FormatStats(finance.FeatureStats{TotalPoints: 16, AvgPoints: 5.3, CriticalCount: 1, HighCount: 2})
	assert.Contains(t, out, "16")
	assert.Contains(t, out, "5.3")
}
