package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmercier/orchestrator/internal/domain"
)

func costFeature(id, endDate string, cost float64) *domain.Feature {
	return &domain.Feature{ID: id, Name: "F " + id, EndDate: endDate, EstimatedCost: cost}
}

func TestMonthlyFinancials_CumulativeAcrossMonths(t *testing.T) {
	features := []*domain.Feature{
		costFeature("f1", "2026-01-15", 1000),
		costFeature("f2", "2026-02-20", 5000),
	}

	got := MonthlyFinancials(features)
	require.Len(t, got, 2)

	assert.Equal(t, "2026-01", got[0].Key)
	assert.Equal(t, "Jan 26", got[0].Month)
	assert.Equal(t, 1000.0, got[0].Payment)
	assert.Equal(t, 1000.0, got[0].Cumulative)

	assert.Equal(t, "Feb 26", got[1].Month)
	assert.Equal(t, 5000.0, got[1].Payment)
	assert.Equal(t, 6000.0, got[1].Cumulative)
}

func TestMonthlyFinancials_GroupsSameMonth(t *testing.T) {
	features := []*domain.Feature{
		costFeature("f1", "2026-03-01", 200),
		costFeature("f2", "2026-03-28", 300),
	}

	got := MonthlyFinancials(features)
	require.Len(t, got, 1)
	assert.Equal(t, 500.0, got[0].Payment)
}

func TestMonthlyFinancials_SkipsMalformedEndDates(t *testing.T) {
	features := []*domain.Feature{
		costFeature("f1", "not-a-date", 999),
		costFeature("f2", "2026-05-10", 100),
	}

	got := MonthlyFinancials(features)
	require.Len(t, got, 1)
	assert.Equal(t, "2026-05", got[0].Key)
}

func TestMonthlyFinancials_GapMonthsOmitted(t *testing.T) {
	features := []*domain.Feature{
		costFeature("f1", "2026-01-15", 100),
		costFeature("f2", "2026-06-15", 100),
	}

	got := MonthlyFinancials(features)
	require.Len(t, got, 2, "no zero-fill for the empty months between")
	assert.Equal(t, "2026-01", got[0].Key)
	assert.Equal(t, "2026-06", got[1].Key)
}

func TestMonthlyFinancials_Empty(t *testing.T) {
	assert.Empty(t, MonthlyFinancials(nil))
}
