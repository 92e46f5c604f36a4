package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmercier/orchestrator/internal/domain"
)

func TestFinancialComparison_RunRateYearExpandsToTwelveMonths(t *testing.T) {
	rates := domain.RunRateTable{}
	rates.Set(2026, 0, domain.SystemTOM, 2000)

	features := []*domain.Feature{costFeature("f1", "2026-01-15", 1000)}

	got := FinancialComparison(features, rates, domain.SystemTOM)
	require.Len(t, got, 12, "a run-rate year expands to the full calendar")

	jan := got[0]
	assert.Equal(t, "2026-01", jan.Key)
	assert.Equal(t, "Jan 26", jan.Month)
	assert.Equal(t, 1000.0, jan.Budget)
	assert.Equal(t, 2000.0, jan.RunRate)
	assert.Equal(t, 1000.0, jan.Diff, "positive diff = excess burn")

	feb := got[1]
	assert.Equal(t, 0.0, feb.Budget)
	assert.Equal(t, 0.0, feb.RunRate)
}

func TestFinancialComparison_GlobalSumsAllSystems(t *testing.T) {
	rates := domain.RunRateTable{}
	rates.Set(2026, 3, domain.SystemTOM, 100)
	rates.Set(2026, 3, domain.SystemEOM, 200)
	rates.Set(2026, 3, domain.SystemC3, 50)

	got := FinancialComparison(nil, rates, domain.SystemGlobal)
	require.Len(t, got, 12)
	assert.Equal(t, 350.0, got[3].RunRate)
}

func TestFinancialComparison_FeatureMonthOutsideRunRateYears(t *testing.T) {
	rates := domain.RunRateTable{}
	rates.Set(2026, 0, domain.SystemTOM, 500)

	features := []*domain.Feature{costFeature("f1", "2027-02-10", 750)}

	got := FinancialComparison(features, rates, domain.SystemTOM)
	require.Len(t, got, 13, "12 run-rate months plus the lone feature month")

	last := got[len(got)-1]
	assert.Equal(t, "2027-02", last.Key)
	assert.Equal(t, 750.0, last.Budget)
	assert.Equal(t, -750.0, last.Diff, "negative diff = under burn")
}

func TestFinancialComparison_ChronologicalOrder(t *testing.T) {
	rates := domain.RunRateTable{}
	rates.Set(2027, 0, domain.SystemTOM, 1)
	rates.Set(2026, 0, domain.SystemTOM, 1)

	got := FinancialComparison(nil, rates, domain.SystemTOM)
	require.Len(t, got, 24)
	assert.Equal(t, "2026-01", got[0].Key)
	assert.Equal(t, "2027-12", got[23].Key)
}
