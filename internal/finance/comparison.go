package finance

import (
	"fmt"

	"github.com/jmercier/orchestrator/internal/domain"
)

// ComparisonPoint pairs one month's delivered value (Budget) with its
// run-rate spend. Diff is runRate − budget: positive means spending
// outran delivered value ("excess burn"), negative means under burn.
type ComparisonPoint struct {
	Key     string
	Month   string
	Budget  float64
	RunRate float64
	Diff    float64
}

// FinancialComparison lines up delivered value against run-rate spend
// month by month. The month set is the union of the months features
// complete in and all twelve months of every year present in the
// run-rate table — run-rate years expand to the full calendar even
// when no feature lands there. system narrows the run-rate side to one
// system; any non-concrete value (SystemGlobal included) sums across
// all systems.
func FinancialComparison(features []*domain.Feature, rates domain.RunRateTable, system domain.System) []ComparisonPoint {
	type cell struct{ budget, runRate float64 }
	byMonth := make(map[string]*cell)
	at := func(key string) *cell {
		c, ok := byMonth[key]
		if !ok {
			c = &cell{}
			byMonth[key] = c
		}
		return c
	}

	for _, f := range features {
		key, ok := monthKey(f.EndDate)
		if !ok {
			continue
		}
		at(key).budget += f.EstimatedCost
	}

	for _, year := range rates.Years() {
		for month := 0; month < 12; month++ {
			key := fmt.Sprintf("%04d-%02d", year, month+1)
			c := at(key)
			if system.Valid() {
				c.runRate = rates.Amount(year, month, system)
			} else {
				c.runRate = rates.GlobalAmount(year, month)
			}
		}
	}

	keys := sortedKeys(byMonth)
	out := make([]ComparisonPoint, 0, len(keys))
	for _, key := range keys {
		c := byMonth[key]
		out = append(out, ComparisonPoint{
			Key:     key,
			Month:   monthLabel(key),
			Budget:  c.budget,
			RunRate: c.runRate,
			Diff:    c.runRate - c.budget,
		})
	}
	return out
}
