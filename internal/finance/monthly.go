package finance

import (
	"sort"
	"time"

	"github.com/jmercier/orchestrator/internal/domain"
)

const monthKeyLayout = "2006-01"

// MonthlyPoint is one month of delivered value. Key is the sortable
// YYYY-MM grouping key; Month is the display label ("Jan 26").
type MonthlyPoint struct {
	Key        string
	Month      string
	Payment    float64
	Cumulative float64
}

// MonthlyFinancials groups features by the calendar month of their end
// date (value realizes at completion), sums estimated cost per month
// and carries a running cumulative total. Months with no completing
// features are omitted rather than zero-filled. Features whose end
// date fails to parse are skipped.
func MonthlyFinancials(features []*domain.Feature) []MonthlyPoint {
	byMonth := make(map[string]float64)
	for _, f := range features {
		key, ok := monthKey(f.EndDate)
		if !ok {
			continue
		}
		byMonth[key] += f.EstimatedCost
	}

	keys := sortedKeys(byMonth)
	out := make([]MonthlyPoint, 0, len(keys))
	cumulative := 0.0
	for _, key := range keys {
		cumulative += byMonth[key]
		out = append(out, MonthlyPoint{
			Key:        key,
			Month:      monthLabel(key),
			Payment:    byMonth[key],
			Cumulative: cumulative,
		})
	}
	return out
}

func monthKey(dateStr string) (string, bool) {
	d, err := domain.ParseDate(dateStr)
	if err != nil {
		return "", false
	}
	return d.Format(monthKeyLayout), true
}

func monthLabel(key string) string {
	d, err := time.Parse(monthKeyLayout, key)
	if err != nil {
		return key
	}
	return d.Format("Jan 06")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
