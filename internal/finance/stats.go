package finance

import (
	"math"

	"github.com/jmercier/orchestrator/internal/domain"
)

// FeatureStats are headline aggregates for a feature collection.
// AvgPoints is rounded to one decimal place.
type FeatureStats struct {
	TotalPoints     int
	AvgPoints       float64
	CriticalCount   int
	HighCount       int
	InProgressCount int
}

// Stats computes the portfolio aggregates. An empty collection yields
// all zeroes, not a division fault.
func Stats(features []*domain.Feature) FeatureStats {
	s := FeatureStats{}
	for _, f := range features {
		s.TotalPoints += f.Points
		switch f.Priority {
		case domain.PriorityCritical:
			s.CriticalCount++
		case domain.PriorityHigh:
			s.HighCount++
		}
		if f.Status == domain.StatusInProgress {
			s.InProgressCount++
		}
	}
	if len(features) > 0 {
		avg := float64(s.TotalPoints) / float64(len(features))
		s.AvgPoints = math.Round(avg*10) / 10
	}
	return s
}
