package timeline

import (
	"math"

	"github.com/jmercier/orchestrator/internal/domain"
)

// Utilization is how full one sprint is: points allocated to it across
// every feature, against its capacity.
type Utilization struct {
	Used     int
	Capacity int
	Percent  int
}

// SprintUtilization sums the points every feature has allocated to the
// sprint. Percent is rounded; a zero-capacity sprint reads as 0% no
// matter what is in it.
func SprintUtilization(s *domain.Sprint, features []*domain.Feature) Utilization {
	used := 0
	for _, f := range features {
		for _, a := range f.Allocations {
			if a.SprintID == s.ID {
				used += a.Points
			}
		}
	}
	u := Utilization{Used: used, Capacity: s.Capacity}
	if s.Capacity > 0 {
		u.Percent = int(math.Round(float64(used) / float64(s.Capacity) * 100))
	}
	return u
}
