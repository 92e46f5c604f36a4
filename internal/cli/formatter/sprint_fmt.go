package formatter

import (
	"strconv"

	"github.com/jmercier/orchestrator/internal/domain"
	"github.com/jmercier/orchestrator/internal/timeline"
)

// FormatSprintList renders sprints with their utilization against the
// given feature collection.
func FormatSprintList(sprints []*domain.Sprint, features []*domain.Feature) string {
	headers := []string{"ID", "Name", "Start", "End", "Deploy", "Load", "System", "State"}

	rows := make([][]string, 0, len(sprints))
	for _, s := range sprints {
		u := timeline.SprintUtilization(s, features)
		load := strconv.Itoa(u.Used) + "/" + strconv.Itoa(u.Capacity) + " " + RenderProgress(ratio(u), 10)
		rows = append(rows, []string{
			TruncID(s.ID),
			s.Name,
			DisplayDate(s.StartDate),
			DisplayDate(s.EndDate),
			DisplayDate(s.TargetDeploymentDate),
			load,
			SystemBadge(s.System),
			SprintStateBadge(s.IsClosed),
		})
	}
	return RenderTable(headers, rows)
}

func ratio(u timeline.Utilization) float64 {
	if u.Capacity == 0 {
		return 0
	}
	return float64(u.Used) / float64(u.Capacity)
}
