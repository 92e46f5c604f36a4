package formatter

import (
	"strings"

	"github.com/jmercier/orchestrator/internal/domain"
)

// FormatLogList renders the audit trail, newest first.
func FormatLogList(entries []*domain.LogEntry) string {
	if len(entries) == 0 {
		return Dim("No audit entries.")
	}

	headers := []string{"When", "Kind", "Entity", "Action", "Details"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			Dim(e.Timestamp.Format("2006-01-02 15:04")),
			kindBadge(e.Kind),
			e.EntityName,
			actionStyle(e.Action),
			e.Details,
		})
	}
	return RenderTable(headers, rows)
}

func kindBadge(k domain.EntityKind) string {
	switch k {
	case domain.KindFeature:
		return StyleBlue.Render("feature")
	case domain.KindSprint:
		return StylePurple.Render("sprint")
	default:
		return StyleDim.Render(string(k))
	}
}

func actionStyle(action string) string {
	switch {
	case strings.HasPrefix(action, "Added"):
		return StyleGreen.Render(action)
	case strings.HasPrefix(action, "Deleted"):
		return StyleRed.Render(action)
	default:
		return StyleYellow.Render(action)
	}
}
