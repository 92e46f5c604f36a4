package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmercier/orchestrator/internal/domain"
)

// FormatFeatureList renders the backlog as a table.
func FormatFeatureList(features []*domain.Feature) string {
	headers := []string{"ID", "Name", "Priority", "Status", "Points", "Cost", "System", "Owner"}
	aligns := []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignLeft, AlignLeft}

	rows := make([][]string, 0, len(features))
	for _, f := range features {
		rows = append(rows, []string{
			TruncID(f.ID),
			f.Name,
			PriorityPill(f.Priority),
			StatusPill(f.Status),
			strconv.Itoa(f.Points),
			Money(f.EstimatedCost),
			SystemBadge(f.System),
			f.Owner,
		})
	}
	return RenderTableAligned(headers, rows, aligns)
}

// FormatFeatureInspect renders a single feature in detail, resolving
// its allocations against the given sprints. Allocations whose sprint
// no longer exists are shown with a dimmed marker instead of a name.
func FormatFeatureInspect(f *domain.Feature, sprints []*domain.Sprint) string {
	byID := make(map[string]*domain.Sprint, len(sprints))
	for _, s := range sprints {
		byID[s.ID] = s
	}

	var b strings.Builder
	b.WriteString(Header(f.Name))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s  %s  %s\n", PriorityPill(f.Priority), StatusPill(f.Status), SystemBadge(f.System))
	if f.Description != "" {
		fmt.Fprintf(&b, "%s\n", f.Description)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s → %s\n", Bold("Dates:"), DisplayDate(f.StartDate), DisplayDate(f.EndDate))
	fmt.Fprintf(&b, "%s %s   %s %d (%d allocated, %d remaining)\n",
		Bold("Cost:"), Money(f.EstimatedCost),
		Bold("Points:"), f.Points, f.AllocatedPoints(), f.RemainingPoints())
	fmt.Fprintf(&b, "%s %s   %s %s\n", Bold("Owner:"), f.Owner, Bold("Jira:"), f.JiraNumber)
	fmt.Fprintf(&b, "%s %s\n", Bold("Programs:"), Programs(f.Programs))

	if len(f.Allocations) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Allocations"))
		b.WriteString("\n\n")
		for _, a := range f.Allocations {
			if s, ok := byID[a.SprintID]; ok {
				fmt.Fprintf(&b, "  %s — %d pts (%s → %s)\n", s.Name, a.Points, DisplayDate(s.StartDate), DisplayDate(s.EndDate))
			} else {
				fmt.Fprintf(&b, "  %s — %d pts\n", Dim("missing sprint "+a.SprintID), a.Points)
			}
		}
	}

	return b.String()
}
