package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmercier/orchestrator/internal/domain"
	"github.com/jmercier/orchestrator/internal/timeline"
)

const ganttWidth = 60

// FormatTimeline renders a gantt-style chart: one bar per feature,
// positioned by where its dates fall inside the month window. Features
// whose dates fall outside the window clamp to the edges.
func FormatTimeline(features []*domain.Feature, override *timeline.DateRange) string {
	anchors := timeline.TimelineMonths(features, override)
	if len(anchors) == 0 {
		return Dim("No dated features to draw.")
	}

	nameWidth := 0
	for _, f := range features {
		if w := lipgloss.Width(f.Name); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", nameWidth+2))
	b.WriteString(monthAxis(anchors))
	b.WriteString("\n")

	for _, f := range features {
		startPct := timeline.DatePosition(f.StartDate, anchors, override)
		endPct := timeline.DatePosition(f.EndDate, anchors, override)
		b.WriteString(padRight(f.Name, nameWidth))
		b.WriteString("  ")
		b.WriteString(ganttBar(startPct, endPct, f.Priority))
		b.WriteString("\n")
	}
	return b.String()
}

// monthAxis spreads month labels across the chart width.
func monthAxis(anchors []time.Time) string {
	slot := ganttWidth / len(anchors)
	if slot < 1 {
		slot = 1
	}
	var b strings.Builder
	for _, a := range anchors {
		b.WriteString(padRight(timeline.MonthLabel(a), slot))
	}
	return StyleDim.Render(b.String())
}

func ganttBar(startPct, endPct float64, p domain.Priority) string {
	start := int(startPct / 100 * ganttWidth)
	end := int(endPct / 100 * ganttWidth)
	if end < start {
		end = start
	}
	if start >= ganttWidth {
		start = ganttWidth - 1
	}
	if end >= ganttWidth {
		end = ganttWidth - 1
	}

	barLen := end - start + 1
	bar := strings.Repeat(" ", start) + strings.Repeat("━", barLen) + strings.Repeat(" ", ganttWidth-start-barLen)

	style := StyleBlue
	switch p {
	case domain.PriorityCritical:
		style = StyleRed
	case domain.PriorityHigh:
		style = StyleYellow
	case domain.PriorityLow:
		style = StyleDim
	}
	return style.Render(bar)
}

// FormatWorkingDays renders the working-day count for one month.
func FormatWorkingDays(year int, month time.Month, days int) string {
	return fmt.Sprintf("%s %d: %s working days", Bold(month.String()), year, StyleGreen.Render(fmt.Sprintf("%d", days)))
}

func padRight(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
