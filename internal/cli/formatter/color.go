package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmercier/orchestrator/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityPill returns a colored priority indicator such as "▲ Critical".
func PriorityPill(p domain.Priority) string {
	switch p {
	case domain.PriorityCritical:
		return StyleRed.Render("▲ Critical")
	case domain.PriorityHigh:
		return StyleYellow.Render("▲ High")
	case domain.PriorityMedium:
		return StyleBlue.Render("● Medium")
	case domain.PriorityLow:
		return StyleDim.Render("▽ Low")
	default:
		return StyleDim.Render(string(p))
	}
}

// StatusPill returns a colored status indicator for feature status.
func StatusPill(s domain.Status) string {
	switch s {
	case domain.StatusBacklog:
		return StyleDim.Render("○ Backlog")
	case domain.StatusReady:
		return StyleBlue.Render("◍ Ready")
	case domain.StatusInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.StatusCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.StatusOnHold:
		return StyleYellow.Render("⊘ On Hold")
	default:
		return StyleDim.Render(string(s))
	}
}

// SystemBadge returns a purple-styled system label, or a dimmed "ALL"
// for any non-concrete scope.
func SystemBadge(sys domain.System) string {
	if !sys.Valid() {
		return StyleDim.Render("ALL")
	}
	return StylePurple.Render(string(sys))
}

// SprintStateBadge marks a sprint open or closed.
func SprintStateBadge(closed bool) string {
	if closed {
		return StyleDim.Render("✖ Closed")
	}
	return StyleGreen.Render("● Open")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
