package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmercier/orchestrator/internal/cli/formatter"
	"github.com/jmercier/orchestrator/internal/domain"
)

// orchHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func orchHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateDate(s string) error {
	if !domain.ValidDate(s) {
		return fmt.Errorf("expected YYYY-MM-DD, got %q", s)
	}
	return nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	return validateDate(s)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("expected a non-negative whole number, got %q", s)
	}
	return nil
}

func validateMoney(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("expected a non-negative amount, got %q", s)
	}
	return nil
}

func priorityOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.AllPriorities))
	for _, p := range domain.AllPriorities {
		opts = append(opts, huh.NewOption(string(p), string(p)))
	}
	return opts
}

func statusOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.AllStatuses))
	for _, s := range domain.AllStatuses {
		opts = append(opts, huh.NewOption(string(s), string(s)))
	}
	return opts
}

func systemOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.AllSystems))
	for _, s := range domain.AllSystems {
		opts = append(opts, huh.NewOption(string(s), string(s)))
	}
	return opts
}

// featureDraft collects the fields of the interactive feature form.
type featureDraft struct {
	Name        string
	Description string
	Priority    string
	Status      string
	Cost        string
	Points      string
	Owner       string
	Programs    string
	System      string
	Jira        string
}

func featureForm(d *featureDraft) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&d.Name).Validate(validateRequired),
			huh.NewInput().Title("Description").Value(&d.Description),
			huh.NewSelect[string]().Title("Priority").Options(priorityOptions()...).Value(&d.Priority),
			huh.NewSelect[string]().Title("Status").Options(statusOptions()...).Value(&d.Status),
		),
		huh.NewGroup(
			huh.NewInput().Title("Estimated Cost ($)").Placeholder("5000").Value(&d.Cost).Validate(validateMoney),
			huh.NewInput().Title("Story Points").Placeholder("5").Value(&d.Points).Validate(validatePositiveInt),
			huh.NewInput().Title("Owner").Value(&d.Owner),
			huh.NewInput().Title("Programs (comma-separated)").Value(&d.Programs),
			huh.NewSelect[string]().Title("System").Options(systemOptions()...).Value(&d.System),
			huh.NewInput().Title("Jira Number").Placeholder("TBD").Value(&d.Jira),
		),
	).WithTheme(orchHuhTheme()).WithShowHelp(false)
}

// sprintDraft collects the fields of the interactive sprint form.
type sprintDraft struct {
	Name       string
	StartDate  string
	EndDate    string
	DeployDate string
	Capacity   string
	System     string
}

func sprintForm(d *sprintDraft) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&d.Name).Validate(validateRequired),
			huh.NewInput().Title("Start Date (YYYY-MM-DD)").Placeholder("2026-03-01").Value(&d.StartDate).Validate(validateDate),
			huh.NewInput().Title("End Date (YYYY-MM-DD)").
				Description("Blank defaults to two weeks after the start.").
				Value(&d.EndDate).Validate(validateOptionalDate),
			huh.NewInput().Title("Target Deployment (YYYY-MM-DD)").Value(&d.DeployDate).Validate(validateOptionalDate),
			huh.NewInput().Title("Capacity (points)").Placeholder("20").Value(&d.Capacity).Validate(validatePositiveInt),
			huh.NewSelect[string]().Title("System").Options(systemOptions()...).Value(&d.System),
		),
	).WithTheme(orchHuhTheme()).WithShowHelp(false)
}

// defaultSprintEnd fills a blank sprint end date: fourteen days after
// the start, the standard two-week cadence.
func defaultSprintEnd(start, end string) string {
	if end != "" {
		return end
	}
	d, err := domain.ParseDate(start)
	if err != nil {
		return end
	}
	return domain.FormatDate(d.AddDate(0, 0, 14))
}

func splitPrograms(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
