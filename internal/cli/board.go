package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jmercier/orchestrator/internal/cli/formatter"
	"github.com/jmercier/orchestrator/internal/domain"
	"github.com/jmercier/orchestrator/internal/planning"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Interactive backlog board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive(app) {
				return fmt.Errorf("the board needs an interactive terminal")
			}
			ctx := context.Background()
			features, err := app.Features.List(ctx, domain.SystemGlobal)
			if err != nil {
				return humanize(err)
			}
			sprints, err := app.Sprints.List(ctx, domain.SystemGlobal)
			if err != nil {
				return humanize(err)
			}

			model := newBoardModel(features, sprints)
			model.system = domain.System(defaultSystem())
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}

// boardModel is the interactive backlog view: a filterable feature
// list with a detail pane for the selected row.
type boardModel struct {
	features []*domain.Feature
	sprints  []*domain.Sprint

	filter     textinput.Model
	filtering  bool
	system     domain.System
	byPriority bool
	cursor     int
	width      int
	height     int
}

func newBoardModel(features []*domain.Feature, sprints []*domain.Sprint) *boardModel {
	filter := textinput.New()
	filter.Placeholder = "filter…"
	filter.CharLimit = 64

	return &boardModel{
		features: features,
		sprints:  sprints,
		filter:   filter,
		system:   domain.SystemGlobal,
	}
}

func (m *boardModel) Init() tea.Cmd {
	return nil
}

// visible applies the current filter, system scope and sort.
func (m *boardModel) visible() []*domain.Feature {
	out := planning.FilterFeatures(m.features, planning.FeatureFilter{
		System: m.system,
		Query:  m.filter.Value(),
	})
	if m.byPriority {
		out = planning.SortByPriority(out)
	}
	return out
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "esc", "enter":
				m.filtering = false
				m.filter.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.clampCursor()
				return m, cmd
			}
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "/":
			m.filtering = true
			m.filter.Focus()
			return m, textinput.Blink
		case "s":
			m.system = nextSystem(m.system)
			m.clampCursor()
			return m, nil
		case "p":
			m.byPriority = !m.byPriority
			return m, nil
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
			return m, nil
		}
	}
	return m, nil
}

func (m *boardModel) clampCursor() {
	if n := len(m.visible()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// nextSystem cycles global → TOM → EOM → C3 → global.
func nextSystem(sys domain.System) domain.System {
	for i, s := range domain.AllSystems {
		if s == sys {
			if i == len(domain.AllSystems)-1 {
				return domain.SystemGlobal
			}
			return domain.AllSystems[i+1]
		}
	}
	return domain.AllSystems[0]
}

func (m *boardModel) View() string {
	var b strings.Builder

	scope := "ALL"
	if m.system.Valid() {
		scope = string(m.system)
	}
	b.WriteString(formatter.Header("Backlog · " + scope))
	b.WriteString("\n")
	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(formatter.Dim("No features match."))
		b.WriteString("\n")
	}
	for i, f := range visible {
		marker := "  "
		if i == m.cursor {
			marker = formatter.Bold("> ")
		}
		fmt.Fprintf(&b, "%s%s  %s  %s  %dpts\n",
			marker, f.Name, formatter.PriorityPill(f.Priority), formatter.StatusPill(f.Status), f.Points)
	}

	if m.cursor < len(visible) {
		b.WriteString("\n")
		b.WriteString(formatter.FormatFeatureInspect(visible[m.cursor], m.sprints))
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim("/ filter · s system · p priority sort · j/k move · q quit"))
	return b.String()
}
