package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jmercier/orchestrator/internal/domain"
	"github.com/jmercier/orchestrator/internal/intelligence"
	"github.com/jmercier/orchestrator/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Features service.FeatureService
	Sprints  service.SprintService
	RunRates service.RunRateService
	Logs     service.LogService

	// Suggestions is nil when the LLM subsystem is disabled.
	Suggestions intelligence.SuggestionService

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms and the board TUI require it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "orchestrator" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "orchestrator",
		Short:         "Sprint planning and feature roadmap dashboard",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newFeatureCmd(app),
		newSprintCmd(app),
		newFinanceCmd(app),
		newTimelineCmd(app),
		newRunRateCmd(app),
		newLogCmd(app),
		newSuggestCmd(app),
		newBoardCmd(app),
	)

	return root
}

// defaultSystem reads the ambient system scope. Empty (treated as the
// global scope) unless ORCH_SYSTEM names a concrete system.
func defaultSystem() string {
	sys := domain.System(os.Getenv("ORCH_SYSTEM"))
	if sys.Valid() {
		return string(sys)
	}
	return ""
}

func interactive(app *App) bool {
	return app.IsInteractive != nil && app.IsInteractive()
}
