package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmercier/orchestrator/internal/cli/formatter"
	"github.com/jmercier/orchestrator/internal/domain"
)

func newSuggestCmd(app *App) *cobra.Command {
	var system string
	var admit bool

	cmd := &cobra.Command{
		Use:   "suggest THEME",
		Short: "Generate feature suggestions from a theme",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Suggestions == nil {
				return fmt.Errorf("suggestions require the LLM subsystem; set ORCH_LLM_ENABLED=true")
			}
			ctx := context.Background()
			sys := domain.System(system)
			theme := strings.Join(args, " ")

			existing, err := app.Features.List(ctx, sys)
			if err != nil {
				return humanize(err)
			}

			suggestions, err := app.Suggestions.Suggest(ctx, theme, existing, sys)
			if err != nil {
				return humanize(err)
			}

			headers := []string{"Name", "Priority", "Points", "Cost", "Description"}
			rows := make([][]string, 0, len(suggestions))
			for _, s := range suggestions {
				points, cost := "-", "-"
				if s.Points != nil {
					points = fmt.Sprintf("%d", *s.Points)
				}
				if s.EstimatedCost != nil {
					cost = formatter.Money(*s.EstimatedCost)
				}
				rows = append(rows, []string{s.Name, s.Priority, points, cost, s.Description})
			}
			fmt.Printf("%s\n", formatter.RenderTable(headers, rows))

			if !admit {
				fmt.Println(formatter.Dim("Run again with --admit to add these to the backlog."))
				return nil
			}

			admitted, err := app.Features.AdmitSuggestions(ctx, suggestions, sys)
			if err != nil {
				return humanize(err)
			}
			fmt.Printf("Admitted %d features to the backlog.\n", len(admitted))
			return nil
		},
	}

	cmd.Flags().StringVar(&system, "system", defaultSystem(), "Target system for admitted features")
	cmd.Flags().BoolVar(&admit, "admit", false, "Admit the suggestions into the backlog")

	return cmd
}
