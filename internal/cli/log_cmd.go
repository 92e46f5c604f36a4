package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmercier/orchestrator/internal/cli/formatter"
	"github.com/jmercier/orchestrator/internal/domain"
)

func newLogCmd(app *App) *cobra.Command {
	var query, kind string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the audit trail",
		RunE: func(cmd *cobra.Command, args []string) error {
			var entityKind domain.EntityKind
			switch kind {
			case "":
			case "feature":
				entityKind = domain.KindFeature
			case "sprint":
				entityKind = domain.KindSprint
			default:
				return fmt.Errorf("unknown kind %q, expected feature or sprint", kind)
			}

			entries, err := app.Logs.List(context.Background(), query, entityKind)
			if err != nil {
				return humanize(err)
			}
			fmt.Printf("%s\n", formatter.FormatLogList(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Free-text filter over entity, action and details")
	cmd.Flags().StringVar(&kind, "kind", "", "Filter by entity kind (feature|sprint)")

	return cmd
}
