package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmercier/orchestrator/internal/cli/formatter"
	"github.com/jmercier/orchestrator/internal/domain"
	"github.com/jmercier/orchestrator/internal/finance"
)

func newFinanceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Financial rollups for the portfolio",
	}

	cmd.AddCommand(
		newFinanceMonthlyCmd(app),
		newFinanceCompareCmd(app),
		newFinanceProgramsCmd(app),
		newFinanceStatsCmd(app),
	)

	return cmd
}

func newFinanceMonthlyCmd(app *App) *cobra.Command {
	var system string

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Payment schedule by completion month",
		RunE: func(cmd *cobra.Command, args []string) error {
			features, err := app.Features.List(context.Background(), domain.System(system))
			if err != nil {
				return humanize(err)
			}
			fmt.Printf("%s\n", formatter.FormatMonthly(finance.MonthlyFinancials(features)))
			return nil
		},
	}

	cmd.Flags().StringVar(&system, "system", defaultSystem(), "Filter by system (empty = all)")

	return cmd
}

func newFinanceCompareCmd(app *App) *cobra.Command {
	var system string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run-rate spend vs delivered value by month",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sys := domain.System(system)

			features, err := app.Features.List(ctx, sys)
			if err != nil {
				return humanize(err)
			}
			rates, err := app.RunRates.Table(ctx)
			if err != nil {
				return humanize(err)
			}
			fmt.Printf("%s\n", formatter.FormatComparison(finance.FinancialComparison(features, rates, sys)))
			return nil
		},
	}

	cmd.Flags().StringVar(&system, "system", defaultSystem(), "Filter by system (empty = all)")

	return cmd
}

func newFinanceProgramsCmd(app *App) *cobra.Command {
	var system string

	cmd := &cobra.Command{
		Use:   "programs",
		Short: "Cost share and readiness per program",
		RunE: func(cmd *cobra.Command, args []string) error {
			features, err := app.Features.List(context.Background(), domain.System(system))
			if err != nil {
				return humanize(err)
			}
			costs := finance.ProgramFinancials(features)
			readiness := finance.ProgramReadiness(features)
			fmt.Printf("%s\n", formatter.FormatPrograms(costs, readiness))
			return nil
		},
	}

	cmd.Flags().StringVar(&system, "system", defaultSystem(), "Filter by system (empty = all)")

	return cmd
}

func newFinanceStatsCmd(app *App) *cobra.Command {
	var system string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Portfolio headline numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			features, err := app.Features.List(context.Background(), domain.System(system))
			if err != nil {
				return humanize(err)
			}
			fmt.Printf("%s\n", formatter.FormatStats(finance.Stats(features)))
			return nil
		},
	}

	cmd.Flags().StringVar(&system, "system", defaultSystem(), "Filter by system (empty = all)")

	return cmd
}
