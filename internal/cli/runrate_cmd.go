package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmercier/orchestrator/internal/cli/formatter"
	"github.com/jmercier/orchestrator/internal/domain"
)

func newRunRateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runrate",
		Short: "Manage monthly run-rate spend",
	}

	cmd.AddCommand(
		newRunRateSetCmd(app),
		newRunRateShowCmd(app),
	)

	return cmd
}

func newRunRateSetCmd(app *App) *cobra.Command {
	var system string

	cmd := &cobra.Command{
		Use:   "set YEAR MONTH AMOUNT",
		Short: "Set one month's run-rate spend for a system",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			monthNum, err := strconv.Atoi(args[1])
			if err != nil || monthNum < 1 || monthNum > 12 {
				return fmt.Errorf("invalid month %q, expected 1-12", args[1])
			}
			amount, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[2])
			}

			sys := domain.System(system)
			// The table stores months zero-based.
			if err := app.RunRates.Set(context.Background(), year, monthNum-1, sys, amount); err != nil {
				return humanize(err)
			}
			fmt.Printf("Set %s run rate for %s %d to %s\n", sys, time.Month(monthNum), year, formatter.Money(amount))
			return nil
		},
	}

	cmd.Flags().StringVar(&system, "system", string(domain.SystemTOM), "System (TOM|EOM|C3)")

	return cmd
}

func newRunRateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the run-rate table",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := app.RunRates.Table(context.Background())
			if err != nil {
				return humanize(err)
			}
			years := table.Years()
			if len(years) == 0 {
				fmt.Println("No run rates recorded.")
				return nil
			}

			headers := []string{"Month"}
			for _, sys := range domain.AllSystems {
				headers = append(headers, string(sys))
			}
			headers = append(headers, "Total")

			var rows [][]string
			for _, year := range years {
				months := make([]int, 0, 12)
				for month := range table[year] {
					months = append(months, month)
				}
				sort.Ints(months)
				for _, month := range months {
					row := []string{fmt.Sprintf("%s %d", time.Month(month+1), year)}
					for _, sys := range domain.AllSystems {
						row = append(row, formatter.Money(table.Amount(year, month, sys)))
					}
					row = append(row, formatter.Money(table.GlobalAmount(year, month)))
					rows = append(rows, row)
				}
			}

			aligns := make([]formatter.Align, len(headers))
			for i := 1; i < len(aligns); i++ {
				aligns[i] = formatter.AlignRight
			}
			fmt.Printf("%s\n", formatter.RenderTableAligned(headers, rows, aligns))
			return nil
		},
	}
}
