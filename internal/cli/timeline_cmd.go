package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmercier/orchestrator/internal/cli/formatter"
	"github.com/jmercier/orchestrator/internal/domain"
	"github.com/jmercier/orchestrator/internal/planning"
	"github.com/jmercier/orchestrator/internal/timeline"
)

func newTimelineCmd(app *App) *cobra.Command {
	var system, from, to, preset string

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Gantt view of the roadmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			features, err := app.Features.List(context.Background(), domain.System(system))
			if err != nil {
				return humanize(err)
			}
			features = planning.SortByPriority(features)

			override, err := timelineWindow(from, to, preset)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatTimeline(features, override))
			return nil
		},
	}

	cmd.Flags().StringVar(&system, "system", defaultSystem(), "Filter by system (empty = all)")
	cmd.Flags().StringVar(&from, "from", "", "Window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Window end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&preset, "preset", "", "Window preset (month|quarter|year)")

	cmd.AddCommand(newWorkdaysCmd())

	return cmd
}

// timelineWindow builds the optional date-range override from flags.
// A preset wins over explicit endpoints; no flags means the window is
// derived from the features themselves.
func timelineWindow(from, to, preset string) (*timeline.DateRange, error) {
	if preset != "" {
		presets := timeline.PresetsAt(time.Now().UTC())
		switch preset {
		case "month":
			return &presets.Month, nil
		case "quarter":
			return &presets.Quarter, nil
		case "year":
			return &presets.Year, nil
		default:
			return nil, fmt.Errorf("unknown preset %q, expected month, quarter or year", preset)
		}
	}

	if from == "" && to == "" {
		return nil, nil
	}
	start, err := domain.ParseDate(from)
	if err != nil {
		return nil, fmt.Errorf("invalid --from date %q: %w", from, err)
	}
	end, err := domain.ParseDate(to)
	if err != nil {
		return nil, fmt.Errorf("invalid --to date %q: %w", to, err)
	}
	return &timeline.DateRange{Start: start, End: end}, nil
}

func newWorkdaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workdays YEAR MONTH",
		Short: "Working days in a month (weekends and stat holidays excluded)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			monthNum, err := strconv.Atoi(args[1])
			if err != nil || monthNum < 1 || monthNum > 12 {
				return fmt.Errorf("invalid month %q, expected 1-12", args[1])
			}

			month := time.Month(monthNum)
			days := timeline.WorkingDays(year, month)
			fmt.Printf("%s\n", formatter.FormatWorkingDays(year, month, days))
			return nil
		},
	}
}
