package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmercier/orchestrator/internal/cli/formatter"
	"github.com/jmercier/orchestrator/internal/domain"
)

func newSprintCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sprint",
		Short: "Manage sprints",
	}

	cmd.AddCommand(
		newSprintAddCmd(app),
		newSprintListCmd(app),
		newSprintUpdateCmd(app),
		newSprintCloseCmd(app),
		newSprintReopenCmd(app),
		newSprintRemoveCmd(app),
	)

	return cmd
}

func newSprintAddCmd(app *App) *cobra.Command {
	var name, start, end, deploy, system string
	var capacity int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new sprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && interactive(app) {
				draft := sprintDraft{Capacity: "20", System: defaultSystem()}
				if draft.System == "" {
					draft.System = string(domain.SystemTOM)
				}
				if err := sprintForm(&draft).Run(); err != nil {
					return err
				}
				name = draft.Name
				start = draft.StartDate
				end = draft.EndDate
				deploy = draft.DeployDate
				system = draft.System
				capacity, _ = strconv.Atoi(draft.Capacity)
			}
			if name == "" {
				return fmt.Errorf("--name is required (or run interactively)")
			}
			if !domain.ValidDate(start) {
				return fmt.Errorf("invalid start date %q, expected YYYY-MM-DD", start)
			}
			end = defaultSprintEnd(start, end)

			s := &domain.Sprint{
				Name:                 name,
				StartDate:            start,
				EndDate:              end,
				TargetDeploymentDate: deploy,
				Capacity:             capacity,
				System:               domain.System(system),
			}
			if !s.System.Valid() {
				s.System = domain.SystemTOM
			}

			if err := app.Sprints.Create(context.Background(), s); err != nil {
				return humanize(err)
			}
			fmt.Printf("Created sprint %s (%s → %s)\n", s.Name, s.StartDate, s.EndDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Sprint name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, default start + 14 days)")
	cmd.Flags().StringVar(&deploy, "deploy", "", "Target deployment date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&capacity, "capacity", 20, "Capacity in points")
	cmd.Flags().StringVar(&system, "system", defaultSystem(), "System (TOM|EOM|C3)")

	return cmd
}

func newSprintListCmd(app *App) *cobra.Command {
	var system string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sprints with utilization",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sprints, err := app.Sprints.List(ctx, domain.System(system))
			if err != nil {
				return humanize(err)
			}
			if len(sprints) == 0 {
				fmt.Println("No sprints found.")
				return nil
			}
			features, err := app.Features.List(ctx, domain.SystemGlobal)
			if err != nil {
				return humanize(err)
			}
			fmt.Printf("%s\n", formatter.FormatSprintList(sprints, features))
			return nil
		},
	}

	cmd.Flags().StringVar(&system, "system", defaultSystem(), "Filter by system (empty = all)")

	return cmd
}

func newSprintUpdateCmd(app *App) *cobra.Command {
	var name, start, end, deploy string
	var capacity int

	cmd := &cobra.Command{
		Use:   "update NAME|ID",
		Short: "Update a sprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := resolveSprint(ctx, app, args[0])
			if err != nil {
				return humanize(err)
			}

			if cmd.Flags().Changed("name") {
				s.Name = name
			}
			if cmd.Flags().Changed("start") {
				s.StartDate = start
			}
			if cmd.Flags().Changed("end") {
				s.EndDate = end
			}
			if cmd.Flags().Changed("deploy") {
				s.TargetDeploymentDate = deploy
			}
			if cmd.Flags().Changed("capacity") {
				s.Capacity = capacity
			}

			if err := app.Sprints.Save(ctx, s); err != nil {
				return humanize(err)
			}
			fmt.Printf("Updated sprint %s\n", s.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Sprint name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&deploy, "deploy", "", "Target deployment date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "Capacity in points")

	return cmd
}

func newSprintCloseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "close NAME|ID",
		Short: "Close a sprint to further allocation changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := resolveSprint(ctx, app, args[0])
			if err != nil {
				return humanize(err)
			}
			if err := app.Sprints.SetClosed(ctx, s.ID, true); err != nil {
				return humanize(err)
			}
			fmt.Printf("Closed sprint %s\n", s.Name)
			return nil
		},
	}
}

func newSprintReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen NAME|ID",
		Short: "Reopen a closed sprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := resolveSprint(ctx, app, args[0])
			if err != nil {
				return humanize(err)
			}
			if err := app.Sprints.SetClosed(ctx, s.ID, false); err != nil {
				return humanize(err)
			}
			fmt.Printf("Reopened sprint %s\n", s.Name)
			return nil
		},
	}
}

func newSprintRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME|ID",
		Short: "Remove a sprint and clean up its allocations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := resolveSprint(ctx, app, args[0])
			if err != nil {
				return humanize(err)
			}
			if err := app.Sprints.Delete(ctx, s.ID); err != nil {
				return humanize(err)
			}
			fmt.Printf("Removed sprint %s\n", s.Name)
			return nil
		},
	}
}
