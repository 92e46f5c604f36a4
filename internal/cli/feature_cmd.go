package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmercier/orchestrator/internal/cli/formatter"
	"github.com/jmercier/orchestrator/internal/domain"
	"github.com/jmercier/orchestrator/internal/planning"
)

func newFeatureCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feature",
		Short: "Manage backlog features",
	}

	cmd.AddCommand(
		newFeatureAddCmd(app),
		newFeatureListCmd(app),
		newFeatureInspectCmd(app),
		newFeatureUpdateCmd(app),
		newFeatureRemoveCmd(app),
		newFeatureAllocateCmd(app),
		newFeatureDeallocateCmd(app),
		newFeaturePointsCmd(app),
		newFeatureReorderCmd(app),
	)

	return cmd
}

func newFeatureAddCmd(app *App) *cobra.Command {
	var name, desc, priority, status, owner, programs, system, jira string
	var cost float64
	var points int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new feature",
		RunE: func(cmd *cobra.Command, args []string) error {
			// No name on the command line and a real terminal: run the form.
			if name == "" && interactive(app) {
				draft := featureDraft{
					Priority: string(domain.PriorityMedium),
					Status:   string(domain.StatusBacklog),
					Cost:     "5000",
					Points:   "5",
					System:   defaultSystem(),
				}
				if draft.System == "" {
					draft.System = string(domain.SystemTOM)
				}
				if err := featureForm(&draft).Run(); err != nil {
					return err
				}
				name = draft.Name
				desc = draft.Description
				priority = draft.Priority
				status = draft.Status
				owner = draft.Owner
				programs = draft.Programs
				system = draft.System
				jira = draft.Jira
				cost, _ = strconv.ParseFloat(draft.Cost, 64)
				points, _ = strconv.Atoi(draft.Points)
			}
			if name == "" {
				return fmt.Errorf("--name is required (or run interactively)")
			}

			f := &domain.Feature{
				Name:          name,
				Description:   desc,
				Priority:      domain.Priority(priority),
				Status:        domain.Status(status),
				EstimatedCost: cost,
				Points:        points,
				Owner:         owner,
				Programs:      splitPrograms(programs),
				System:        domain.System(system),
				JiraNumber:    jira,
			}
			if !f.Priority.Valid() {
				f.Priority = domain.PriorityMedium
			}
			if !f.Status.Valid() {
				f.Status = domain.StatusBacklog
			}
			if !f.System.Valid() {
				f.System = domain.SystemTOM
			}

			if err := app.Features.Create(context.Background(), f); err != nil {
				return humanize(err)
			}
			fmt.Printf("Created feature %s\n", f.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Feature name")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityMedium), "Priority (Critical|High|Medium|Low)")
	cmd.Flags().StringVar(&status, "status", string(domain.StatusBacklog), "Status")
	cmd.Flags().Float64Var(&cost, "cost", 5000, "Estimated cost in dollars")
	cmd.Flags().IntVar(&points, "points", 5, "Story points")
	cmd.Flags().StringVar(&owner, "owner", "Unassigned", "Owner")
	cmd.Flags().StringVar(&programs, "programs", "", "Comma-separated program names")
	cmd.Flags().StringVar(&system, "system", defaultSystem(), "System (TOM|EOM|C3)")
	cmd.Flags().StringVar(&jira, "jira", "TBD", "Jira number")

	return cmd
}

func newFeatureListCmd(app *App) *cobra.Command {
	var system, status, priority, query string
	var byPriority bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List features",
		RunE: func(cmd *cobra.Command, args []string) error {
			features, err := app.Features.List(context.Background(), domain.System(system))
			if err != nil {
				return humanize(err)
			}

			features = planning.FilterFeatures(features, planning.FeatureFilter{
				Status:   domain.Status(status),
				Priority: domain.Priority(priority),
				Query:    query,
			})
			if byPriority {
				features = planning.SortByPriority(features)
			}

			if len(features) == 0 {
				fmt.Println("No features found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatFeatureList(features))
			return nil
		},
	}

	cmd.Flags().StringVar(&system, "system", defaultSystem(), "Filter by system (empty = all)")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&priority, "priority", "", "Filter by priority")
	cmd.Flags().StringVar(&query, "query", "", "Free-text filter")
	cmd.Flags().BoolVar(&byPriority, "by-priority", false, "Sort most urgent first")

	return cmd
}

func newFeatureInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect NAME|ID",
		Short: "Show feature details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			f, err := resolveFeature(ctx, app, args[0])
			if err != nil {
				return humanize(err)
			}
			sprints, err := app.Sprints.List(ctx, domain.SystemGlobal)
			if err != nil {
				return humanize(err)
			}
			fmt.Printf("%s\n", formatter.FormatFeatureInspect(f, sprints))
			return nil
		},
	}
}

func newFeatureUpdateCmd(app *App) *cobra.Command {
	var name, desc, priority, status, owner, programs, system, jira, start, end string
	var cost float64
	var points int

	cmd := &cobra.Command{
		Use:   "update NAME|ID",
		Short: "Update a feature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			f, err := resolveFeature(ctx, app, args[0])
			if err != nil {
				return humanize(err)
			}

			if cmd.Flags().Changed("name") {
				f.Name = name
			}
			if cmd.Flags().Changed("desc") {
				f.Description = desc
			}
			if cmd.Flags().Changed("priority") {
				f.Priority = domain.Priority(priority)
			}
			if cmd.Flags().Changed("status") {
				f.Status = domain.Status(status)
			}
			if cmd.Flags().Changed("cost") {
				f.EstimatedCost = cost
			}
			if cmd.Flags().Changed("points") {
				f.Points = points
			}
			if cmd.Flags().Changed("owner") {
				f.Owner = owner
			}
			if cmd.Flags().Changed("programs") {
				f.Programs = splitPrograms(programs)
			}
			if cmd.Flags().Changed("system") {
				f.System = domain.System(system)
			}
			if cmd.Flags().Changed("jira") {
				f.JiraNumber = jira
			}
			// Dates are authorable only while nothing is allocated; with
			// allocations they derive from the sprints.
			if cmd.Flags().Changed("start") && len(f.Allocations) == 0 {
				f.StartDate = start
			}
			if cmd.Flags().Changed("end") && len(f.Allocations) == 0 {
				f.EndDate = end
			}

			if err := app.Features.Update(ctx, f); err != nil {
				return humanize(err)
			}
			fmt.Printf("Updated feature %s\n", f.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Feature name")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority")
	cmd.Flags().StringVar(&status, "status", "", "Status")
	cmd.Flags().Float64Var(&cost, "cost", 0, "Estimated cost in dollars")
	cmd.Flags().IntVar(&points, "points", 0, "Story points")
	cmd.Flags().StringVar(&owner, "owner", "", "Owner")
	cmd.Flags().StringVar(&programs, "programs", "", "Comma-separated program names")
	cmd.Flags().StringVar(&system, "system", "", "System")
	cmd.Flags().StringVar(&jira, "jira", "", "Jira number")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")

	return cmd
}

func newFeatureRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME|ID",
		Short: "Remove a feature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			f, err := resolveFeature(ctx, app, args[0])
			if err != nil {
				return humanize(err)
			}
			if err := app.Features.Delete(ctx, f.ID); err != nil {
				return humanize(err)
			}
			fmt.Printf("Removed feature %s\n", f.Name)
			return nil
		},
	}
}

func newFeatureAllocateCmd(app *App) *cobra.Command {
	var points int

	cmd := &cobra.Command{
		Use:   "allocate FEATURE SPRINT",
		Short: "Allocate a feature to a sprint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			f, err := resolveFeature(ctx, app, args[0])
			if err != nil {
				return humanize(err)
			}
			s, err := resolveSprint(ctx, app, args[1])
			if err != nil {
				return humanize(err)
			}

			updated, err := app.Features.Allocate(ctx, f.ID, s.ID, points)
			if err != nil {
				return humanize(err)
			}
			fmt.Printf("Allocated %s to %s (%d pts remaining)\n", updated.Name, s.Name, updated.RemainingPoints())
			return nil
		},
	}

	cmd.Flags().IntVar(&points, "points", -1, "Points to allocate (default: all remaining)")

	return cmd
}

func newFeatureDeallocateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deallocate FEATURE SPRINT",
		Short: "Remove a feature's sprint allocation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			f, err := resolveFeature(ctx, app, args[0])
			if err != nil {
				return humanize(err)
			}
			s, err := resolveSprint(ctx, app, args[1])
			if err != nil {
				return humanize(err)
			}

			updated, err := app.Features.Deallocate(ctx, f.ID, s.ID)
			if err != nil {
				return humanize(err)
			}
			fmt.Printf("Deallocated %s from %s\n", updated.Name, s.Name)
			return nil
		},
	}
}

func newFeaturePointsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "points FEATURE SPRINT POINTS",
		Short: "Set the points a feature commits to a sprint",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			f, err := resolveFeature(ctx, app, args[0])
			if err != nil {
				return humanize(err)
			}
			s, err := resolveSprint(ctx, app, args[1])
			if err != nil {
				return humanize(err)
			}
			points, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid points %q", args[2])
			}

			updated, err := app.Features.SetAllocationPoints(ctx, f.ID, s.ID, points)
			if err != nil {
				return humanize(err)
			}
			fmt.Printf("Set %s to %d pts in %s (%d remaining)\n", updated.Name, points, s.Name, updated.RemainingPoints())
			return nil
		},
	}
}

func newFeatureReorderCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder FEATURE FROM TO",
		Short: "Move a sprint allocation within a feature's list",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			f, err := resolveFeature(ctx, app, args[0])
			if err != nil {
				return humanize(err)
			}
			from, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[1])
			}
			to, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[2])
			}

			f.Allocations = planning.Reorder(f.Allocations, from, to)
			if err := app.Features.Update(ctx, f); err != nil {
				return humanize(err)
			}

			order := make([]string, len(f.Allocations))
			for i, a := range f.Allocations {
				order[i] = a.SprintID
			}
			fmt.Printf("Reordered allocations for %s: %s\n", f.Name, strings.Join(order, ", "))
			return nil
		},
	}
}
