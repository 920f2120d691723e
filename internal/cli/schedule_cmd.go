package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/rota/internal/cli/formatter"
	"github.com/alexanderramin/rota/internal/contract"
	"github.com/alexanderramin/rota/internal/domain"
	"github.com/alexanderramin/rota/internal/repository"
	"github.com/alexanderramin/rota/internal/scheduler"
	"github.com/alexanderramin/rota/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var _ pflag.Value = (*scheduler.DayOrder)(nil)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"sched"},
		Short:   "Generate weekly schedules and browse past runs",
	}

	cmd.AddCommand(
		newScheduleRunCmd(app),
		newScheduleHistoryCmd(app),
		newScheduleShowCmd(app),
	)

	return cmd
}

func newScheduleRunCmd(app *App) *cobra.Command {
	var demand, report string
	var dryRun, utilization bool
	order := app.dayOrder()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Schedule one week from a demand file",
		Long: "Schedules one week against the stored roster. The week is accepted only\n" +
			"when every open hour is fully staffed; otherwise the under-staffed hours\n" +
			"are listed and the command fails.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			req := contract.NewScheduleRequest(demand)
			req.Order = order
			req.ReportPath = app.Config.ReportPath(report)
			req.DryRun = dryRun

			resp, err := app.Schedule.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			run := resp.Run

			if !run.Accepted() {
				fmt.Fprintln(out, formatter.FormatShortfalls(run.Shortfalls))
				return fmt.Errorf("%w: %d under-staffed %s", service.ErrScheduleRejected,
					len(run.Shortfalls), formatter.Plural(len(run.Shortfalls), "hour", "hours"))
			}

			fmt.Fprintln(out, formatter.FormatRunSummary(run))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.FormatWeekGrid(run.Assignment, formatter.NewNameLookup(resp.Roster)))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatPayroll(resp.Payroll))
			if utilization {
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.FormatUtilization(resp.Roster, run.Hours))
			}
			if resp.ReportPath != "" {
				fmt.Fprintf(out, "\nReport written to %s\n", resp.ReportPath)
			}
			if dryRun {
				fmt.Fprintln(out, formatter.Dim("Dry run: nothing was saved."))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&demand, "demand", "d", "", "Demand file describing staff needed per hour")
	cmd.Flags().Var(&order, "order", "Day fill order: reverse, calendar, or 7 day letters (e.g. USFRWTM)")
	cmd.Flags().StringVarP(&report, "report", "r", "", "Write an xlsx workbook for an accepted week")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Schedule without saving the run")
	cmd.Flags().BoolVar(&utilization, "utilization", false, "Show hours used against hours offered")
	_ = cmd.MarkFlagRequired("demand")

	return cmd
}

func newScheduleHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past schedule runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := app.Schedule.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No schedule runs yet.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRunList(runs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to list (0 for all)")

	return cmd
}

func newScheduleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show RUN_ID",
		Short: "Show a past run (a unique ID prefix is enough)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			run, err := resolveRun(ctx, app, args[0])
			if err != nil {
				return err
			}
			printRun(ctx, cmd.OutOrStdout(), app, run)
			return nil
		},
	}
}

// resolveRun finds a run by exact ID, then by unique ID prefix.
func resolveRun(ctx context.Context, app *App, input string) (*domain.ScheduleRun, error) {
	run, err := app.Schedule.GetRun(ctx, input)
	if err == nil {
		return run, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	runs, err := app.Schedule.ListRuns(ctx, 0)
	if err != nil {
		return nil, err
	}
	var matches []string
	for _, r := range runs {
		if strings.HasPrefix(r.ID, input) {
			matches = append(matches, r.ID)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("schedule run not found: %q", input)
	case 1:
		return app.Schedule.GetRun(ctx, matches[0])
	default:
		return nil, fmt.Errorf("run ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func printRun(ctx context.Context, out io.Writer, app *App, run *domain.ScheduleRun) {
	fmt.Fprintln(out, formatter.FormatRunSummary(run))
	fmt.Fprintln(out)
	if !run.Accepted() {
		fmt.Fprintln(out, formatter.FormatShortfalls(run.Shortfalls))
		return
	}

	// Names come from the current roster; departed employees show as #N.
	names := formatter.NameLookup{}
	if employees, err := app.Employees.List(ctx); err == nil {
		for _, e := range employees {
			names[e.ID] = e.DisplayName()
		}
	}
	fmt.Fprintln(out, formatter.FormatWeekGrid(run.Assignment, names))
}
