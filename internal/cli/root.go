package cli

import (
	"github.com/alexanderramin/rota/internal/config"
	"github.com/alexanderramin/rota/internal/scheduler"
	"github.com/alexanderramin/rota/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Employees service.EmployeeService
	Roster    service.RosterService
	Schedule  service.ScheduleService
	Config    config.Config

	// IsInteractive reports whether stdin is a terminal. Interactive forms
	// are refused when it is nil or returns false.
	IsInteractive func() bool
	// RunForm runs a huh form; nil means form.Run.
	RunForm func(*huh.Form) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// dayOrder is the configured fill order, or the default when unset.
func (a *App) dayOrder() scheduler.DayOrder {
	if a.Config.DayOrder == (scheduler.DayOrder{}) {
		return scheduler.DefaultDayOrder
	}
	return a.Config.DayOrder
}

func (a *App) runForm(f *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return f.Run()
}

// NewRootCmd creates the top-level "rota" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "rota",
		Short: "Weekly shift scheduler with fair hour distribution",
		Long: "rota keeps an employee roster with weekly availability and turns a demand\n" +
			"file into a week of hourly shifts, spreading hours as evenly as possible.\n" +
			"A week is only published when every open hour is fully staffed.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newEmployeeCmd(app),
		newRosterCmd(app),
		newScheduleCmd(app),
	)

	return root
}
