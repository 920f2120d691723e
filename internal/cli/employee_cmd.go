package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/rota/internal/cli/formatter"
	"github.com/alexanderramin/rota/internal/domain"
	"github.com/alexanderramin/rota/internal/importer"
	"github.com/spf13/cobra"
)

func newEmployeeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employee",
		Aliases: []string{"emp"},
		Short:   "Manage the employee roster",
	}

	cmd.AddCommand(
		newEmployeeAddCmd(app),
		newEmployeeListCmd(app),
		newEmployeeInspectCmd(app),
		newEmployeeUpdateCmd(app),
		newEmployeeRemoveCmd(app),
	)

	return cmd
}

// employeeFlags are shared by add and update.
type employeeFlags struct {
	id          int
	first, last string
	address     string
	role        string
	rate        float64
	avail       []string
}

func (f *employeeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.first, "first", "", "First name")
	cmd.Flags().StringVar(&f.last, "last", "", "Last name")
	cmd.Flags().StringVar(&f.address, "address", "", "Home address")
	cmd.Flags().StringVar(&f.role, "role", string(domain.RoleWorker), "Role (worker|manager)")
	cmd.Flags().Float64Var(&f.rate, "rate", 0, "Pay rate (per hour for workers, per year for managers)")
	cmd.Flags().StringArrayVar(&f.avail, "avail", nil, `Availability as DAY=HOURS, repeatable (e.g. --avail M=8-16 --avail "T=9 10-12")`)
}

// apply copies every flag the user set onto e.
func (f *employeeFlags) apply(cmd *cobra.Command, e *domain.Employee) ([]importer.TokenWarning, error) {
	changed := cmd.Flags().Changed
	if changed("first") {
		e.FirstName = f.first
	}
	if changed("last") {
		e.LastName = f.last
	}
	if changed("address") {
		e.Address = f.address
	}
	if changed("role") {
		e.Compensation.Role = domain.Role(f.role)
	}
	if changed("rate") {
		e.Compensation.Rate = f.rate
	}
	if !changed("avail") {
		return nil, nil
	}
	rows, warnings, err := parseAvailFlags(f.avail)
	if err != nil {
		return nil, err
	}
	applyAvailability(&e.Availability, rows)
	return warnings, nil
}

func printTokenWarnings(w io.Writer, employeeID int, warnings []importer.TokenWarning) {
	if len(warnings) == 0 {
		return
	}
	tagged := make([]importer.RosterWarning, len(warnings))
	for i, tw := range warnings {
		tagged[i] = importer.RosterWarning{EmployeeID: employeeID, TokenWarning: tw}
	}
	fmt.Fprintln(w, formatter.FormatTokenWarnings(tagged))
}

func newEmployeeAddCmd(app *App) *cobra.Command {
	var flags employeeFlags
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var (
				e        *domain.Employee
				warnings []importer.TokenWarning
				err      error
			)

			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				values := newEmployeeFormValues(nil)
				if err := app.runForm(employeeForm(values, true)); err != nil {
					return err
				}
				e, warnings, err = values.toEmployee(nil)
				if err != nil {
					return err
				}
			} else {
				if !cmd.Flags().Changed("id") || !cmd.Flags().Changed("first") || !cmd.Flags().Changed("last") {
					return fmt.Errorf("--id, --first and --last are required (or use --interactive)")
				}
				e = &domain.Employee{
					ID:           flags.id,
					Compensation: domain.Compensation{Role: domain.RoleWorker},
				}
				warnings, err = flags.apply(cmd, e)
				if err != nil {
					return err
				}
			}

			if err := app.Employees.Create(cmd.Context(), e); err != nil {
				return err
			}
			printTokenWarnings(cmd.ErrOrStderr(), e.ID, warnings)
			fmt.Fprintf(out, "Added employee %s [%d]\n", e.DisplayName(), e.ID)
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.id, "id", 0, "Employee number (positive, unique)")
	flags.register(cmd)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the employee with a form")

	return cmd
}

func newEmployeeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := app.Employees.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(employees) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No employees found.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatEmployeeList(employees))
			return nil
		},
	}
}

func parseEmployeeID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid employee number %q", arg)
	}
	return id, nil
}

func newEmployeeInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show an employee and their weekly availability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}
			e, err := app.Employees.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatEmployeeInspect(e))
			return nil
		},
	}
}

func newEmployeeUpdateCmd(app *App) *cobra.Command {
	var flags employeeFlags
	var interactive bool

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an employee; --avail replaces only the days it names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}
			e, err := app.Employees.GetByID(ctx, id)
			if err != nil {
				return err
			}

			var warnings []importer.TokenWarning
			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				values := newEmployeeFormValues(e)
				if err := app.runForm(employeeForm(values, false)); err != nil {
					return err
				}
				e, warnings, err = values.toEmployee(e)
			} else {
				warnings, err = flags.apply(cmd, e)
			}
			if err != nil {
				return err
			}

			if err := app.Employees.Update(ctx, e); err != nil {
				return err
			}
			printTokenWarnings(cmd.ErrOrStderr(), e.ID, warnings)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated employee %s [%d]\n", e.DisplayName(), e.ID)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Edit the employee with a form")

	return cmd
}

func newEmployeeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEmployeeID(args[0])
			if err != nil {
				return err
			}
			if err := app.Employees.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed employee %d\n", id)
			return nil
		},
	}
}
