package cli

import (
	"fmt"

	"github.com/alexanderramin/rota/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRosterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Import or export the roster as a JSON file",
	}

	cmd.AddCommand(
		newRosterImportCmd(app),
		newRosterExportCmd(app),
	)

	return cmd
}

func newRosterImportCmd(app *App) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import employees from a roster file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Roster.ImportRoster(cmd.Context(), args[0], replace)
			if err != nil {
				return err
			}

			if s := formatter.FormatTokenWarnings(result.Warnings); s != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), s)
			}
			msg := fmt.Sprintf("Imported %d %s from %s", result.Imported,
				formatter.Plural(result.Imported, "employee", "employees"), args[0])
			if replace {
				msg += fmt.Sprintf(" (replaced %d)", result.Replaced)
			}
			if n := len(result.Warnings); n > 0 {
				msg += fmt.Sprintf(", %d availability %s ignored", n, formatter.Plural(n, "token", "tokens"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Clear the current roster before importing")

	return cmd
}

func newRosterExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write the roster to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Roster.ExportRoster(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d %s to %s\n", n, formatter.Plural(n, "employee", "employees"), args[0])
			return nil
		},
	}
}
