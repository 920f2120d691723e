package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/rota/internal/domain"
	"github.com/alexanderramin/rota/internal/repository"
	"github.com/alexanderramin/rota/internal/service"
	"github.com/alexanderramin/rota/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(db)

	employees := repository.NewSQLiteEmployeeRepo(db)
	runs := repository.NewSQLiteScheduleRunRepo(db)

	return &App{
		Employees: service.NewEmployeeService(employees, uow),
		Roster:    service.NewRosterService(employees, uow),
		Schedule:  service.NewScheduleService(employees, runs, uow),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func seedEmployee(t *testing.T, app *App, e *domain.Employee) {
	t.Helper()
	require.NoError(t, app.Employees.Create(context.Background(), e))
}

// --- root ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	output, err := executeCmd(t, testApp(t))
	require.NoError(t, err)
	assert.Contains(t, output, "rota")
	assert.Contains(t, output, "schedule")
}

// --- employee ---

func TestEmployeeAdd_WithFlags(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "employee", "add", "--id", "4", "--first", "Ada", "--last", "Lovelace",
		"--role", "manager", "--rate", "52000", "--avail", "M=8-16", "--avail", "t=9 13-15")
	require.NoError(t, err)
	assert.Contains(t, out, "Added employee Lovelace, Ada [4]")

	e, err := app.Employees.GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleManager, e.Compensation.Role)
	assert.Equal(t, 52000.0, e.Compensation.Rate)
	assert.Equal(t, 8, e.Availability.HoursOn(domain.Monday))
	assert.True(t, e.Availability.IsAvailable(domain.Tuesday, 9))
	assert.False(t, e.Availability.IsAvailable(domain.Tuesday, 10))
	assert.True(t, e.Availability.IsAvailable(domain.Tuesday, 14))
}

func TestEmployeeAdd_BadTokenWarnsButSaves(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "employee", "add", "--id", "1", "--first", "A", "--last", "B", "--avail", "W=8-10 nine")
	require.NoError(t, err)
	assert.Contains(t, out, `"nine"`)

	e, err := app.Employees.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, e.Availability.HoursOn(domain.Wednesday))
}

func TestEmployeeAdd_Errors(t *testing.T) {
	app := testApp(t)
	seedEmployee(t, app, testutil.NewTestEmployee(1))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing names", []string{"--id", "2"}, "required"},
		{"bad avail format", []string{"--id", "2", "--first", "A", "--last", "B", "--avail", "8-16"}, "expected DAY=HOURS"},
		{"unknown day", []string{"--id", "2", "--first", "A", "--last", "B", "--avail", "X=8-16"}, "unknown day"},
		{"bad role", []string{"--id", "2", "--first", "A", "--last", "B", "--role", "chef"}, "invalid role"},
		{"duplicate", []string{"--id", "1", "--first", "A", "--last", "B"}, "already exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, app, append([]string{"employee", "add"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEmployeeAdd_InteractiveNeedsTerminal(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }

	_, err := executeCmd(t, app, "employee", "add", "--interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestEmployeeListAndInspect(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "employee", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No employees found.")

	seedEmployee(t, app, testutil.NewTestEmployee(2, testutil.WithName("Grace", "Hopper"), testutil.WithHours(9, 17, domain.Friday)))
	seedEmployee(t, app, testutil.NewTestEmployee(1, testutil.WithName("Ada", "Lovelace")))

	out, err = executeCmd(t, app, "employee", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Lovelace, Ada")
	assert.Contains(t, out, "Hopper, Grace")
	assert.Less(t, bytes.Index([]byte(out), []byte("Lovelace")), bytes.Index([]byte(out), []byte("Hopper")), "ordered by number")

	out, err = executeCmd(t, app, "employee", "inspect", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Hopper, Grace")
	assert.Contains(t, out, "9-17")

	_, err = executeCmd(t, app, "employee", "inspect", "99")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = executeCmd(t, app, "employee", "inspect", "abc")
	assert.Error(t, err)
}

func TestEmployeeUpdate_ReplacesOnlyNamedDays(t *testing.T) {
	app := testApp(t)
	seedEmployee(t, app, testutil.NewTestEmployee(1,
		testutil.WithHours(8, 16, domain.Monday, domain.Tuesday)))

	_, err := executeCmd(t, app, "employee", "update", "1", "--avail", "M=12-14", "--rate", "18.5")
	require.NoError(t, err)

	e, err := app.Employees.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, e.Availability.HoursOn(domain.Monday))
	assert.Equal(t, 8, e.Availability.HoursOn(domain.Tuesday))
	assert.Equal(t, 18.5, e.Compensation.Rate)
	assert.Equal(t, "First1", e.FirstName, "unchanged flags keep their values")
}

func TestEmployeeRemove(t *testing.T) {
	app := testApp(t)
	seedEmployee(t, app, testutil.NewTestEmployee(1))

	out, err := executeCmd(t, app, "employee", "remove", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed employee 1")

	_, err = executeCmd(t, app, "employee", "remove", "1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// --- roster ---

func TestRosterImportExport(t *testing.T) {
	app := testApp(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "roster.json")
	require.NoError(t, os.WriteFile(in, []byte(`{
  "defaults": {"role": "worker", "pay_rate": 15},
  "employees": [
    {"employee_number": 2, "first_name": "Sam", "last_name": "Stocker", "availability": {"T": "12-20 25"}},
    {"employee_number": 1, "first_name": "Mia", "last_name": "Manager", "role": "manager", "pay_rate": 48000,
     "availability": {"M": "8-16"}}
  ]
}`), 0o644))

	out, err := executeCmd(t, app, "roster", "import", in)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 employees")
	assert.Contains(t, out, "1 availability token ignored")
	assert.Contains(t, out, `"25"`)

	out, err = executeCmd(t, app, "roster", "import", in, "--replace")
	require.NoError(t, err)
	assert.Contains(t, out, "(replaced 2)")

	exported := filepath.Join(dir, "out.json")
	out, err = executeCmd(t, app, "roster", "export", exported)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 employees")

	data, err := os.ReadFile(exported)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"12-20"`)
	assert.Contains(t, string(data), `"manager"`)
}

func TestRosterImport_InvalidFile(t *testing.T) {
	app := testApp(t)
	in := testutil.WriteFile(t, "bad.json", `{"employees": [{"employee_number": 0, "first_name": ""}]}`)

	_, err := executeCmd(t, app, "roster", "import", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "roster validation failed")
}

// --- schedule ---

func TestScheduleRun_Accepted(t *testing.T) {
	app := testApp(t)
	seedEmployee(t, app, testutil.NewTestEmployee(1, testutil.WithName("Ada", "Lovelace"), testutil.WithHours(8, 16, domain.Monday)))
	seedEmployee(t, app, testutil.NewTestEmployee(2, testutil.WithName("Grace", "Hopper"), testutil.WithHours(8, 16, domain.Monday)))
	demand := testutil.WriteFile(t, "week.txt", "M\n8:00-16:00 2\n")
	report := filepath.Join(t.TempDir(), "week.xlsx")

	out, err := executeCmd(t, app, "schedule", "run", "--demand", demand, "--report", report, "--utilization")
	require.NoError(t, err)
	assert.Contains(t, out, "Accepted")
	assert.Contains(t, out, "MONDAY")
	assert.Contains(t, out, "Lovelace, Ada; Hopper, Grace")
	assert.Contains(t, out, "PAYROLL")
	assert.Contains(t, out, "$240.00")
	assert.Contains(t, out, "UTILIZATION")
	assert.Contains(t, out, "Report written to "+report)
	assert.FileExists(t, report)

	out, err = executeCmd(t, app, "schedule", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Accepted")
	assert.Contains(t, out, "USFRWTM")
}

func TestScheduleRun_RejectedFailsWithShortfalls(t *testing.T) {
	app := testApp(t)
	seedEmployee(t, app, testutil.NewTestEmployee(1, testutil.WithHours(8, 16, domain.Tuesday)))
	seedEmployee(t, app, testutil.NewTestEmployee(2, testutil.WithHours(8, 16, domain.Tuesday)))
	demand := testutil.WriteFile(t, "busy.txt", "T\n12-13 3\n")

	out, err := executeCmd(t, app, "schedule", "run", "-d", demand, "--order", "calendar")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrScheduleRejected)
	assert.Contains(t, out, "There are not enough employees on Tuesday @ 12:00! Please hire 1 more person.")

	runs, err := app.Schedule.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "MTWRFSU", runs[0].DayOrder)
}

func TestScheduleRun_BadInputs(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "schedule", "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "demand")

	demand := testutil.WriteFile(t, "d.txt", "M\n8-9 1\n")
	_, err = executeCmd(t, app, "schedule", "run", "--demand", demand, "--order", "MTW")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day order")

	bad := testutil.WriteFile(t, "bad.txt", "M\n12-9:00 2\n")
	_, err = executeCmd(t, app, "schedule", "run", "--demand", bad)
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrScheduleRejected)
}

func TestScheduleRun_DryRun(t *testing.T) {
	app := testApp(t)
	seedEmployee(t, app, testutil.NewTestEmployee(1, testutil.WithHours(9, 10, domain.Sunday)))
	demand := testutil.WriteFile(t, "d.txt", "U\n9-10 1\n")

	out, err := executeCmd(t, app, "schedule", "run", "--demand", demand, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run")

	out, err = executeCmd(t, app, "schedule", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No schedule runs yet.")
}

func TestScheduleShow_ByPrefix(t *testing.T) {
	app := testApp(t)
	seedEmployee(t, app, testutil.NewTestEmployee(1, testutil.WithName("Ada", "Lovelace"), testutil.WithHours(9, 10, domain.Sunday)))
	demand := testutil.WriteFile(t, "d.txt", "U\n9-10 1\n")

	_, err := executeCmd(t, app, "schedule", "run", "--demand", demand)
	require.NoError(t, err)
	runs, err := app.Schedule.ListRuns(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	out, err := executeCmd(t, app, "schedule", "show", runs[0].ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, runs[0].ID)
	assert.Contains(t, out, "SUNDAY")
	assert.Contains(t, out, "Lovelace, Ada")

	_, err = executeCmd(t, app, "schedule", "show", "zzzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
