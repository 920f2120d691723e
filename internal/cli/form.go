package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/rota/internal/cli/formatter"
	"github.com/alexanderramin/rota/internal/domain"
	"github.com/alexanderramin/rota/internal/importer"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// rotaHuhTheme returns a custom huh theme using the formatter palette.
func rotaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// employeeFormValues is the string-typed backing store of the employee
// form. Availability holds one token line per day.
type employeeFormValues struct {
	ID           string
	FirstName    string
	LastName     string
	Address      string
	Role         string
	Rate         string
	Availability [domain.DaysPerWeek]string
}

// newEmployeeFormValues pre-fills the form from e, or with defaults when e
// is nil.
func newEmployeeFormValues(e *domain.Employee) *employeeFormValues {
	v := &employeeFormValues{Role: string(domain.RoleWorker)}
	if e == nil {
		return v
	}
	v.ID = strconv.Itoa(e.ID)
	v.FirstName = e.FirstName
	v.LastName = e.LastName
	v.Address = e.Address
	v.Role = string(e.Compensation.Role)
	v.Rate = strconv.FormatFloat(e.Compensation.Rate, 'f', -1, 64)
	for _, d := range domain.AllDays {
		v.Availability[d] = importer.FormatAvailabilityRow(e.Availability[d])
	}
	return v
}

// toEmployee builds the employee described by the form. When base is
// non-nil its number and timestamps are kept.
func (v *employeeFormValues) toEmployee(base *domain.Employee) (*domain.Employee, []importer.TokenWarning, error) {
	e := &domain.Employee{}
	if base != nil {
		*e = *base
	} else {
		id, err := strconv.Atoi(strings.TrimSpace(v.ID))
		if err != nil {
			return nil, nil, fmt.Errorf("invalid employee number %q", v.ID)
		}
		e.ID = id
	}
	e.FirstName = strings.TrimSpace(v.FirstName)
	e.LastName = strings.TrimSpace(v.LastName)
	e.Address = strings.TrimSpace(v.Address)
	e.Compensation.Role = domain.Role(v.Role)

	e.Compensation.Rate = 0
	if s := strings.TrimSpace(v.Rate); s != "" {
		rate, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pay rate %q", v.Rate)
		}
		e.Compensation.Rate = rate
	}

	lines := make(map[domain.Day]string, domain.DaysPerWeek)
	for _, d := range domain.AllDays {
		lines[d] = v.Availability[d]
	}
	avail, warnings := importer.ParseWeeklyAvailability(lines)
	e.Availability = avail
	return e, warnings, nil
}

// employeeForm builds the add/edit form. The employee number is only
// editable when creating.
func employeeForm(v *employeeFormValues, withID bool) *huh.Form {
	details := []huh.Field{}
	if withID {
		details = append(details, huh.NewInput().
			Title("Employee Number").
			Placeholder("1").
			Value(&v.ID).
			Validate(validatePositiveInt))
	}
	details = append(details,
		huh.NewInput().Title("First Name").Value(&v.FirstName).Validate(validateRequired),
		huh.NewInput().Title("Last Name").Value(&v.LastName).Validate(validateRequired),
		huh.NewInput().Title("Address").Value(&v.Address),
		huh.NewSelect[string]().
			Title("Role").
			Options(
				huh.NewOption("Worker (paid per hour)", string(domain.RoleWorker)),
				huh.NewOption("Manager (paid per year)", string(domain.RoleManager)),
			).
			Value(&v.Role),
		huh.NewInput().Title("Pay Rate").Placeholder("15.00").Value(&v.Rate).Validate(validateNonNegativeFloat),
	)

	days := make([]huh.Field, 0, domain.DaysPerWeek)
	for _, d := range domain.AllDays {
		days = append(days, huh.NewInput().
			Title(d.String()).
			Placeholder("e.g. 8-16 or 9 13-17, blank if unavailable").
			Value(&v.Availability[d]))
	}

	return huh.NewForm(
		huh.NewGroup(details...),
		huh.NewGroup(days...).Description("Hours are H or H-H2, end exclusive."),
	).WithTheme(rotaHuhTheme()).WithShowHelp(false)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// validatePositiveInt rejects empty input too; the number is mandatory.
func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateNonNegativeFloat accepts empty or a non-negative number.
func validateNonNegativeFloat(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}
