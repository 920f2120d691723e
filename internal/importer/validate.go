package importer

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/rota/internal/domain"
)

// ValidateRosterSchema checks the roster for errors before conversion.
// Returns a slice of all validation errors found. Availability tokens are
// not checked here; bad tokens are warnings, reported by ConvertRoster.
func ValidateRosterSchema(schema *RosterSchema) []error {
	var errs []error

	errs = append(errs, validateDefaults(schema.Defaults)...)

	seen := make(map[int]bool)
	for i, e := range schema.Employees {
		errs = append(errs, validateEmployee(fmt.Sprintf("employees[%d]", i), e, schema.Defaults, seen)...)
	}

	return errs
}

func validateDefaults(d *RosterDefaults) []error {
	if d == nil {
		return nil
	}
	var errs []error

	if d.Role != "" && !domain.ValidRoles[d.Role] {
		errs = append(errs, fmt.Errorf("defaults.role: invalid value %q", d.Role))
	}
	if d.PayRate != nil && *d.PayRate < 0 {
		errs = append(errs, fmt.Errorf("defaults.pay_rate must not be negative"))
	}

	return errs
}

func validateEmployee(prefix string, e EmployeeImport, defaults *RosterDefaults, seen map[int]bool) []error {
	var errs []error

	if e.EmployeeNumber <= 0 {
		errs = append(errs, fmt.Errorf("%s.employee_number must be positive", prefix))
	} else if seen[e.EmployeeNumber] {
		errs = append(errs, fmt.Errorf("%s.employee_number: duplicate number %d", prefix, e.EmployeeNumber))
	} else {
		seen[e.EmployeeNumber] = true
	}

	if e.FirstName == "" {
		errs = append(errs, fmt.Errorf("%s.first_name is required", prefix))
	}
	if e.LastName == "" {
		errs = append(errs, fmt.Errorf("%s.last_name is required", prefix))
	}

	role := domain.Coalesce(e.Role, defaultRole(defaults))
	if e.Role != "" && !domain.ValidRoles[e.Role] {
		errs = append(errs, fmt.Errorf("%s.role: invalid value %q", prefix, e.Role))
	} else if role == "" {
		errs = append(errs, fmt.Errorf("%s.role is required (no default set)", prefix))
	}

	if e.PayRate != nil && *e.PayRate < 0 {
		errs = append(errs, fmt.Errorf("%s.pay_rate must not be negative", prefix))
	}

	// Sorted so the error order is stable.
	letters := make([]string, 0, len(e.Availability))
	for k := range e.Availability {
		letters = append(letters, k)
	}
	slices.Sort(letters)
	for _, k := range letters {
		if _, ok := dayFromKey(k); !ok {
			errs = append(errs, fmt.Errorf("%s.availability: unknown day %q (expected one of M T W R F S U)", prefix, k))
		}
	}

	return errs
}

func dayFromKey(k string) (domain.Day, bool) {
	r := []rune(k)
	if len(r) != 1 {
		return 0, false
	}
	return domain.DayFromLetter(r[0])
}

func defaultRole(d *RosterDefaults) string {
	if d != nil {
		return d.Role
	}
	return ""
}

func defaultPayRate(d *RosterDefaults) *float64 {
	if d != nil {
		return d.PayRate
	}
	return nil
}
