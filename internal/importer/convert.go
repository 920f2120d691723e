package importer

import (
	"slices"
	"time"

	"github.com/alexanderramin/rota/internal/domain"
)

// RosterWarning is a dropped availability token tied to its employee.
type RosterWarning struct {
	EmployeeID int
	TokenWarning
}

// ConvertRoster transforms a validated RosterSchema into employees ready for
// persistence. Call ValidateRosterSchema first; ConvertRoster assumes the
// schema is valid. Employees come back sorted by number.
func ConvertRoster(schema *RosterSchema) ([]domain.Employee, []RosterWarning) {
	now := time.Now().UTC()

	employees := make([]domain.Employee, 0, len(schema.Employees))
	var warnings []RosterWarning

	for _, e := range schema.Employees {
		// Field > roster defaults > worker at no pay.
		role := domain.Coalesce(e.Role, defaultRole(schema.Defaults), string(domain.RoleWorker))
		rate := domain.ValueOr(0, e.PayRate, defaultPayRate(schema.Defaults))

		lines := make(map[domain.Day]string, len(e.Availability))
		for k, v := range e.Availability {
			if d, ok := dayFromKey(k); ok {
				lines[d] = v
			}
		}
		avail, warns := ParseWeeklyAvailability(lines)
		for _, w := range warns {
			warnings = append(warnings, RosterWarning{EmployeeID: e.EmployeeNumber, TokenWarning: w})
		}

		employees = append(employees, domain.Employee{
			ID:        e.EmployeeNumber,
			FirstName: e.FirstName,
			LastName:  e.LastName,
			Address:   e.Address,
			Compensation: domain.Compensation{
				Role: domain.Role(role),
				Rate: rate,
			},
			Availability: avail,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	slices.SortFunc(employees, func(a, b domain.Employee) int { return a.ID - b.ID })
	return employees, warnings
}

// ExportRoster renders employees into a roster schema that ConvertRoster
// turns back into the same employees.
func ExportRoster(employees []domain.Employee) *RosterSchema {
	schema := &RosterSchema{Employees: make([]EmployeeImport, 0, len(employees))}
	for _, e := range employees {
		rate := e.Compensation.Rate
		imp := EmployeeImport{
			EmployeeNumber: e.ID,
			FirstName:      e.FirstName,
			LastName:       e.LastName,
			Address:        e.Address,
			Role:           string(e.Compensation.Role),
			PayRate:        &rate,
		}
		if rows := FormatWeeklyAvailability(e.Availability); len(rows) > 0 {
			imp.Availability = make(map[string]string, len(rows))
			for d, line := range rows {
				imp.Availability[string(d.Letter())] = line
			}
		}
		schema.Employees = append(schema.Employees, imp)
	}
	return schema
}
