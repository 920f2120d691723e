package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrFloat(f float64) *float64 { return &f }

func validMinimalRoster() *RosterSchema {
	return &RosterSchema{
		Employees: []EmployeeImport{
			{EmployeeNumber: 1, FirstName: "Ada", LastName: "Lovelace", Role: "worker", PayRate: ptrFloat(15)},
		},
	}
}

func TestValidateRosterSchema_ValidMinimal(t *testing.T) {
	errs := ValidateRosterSchema(validMinimalRoster())
	assert.Empty(t, errs)
}

func TestValidateRosterSchema_ValidFull(t *testing.T) {
	schema := &RosterSchema{
		Defaults: &RosterDefaults{Role: "worker", PayRate: ptrFloat(14.5)},
		Employees: []EmployeeImport{
			{EmployeeNumber: 10, FirstName: "Grace", LastName: "Hopper", Address: "1 Navy Way", Role: "manager", PayRate: ptrFloat(52000),
				Availability: map[string]string{"M": "8-16", "T": "8-16", "U": "10"}},
			{EmployeeNumber: 11, FirstName: "Alan", LastName: "Turing",
				Availability: map[string]string{"R": "not-a-token"}},
		},
	}
	assert.Empty(t, ValidateRosterSchema(schema), "bad tokens are warnings, not validation errors")
}

func TestValidateRosterSchema_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *RosterSchema)
		want   string
	}{
		{"zero number", func(s *RosterSchema) { s.Employees[0].EmployeeNumber = 0 }, "employee_number must be positive"},
		{"missing first name", func(s *RosterSchema) { s.Employees[0].FirstName = "" }, "first_name is required"},
		{"missing last name", func(s *RosterSchema) { s.Employees[0].LastName = "" }, "last_name is required"},
		{"bad role", func(s *RosterSchema) { s.Employees[0].Role = "intern" }, "invalid value \"intern\""},
		{"missing role without default", func(s *RosterSchema) { s.Employees[0].Role = "" }, "role is required"},
		{"negative rate", func(s *RosterSchema) { s.Employees[0].PayRate = ptrFloat(-1) }, "pay_rate must not be negative"},
		{"unknown day", func(s *RosterSchema) { s.Employees[0].Availability = map[string]string{"Q": "8-9"} }, "unknown day \"Q\""},
		{"lowercase day", func(s *RosterSchema) { s.Employees[0].Availability = map[string]string{"m": "8-9"} }, "unknown day \"m\""},
		{"bad default role", func(s *RosterSchema) { s.Defaults = &RosterDefaults{Role: "boss"} }, "defaults.role"},
		{"negative default rate", func(s *RosterSchema) { s.Defaults = &RosterDefaults{PayRate: ptrFloat(-2)} }, "defaults.pay_rate"},
		{"duplicate number", func(s *RosterSchema) {
			s.Employees = append(s.Employees, EmployeeImport{EmployeeNumber: 1, FirstName: "B", LastName: "C", Role: "worker"})
		}, "duplicate number 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validMinimalRoster()
			tt.mutate(s)
			errs := ValidateRosterSchema(s)
			assert.NotEmpty(t, errs)
			found := false
			for _, e := range errs {
				if strings.Contains(e.Error(), tt.want) {
					found = true
				}
			}
			assert.True(t, found, "expected error containing %q, got %v", tt.want, errs)
		})
	}
}

func TestValidateRosterSchema_RoleFromDefaults(t *testing.T) {
	s := validMinimalRoster()
	s.Employees[0].Role = ""
	s.Defaults = &RosterDefaults{Role: "manager"}
	assert.Empty(t, ValidateRosterSchema(s))
}

func TestValidateRosterSchema_CollectsAllErrors(t *testing.T) {
	s := &RosterSchema{
		Employees: []EmployeeImport{
			{EmployeeNumber: -1, Role: "worker"},
			{EmployeeNumber: 2, FirstName: "X", LastName: "Y", Role: "chef"},
		},
	}
	errs := ValidateRosterSchema(s)
	assert.Len(t, errs, 4)
}
