package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// RosterSchema is the top-level JSON structure for a roster file.
type RosterSchema struct {
	Defaults  *RosterDefaults  `json:"defaults,omitempty"`
	Employees []EmployeeImport `json:"employees"`
}

// RosterDefaults cascade to employees that omit the field.
type RosterDefaults struct {
	Role    string   `json:"role,omitempty"`
	PayRate *float64 `json:"pay_rate,omitempty"`
}

// EmployeeImport defines one employee in the roster file. Availability maps
// a day letter (M T W R F S U) to a token line such as "8-12 14-18".
type EmployeeImport struct {
	EmployeeNumber int               `json:"employee_number"`
	FirstName      string            `json:"first_name"`
	LastName       string            `json:"last_name"`
	Address        string            `json:"address,omitempty"`
	Role           string            `json:"role,omitempty"`
	PayRate        *float64          `json:"pay_rate,omitempty"`
	Availability   map[string]string `json:"availability,omitempty"`
}

// LoadRosterSchema reads and parses a roster JSON file.
func LoadRosterSchema(path string) (*RosterSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema RosterSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing roster file: %w", err)
	}
	return &schema, nil
}

// WriteRosterSchema writes schema as indented JSON.
func WriteRosterSchema(path string, schema *RosterSchema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding roster: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing roster file: %w", err)
	}
	return nil
}
