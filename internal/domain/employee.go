package domain

import (
	"fmt"
	"strings"
	"time"
)

type Employee struct {
	ID           int
	FirstName    string
	LastName     string
	Address      string
	Compensation Compensation
	Availability Availability
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName renders "Last, First", the form used in reports.
func (e *Employee) DisplayName() string {
	return e.LastName + ", " + e.FirstName
}

// Validate checks the fields required before an employee can be stored.
func (e *Employee) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("employee number must be positive (got %d)", e.ID)
	}
	if strings.TrimSpace(e.FirstName) == "" {
		return fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(e.LastName) == "" {
		return fmt.Errorf("last name is required")
	}
	if err := e.Compensation.Validate(); err != nil {
		return err
	}
	return nil
}
