package domain

import "fmt"

const (
	// StandardShiftHours converts scheduled hours into days worked for
	// salaried staff.
	StandardShiftHours = 8
	monthsPerYear      = 12
	daysPerMonth       = 30
)

// Compensation pairs a role with its rate. Workers are paid Rate per hour;
// managers earn Rate per year, paid out per day worked.
type Compensation struct {
	Role Role
	Rate float64
}

// Pay returns the amount owed for the given number of scheduled hours.
func (c Compensation) Pay(hours int) float64 {
	if hours <= 0 {
		return 0
	}
	switch c.Role {
	case RoleManager:
		days := float64(hours) / StandardShiftHours
		return c.Rate / monthsPerYear / daysPerMonth * days
	default:
		return c.Rate * float64(hours)
	}
}

// RateUnit is the display suffix for Rate.
func (c Compensation) RateUnit() string {
	if c.Role == RoleManager {
		return "/year"
	}
	return "/hour"
}

func (c Compensation) Validate() error {
	if !ValidRoles[string(c.Role)] {
		return fmt.Errorf("invalid role %q (expected worker or manager)", c.Role)
	}
	if c.Rate < 0 {
		return fmt.Errorf("pay rate must not be negative")
	}
	return nil
}
