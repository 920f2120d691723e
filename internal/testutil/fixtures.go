package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/rota/internal/domain"
)

// Employee options
type EmployeeOption func(*domain.Employee)

func WithName(first, last string) EmployeeOption {
	return func(e *domain.Employee) {
		e.FirstName = first
		e.LastName = last
	}
}

func WithAddress(addr string) EmployeeOption {
	return func(e *domain.Employee) {
		e.Address = addr
	}
}

func AsManager(yearly float64) EmployeeOption {
	return func(e *domain.Employee) {
		e.Compensation = domain.Compensation{Role: domain.RoleManager, Rate: yearly}
	}
}

func WithHourlyRate(rate float64) EmployeeOption {
	return func(e *domain.Employee) {
		e.Compensation = domain.Compensation{Role: domain.RoleWorker, Rate: rate}
	}
}

// WithHours marks [from, to) available on each of days.
func WithHours(from, to int, days ...domain.Day) EmployeeOption {
	return func(e *domain.Employee) {
		for _, d := range days {
			for h := from; h < to; h++ {
				e.Availability.Set(d, h)
			}
		}
	}
}

// WithAllWeek marks [from, to) available every day.
func WithAllWeek(from, to int) EmployeeOption {
	return WithHours(from, to, domain.AllDays[:]...)
}

// NewTestEmployee returns a valid worker named after id with no availability.
func NewTestEmployee(id int, opts ...EmployeeOption) *domain.Employee {
	now := time.Now().UTC().Truncate(time.Second)
	e := &domain.Employee{
		ID:           id,
		FirstName:    fmt.Sprintf("First%d", id),
		LastName:     fmt.Sprintf("Last%d", id),
		Compensation: domain.Compensation{Role: domain.RoleWorker, Rate: 15},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DemandOption shapes a test week.
type DemandOption func(*domain.WeeklyDemand)

// WithDemand requires n staff for [from, to) on day.
func WithDemand(day domain.Day, from, to, n int) DemandOption {
	return func(w *domain.WeeklyDemand) {
		for h := from; h < to; h++ {
			w[day][h] = n
		}
	}
}

// NewTestDemand returns a closed week with opts applied.
func NewTestDemand(opts ...DemandOption) domain.WeeklyDemand {
	w := domain.NewClosedWeek()
	for _, opt := range opts {
		opt(&w)
	}
	return w
}
