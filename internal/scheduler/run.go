package scheduler

import "github.com/alexanderramin/rota/internal/domain"

// Result is the outcome of a weekly run. An accepted week carries the
// assignment and hour totals; a rejected week carries only its shortfalls.
type Result struct {
	Accepted   bool                   `json:"accepted"`
	Order      DayOrder               `json:"order"`
	Assignment *domain.WeekAssignment `json:"assignment,omitempty"`
	Hours      map[int]int            `json:"hours,omitempty"`
	Shortfalls []Shortfall            `json:"shortfalls,omitempty"`
}

// Run schedules the week and applies the acceptance gate: any shortfall
// anywhere rejects the whole week and nothing is published.
func Run(demand domain.WeeklyDemand, roster []domain.Employee, order DayOrder) Result {
	plan := ScheduleWeek(demand, roster, order)

	shortfalls := Validate(demand, &plan.Assignment)
	if len(shortfalls) > 0 {
		return Result{Order: order, Shortfalls: shortfalls}
	}
	return Result{
		Accepted:   true,
		Order:      order,
		Assignment: &plan.Assignment,
		Hours:      plan.Hours,
	}
}

// MissingTotal sums the missing staff-hours of a rejected run.
func (r Result) MissingTotal() int {
	total := 0
	for _, s := range r.Shortfalls {
		total += s.Missing
	}
	return total
}
