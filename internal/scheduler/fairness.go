package scheduler

import (
	"maps"

	"github.com/alexanderramin/rota/internal/domain"
)

// FairnessTracker counts the hours assigned to each employee so far this
// week. One tracker is shared by every day of a run; days are processed one
// after another, so it needs no locking.
type FairnessTracker struct {
	hours map[int]int
}

// NewFairnessTracker starts every roster employee at zero hours.
func NewFairnessTracker(roster []domain.Employee) *FairnessTracker {
	t := &FairnessTracker{hours: make(map[int]int, len(roster))}
	for _, e := range roster {
		t.hours[e.ID] = 0
	}
	return t
}

// Hours returns the cumulative hours assigned to the employee.
func (t *FairnessTracker) Hours(employeeID int) int {
	return t.hours[employeeID]
}

// Add records one more assigned hour. Counts only ever grow.
func (t *FairnessTracker) Add(employeeID int) {
	t.hours[employeeID]++
}

// Total sums the hours of every employee.
func (t *FairnessTracker) Total() int {
	total := 0
	for _, h := range t.hours {
		total += h
	}
	return total
}

// Snapshot copies the current counts.
func (t *FairnessTracker) Snapshot() map[int]int {
	return maps.Clone(t.hours)
}
