package scheduler

import (
	"cmp"
	"slices"

	"github.com/alexanderramin/rota/internal/domain"
)

// CompareForDay returns the comparator used to order the roster before a
// day is filled:
// 1. Fairness hours: fewest cumulative hours this week first
// 2. Versatility: fewest available hours on this day first
// Ties keep roster order when used with a stable sort.
func CompareForDay(tracker *FairnessTracker, day domain.Day) func(a, b domain.Employee) int {
	return func(a, b domain.Employee) int {
		if c := cmp.Compare(tracker.Hours(a.ID), tracker.Hours(b.ID)); c != 0 {
			return c
		}
		return cmp.Compare(a.Availability.HoursOn(day), b.Availability.HoursOn(day))
	}
}

// SortForDay returns a copy of roster in fill order for day. The input
// slice is left untouched.
func SortForDay(roster []domain.Employee, tracker *FairnessTracker, day domain.Day) []domain.Employee {
	sorted := slices.Clone(roster)
	slices.SortStableFunc(sorted, CompareForDay(tracker, day))
	return sorted
}

// SortByID orders a roster by employee number, the canonical roster order.
func SortByID(roster []domain.Employee) []domain.Employee {
	sorted := slices.Clone(roster)
	slices.SortStableFunc(sorted, func(a, b domain.Employee) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return sorted
}
