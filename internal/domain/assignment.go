package domain

import "slices"

// DayAssignment lists, per hour, the IDs of the employees working it in the
// order they were assigned.
type DayAssignment [HoursPerDay][]int

func (a *DayAssignment) Occupancy(hour int) int {
	return len(a[hour])
}

func (a *DayAssignment) Has(hour, employeeID int) bool {
	return slices.Contains(a[hour], employeeID)
}

// Add appends the employee to the hour. It reports false, and changes
// nothing, when the employee already works that hour.
func (a *DayAssignment) Add(hour, employeeID int) bool {
	if a.Has(hour, employeeID) {
		return false
	}
	a[hour] = append(a[hour], employeeID)
	return true
}

// HoursFor counts the hours the employee works on this day.
func (a *DayAssignment) HoursFor(employeeID int) int {
	n := 0
	for h := range a {
		if a.Has(h, employeeID) {
			n++
		}
	}
	return n
}

// WeekAssignment is one DayAssignment per day, indexed by Day.
type WeekAssignment [DaysPerWeek]DayAssignment

// Triples counts every (day, hour, employee) placement in the week.
func (w *WeekAssignment) Triples() int {
	n := 0
	for d := range w {
		for h := range w[d] {
			n += len(w[d][h])
		}
	}
	return n
}

// HoursFor counts the hours the employee works across the week.
func (w *WeekAssignment) HoursFor(employeeID int) int {
	n := 0
	for d := range w {
		n += w[d].HoursFor(employeeID)
	}
	return n
}
