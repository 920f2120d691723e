package scheduler

import (
	"testing"

	"github.com/alexanderramin/rota/internal/domain"
	"github.com/stretchr/testify/assert"
)

func ids(roster []domain.Employee) []int {
	out := make([]int, len(roster))
	for i, e := range roster {
		out[i] = e.ID
	}
	return out
}

func TestCompareForDay_FairnessHoursFirst(t *testing.T) {
	a := employee(1, 0, 4, domain.Monday)  // 4h available
	b := employee(2, 0, 12, domain.Monday) // 12h available
	tracker := NewFairnessTracker([]domain.Employee{a, b})
	tracker.Add(1)

	cmp := CompareForDay(tracker, domain.Monday)

	// b has worked less, so it sorts first even though it is more versatile.
	assert.Positive(t, cmp(a, b))
	assert.Negative(t, cmp(b, a))
}

func TestCompareForDay_VersatilityBreaksTies(t *testing.T) {
	flexible := employee(1, 0, 12, domain.Monday)
	constrained := employee(2, 9, 10, domain.Monday)
	tracker := NewFairnessTracker([]domain.Employee{flexible, constrained})

	sorted := SortForDay([]domain.Employee{flexible, constrained}, tracker, domain.Monday)

	assert.Equal(t, []int{2, 1}, ids(sorted))
}

func TestCompareForDay_VersatilityIsPerDay(t *testing.T) {
	a := employee(1, 0, 2, domain.Monday)
	a.Availability.SetRow(domain.Tuesday, [domain.HoursPerDay]bool{true, true, true, true, true})
	b := employee(2, 0, 3, domain.Monday, domain.Tuesday)
	tracker := NewFairnessTracker([]domain.Employee{a, b})

	assert.Equal(t, []int{1, 2}, ids(SortForDay([]domain.Employee{a, b}, tracker, domain.Monday)))
	assert.Equal(t, []int{2, 1}, ids(SortForDay([]domain.Employee{a, b}, tracker, domain.Tuesday)))
}

func TestSortForDay_StableOnFullTie(t *testing.T) {
	roster := []domain.Employee{
		employee(3, 8, 16, domain.Friday),
		employee(1, 8, 16, domain.Friday),
		employee(2, 8, 16, domain.Friday),
	}
	tracker := NewFairnessTracker(roster)

	sorted := SortForDay(roster, tracker, domain.Friday)

	assert.Equal(t, []int{3, 1, 2}, ids(sorted), "ties keep input order")
	assert.Equal(t, []int{3, 1, 2}, ids(roster), "input must not be reordered")
}

func TestSortByID(t *testing.T) {
	roster := []domain.Employee{employee(9, 0, 1), employee(2, 0, 1), employee(5, 0, 1)}
	assert.Equal(t, []int{2, 5, 9}, ids(SortByID(roster)))
}
