package scheduler

import "github.com/alexanderramin/rota/internal/domain"

// employee builds a worker available for [from, to) on each listed day.
func employee(id int, from, to int, days ...domain.Day) domain.Employee {
	e := domain.Employee{
		ID:           id,
		FirstName:    "First",
		LastName:     "Last",
		Compensation: domain.Compensation{Role: domain.RoleWorker, Rate: 15},
	}
	for _, d := range days {
		for h := from; h < to; h++ {
			e.Availability.Set(d, h)
		}
	}
	return e
}

// openWeek returns a closed week with demand n for [from, to) on the given day.
func openWeek(day domain.Day, from, to, n int) domain.WeeklyDemand {
	w := domain.NewClosedWeek()
	for h := from; h < to; h++ {
		w[day][h] = n
	}
	return w
}
