package scheduler

import "github.com/alexanderramin/rota/internal/domain"

// Shortfall is one under-staffed hour.
type Shortfall = domain.Shortfall

// Validate compares each open hour's occupancy with its demand. Shortfalls
// are listed by calendar day, then hour.
func Validate(demand domain.WeeklyDemand, assignment *domain.WeekAssignment) []Shortfall {
	var shortfalls []Shortfall
	for _, day := range domain.AllDays {
		for h := 0; h < domain.HoursPerDay; h++ {
			if demand[day].IsClosed(h) {
				continue
			}
			if missing := demand[day][h] - assignment[day].Occupancy(h); missing > 0 {
				shortfalls = append(shortfalls, Shortfall{Day: day, Hour: h, Missing: missing})
			}
		}
	}
	return shortfalls
}
