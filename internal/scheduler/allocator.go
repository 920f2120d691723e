package scheduler

import "github.com/alexanderramin/rota/internal/domain"

// AssignDay fills one day's demand from the roster in two passes and
// updates tracker for every hour handed out.
//
// Phase A gives each employee, in fill order, up to min(versatility,
// average) hours, scanning from midnight. The average is the day's demand
// hours divided by the whole roster size, not just those available today.
// Phase B walks the hours again and tops up any slot still short using the
// same fill order. Slots nobody can cover are left short; the validator
// reports them.
func AssignDay(day domain.Day, demand domain.DemandVector, roster []domain.Employee, tracker *FairnessTracker) domain.DayAssignment {
	var assigned domain.DayAssignment
	if len(roster) == 0 {
		return assigned
	}

	order := SortForDay(roster, tracker, day)
	averageHours := demand.TotalHours() / len(roster)

	// Phase A: proportional fill.
	for _, e := range order {
		quota := min(e.Availability.HoursOn(day), averageHours)
		for h := 0; h < domain.HoursPerDay && quota > 0; h++ {
			if !canTake(&assigned, demand, e, day, h) {
				continue
			}
			assigned.Add(h, e.ID)
			tracker.Add(e.ID)
			quota--
		}
	}

	// Phase B: gap fill.
	for h := 0; h < domain.HoursPerDay; h++ {
		for assigned.Occupancy(h) < demand[h] {
			placed := false
			for _, e := range order {
				if e.Availability.IsAvailable(day, h) && !assigned.Has(h, e.ID) {
					assigned.Add(h, e.ID)
					tracker.Add(e.ID)
					placed = true
					break
				}
			}
			if !placed {
				break
			}
		}
	}

	return assigned
}

// canTake reports whether e may be placed at hour h during Phase A.
func canTake(assigned *domain.DayAssignment, demand domain.DemandVector, e domain.Employee, day domain.Day, h int) bool {
	if demand.IsClosed(h) {
		return false
	}
	if !e.Availability.IsAvailable(day, h) {
		return false
	}
	if assigned.Has(h, e.ID) {
		return false
	}
	return assigned.Occupancy(h) < demand[h]
}
