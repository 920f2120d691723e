package scheduler

import "github.com/alexanderramin/rota/internal/domain"

// WeekPlan is the raw output of ScheduleWeek before validation.
type WeekPlan struct {
	Order      DayOrder
	Assignment domain.WeekAssignment
	Hours      map[int]int
}

// ScheduleWeek fills every day of the week in the given order, threading a
// single FairnessTracker through all seven days. The roster is put in
// employee-number order first so results do not depend on caller order.
func ScheduleWeek(demand domain.WeeklyDemand, roster []domain.Employee, order DayOrder) WeekPlan {
	sorted := SortByID(roster)
	tracker := NewFairnessTracker(sorted)

	plan := WeekPlan{Order: order}
	for _, day := range order {
		plan.Assignment[day] = AssignDay(day, demand[day], sorted, tracker)
	}
	plan.Hours = tracker.Snapshot()
	return plan
}
