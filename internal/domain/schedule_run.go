package domain

import "time"

// Shortfall is an open hour left with fewer staff than required.
type Shortfall struct {
	Day     Day `json:"day"`
	Hour    int `json:"hour"`
	Missing int `json:"missing"`
}

// ScheduleRun is a stored weekly run. Accepted runs carry the assignment and
// hour totals; rejected runs carry only shortfalls.
type ScheduleRun struct {
	ID             string
	CreatedAt      time.Time
	DemandPath     string
	DayOrder       string
	Status         RunStatus
	Assignment     *WeekAssignment
	Hours          map[int]int
	Shortfalls     []Shortfall
	// ShortfallCount is len(Shortfalls) as stored; it is set on listed
	// runs whose shortfalls were not loaded.
	ShortfallCount int
}

func (r *ScheduleRun) Accepted() bool {
	return r.Status == RunAccepted
}

// MissingTotal sums the missing staff-hours across all shortfalls.
func (r *ScheduleRun) MissingTotal() int {
	total := 0
	for _, s := range r.Shortfalls {
		total += s.Missing
	}
	return total
}
