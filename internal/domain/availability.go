package domain

// Availability records, for each day and hour, whether an employee can work.
type Availability [DaysPerWeek][HoursPerDay]bool

// Set marks the hour available. Repeated calls are idempotent.
func (a *Availability) Set(day Day, hour int) {
	if !day.Valid() || hour < 0 || hour >= HoursPerDay {
		return
	}
	a[day][hour] = true
}

// SetRow ORs a whole day row into the matrix.
func (a *Availability) SetRow(day Day, row [HoursPerDay]bool) {
	for h, ok := range row {
		if ok {
			a.Set(day, h)
		}
	}
}

func (a Availability) IsAvailable(day Day, hour int) bool {
	if !day.Valid() || hour < 0 || hour >= HoursPerDay {
		return false
	}
	return a[day][hour]
}

// HoursOn counts the available hours on day. The scheduler calls this the
// employee's versatility for that day.
func (a Availability) HoursOn(day Day) int {
	if !day.Valid() {
		return 0
	}
	n := 0
	for _, ok := range a[day] {
		if ok {
			n++
		}
	}
	return n
}

// TotalHours counts available hours across the week.
func (a Availability) TotalHours() int {
	n := 0
	for _, d := range AllDays {
		n += a.HoursOn(d)
	}
	return n
}
