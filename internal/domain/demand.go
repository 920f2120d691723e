package domain

// DemandVector holds the required headcount per hour of one day. A cell is
// either Closed or a non-negative count.
type DemandVector [HoursPerDay]int

// NewClosedDemand returns a vector with every hour closed.
func NewClosedDemand() DemandVector {
	var d DemandVector
	for h := range d {
		d[h] = Closed
	}
	return d
}

func (d DemandVector) IsClosed(hour int) bool {
	return d[hour] == Closed
}

// TotalHours sums the required staff-hours, ignoring closed cells.
func (d DemandVector) TotalHours() int {
	total := 0
	for _, n := range d {
		if n > 0 {
			total += n
		}
	}
	return total
}

// WeeklyDemand is one demand vector per day, indexed by Day.
type WeeklyDemand [DaysPerWeek]DemandVector

// NewClosedWeek returns a week with every hour of every day closed.
func NewClosedWeek() WeeklyDemand {
	var w WeeklyDemand
	for _, d := range AllDays {
		w[d] = NewClosedDemand()
	}
	return w
}
