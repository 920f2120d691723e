package domain

import "fmt"

// Day is a day of the schedule week. The zero value is Monday so a Day can
// index [DaysPerWeek] arrays directly.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// AllDays lists the days in calendar order.
var AllDays = [DaysPerWeek]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayLetters = [DaysPerWeek]rune{'M', 'T', 'W', 'R', 'F', 'S', 'U'}

var dayNames = [DaysPerWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Valid reports whether d is one of the seven days.
func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

// Letter returns the single-character symbol used in demand and roster files.
func (d Day) Letter() rune {
	if !d.Valid() {
		return '?'
	}
	return dayLetters[d]
}

func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// DayFromLetter resolves a day symbol (M T W R F S U). Matching is exact.
func DayFromLetter(r rune) (Day, bool) {
	for i, l := range dayLetters {
		if l == r {
			return Day(i), true
		}
	}
	return 0, false
}
