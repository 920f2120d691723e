package scheduler

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rota/internal/domain"
)

// DayOrder is the sequence in which the days of a week are filled. Because
// all days share one FairnessTracker, the day filled first gets first pick
// of the least-used employees.
type DayOrder [domain.DaysPerWeek]domain.Day

var (
	// ReverseCalendarOrder fills Sunday first and Monday last. It is the
	// default and reproduces the schedules produced before the order was
	// configurable.
	// TODO: confirm with operations whether Sunday-first is a fairness
	// policy or should become CalendarOrder.
	ReverseCalendarOrder = DayOrder{domain.Sunday, domain.Saturday, domain.Friday, domain.Thursday, domain.Wednesday, domain.Tuesday, domain.Monday}

	// CalendarOrder fills Monday first.
	CalendarOrder = DayOrder(domain.AllDays)
)

// DefaultDayOrder is the order used when none is configured.
var DefaultDayOrder = ReverseCalendarOrder

// ParseDayOrder accepts "reverse", "calendar", or a seven-letter sequence
// naming every day exactly once (e.g. "USFRWTM").
func ParseDayOrder(s string) (DayOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reverse":
		return ReverseCalendarOrder, nil
	case "calendar":
		return CalendarOrder, nil
	}

	letters := []rune(strings.ToUpper(strings.TrimSpace(s)))
	if len(letters) != domain.DaysPerWeek {
		return DayOrder{}, fmt.Errorf("day order %q: expected reverse, calendar, or 7 day letters", s)
	}
	var order DayOrder
	seen := make(map[domain.Day]bool, domain.DaysPerWeek)
	for i, r := range letters {
		d, ok := domain.DayFromLetter(r)
		if !ok {
			return DayOrder{}, fmt.Errorf("day order %q: unknown day letter %q", s, r)
		}
		if seen[d] {
			return DayOrder{}, fmt.Errorf("day order %q: %s listed twice", s, d)
		}
		seen[d] = true
		order[i] = d
	}
	return order, nil
}

// String renders the order as day letters, e.g. "USFRWTM".
func (o DayOrder) String() string {
	var b strings.Builder
	for _, d := range o {
		b.WriteRune(d.Letter())
	}
	return b.String()
}

// Set implements pflag.Value.
func (o *DayOrder) Set(s string) error {
	parsed, err := ParseDayOrder(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Type implements pflag.Value.
func (o *DayOrder) Type() string {
	return "dayorder"
}
