package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/rota/internal/domain"
)

// TokenWarning describes an availability token that was dropped. Bad tokens
// never abort parsing.
type TokenWarning struct {
	Day    domain.Day `json:"day"`
	Token  string     `json:"token"`
	Reason string     `json:"reason"`
}

func (w TokenWarning) String() string {
	return fmt.Sprintf("%s: ignored %q: %s", w.Day, w.Token, w.Reason)
}

// ParseAvailabilityTokens parses one day of availability. "H" marks only hour
// H; "H-H2" marks the hours [H, H2). Minute suffixes are accepted and ignored.
// Warnings carry the zero Day; ParseWeeklyAvailability fills it in.
func ParseAvailabilityTokens(line string) ([domain.HoursPerDay]bool, []TokenWarning) {
	var row [domain.HoursPerDay]bool
	var warnings []TokenWarning

	for _, tok := range strings.Fields(line) {
		lo, hi, isRange := strings.Cut(tok, "-")

		start, err := parseClockHour(lo)
		if err != nil {
			warnings = append(warnings, TokenWarning{Token: tok, Reason: err.Error()})
			continue
		}
		if start < 0 || start >= domain.HoursPerDay {
			warnings = append(warnings, TokenWarning{Token: tok, Reason: fmt.Sprintf("hour %d outside 0-23", start)})
			continue
		}

		if !isRange {
			row[start] = true
			continue
		}

		end, err := parseClockHour(hi)
		if err != nil {
			warnings = append(warnings, TokenWarning{Token: tok, Reason: err.Error()})
			continue
		}
		if end <= start || end > domain.HoursPerDay {
			warnings = append(warnings, TokenWarning{Token: tok, Reason: fmt.Sprintf("range %d-%d is empty or past 24", start, end)})
			continue
		}
		for h := start; h < end; h++ {
			row[h] = true
		}
	}
	return row, warnings
}

// ParseWeeklyAvailability parses a line per day into a matrix. Days missing
// from lines are unavailable.
func ParseWeeklyAvailability(lines map[domain.Day]string) (domain.Availability, []TokenWarning) {
	var avail domain.Availability
	var warnings []TokenWarning

	for _, d := range domain.AllDays {
		line, ok := lines[d]
		if !ok {
			continue
		}
		row, warns := ParseAvailabilityTokens(line)
		avail.SetRow(d, row)
		for _, w := range warns {
			w.Day = d
			warnings = append(warnings, w)
		}
	}
	return avail, warnings
}

// FormatAvailabilityRow renders a row back into tokens. Contiguous runs
// become "H-H2" and lone hours become "H", so parsing the result reproduces
// the row.
func FormatAvailabilityRow(row [domain.HoursPerDay]bool) string {
	var tokens []string
	for h := 0; h < domain.HoursPerDay; {
		if !row[h] {
			h++
			continue
		}
		end := h
		for end < domain.HoursPerDay && row[end] {
			end++
		}
		if end-h == 1 {
			tokens = append(tokens, strconv.Itoa(h))
		} else {
			tokens = append(tokens, fmt.Sprintf("%d-%d", h, end))
		}
		h = end
	}
	return strings.Join(tokens, " ")
}

// FormatWeeklyAvailability renders every day that has at least one hour.
func FormatWeeklyAvailability(a domain.Availability) map[domain.Day]string {
	out := make(map[domain.Day]string)
	for _, d := range domain.AllDays {
		if s := FormatAvailabilityRow(a[d]); s != "" {
			out[d] = s
		}
	}
	return out
}
