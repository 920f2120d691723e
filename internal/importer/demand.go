package importer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/rota/internal/domain"
)

// ErrDemandSyntax is wrapped by every demand file failure. A demand error
// aborts the whole run; callers never receive a partial week.
var ErrDemandSyntax = errors.New("demand syntax error")

// DemandError locates a demand failure in the input.
type DemandError struct {
	Line   int
	Text   string
	Reason string
}

func (e *DemandError) Error() string {
	return fmt.Sprintf("demand line %d %q: %s", e.Line, e.Text, e.Reason)
}

func (e *DemandError) Unwrap() error { return ErrDemandSyntax }

// LoadDemandFile reads and parses a demand file.
func LoadDemandFile(path string) (domain.WeeklyDemand, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.WeeklyDemand{}, fmt.Errorf("opening demand file: %w", err)
	}
	defer f.Close()
	return ParseDemand(f)
}

// ParseDemand reads a week of demand. The input is a sequence of day markers
// (a single letter, M T W R F S U) each followed by time lines of the form
// "<start>[:mm]-<end>[:mm] <count>". Hours never mentioned stay closed.
func ParseDemand(r io.Reader) (domain.WeeklyDemand, error) {
	week := domain.NewClosedWeek()
	var (
		current domain.Day
		haveDay bool
		lineNo  int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if len([]rune(line)) == 1 {
			d, ok := domain.DayFromLetter([]rune(line)[0])
			if !ok {
				return domain.WeeklyDemand{}, &DemandError{Line: lineNo, Text: raw, Reason: "unknown day letter"}
			}
			current, haveDay = d, true
			continue
		}

		if !haveDay {
			return domain.WeeklyDemand{}, &DemandError{Line: lineNo, Text: raw, Reason: "time line before any day marker"}
		}

		start, end, count, reason := parseDemandLine(line)
		if reason != "" {
			return domain.WeeklyDemand{}, &DemandError{Line: lineNo, Text: raw, Reason: reason}
		}
		for h := start; h < end; h++ {
			week[current][h] = count
		}
	}
	if err := sc.Err(); err != nil {
		return domain.WeeklyDemand{}, fmt.Errorf("reading demand: %w", err)
	}
	return week, nil
}

// parseDemandLine returns a non-empty reason when the line is malformed.
func parseDemandLine(line string) (start, end, count int, reason string) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, 0, "expected \"<start>-<end> <count>\""
	}

	lo, hi, ok := strings.Cut(fields[0], "-")
	if !ok {
		return 0, 0, 0, "missing '-' in time range"
	}
	var err error
	if start, err = parseClockHour(lo); err != nil {
		return 0, 0, 0, "start: " + err.Error()
	}
	if end, err = parseClockHour(hi); err != nil {
		return 0, 0, 0, "end: " + err.Error()
	}
	if start < 0 || end > domain.HoursPerDay || start >= end {
		return 0, 0, 0, fmt.Sprintf("range %d-%d must satisfy 0 <= start < end <= %d", start, end, domain.HoursPerDay)
	}

	count, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, fmt.Sprintf("count %q is not an integer", fields[1])
	}
	if count < 0 {
		return 0, 0, 0, fmt.Sprintf("count %d must not be negative", count)
	}
	return start, end, count, ""
}

// parseClockHour accepts "H" or "H:mm". Anything after the colon is ignored.
func parseClockHour(s string) (int, error) {
	hour, _, _ := strings.Cut(s, ":")
	h, err := strconv.Atoi(hour)
	if err != nil {
		return 0, fmt.Errorf("%q is not an hour", s)
	}
	return h, nil
}
