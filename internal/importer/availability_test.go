package importer

import (
	"testing"

	"github.com/alexanderramin/rota/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hoursOf(row [domain.HoursPerDay]bool) []int {
	var out []int
	for h, ok := range row {
		if ok {
			out = append(out, h)
		}
	}
	return out
}

func TestParseAvailabilityTokens_Range(t *testing.T) {
	row, warns := ParseAvailabilityTokens("8-12 14:00-16:30")
	assert.Empty(t, warns)
	assert.Equal(t, []int{8, 9, 10, 11, 14, 15}, hoursOf(row))
}

func TestParseAvailabilityTokens_SingleHourMarksOneCell(t *testing.T) {
	row, warns := ParseAvailabilityTokens("3")
	assert.Empty(t, warns)
	assert.Equal(t, []int{3}, hoursOf(row))
}

func TestParseAvailabilityTokens_Overlap(t *testing.T) {
	row, warns := ParseAvailabilityTokens("8-12 10-14 9")
	assert.Empty(t, warns)
	assert.Equal(t, []int{8, 9, 10, 11, 12, 13}, hoursOf(row))
}

func TestParseAvailabilityTokens_OutOfRangeIsWarning(t *testing.T) {
	row, warns := ParseAvailabilityTokens("8-10 25 20")
	require.Len(t, warns, 1)
	assert.Equal(t, "25", warns[0].Token)
	assert.Equal(t, []int{8, 9, 20}, hoursOf(row), "valid tokens still apply")
}

func TestParseAvailabilityTokens_BadTokens(t *testing.T) {
	tests := []string{"abc", "-3", "9-", "12-9", "23-25", "24", "7-7"}
	for _, tok := range tests {
		t.Run(tok, func(t *testing.T) {
			row, warns := ParseAvailabilityTokens(tok + " 1")
			require.Len(t, warns, 1)
			assert.Equal(t, tok, warns[0].Token)
			assert.NotEmpty(t, warns[0].Reason)
			assert.Equal(t, []int{1}, hoursOf(row))
		})
	}
}

func TestParseAvailabilityTokens_MinutesIgnored(t *testing.T) {
	row, warns := ParseAvailabilityTokens("8:75-12 14:xx")
	assert.Empty(t, warns)
	assert.Equal(t, []int{8, 9, 10, 11, 14}, hoursOf(row))
}

func TestParseAvailabilityTokens_Empty(t *testing.T) {
	row, warns := ParseAvailabilityTokens("   ")
	assert.Empty(t, warns)
	assert.Empty(t, hoursOf(row))
}

func TestParseWeeklyAvailability(t *testing.T) {
	avail, warns := ParseWeeklyAvailability(map[domain.Day]string{
		domain.Monday: "8-16",
		domain.Friday: "25 9-11",
		domain.Sunday: "x",
	})

	assert.Equal(t, 8, avail.HoursOn(domain.Monday))
	assert.Equal(t, 2, avail.HoursOn(domain.Friday))
	assert.Equal(t, 0, avail.HoursOn(domain.Tuesday))

	require.Len(t, warns, 2)
	assert.Equal(t, domain.Friday, warns[0].Day)
	assert.Equal(t, domain.Sunday, warns[1].Day)
	assert.Contains(t, warns[0].String(), "Friday")
}

func TestFormatAvailabilityRow_RoundTrip(t *testing.T) {
	lines := []string{"", "0-24", "3", "8-12 14-18", "0 2 4-6 23"}
	for _, line := range lines {
		row, warns := ParseAvailabilityTokens(line)
		require.Empty(t, warns)
		assert.Equal(t, line, FormatAvailabilityRow(row))

		again, _ := ParseAvailabilityTokens(FormatAvailabilityRow(row))
		assert.Equal(t, row, again)
	}
}

func TestFormatWeeklyAvailability_SkipsEmptyDays(t *testing.T) {
	var a domain.Availability
	a.Set(domain.Wednesday, 9)
	a.Set(domain.Wednesday, 10)

	out := FormatWeeklyAvailability(a)
	assert.Equal(t, map[domain.Day]string{domain.Wednesday: "9-11"}, out)
}
