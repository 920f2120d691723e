package scheduler

import (
	"testing"

	"github.com/alexanderramin/rota/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayOrder(t *testing.T) {
	tests := []struct {
		in   string
		want DayOrder
	}{
		{"", ReverseCalendarOrder},
		{"reverse", ReverseCalendarOrder},
		{"Calendar", CalendarOrder},
		{"MTWRFSU", CalendarOrder},
		{"usfrwtm", ReverseCalendarOrder},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDayOrder(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDayOrder_Invalid(t *testing.T) {
	for _, in := range []string{"forward", "MTWRFS", "MTWRFSX", "MMWRFSU"} {
		_, err := ParseDayOrder(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestDayOrder_DefaultIsReverseCalendar(t *testing.T) {
	assert.Equal(t, "USFRWTM", DefaultDayOrder.String())
	assert.Equal(t, domain.Sunday, DefaultDayOrder[0])
}

func TestDayOrder_SetAndType(t *testing.T) {
	var o DayOrder
	require.NoError(t, o.Set("calendar"))
	assert.Equal(t, CalendarOrder, o)
	assert.Error(t, o.Set("nope"))
	assert.Equal(t, CalendarOrder, o, "failed Set leaves the value unchanged")
	assert.Equal(t, "dayorder", o.Type())
}
