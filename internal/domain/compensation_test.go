package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompensation_Pay(t *testing.T) {
	tests := []struct {
		name  string
		comp  Compensation
		hours int
		want  float64
	}{
		{"worker hourly", Compensation{Role: RoleWorker, Rate: 15.5}, 10, 155},
		{"worker no hours", Compensation{Role: RoleWorker, Rate: 15.5}, 0, 0},
		{"manager one standard day", Compensation{Role: RoleManager, Rate: 36000}, 8, 100},
		{"manager half day", Compensation{Role: RoleManager, Rate: 36000}, 4, 50},
		{"negative hours", Compensation{Role: RoleManager, Rate: 36000}, -3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.comp.Pay(tt.hours), 1e-9)
		})
	}
}

func TestCompensation_RateUnit(t *testing.T) {
	assert.Equal(t, "/hour", Compensation{Role: RoleWorker}.RateUnit())
	assert.Equal(t, "/year", Compensation{Role: RoleManager}.RateUnit())
}

func TestCompensation_Validate(t *testing.T) {
	assert.NoError(t, Compensation{Role: RoleWorker, Rate: 0}.Validate())
	assert.Error(t, Compensation{Role: "intern", Rate: 10}.Validate())
	assert.Error(t, Compensation{Role: RoleManager, Rate: -1}.Validate())
}
