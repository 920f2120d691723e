package formatter

import (
	"testing"

	"github.com/alexanderramin/rota/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"empty", 0, "[░░░░░░░░░░]   0%"},
		{"half", 0.5, "[█████░░░░░]  50%"},
		{"full", 1, "[██████████] 100%"},
		{"clamped high", 1.7, "[██████████] 100%"},
		{"clamped low", -0.2, "[░░░░░░░░░░]   0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderProgress(tt.pct, 10)))
		})
	}
}

func TestFormatUtilization(t *testing.T) {
	busy := domain.Employee{ID: 1, FirstName: "Ada", LastName: "Lovelace"}
	for h := 8; h < 16; h++ {
		busy.Availability.Set(domain.Monday, h)
	}
	idle := domain.Employee{ID: 2, FirstName: "Grace", LastName: "Hopper"}

	out := stripANSI(FormatUtilization([]domain.Employee{busy, idle}, map[int]int{1: 4}))

	assert.Contains(t, out, "UTILIZATION")
	assert.Contains(t, out, "Lovelace, Ada")
	assert.Contains(t, out, " 50%")
	assert.Contains(t, out, "Hopper, Grace")
}
