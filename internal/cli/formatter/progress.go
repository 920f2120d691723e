package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/rota/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45%. Low fill is green and
// high fill is red, since a full bar means an employee has no slack left.
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct >= 0.9 {
		style = StyleRed
	} else if pct >= 0.6 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// FormatUtilization shows, per employee, scheduled hours against the hours
// they offered. Employees offering no hours are listed without a bar.
func FormatUtilization(roster []domain.Employee, hours map[int]int) string {
	headers := []string{"ID", "NAME", "HOURS", "OFFERED", "USED"}
	rows := make([][]string, 0, len(roster))
	for _, e := range roster {
		offered := e.Availability.TotalHours()
		used := Dim("-")
		if offered > 0 {
			used = RenderProgress(float64(hours[e.ID])/float64(offered), 20)
		}
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			e.DisplayName(),
			strconv.Itoa(hours[e.ID]),
			strconv.Itoa(offered),
			used,
		})
	}
	return Header("Utilization") + "\n" + RenderTableAligned(headers, rows, []int{0, 2, 3})
}
