package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/rota/internal/domain"
	"github.com/alexanderramin/rota/internal/importer"
)

// FormatRate renders a compensation as "$15.00/hour".
func FormatRate(c domain.Compensation) string {
	return Money(c.Rate) + c.RateUnit()
}

// FormatEmployeeList renders the roster as a table ordered as given.
func FormatEmployeeList(employees []*domain.Employee) string {
	headers := []string{"ID", "NAME", "ROLE", "RATE", "AVAIL/WK"}
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			e.DisplayName(),
			RoleBadge(e.Compensation.Role),
			FormatRate(e.Compensation),
			fmt.Sprintf("%dh", e.Availability.TotalHours()),
		})
	}
	return Header("Roster") + "\n" + RenderTableAligned(headers, rows, []int{0, 3, 4}) +
		Dim(fmt.Sprintf("%d %s", len(employees), Plural(len(employees), "employee", "employees")))
}

// FormatEmployeeInspect renders one employee with a day-by-hour
// availability strip.
func FormatEmployeeInspect(e *domain.Employee) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(e.DisplayName()), Dim("#"+strconv.Itoa(e.ID)))
	fmt.Fprintf(&b, "Role:     %s\n", RoleBadge(e.Compensation.Role))
	fmt.Fprintf(&b, "Rate:     %s\n", FormatRate(e.Compensation))
	if e.Address != "" {
		fmt.Fprintf(&b, "Address:  %s\n", e.Address)
	}
	b.WriteString("\n")
	b.WriteString(FormatAvailability(e.Availability))
	return RenderBox("Employee", strings.TrimRight(b.String(), "\n"))
}

// FormatAvailability renders the week as one strip per day, one cell per
// hour, followed by the same hours in token form.
func FormatAvailability(a domain.Availability) string {
	var b strings.Builder
	b.WriteString("     " + Dim("0         6         12        18      23") + "\n")
	for _, d := range domain.AllDays {
		var strip strings.Builder
		for h := 0; h < domain.HoursPerDay; h++ {
			if a[d][h] {
				strip.WriteString(StyleGreen.Render("█"))
			} else {
				strip.WriteString(Dim("·"))
			}
		}
		tokens := importer.FormatAvailabilityRow(a[d])
		if tokens == "" {
			tokens = "-"
		}
		fmt.Fprintf(&b, "%-3s  %s  %s\n", d.String()[:3], strip.String(), Dim(tokens))
	}
	return b.String()
}
