package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/rota/internal/contract"
	"github.com/alexanderramin/rota/internal/domain"
	"github.com/alexanderramin/rota/internal/importer"
)

// NameLookup maps employee numbers to display names. Unknown numbers render
// as "#N", which happens for history runs whose employees have since left.
type NameLookup map[int]string

func NewNameLookup(roster []domain.Employee) NameLookup {
	names := make(NameLookup, len(roster))
	for _, e := range roster {
		names[e.ID] = e.DisplayName()
	}
	return names
}

func (n NameLookup) Name(id int) string {
	if name, ok := n[id]; ok {
		return name
	}
	return "#" + strconv.Itoa(id)
}

// FormatWeekGrid lists, day by day in calendar order, every staffed hour
// and who works it. Days with no staffed hour are omitted.
func FormatWeekGrid(a *domain.WeekAssignment, names NameLookup) string {
	if a == nil {
		return ""
	}
	var sections []string
	for _, d := range domain.AllDays {
		var rows [][]string
		for h := 0; h < domain.HoursPerDay; h++ {
			ids := a[d][h]
			if len(ids) == 0 {
				continue
			}
			staff := make([]string, len(ids))
			for i, id := range ids {
				staff[i] = names.Name(id)
			}
			rows = append(rows, []string{HourRange(h), strconv.Itoa(len(ids)), strings.Join(staff, "; ")})
		}
		if len(rows) == 0 {
			continue
		}
		sections = append(sections, Header(d.String())+"\n"+
			RenderTableAligned([]string{"HOUR", "STAFF", "EMPLOYEES"}, rows, []int{1}))
	}
	if len(sections) == 0 {
		return Dim("No hours staffed.")
	}
	return strings.Join(sections, "\n")
}

// FormatPayroll renders the pay table with a total row.
func FormatPayroll(lines []contract.PayrollLine) string {
	headers := []string{"ID", "NAME", "ROLE", "HOURS", "RATE", "PAY"}
	rows := make([][]string, 0, len(lines)+1)
	for _, l := range lines {
		rows = append(rows, []string{
			strconv.Itoa(l.EmployeeID),
			l.Name,
			RoleBadge(l.Role),
			strconv.Itoa(l.Hours),
			Money(l.Rate) + l.RateUnit,
			Money(l.Pay),
		})
	}
	rows = append(rows, []string{"", Bold("Total"), "", "", "", Bold(Money(contract.PayrollTotal(lines)))})
	return Header("Payroll") + "\n" + RenderTableAligned(headers, rows, []int{0, 3, 4, 5})
}

// FormatShortfalls explains a rejected week: one line per under-staffed
// hour telling the user how many more people to hire, then a summary.
func FormatShortfalls(shortfalls []domain.Shortfall) string {
	var b strings.Builder
	b.WriteString(Header("Schedule rejected") + "\n")
	total := 0
	for _, s := range shortfalls {
		total += s.Missing
		fmt.Fprintf(&b, "%s There are not enough employees on %s @ %02d:00! Please hire %d more %s.\n",
			StyleRed.Render("✖"), s.Day, s.Hour, s.Missing, Plural(s.Missing, "person", "people"))
	}
	fmt.Fprintf(&b, "%s", Dim(fmt.Sprintf("%d under-staffed %s, %d staff-hours missing. No schedule was published.",
		len(shortfalls), Plural(len(shortfalls), "hour", "hours"), total)))
	return b.String()
}

// FormatTokenWarnings lists availability tokens dropped during a roster
// import.
func FormatTokenWarnings(warnings []importer.RosterWarning) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range warnings {
		fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render("!"),
			Dim(fmt.Sprintf("employee %d, %s", w.EmployeeID, w.TokenWarning)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatRunSummary is the one-paragraph header shown above a run.
func FormatRunSummary(run *domain.ScheduleRun) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", RunStatusPill(run.Status), Dim(run.ID))
	fmt.Fprintf(&b, "Demand:    %s\n", run.DemandPath)
	fmt.Fprintf(&b, "Day order: %s\n", run.DayOrder)
	fmt.Fprintf(&b, "Created:   %s", HumanTimestamp(run.CreatedAt))
	if run.Accepted() && run.Assignment != nil {
		fmt.Fprintf(&b, "\nStaffed:   %d staff-hours", run.Assignment.Triples())
	}
	return b.String()
}

// FormatRunList renders schedule history, newest first.
func FormatRunList(runs []*domain.ScheduleRun) string {
	headers := []string{"RUN", "CREATED", "STATUS", "ORDER", "SHORT", "DEMAND"}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		short := Dim("-")
		if r.ShortfallCount > 0 {
			short = StyleRed.Render(strconv.Itoa(r.ShortfallCount))
		}
		rows = append(rows, []string{
			TruncID(r.ID),
			HumanTimestamp(r.CreatedAt),
			RunStatusPill(r.Status),
			r.DayOrder,
			short,
			r.DemandPath,
		})
	}
	return Header("Schedule history") + "\n" + RenderTableAligned(headers, rows, []int{4})
}
