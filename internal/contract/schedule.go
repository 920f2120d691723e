package contract

import (
	"time"

	"github.com/alexanderramin/rota/internal/domain"
	"github.com/alexanderramin/rota/internal/importer"
	"github.com/alexanderramin/rota/internal/scheduler"
)

// ScheduleRequest asks for one week to be scheduled from a demand file
// against the stored roster.
type ScheduleRequest struct {
	DemandPath string
	Order      scheduler.DayOrder
	// ReportPath, when set, receives an xlsx workbook for accepted weeks.
	ReportPath string
	Now        *time.Time
	DryRun     bool
}

func NewScheduleRequest(demandPath string) ScheduleRequest {
	return ScheduleRequest{
		DemandPath: demandPath,
		Order:      scheduler.DefaultDayOrder,
	}
}

// ScheduleResponse is the outcome of ScheduleService.Generate. A rejected
// week is a normal response: Run.Status is rejected and Run.Shortfalls lists
// every under-staffed hour.
type ScheduleResponse struct {
	Run        *domain.ScheduleRun
	Roster     []domain.Employee
	Demand     domain.WeeklyDemand
	Payroll    []PayrollLine
	ReportPath string
}

// PayrollLine is one employee's pay for an accepted week.
type PayrollLine struct {
	EmployeeID int
	Name       string
	Role       domain.Role
	Rate       float64
	RateUnit   string
	Hours      int
	Pay        float64
}

// PayrollTotal sums Pay over lines.
func PayrollTotal(lines []PayrollLine) float64 {
	total := 0.0
	for _, l := range lines {
		total += l.Pay
	}
	return total
}

// RosterImportResult summarizes a roster import.
type RosterImportResult struct {
	Imported int
	Replaced int
	Warnings []importer.RosterWarning
}
