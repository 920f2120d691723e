// Package report renders accepted weeks as xlsx workbooks.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/rota/internal/contract"
	"github.com/alexanderramin/rota/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	PayrollSheet = "Payroll"
	ShiftLabel   = "Shift"
	defaultSheet = "Sheet1"
)

// Fill colors for the day sheets.
const (
	ColorManager   = "#E6E6FA" // lavender
	ColorWorker    = "#DDEBF7" // pale blue
	ColorShift     = "#C6EFCE" // light green
	ColorClosed    = "#D9D9D9" // grey
	ColorOpenHour  = "#FFF2CC" // light yellow
	ColorPayHeader = "#E6F3FF"
)

// ErrNoAssignment is returned for input without an accepted assignment.
var ErrNoAssignment = errors.New("report needs an accepted assignment")

// WorkbookInput is everything needed to render one accepted week.
type WorkbookInput struct {
	Demand     domain.WeeklyDemand
	Roster     []domain.Employee
	Assignment *domain.WeekAssignment
	Payroll    []contract.PayrollLine
}

// HourLabel renders the hour slot as "HH:00-HH:00".
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00-%02d:00", hour, hour+1)
}

// WriteWorkbook renders in and writes the xlsx bytes to w.
func WriteWorkbook(w io.Writer, in WorkbookInput) error {
	f, err := build(in)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// SaveWorkbook renders in to the file at path.
func SaveWorkbook(path string, in WorkbookInput) error {
	f, err := build(in)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

type styles struct {
	manager, worker, shift, closed, openHour, payHeader int
}

func build(in WorkbookInput) (*excelize.File, error) {
	if in.Assignment == nil {
		return nil, ErrNoAssignment
	}

	f := excelize.NewFile()
	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	for i, day := range domain.AllDays {
		// The new file's only sheet becomes Monday so it stays active.
		if i == 0 {
			err = f.SetSheetName(defaultSheet, day.String())
		} else {
			_, err = f.NewSheet(day.String())
		}
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("creating sheet %s: %w", day, err)
		}
		if err := writeDaySheet(f, st, day, in); err != nil {
			f.Close()
			return nil, fmt.Errorf("rendering %s: %w", day, err)
		}
	}

	if _, err := f.NewSheet(PayrollSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("creating payroll sheet: %w", err)
	}
	if err := writePayrollSheet(f, st, in.Payroll); err != nil {
		f.Close()
		return nil, fmt.Errorf("rendering payroll: %w", err)
	}

	return f, nil
}

func fillStyle(f *excelize.File, color string, bold bool) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: bold},
		Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	defs := []struct {
		dst   *int
		color string
		bold  bool
	}{
		{&st.manager, ColorManager, true},
		{&st.worker, ColorWorker, true},
		{&st.shift, ColorShift, false},
		{&st.closed, ColorClosed, false},
		{&st.openHour, ColorOpenHour, false},
		{&st.payHeader, ColorPayHeader, true},
	}
	for _, d := range defs {
		id, err := fillStyle(f, d.color, d.bold)
		if err != nil {
			return styles{}, fmt.Errorf("creating style %s: %w", d.color, err)
		}
		*d.dst = id
	}
	return st, nil
}

// writeDaySheet lays out hours down column A and employees across row 1.
func writeDaySheet(f *excelize.File, st styles, day domain.Day, in WorkbookInput) error {
	sheet := day.String()
	demand := in.Demand[day]
	assigned := &in.Assignment[day]
	lastCol := len(in.Roster) + 1

	if err := f.SetCellValue(sheet, "A1", "Hour"); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 14); err != nil {
		return err
	}

	for i, e := range in.Roster {
		cell, err := excelize.CoordinatesToCellName(i+2, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, e.DisplayName()); err != nil {
			return err
		}
		style := st.worker
		if e.Compensation.Role == domain.RoleManager {
			style = st.manager
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
		col, err := excelize.ColumnNumberToName(i + 2)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, 18); err != nil {
			return err
		}
	}

	for h := 0; h < domain.HoursPerDay; h++ {
		row := h + 2
		label, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, label, HourLabel(h)); err != nil {
			return err
		}

		if demand.IsClosed(h) {
			end, err := excelize.CoordinatesToCellName(lastCol, row)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, label, end, st.closed); err != nil {
				return err
			}
			continue
		}
		if err := f.SetCellStyle(sheet, label, label, st.openHour); err != nil {
			return err
		}

		for i, e := range in.Roster {
			if !assigned.Has(h, e.ID) {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+2, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, ShiftLabel); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, st.shift); err != nil {
				return err
			}
		}
	}
	return nil
}

var payrollHeader = []string{"Employee", "Name", "Role", "Hours", "Rate", "Pay"}

func writePayrollSheet(f *excelize.File, st styles, lines []contract.PayrollLine) error {
	for i, h := range payrollHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(PayrollSheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(PayrollSheet, cell, cell, st.payHeader); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(PayrollSheet, "B", "B", 24); err != nil {
		return err
	}

	for i, l := range lines {
		row := i + 2
		values := []any{l.EmployeeID, l.Name, string(l.Role), l.Hours, fmt.Sprintf("%.2f%s", l.Rate, l.RateUnit), l.Pay}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(PayrollSheet, cell, v); err != nil {
				return err
			}
		}
	}

	totalRow := len(lines) + 2
	label, _ := excelize.CoordinatesToCellName(5, totalRow)
	total, _ := excelize.CoordinatesToCellName(6, totalRow)
	if err := f.SetCellValue(PayrollSheet, label, "Total"); err != nil {
		return err
	}
	return f.SetCellValue(PayrollSheet, total, contract.PayrollTotal(lines))
}
