package service

import (
	"github.com/alexanderramin/rota/internal/contract"
	"github.com/alexanderramin/rota/internal/domain"
)

// BuildPayroll prices every roster employee's hours, in roster order.
// Employees with no hours still get a line.
func BuildPayroll(roster []domain.Employee, hours map[int]int) []contract.PayrollLine {
	lines := make([]contract.PayrollLine, 0, len(roster))
	for _, e := range roster {
		h := hours[e.ID]
		lines = append(lines, contract.PayrollLine{
			EmployeeID: e.ID,
			Name:       e.DisplayName(),
			Role:       e.Compensation.Role,
			Rate:       e.Compensation.Rate,
			RateUnit:   e.Compensation.RateUnit(),
			Hours:      h,
			Pay:        e.Compensation.Pay(h),
		})
	}
	return lines
}
