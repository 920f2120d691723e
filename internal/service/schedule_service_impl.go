package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/rota/internal/contract"
	"github.com/alexanderramin/rota/internal/db"
	"github.com/alexanderramin/rota/internal/domain"
	"github.com/alexanderramin/rota/internal/importer"
	"github.com/alexanderramin/rota/internal/report"
	"github.com/alexanderramin/rota/internal/repository"
	"github.com/alexanderramin/rota/internal/scheduler"
	"github.com/google/uuid"
)

type scheduleService struct {
	employees repository.EmployeeRepo
	runs      repository.ScheduleRunRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewScheduleService(
	employees repository.EmployeeRepo,
	runs repository.ScheduleRunRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		employees: employees,
		runs:      runs,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) Generate(ctx context.Context, req contract.ScheduleRequest) (resp *contract.ScheduleResponse, err error) {
	fields := map[string]any{
		"demand":    req.DemandPath,
		"day_order": req.Order.String(),
		"dry_run":   req.DryRun,
	}
	defer observe(ctx, s.observer, "schedule.generate", time.Now(), &err, fields)

	// A bad demand file aborts before anything else is read or written.
	demand, err := importer.LoadDemandFile(req.DemandPath)
	if err != nil {
		return nil, fmt.Errorf("loading demand file: %w", err)
	}

	list, err := s.employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}
	roster := make([]domain.Employee, len(list))
	for i, e := range list {
		roster[i] = *e
	}
	fields["roster_size"] = len(roster)

	result := scheduler.Run(demand, roster, req.Order)

	now := time.Now().UTC()
	if req.Now != nil {
		now = req.Now.UTC()
	}
	run := &domain.ScheduleRun{
		ID:             uuid.New().String(),
		CreatedAt:      now.Truncate(time.Second),
		DemandPath:     req.DemandPath,
		DayOrder:       req.Order.String(),
		Status:         domain.RunRejected,
		Shortfalls:     result.Shortfalls,
		ShortfallCount: len(result.Shortfalls),
	}
	if result.Accepted {
		run.Status = domain.RunAccepted
		run.Assignment = result.Assignment
		run.Hours = result.Hours
	}
	fields["run_id"] = run.ID
	fields["accepted"] = result.Accepted
	fields["shortfalls"] = len(result.Shortfalls)
	fields["missing"] = run.MissingTotal()

	if !req.DryRun {
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return repository.NewSQLiteScheduleRunRepo(tx).Create(ctx, run)
		})
		if err != nil {
			return nil, fmt.Errorf("saving schedule run: %w", err)
		}
	}

	resp = &contract.ScheduleResponse{Run: run, Roster: roster, Demand: demand}
	if !result.Accepted {
		return resp, nil
	}

	resp.Payroll = BuildPayroll(roster, run.Hours)
	fields["payroll_total"] = contract.PayrollTotal(resp.Payroll)

	if req.ReportPath != "" {
		err = report.SaveWorkbook(req.ReportPath, report.WorkbookInput{
			Demand:     demand,
			Roster:     roster,
			Assignment: run.Assignment,
			Payroll:    resp.Payroll,
		})
		if err != nil {
			return nil, fmt.Errorf("writing report: %w", err)
		}
		resp.ReportPath = req.ReportPath
		fields["report"] = req.ReportPath
	}
	return resp, nil
}

func (s *scheduleService) GetRun(ctx context.Context, id string) (*domain.ScheduleRun, error) {
	return s.runs.GetByID(ctx, id)
}

func (s *scheduleService) ListRuns(ctx context.Context, limit int) ([]*domain.ScheduleRun, error) {
	return s.runs.List(ctx, limit)
}
