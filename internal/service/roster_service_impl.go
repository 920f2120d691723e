package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/rota/internal/contract"
	"github.com/alexanderramin/rota/internal/db"
	"github.com/alexanderramin/rota/internal/domain"
	"github.com/alexanderramin/rota/internal/importer"
	"github.com/alexanderramin/rota/internal/repository"
)

type rosterService struct {
	employees repository.EmployeeRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewRosterService(employees repository.EmployeeRepo, uow db.UnitOfWork, observers ...UseCaseObserver) RosterService {
	return &rosterService{
		employees: employees,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *rosterService) ImportRoster(ctx context.Context, path string, replace bool) (*contract.RosterImportResult, error) {
	schema, err := importer.LoadRosterSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading roster file: %w", err)
	}
	return s.ImportRosterFromSchema(ctx, schema, replace)
}

func (s *rosterService) ImportRosterFromSchema(ctx context.Context, schema *importer.RosterSchema, replace bool) (result *contract.RosterImportResult, err error) {
	fields := map[string]any{"replace": replace}
	defer observe(ctx, s.observer, "roster.import", time.Now(), &err, fields)

	if errs := importer.ValidateRosterSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("roster validation failed (%d errors): %w", len(errs), errors.Join(errs...))
	}

	employees, warnings := importer.ConvertRoster(schema)
	for _, w := range warnings {
		slog.WarnContext(ctx, "availability token ignored",
			"employee_id", w.EmployeeID, "day", w.Day.String(), "token", w.Token, "reason", w.Reason)
	}

	result = &contract.RosterImportResult{Warnings: warnings}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteEmployeeRepo(tx)
		if replace {
			n, err := repo.DeleteAll(ctx)
			if err != nil {
				return err
			}
			result.Replaced = n
		}
		for i := range employees {
			e := &employees[i]
			if _, err := repo.GetByID(ctx, e.ID); err == nil {
				return fmt.Errorf("employee %d: %w", e.ID, ErrEmployeeExists)
			} else if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			if err := repo.Create(ctx, e); err != nil {
				return fmt.Errorf("creating employee %d: %w", e.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Imported = len(employees)
	fields["imported"] = result.Imported
	fields["replaced"] = result.Replaced
	fields["warnings"] = len(warnings)
	return result, nil
}

func (s *rosterService) ExportRoster(ctx context.Context, path string) (n int, err error) {
	fields := map[string]any{"path": path}
	defer observe(ctx, s.observer, "roster.export", time.Now(), &err, fields)

	list, err := s.employees.List(ctx)
	if err != nil {
		return 0, err
	}
	roster := make([]domain.Employee, len(list))
	for i, e := range list {
		roster[i] = *e
	}

	if err = importer.WriteRosterSchema(path, importer.ExportRoster(roster)); err != nil {
		return 0, err
	}
	fields["exported"] = len(roster)
	return len(roster), nil
}
