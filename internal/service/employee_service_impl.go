package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/rota/internal/db"
	"github.com/alexanderramin/rota/internal/domain"
	"github.com/alexanderramin/rota/internal/repository"
)

type employeeService struct {
	employees repository.EmployeeRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewEmployeeService(employees repository.EmployeeRepo, uow db.UnitOfWork, observers ...UseCaseObserver) EmployeeService {
	return &employeeService{
		employees: employees,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *employeeService) Create(ctx context.Context, e *domain.Employee) (err error) {
	defer observe(ctx, s.observer, "employee.create", time.Now(), &err, map[string]any{"employee_id": e.ID})

	if err = e.Validate(); err != nil {
		return fmt.Errorf("invalid employee: %w", err)
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteEmployeeRepo(tx)
		if _, err := repo.GetByID(ctx, e.ID); err == nil {
			return fmt.Errorf("employee %d: %w", e.ID, ErrEmployeeExists)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return repo.Create(ctx, e)
	})
}

func (s *employeeService) GetByID(ctx context.Context, id int) (*domain.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *employeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.employees.List(ctx)
}

func (s *employeeService) Update(ctx context.Context, e *domain.Employee) (err error) {
	defer observe(ctx, s.observer, "employee.update", time.Now(), &err, map[string]any{"employee_id": e.ID})

	if err = e.Validate(); err != nil {
		return fmt.Errorf("invalid employee: %w", err)
	}
	e.UpdatedAt = time.Now().UTC()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteEmployeeRepo(tx).Update(ctx, e)
	})
}

func (s *employeeService) Delete(ctx context.Context, id int) (err error) {
	defer observe(ctx, s.observer, "employee.delete", time.Now(), &err, map[string]any{"employee_id": id})
	return s.employees.Delete(ctx, id)
}
