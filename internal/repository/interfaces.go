package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/rota/internal/domain"
)

// ErrNotFound is wrapped by every GetByID miss.
var ErrNotFound = errors.New("not found")

type EmployeeRepo interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id int) (*domain.Employee, error)
	// List returns every employee ordered by employee number.
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) (int, error)
}

type ScheduleRunRepo interface {
	Create(ctx context.Context, run *domain.ScheduleRun) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleRun, error)
	// List returns run headers, newest first. Assignment, Hours and
	// Shortfalls are not loaded. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*domain.ScheduleRun, error)
}
