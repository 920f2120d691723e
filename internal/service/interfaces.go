package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/rota/internal/contract"
	"github.com/alexanderramin/rota/internal/domain"
	"github.com/alexanderramin/rota/internal/importer"
)

var (
	// ErrEmployeeExists is returned when an employee number is already taken.
	ErrEmployeeExists = errors.New("employee already exists")
	// ErrScheduleRejected marks a week that could not meet demand. Generate
	// does not return it; callers that treat rejection as failure do.
	ErrScheduleRejected = errors.New("schedule rejected: demand not met")
)

type EmployeeService interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id int) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id int) error
}

type RosterService interface {
	// ImportRoster loads a roster file. With replace, the current roster is
	// cleared first; otherwise an existing employee number fails the import.
	ImportRoster(ctx context.Context, path string, replace bool) (*contract.RosterImportResult, error)
	ImportRosterFromSchema(ctx context.Context, schema *importer.RosterSchema, replace bool) (*contract.RosterImportResult, error)
	// ExportRoster writes the stored roster to path and returns the count.
	ExportRoster(ctx context.Context, path string) (int, error)
}

type ScheduleService interface {
	// Generate schedules one week. A rejected week is a normal response,
	// not an error; errors mean the run could not be attempted.
	Generate(ctx context.Context, req contract.ScheduleRequest) (*contract.ScheduleResponse, error)
	GetRun(ctx context.Context, id string) (*domain.ScheduleRun, error)
	ListRuns(ctx context.Context, limit int) ([]*domain.ScheduleRun, error)
}
