package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/rota/internal/db"
	"github.com/alexanderramin/rota/internal/domain"
)

// SQLiteEmployeeRepo implements EmployeeRepo using a SQLite database.
// Availability lives in employee_availability, one row per available hour;
// Create and Update rewrite it, so callers that need atomicity run the repo
// on a transaction from db.UnitOfWork.
type SQLiteEmployeeRepo struct {
	db db.DBTX
}

func NewSQLiteEmployeeRepo(conn db.DBTX) *SQLiteEmployeeRepo {
	return &SQLiteEmployeeRepo{db: conn}
}

const employeeColumns = `id, first_name, last_name, address, role, pay_rate, created_at, updated_at`

func (r *SQLiteEmployeeRepo) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employees (` + employeeColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.FirstName,
		e.LastName,
		e.Address,
		string(e.Compensation.Role),
		e.Compensation.Rate,
		formatTime(e.CreatedAt),
		formatTime(e.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting employee: %w", err)
	}
	if err := r.writeAvailability(ctx, e.ID, e.Availability); err != nil {
		return err
	}
	return nil
}

func (r *SQLiteEmployeeRepo) GetByID(ctx context.Context, id int) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ?`
	e, err := scanEmployee(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("employee %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	avail, err := r.loadAvailability(ctx, `WHERE employee_id = ?`, id)
	if err != nil {
		return nil, err
	}
	e.Availability = avail[id]
	return e, nil
}

func (r *SQLiteEmployeeRepo) List(ctx context.Context) ([]*domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	var employees []*domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employees: %w", err)
	}
	if len(employees) == 0 {
		return employees, nil
	}

	avail, err := r.loadAvailability(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, e := range employees {
		e.Availability = avail[e.ID]
	}
	return employees, nil
}

func (r *SQLiteEmployeeRepo) Update(ctx context.Context, e *domain.Employee) error {
	query := `UPDATE employees SET first_name = ?, last_name = ?, address = ?, role = ?, pay_rate = ?, updated_at = ?
		WHERE id = ?`
	err := execExpectingRow(ctx, r.db, fmt.Sprintf("employee %d", e.ID), query,
		e.FirstName,
		e.LastName,
		e.Address,
		string(e.Compensation.Role),
		e.Compensation.Rate,
		formatTime(e.UpdatedAt),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating employee: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM employee_availability WHERE employee_id = ?`, e.ID); err != nil {
		return fmt.Errorf("clearing availability: %w", err)
	}
	return r.writeAvailability(ctx, e.ID, e.Availability)
}

// Delete removes the employee; availability rows cascade.
func (r *SQLiteEmployeeRepo) Delete(ctx context.Context, id int) error {
	err := execExpectingRow(ctx, r.db, fmt.Sprintf("employee %d", id), `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}
	return nil
}

// DeleteAll clears the roster and returns how many employees were removed.
func (r *SQLiteEmployeeRepo) DeleteAll(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees`)
	if err != nil {
		return 0, fmt.Errorf("clearing roster: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading rows affected: %w", err)
	}
	return int(n), nil
}

func (r *SQLiteEmployeeRepo) writeAvailability(ctx context.Context, id int, a domain.Availability) error {
	for _, d := range domain.AllDays {
		for h := 0; h < domain.HoursPerDay; h++ {
			if !a.IsAvailable(d, h) {
				continue
			}
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO employee_availability (employee_id, day, hour) VALUES (?, ?, ?)`, id, int(d), h)
			if err != nil {
				return fmt.Errorf("inserting availability %s %d: %w", d, h, err)
			}
		}
	}
	return nil
}

// loadAvailability reads availability rows matching where, keyed by
// employee number.
func (r *SQLiteEmployeeRepo) loadAvailability(ctx context.Context, where string, args ...any) (map[int]domain.Availability, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT employee_id, day, hour FROM employee_availability `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("loading availability: %w", err)
	}
	defer rows.Close()

	out := make(map[int]domain.Availability)
	for rows.Next() {
		var id, day, hour int
		if err := rows.Scan(&id, &day, &hour); err != nil {
			return nil, fmt.Errorf("scanning availability row: %w", err)
		}
		a := out[id]
		a.Set(domain.Day(day), hour)
		out[id] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating availability: %w", err)
	}
	return out, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(s rowScanner) (*domain.Employee, error) {
	var e domain.Employee
	var role, createdAt, updatedAt string

	err := s.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Address,
		&role, &e.Compensation.Rate,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning employee: %w", err)
	}
	e.Compensation.Role = domain.Role(role)

	if e.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
