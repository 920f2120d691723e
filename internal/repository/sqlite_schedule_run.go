package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/rota/internal/db"
	"github.com/alexanderramin/rota/internal/domain"
)

// SQLiteScheduleRunRepo implements ScheduleRunRepo. A run spans four
// tables; Create should run inside a db.UnitOfWork.
type SQLiteScheduleRunRepo struct {
	db db.DBTX
}

func NewSQLiteScheduleRunRepo(conn db.DBTX) *SQLiteScheduleRunRepo {
	return &SQLiteScheduleRunRepo{db: conn}
}

const runColumns = `id, created_at, demand_path, day_order, status, shortfall_count`

func (r *SQLiteScheduleRunRepo) Create(ctx context.Context, run *domain.ScheduleRun) error {
	query := `INSERT INTO schedule_runs (` + runColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		formatTime(run.CreatedAt),
		run.DemandPath,
		run.DayOrder,
		string(run.Status),
		len(run.Shortfalls),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule run: %w", err)
	}

	if run.Assignment != nil {
		for _, d := range domain.AllDays {
			for h := 0; h < domain.HoursPerDay; h++ {
				for _, id := range run.Assignment[d][h] {
					_, err := r.db.ExecContext(ctx,
						`INSERT INTO schedule_assignments (run_id, day, hour, employee_id) VALUES (?, ?, ?, ?)`,
						run.ID, int(d), h, id)
					if err != nil {
						return fmt.Errorf("inserting assignment %s %d: %w", d, h, err)
					}
				}
			}
		}
	}

	for id, hours := range run.Hours {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO schedule_hours (run_id, employee_id, hours) VALUES (?, ?, ?)`, run.ID, id, hours)
		if err != nil {
			return fmt.Errorf("inserting hours for employee %d: %w", id, err)
		}
	}

	for _, s := range run.Shortfalls {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO schedule_shortfalls (run_id, day, hour, missing) VALUES (?, ?, ?, ?)`,
			run.ID, int(s.Day), s.Hour, s.Missing)
		if err != nil {
			return fmt.Errorf("inserting shortfall %s %d: %w", s.Day, s.Hour, err)
		}
	}
	return nil
}

func (r *SQLiteScheduleRunRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleRun, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM schedule_runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("schedule run %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	if run.Accepted() {
		if err := r.loadAssignment(ctx, run); err != nil {
			return nil, err
		}
		if err := r.loadHours(ctx, run); err != nil {
			return nil, err
		}
		return run, nil
	}
	if err := r.loadShortfalls(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

func (r *SQLiteScheduleRunRepo) List(ctx context.Context, limit int) ([]*domain.ScheduleRun, error) {
	query := `SELECT ` + runColumns + ` FROM schedule_runs ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing schedule runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.ScheduleRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule runs: %w", err)
	}
	return runs, nil
}

func (r *SQLiteScheduleRunRepo) loadAssignment(ctx context.Context, run *domain.ScheduleRun) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT day, hour, employee_id FROM schedule_assignments WHERE run_id = ? ORDER BY day, hour, employee_id`, run.ID)
	if err != nil {
		return fmt.Errorf("loading assignments: %w", err)
	}
	defer rows.Close()

	var week domain.WeekAssignment
	for rows.Next() {
		var day, hour, id int
		if err := rows.Scan(&day, &hour, &id); err != nil {
			return fmt.Errorf("scanning assignment: %w", err)
		}
		week[day].Add(hour, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating assignments: %w", err)
	}
	run.Assignment = &week
	return nil
}

func (r *SQLiteScheduleRunRepo) loadHours(ctx context.Context, run *domain.ScheduleRun) error {
	rows, err := r.db.QueryContext(ctx, `SELECT employee_id, hours FROM schedule_hours WHERE run_id = ?`, run.ID)
	if err != nil {
		return fmt.Errorf("loading hours: %w", err)
	}
	defer rows.Close()

	run.Hours = make(map[int]int)
	for rows.Next() {
		var id, hours int
		if err := rows.Scan(&id, &hours); err != nil {
			return fmt.Errorf("scanning hours: %w", err)
		}
		run.Hours[id] = hours
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating hours: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRunRepo) loadShortfalls(ctx context.Context, run *domain.ScheduleRun) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT day, hour, missing FROM schedule_shortfalls WHERE run_id = ? ORDER BY day, hour`, run.ID)
	if err != nil {
		return fmt.Errorf("loading shortfalls: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.Shortfall
		var day int
		if err := rows.Scan(&day, &s.Hour, &s.Missing); err != nil {
			return fmt.Errorf("scanning shortfall: %w", err)
		}
		s.Day = domain.Day(day)
		run.Shortfalls = append(run.Shortfalls, s)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating shortfalls: %w", err)
	}
	return nil
}

func scanRun(s rowScanner) (*domain.ScheduleRun, error) {
	var run domain.ScheduleRun
	var createdAt, status string

	err := s.Scan(&run.ID, &createdAt, &run.DemandPath, &run.DayOrder, &status, &run.ShortfallCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning schedule run: %w", err)
	}
	run.Status = domain.RunStatus(status)
	if run.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	return &run, nil
}
