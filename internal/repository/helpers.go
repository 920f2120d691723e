package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/rota/internal/db"
)

const timeLayout = time.RFC3339

// formatTime stores t in UTC, RFC3339.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(field, s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", field, err)
	}
	return t, nil
}

// nowUTC returns the current time truncated to the stored precision.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// execExpectingRow runs query and wraps ErrNotFound when no row changed.
func execExpectingRow(ctx context.Context, conn db.DBTX, what, query string, args ...any) error {
	res, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
