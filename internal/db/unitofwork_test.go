package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/rota/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertEmployee(ctx context.Context, tx db.DBTX, id int) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO employees (id, first_name, last_name, created_at, updated_at)
		VALUES (?, 'First', 'Last', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`, id)
	return err
}

func employeeCount(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM employees`).Scan(&n))
	return n
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertEmployee(ctx, tx, 1); err != nil {
			return err
		}
		return insertEmployee(ctx, tx, 2)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, employeeCount(t, database))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)
	sentinel := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertEmployee(ctx, tx, 1); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	assert.Zero(t, employeeCount(t, database), "no partial roster after rollback")
}

func TestWithinTx_RollbackOnConstraintViolation(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertEmployee(ctx, tx, 5); err != nil {
			return err
		}
		return insertEmployee(ctx, tx, 5)
	})
	require.Error(t, err)
	assert.Zero(t, employeeCount(t, database))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertEmployee(ctx, tx, 3)
			panic("boom")
		})
	})
	assert.Zero(t, employeeCount(t, database))
}
