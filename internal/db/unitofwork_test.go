package db_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/avictorov/studydesk/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertSubject(ctx context.Context, tx db.DBTX, name string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO subjects (name, created_at, updated_at)
		VALUES (?, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`, name)
	return err
}

func countSubjects(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM subjects`).Scan(&n))
	return n
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertSubject(ctx, tx, "Calculus"); err != nil {
			return err
		}
		return insertSubject(ctx, tx, "Physics")
	})
	require.NoError(t, err)
	assert.Equal(t, 2, countSubjects(t, database))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertSubject(ctx, tx, "Calculus"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.Equal(t, 0, countSubjects(t, database), "insert should roll back with the failing callback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertSubject(ctx, tx, "Calculus")
			panic("boom")
		})
	})
	assert.Equal(t, 0, countSubjects(t, database))
}
