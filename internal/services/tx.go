package services

import (
	"context"

	"gym_frontdesk_backend/internal/repositories"

	"github.com/jmoiron/sqlx"
)

// withTx runs fn inside a database transaction, committing when fn returns nil.
// fn must only use the executor it is given: SQLite handles hold a single connection.
func withTx(ctx context.Context, db *sqlx.DB, op string, fn func(exec repositories.SQLExecutor) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return storageError(op+": begin", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageError(op+": commit", err)
	}
	return nil
}
