package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Ping checks that the database is reachable
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// getOne runs a single-row query. A missing row yields (nil, nil).
func getOne[T any](ctx context.Context, q sqlx.QueryerContext, query string, args ...any) (*T, error) {
	var dest T
	if err := sqlx.GetContext(ctx, q, &dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &dest, nil
}

// selectAll never returns a nil slice so empty lists encode as [].
func selectAll[T any](ctx context.Context, q sqlx.QueryerContext, query string, args ...any) ([]T, error) {
	out := make([]T, 0)
	if err := sqlx.SelectContext(ctx, q, &out, query, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// deleteOwned deletes a row by id and reports whether it existed.
func (r *Repository) deleteOwned(ctx context.Context, table string, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete from %s: %w", table, err)
	}
	return affected(res)
}

// affected reports whether a statement touched at least one row
func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// withTx runs fn inside a transaction, rolling back on error.
func (r *Repository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// ErrRowMismatch is returned when a multi-row write touches a row that does not match its predicate.
var ErrRowMismatch = errors.New("row does not match")

// ErrDuplicate is returned when an insert violates a unique constraint.
var ErrDuplicate = errors.New("duplicate record")

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
