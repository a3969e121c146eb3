// Package postgres provides the PostgreSQL-backed implementation of the store
// contract on top of a pgx connection pool.
package postgres

import (
	"context"
	"errors"

	"github.com/feedbackhub/feedback-backend/internal/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

// DB is the subset of pgxpool.Pool the store uses. Narrowing to an interface
// lets tests substitute a pgxmock pool.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Ensure Store implements the full store contract.
var _ store.Store = (*Store)(nil)

// Store implements store.Store against PostgreSQL. Every operation is a
// single statement; concurrency control is left to the database engine.
type Store struct {
	db DB
}

// New creates a Store on top of the given pool.
func New(db DB) *Store {
	return &Store{db: db}
}

// Mode identifies this backend for health reporting.
func (s *Store) Mode() string {
	return "postgres"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return false
}
