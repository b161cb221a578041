package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	util "github.com/abhay8696/rajmudra-backend/pkg/util"
)

// DBPool is the subset of pgxpool.Pool the repositories rely on. Tests
// substitute a pgxmock pool through the same interface.
type DBPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const pgUniqueViolation = "23505"

// translateStoreError converts low-level pgx failures into the shared domain
// error taxonomy. uniqueFields maps constraint names onto candidate-key field
// names; values maps field names onto the submitted values, so a
// storage-level rejection reports the same field+value shape as the
// application-level pre-check.
func translateStoreError(err error, resource string, uniqueFields map[string]string, values map[string]string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return util.NewNotFound(resource)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		if field, ok := uniqueFields[pgErr.ConstraintName]; ok {
			return util.NewDuplicate(field, values[field])
		}
		return util.NewDuplicate("unknown", "")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return util.NewStoreUnavailable(err)
	}
	return util.MapError(err)
}
