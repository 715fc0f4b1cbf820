package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/apperrors"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	"github.com/SscSPs/bookstore_manager/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultPageLimit = 20

	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// mapWriteError translates constraint violations into application sentinels.
func mapWriteError(message string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewAppError(409, message, fmt.Errorf("%w: %s", apperrors.ErrDuplicate, pgErr.ConstraintName))
		case pgForeignKeyViolation, pgCheckViolation:
			return apperrors.NewAppError(400, message, fmt.Errorf("%w: %s", apperrors.ErrValidation, pgErr.Detail))
		}
	}
	return apperrors.NewAppError(500, message, err)
}

// notFound wraps apperrors.ErrNotFound for a missing row.
func notFound(entity, id string) error {
	return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, entity, id)
}

func pageLimit(page portsrepo.Page) int {
	if page.Limit <= 0 {
		return defaultPageLimit
	}
	return page.Limit
}

// datedListing describes a newest-first keyset listing over a table with a
// date column and created_at as the tie-breaker.
type datedListing struct {
	selectFrom string
	dateColumn string
	where      string
	args       []any
}

// listDated fetches one page, reading one extra row to detect a next page.
func listDated[T any](ctx context.Context, q querier, l datedListing, page portsrepo.Page, cursor func(T) (time.Time, time.Time)) ([]T, *string, error) {
	limit := pageLimit(page)
	args := append([]any(nil), l.args...)
	where := l.where

	if token := page.Cursor(); token != "" {
		lastDate, lastCreatedAt, err := pagination.DecodeDateCursor(token)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		}
		args = append(args, lastDate, lastCreatedAt)
		where += fmt.Sprintf(" AND (%s, created_at) < ($%d, $%d)", l.dateColumn, len(args)-1, len(args))
	}
	args = append(args, limit+1)
	query := fmt.Sprintf("%s WHERE %s ORDER BY %s DESC, created_at DESC LIMIT $%d",
		l.selectFrom, where, l.dateColumn, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query "+l.dateColumn+" listing", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan "+l.dateColumn+" listing", err)
	}

	var next *string
	if len(items) > limit {
		lastDate, lastCreatedAt := cursor(items[limit-1])
		token := pagination.EncodeDateCursor(lastDate, lastCreatedAt)
		next = &token
		items = items[:limit]
	}
	return items, next, nil
}

// collectAll runs a query and scans every row by column name.
func collectAll[T any](ctx context.Context, q querier, message, query string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, message, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, apperrors.NewAppError(500, message, err)
	}
	return items, nil
}

// collectOne scans a single row, mapping pgx.ErrNoRows to ErrNotFound.
func collectOne[T any](ctx context.Context, q querier, entity, id, query string, args ...any) (*T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query "+entity+" "+id, err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound(entity, id)
		}
		return nil, apperrors.NewAppError(500, "failed to scan "+entity+" "+id, err)
	}
	return item, nil
}
