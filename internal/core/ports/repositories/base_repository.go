package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager is implemented by repositories whose writes must land
// together, such as a sale with its stock decrements and receivable.
// Rollback after Commit is a no-op.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// Page selects one page of a keyset listing. A zero Limit means the
// repository default.
type Page struct {
	Limit     int
	NextToken *string
}

// Cursor returns the continuation token, or "" on the first page.
func (p Page) Cursor() string {
	if p.NextToken == nil {
		return ""
	}
	return *p.NextToken
}
