package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
)

// SnapshotRepository loads every collection of an owner as of one instant.
type SnapshotRepository interface {
	LoadSnapshot(ctx context.Context, ownerID string, asOf time.Time) (domain.Snapshot, error)
}
