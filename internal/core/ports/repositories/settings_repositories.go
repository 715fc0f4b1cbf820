package repositories

import (
	"context"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
)

// SettingsRepository stores the per-owner opening balances and settings.
type SettingsRepository interface {
	// FindSettings returns apperrors.ErrNotFound when the owner has none yet.
	FindSettings(ctx context.Context, ownerID string) (*domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error
}
