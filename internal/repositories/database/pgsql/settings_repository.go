package pgsql

import (
	"context"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	"github.com/SscSPs/bookstore_manager/internal/models"
	"github.com/SscSPs/bookstore_manager/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const settingsColumns = `owner_id, opening_cash, opening_bank, opening_stock_value, reference_date,
	office_assets_value, currency_code, created_at, created_by, last_updated_at, last_updated_by`

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

func (r *PgxSettingsRepository) FindSettings(ctx context.Context, ownerID string) (*domain.Settings, error) {
	return findSettings(ctx, r.Pool, ownerID)
}

func findSettings(ctx context.Context, q querier, ownerID string) (*domain.Settings, error) {
	query := `SELECT ` + settingsColumns + ` FROM settings WHERE owner_id = $1;`
	m, err := collectOne[models.Settings](ctx, q, "settings", ownerID, query, ownerID)
	if err != nil {
		return nil, err
	}
	s, err := mapping.ToDomainSettings(*m)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSettings inserts or replaces the owner's settings, keeping the original creation audit.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, s domain.Settings) error {
	query := `
		INSERT INTO settings (` + settingsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (owner_id) DO UPDATE SET
			opening_cash = EXCLUDED.opening_cash,
			opening_bank = EXCLUDED.opening_bank,
			opening_stock_value = EXCLUDED.opening_stock_value,
			reference_date = EXCLUDED.reference_date,
			office_assets_value = EXCLUDED.office_assets_value,
			currency_code = EXCLUDED.currency_code,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	ref := pgtype.Timestamptz{Time: s.Opening.ReferenceDate, Valid: !s.Opening.ReferenceDate.IsZero()}
	_, err := r.Pool.Exec(ctx, query,
		s.OwnerID, s.Opening.Cash, s.Opening.Bank, s.Opening.StockValue, ref,
		s.OfficeAssetsValue, s.CurrencyCode,
		s.CreatedAt, s.CreatedBy, s.LastUpdatedAt, s.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError("failed to save settings for owner "+s.OwnerID, err)
	}
	return nil
}
