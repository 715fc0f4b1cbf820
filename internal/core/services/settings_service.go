package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/bookstore_manager/internal/apperrors"
	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookstore_manager/internal/core/ports/services"
	"github.com/SscSPs/bookstore_manager/internal/dto"
	"github.com/shopspring/decimal"
)

type settingsService struct {
	BaseService
	settingsRepo    portsrepo.SettingsRepository
	defaultCurrency string
}

// NewSettingsService creates a new SettingsService. defaultCurrency is the
// display currency of owners that never saved settings.
func NewSettingsService(repo portsrepo.SettingsRepository, defaultCurrency string) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: repo, defaultCurrency: defaultCurrency}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context, ownerID string) (*domain.Settings, error) {
	return loadSettings(ctx, s.settingsRepo, ownerID, s.defaultCurrency)
}

func (s *settingsService) UpdateSettings(ctx context.Context, ownerID string, req dto.UpdateSettingsRequest, userID string) (*domain.Settings, error) {
	settings, err := loadSettings(ctx, s.settingsRepo, ownerID, s.defaultCurrency)
	if err != nil {
		return nil, err
	}

	if req.Cash != nil {
		settings.Opening.Cash = *req.Cash
	}
	if req.Bank != nil {
		settings.Opening.Bank = *req.Bank
	}
	if req.StockValue != nil {
		settings.Opening.StockValue = *req.StockValue
	}
	if req.ReferenceDate != nil {
		settings.Opening.ReferenceDate = req.ReferenceDate.UTC()
	}
	if req.OfficeAssetsValue != nil {
		settings.OfficeAssetsValue = *req.OfficeAssetsValue
	}
	if req.CurrencyCode != nil {
		settings.CurrencyCode = *req.CurrencyCode
	}

	now := s.Now()
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = now
		settings.CreatedBy = userID
	}
	settings.LastUpdatedAt = now
	settings.LastUpdatedBy = userID
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if err := s.settingsRepo.SaveSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings", slog.String("owner_id", ownerID))
		return nil, err
	}
	s.LogInfo(ctx, "Opening balances updated",
		slog.String("owner_id", ownerID),
		slog.String("cash", settings.Opening.Cash.String()),
		slog.String("bank", settings.Opening.Bank.String()))
	return settings, nil
}

// loadSettings returns the stored settings, or zero opening balances when
// the owner has none yet.
func loadSettings(ctx context.Context, repo portsrepo.SettingsRepository, ownerID, defaultCurrency string) (*domain.Settings, error) {
	settings, err := repo.FindSettings(ctx, ownerID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	return &domain.Settings{
		OwnerID: ownerID,
		Opening: domain.OpeningBalances{
			Cash:       decimal.Zero,
			Bank:       decimal.Zero,
			StockValue: decimal.Zero,
		},
		OfficeAssetsValue: decimal.Zero,
		CurrencyCode:      defaultCurrency,
	}, nil
}
