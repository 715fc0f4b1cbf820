package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/apperrors"
	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/SscSPs/bookstore_manager/internal/core/services"
	"github.com/SscSPs/bookstore_manager/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_DefaultsWhenNoneSaved(t *testing.T) {
	repo := new(MockSettingsRepository)
	repo.On("FindSettings", mock.Anything, "owner-1").Return(nil, apperrors.ErrNotFound).Once()
	svc := services.NewSettingsService(repo, "BDT")

	settings, err := svc.GetSettings(context.Background(), "owner-1")

	require.NoError(t, err)
	assert.True(t, settings.Opening.Cash.IsZero())
	assert.Equal(t, "BDT", settings.CurrencyCode)
	assert.True(t, settings.Opening.ReferenceDate.IsZero())
}

func TestSettingsService_UpdateOpeningBalances(t *testing.T) {
	repo := new(MockSettingsRepository)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.On("FindSettings", mock.Anything, "owner-1").Return(&domain.Settings{
		OwnerID:      "owner-1",
		CurrencyCode: "BDT",
		AuditFields:  domain.AuditFields{CreatedAt: created, CreatedBy: "user-0"},
	}, nil).Once()
	repo.On("SaveSettings", mock.Anything, mock.MatchedBy(func(s domain.Settings) bool {
		return s.Opening.Cash.Equal(decimal.NewFromInt(5000)) && s.CreatedBy == "user-0" && s.LastUpdatedBy == "user-1"
	})).Return(nil).Once()
	svc := services.NewSettingsService(repo, "BDT")

	ref := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	settings, err := svc.UpdateSettings(context.Background(), "owner-1", dto.UpdateSettingsRequest{
		Cash:          price("5000"),
		ReferenceDate: &ref,
	}, "user-1")

	require.NoError(t, err)
	assert.Equal(t, ref, settings.Opening.ReferenceDate)
	assert.Equal(t, created, settings.CreatedAt)
	repo.AssertExpectations(t)
}

func TestSettingsService_NegativeStockValueRejected(t *testing.T) {
	repo := new(MockSettingsRepository)
	repo.On("FindSettings", mock.Anything, "owner-1").Return(nil, apperrors.ErrNotFound).Once()
	svc := services.NewSettingsService(repo, "BDT")

	_, err := svc.UpdateSettings(context.Background(), "owner-1", dto.UpdateSettingsRequest{StockValue: price("-1")}, "user-1")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "SaveSettings", mock.Anything, mock.Anything)
}
