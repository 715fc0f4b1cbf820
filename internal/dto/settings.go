package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest defines the opening balances and settings an owner may change.
type UpdateSettingsRequest struct {
	Cash              *decimal.Decimal `json:"cash"`
	Bank              *decimal.Decimal `json:"bank"`
	StockValue        *decimal.Decimal `json:"stockValue"`
	ReferenceDate     *time.Time       `json:"referenceDate"`
	OfficeAssetsValue *decimal.Decimal `json:"officeAssetsValue"`
	CurrencyCode      *string          `json:"currencyCode" binding:"omitempty,len=3,uppercase"`
}
