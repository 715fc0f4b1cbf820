package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpeningBalances are the figures the store started tracking from.
// Records dated before ReferenceDate are considered part of these figures.
type OpeningBalances struct {
	Cash          decimal.Decimal `json:"cash"`
	Bank          decimal.Decimal `json:"bank"`
	StockValue    decimal.Decimal `json:"stockValue"`
	ReferenceDate time.Time       `json:"referenceDate"`
}

// Settings is the per-owner configuration set at onboarding.
type Settings struct {
	OwnerID           string          `json:"ownerID"`
	Opening           OpeningBalances `json:"opening"`
	OfficeAssetsValue decimal.Decimal `json:"officeAssetsValue"`
	CurrencyCode      string          `json:"currencyCode"`
	AuditFields
}

// Validate checks the settings. Opening cash and bank may be negative (overdraft).
func (s Settings) Validate() error {
	if err := requireNonNegative("opening stock value", s.Opening.StockValue); err != nil {
		return err
	}
	return requireNonNegative("office assets value", s.OfficeAssetsValue)
}
