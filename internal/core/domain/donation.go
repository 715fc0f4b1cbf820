package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Donation is money received without a sale.
type Donation struct {
	DonationID    string          `json:"donationID"`
	OwnerID       string          `json:"ownerID"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Donor         string          `json:"donor"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	AuditFields
}

func (d Donation) Validate() error {
	if d.DonationID == "" {
		return validationErr("donation id is required")
	}
	if d.Date.IsZero() {
		return validationErr("donation %s: date is required", d.DonationID)
	}
	if !d.PaymentMethod.Settled() {
		return validationErr("donation %s: payment method must be CASH or BANK, got %q", d.DonationID, d.PaymentMethod)
	}
	return requireNonNegative("donation "+d.DonationID+": amount", d.Amount)
}
