package ledger

import (
	"fmt"
	"math"

	"github.com/SscSPs/bookstore_manager/internal/apperrors"
	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned when a record is missing a required field or
// carries a value the computations cannot use.
var ErrInvalidInput = fmt.Errorf("%w: invalid ledger input", apperrors.ErrValidation)

func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

// FiniteAmount converts a float read at an ingestion boundary into a decimal,
// rejecting NaN and infinities.
func FiniteAmount(field string, f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("%w: %s is not a finite number", ErrInvalidInput, field)
	}
	return decimal.NewFromFloat(f), nil
}

func validateBooks(books []domain.Book) error {
	for _, b := range books {
		if err := b.Validate(); err != nil {
			return invalid(err)
		}
	}
	return nil
}

func validateSales(sales []domain.Sale) error {
	for _, s := range sales {
		if err := s.Validate(); err != nil {
			return invalid(err)
		}
	}
	return nil
}

func validatePurchases(purchases []domain.Purchase) error {
	for _, p := range purchases {
		if err := p.Validate(); err != nil {
			return invalid(err)
		}
	}
	return nil
}

func validateExpenses(expenses []domain.Expense) error {
	for _, e := range expenses {
		if err := e.Validate(); err != nil {
			return invalid(err)
		}
	}
	return nil
}

func validateDonations(donations []domain.Donation) error {
	for _, d := range donations {
		if err := d.Validate(); err != nil {
			return invalid(err)
		}
	}
	return nil
}

func validateTransactions(txns []domain.Transaction) error {
	for _, t := range txns {
		if err := t.Validate(); err != nil {
			return invalid(err)
		}
	}
	return nil
}

// ValidateSnapshot checks every collection of s.
func ValidateSnapshot(s domain.Snapshot) error {
	if err := validateBooks(s.Books); err != nil {
		return err
	}
	if err := validateSales(s.Sales); err != nil {
		return err
	}
	if err := validatePurchases(s.Purchases); err != nil {
		return err
	}
	if err := validateExpenses(s.Expenses); err != nil {
		return err
	}
	if err := validateDonations(s.Donations); err != nil {
		return err
	}
	if err := validateTransactions(s.Transactions); err != nil {
		return err
	}
	if err := s.Settings.Validate(); err != nil {
		return invalid(err)
	}
	return nil
}
