package dto

import (
	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations adds the custom binding tags used by the request DTOs:
//
//	paymentmethod  CASH, BANK or DUE
//	settledmethod  CASH or BANK
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
		return domain.PaymentMethod(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("settledmethod", func(fl validator.FieldLevel) bool {
		return domain.PaymentMethod(fl.Field().String()).Settled()
	})
}
