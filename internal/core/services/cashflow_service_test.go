package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bookstore_manager/internal/apperrors"
	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	"github.com/SscSPs/bookstore_manager/internal/core/services"
	"github.com/SscSPs/bookstore_manager/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateExpense_DefaultsToCash(t *testing.T) {
	repo := new(MockExpenseRepository)
	repo.On("SaveExpense", mock.Anything, mock.MatchedBy(func(e domain.Expense) bool {
		return e.OwnerID == "owner-1" && e.PaymentMethod == domain.PaymentCash && e.CreatedBy == "user-1"
	})).Return(nil).Once()

	svc := services.NewExpenseService(repo)
	exp, err := svc.CreateExpense(context.Background(), "owner-1", dto.CreateExpenseRequest{
		Amount:   price("75.50"),
		Category: "rent",
	}, "user-1")

	require.NoError(t, err)
	assert.NotEmpty(t, exp.ExpenseID)
	assert.False(t, exp.Date.IsZero())
	repo.AssertExpectations(t)
}

func TestCreateExpense_RejectsNegativeAmount(t *testing.T) {
	repo := new(MockExpenseRepository)
	svc := services.NewExpenseService(repo)

	_, err := svc.CreateExpense(context.Background(), "owner-1", dto.CreateExpenseRequest{
		Amount:   price("-1"),
		Category: "rent",
	}, "user-1")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "SaveExpense", mock.Anything, mock.Anything)
}

func TestCreateDonation_BankMethodKept(t *testing.T) {
	repo := new(MockDonationRepository)
	repo.On("SaveDonation", mock.Anything, mock.AnythingOfType("domain.Donation")).Return(nil).Once()

	svc := services.NewDonationService(repo)
	d, err := svc.CreateDonation(context.Background(), "owner-1", dto.CreateDonationRequest{
		Amount:        price("500"),
		Donor:         "Library Friends",
		PaymentMethod: domain.PaymentBank,
	}, "user-1")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentBank, d.PaymentMethod)
	repo.AssertExpectations(t)
}

func TestListDonations_PassesPage(t *testing.T) {
	repo := new(MockDonationRepository)
	token := "abc"
	next := "def"
	repo.On("ListDonations", mock.Anything, "owner-1", portsrepo.Page{Limit: 10, NextToken: &token}).
		Return([]domain.Donation{{DonationID: "D1"}}, &next, nil).Once()

	svc := services.NewDonationService(repo)
	resp, err := svc.ListDonations(context.Background(), "owner-1", dto.ListParams{Limit: 10, NextToken: &token})

	require.NoError(t, err)
	assert.Len(t, resp.Donations, 1)
	assert.Equal(t, &next, resp.NextToken)
}
