package services

import (
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookstore_manager/internal/core/ports/services"
	"github.com/SscSPs/bookstore_manager/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, narrator portssvc.Narrator) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Inventory = NewInventoryService(repos.BookRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo, repos.TransactionRepo)
	container.Sale = NewSaleService(repos.SaleRepo, repos.BookRepo, repos.CustomerRepo, repos.TransactionRepo)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.BookRepo, repos.TransactionRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Donation = NewDonationService(repos.DonationRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.SaleRepo, repos.PurchaseRepo, repos.CustomerRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo, cfg.CurrencyCode)

	reportingOpts := []ReportingServiceOption{
		WithDuplicateWindow(cfg.DuplicateWindow),
		WithReportingCurrency(cfg.CurrencyCode),
	}
	if narrator != nil {
		reportingOpts = append(reportingOpts, WithNarrator(narrator))
	}
	container.Reporting = NewReportingService(repos.SnapshotRepo, reportingOpts...)

	return container
}
