package services

import (
	"context"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/SscSPs/bookstore_manager/internal/dto"
)

// ReportingService defines operations for generating financial reports.
// Each report is computed from one snapshot of the owner's records.
type ReportingService interface {
	CashPosition(ctx context.Context, ownerID string, asOf time.Time) (*domain.CashPosition, error)
	Receivables(ctx context.Context, ownerID string) (*domain.OutstandingSummary, error)
	Payables(ctx context.Context, ownerID string) (*domain.OutstandingSummary, error)
	StockValue(ctx context.Context, ownerID string) (*dto.StockValueResponse, error)
	Profit(ctx context.Context, ownerID string, period domain.Period) (*domain.ProfitReport, error)
	BalanceSheet(ctx context.Context, ownerID string, asOf time.Time) (*domain.BalanceSheet, error)
	Dashboard(ctx context.Context, ownerID string, asOf time.Time, trendMonths int) (*domain.Dashboard, error)
	DuplicateAudit(ctx context.Context, ownerID string) (*domain.DuplicateAudit, error)

	// FinancialSummary gathers the balance sheet, profit and audit figures.
	// With narrative set, an AI written commentary is attached when a
	// narrator is configured.
	FinancialSummary(ctx context.Context, ownerID string, period domain.Period, asOf time.Time, narrative bool) (*domain.FinancialSummary, error)
}

// Narrator writes a short commentary for a financial summary.
type Narrator interface {
	Narrate(ctx context.Context, summary domain.FinancialSummary) (string, error)
}
