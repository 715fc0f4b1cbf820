package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/SscSPs/bookstore_manager/internal/core/ledger"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookstore_manager/internal/core/ports/services"
	"github.com/SscSPs/bookstore_manager/internal/dto"
)

// reportingService implements the ReportingService interface on top of the
// ledger package. Every report reads one snapshot.
type reportingService struct {
	BaseService
	snapshotRepo    portsrepo.SnapshotRepository
	reconciler      ledger.Reconciler
	narrator        portssvc.Narrator
	defaultCurrency string
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithDuplicateWindow limits duplicate cash matching to payments within d of
// the sale. Zero matches regardless of date.
func WithDuplicateWindow(d time.Duration) ReportingServiceOption {
	return func(s *reportingService) {
		s.reconciler.Window = d
	}
}

// WithNarrator enables AI commentary on financial summaries.
func WithNarrator(n portssvc.Narrator) ReportingServiceOption {
	return func(s *reportingService) {
		s.narrator = n
	}
}

// WithReportingCurrency sets the currency shown when an owner has none saved.
func WithReportingCurrency(code string) ReportingServiceOption {
	return func(s *reportingService) {
		s.defaultCurrency = code
	}
}

// WithReportingClock replaces the clock used for "now".
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.SnapshotRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{snapshotRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) snapshot(ctx context.Context, ownerID string, asOf time.Time) (domain.Snapshot, error) {
	if asOf.IsZero() {
		asOf = s.Now()
	}
	snap, err := s.snapshotRepo.LoadSnapshot(ctx, ownerID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to load snapshot",
			slog.String("owner_id", ownerID),
			slog.String("asOf", asOf.Format(time.RFC3339)))
		return domain.Snapshot{}, fmt.Errorf("failed to load records: %w", err)
	}
	return snap, nil
}

// computeFailed logs a ledger failure. Ledger errors wrap ErrInvalidInput and
// are returned unchanged so handlers can map them.
func (s *reportingService) computeFailed(ctx context.Context, err error, report, ownerID string) error {
	s.LogError(ctx, err, "Failed to compute report", slog.String("report", report), slog.String("owner_id", ownerID))
	return err
}

func (s *reportingService) CashPosition(ctx context.Context, ownerID string, asOf time.Time) (*domain.CashPosition, error) {
	snap, err := s.snapshot(ctx, ownerID, asOf)
	if err != nil {
		return nil, err
	}
	pos, err := s.reconciler.ComputeCashAndBank(snap)
	if err != nil {
		return nil, s.computeFailed(ctx, err, "cash", ownerID)
	}
	if n := len(pos.ExcludedDuplicates); n > 0 {
		s.LogWarn(ctx, "Duplicate cash events excluded from cash position", slog.Int("count", n))
	}
	return &pos, nil
}

func (s *reportingService) Receivables(ctx context.Context, ownerID string) (*domain.OutstandingSummary, error) {
	snap, err := s.snapshot(ctx, ownerID, time.Time{})
	if err != nil {
		return nil, err
	}
	sum, err := ledger.ComputeReceivables(snap.Transactions)
	if err != nil {
		return nil, s.computeFailed(ctx, err, "receivables", ownerID)
	}
	return &sum, nil
}

func (s *reportingService) Payables(ctx context.Context, ownerID string) (*domain.OutstandingSummary, error) {
	snap, err := s.snapshot(ctx, ownerID, time.Time{})
	if err != nil {
		return nil, err
	}
	sum, err := ledger.ComputePayables(snap.Transactions)
	if err != nil {
		return nil, s.computeFailed(ctx, err, "payables", ownerID)
	}
	return &sum, nil
}

func (s *reportingService) StockValue(ctx context.Context, ownerID string) (*dto.StockValueResponse, error) {
	snap, err := s.snapshot(ctx, ownerID, time.Time{})
	if err != nil {
		return nil, err
	}
	value, err := ledger.ComputeStockValue(snap.Books)
	if err != nil {
		return nil, s.computeFailed(ctx, err, "stock-value", ownerID)
	}
	return &dto.StockValueResponse{StockValue: value, BookCount: len(snap.Books)}, nil
}

func (s *reportingService) Profit(ctx context.Context, ownerID string, period domain.Period) (*domain.ProfitReport, error) {
	snap, err := s.snapshot(ctx, ownerID, time.Time{})
	if err != nil {
		return nil, err
	}
	report, err := ledger.ComputeProfitReport(snap, period)
	if err != nil {
		return nil, s.computeFailed(ctx, err, "profit", ownerID)
	}
	s.warnLookupMisses(ctx, report.Gross.Misses)
	return &report, nil
}

func (s *reportingService) BalanceSheet(ctx context.Context, ownerID string, asOf time.Time) (*domain.BalanceSheet, error) {
	snap, err := s.snapshot(ctx, ownerID, asOf)
	if err != nil {
		return nil, err
	}
	sheet, err := s.reconciler.BuildBalanceSheet(snap)
	if err != nil {
		return nil, s.computeFailed(ctx, err, "balance-sheet", ownerID)
	}
	return &sheet, nil
}

func (s *reportingService) Dashboard(ctx context.Context, ownerID string, asOf time.Time, trendMonths int) (*domain.Dashboard, error) {
	snap, err := s.snapshot(ctx, ownerID, asOf)
	if err != nil {
		return nil, err
	}
	dash, err := s.reconciler.BuildDashboard(snap, trendMonths)
	if err != nil {
		return nil, s.computeFailed(ctx, err, "dashboard", ownerID)
	}
	if dash.CurrentMonth.LookupMisses > 0 {
		s.LogWarn(ctx, "Sale items reference missing books", slog.Int("count", dash.CurrentMonth.LookupMisses))
	}
	return &dash, nil
}

func (s *reportingService) DuplicateAudit(ctx context.Context, ownerID string) (*domain.DuplicateAudit, error) {
	snap, err := s.snapshot(ctx, ownerID, time.Time{})
	if err != nil {
		return nil, err
	}
	if err := ledger.ValidateSnapshot(snap); err != nil {
		return nil, s.computeFailed(ctx, err, "duplicates", ownerID)
	}
	audit := ledger.BuildDuplicateAudit(s.reconciler.FindDuplicateCashEvents(snap.Sales, snap.Transactions))
	s.LogInfo(ctx, "Duplicate cash audit completed",
		slog.Int("pairs", len(audit.Pairs)),
		slog.String("amount", audit.Amount.String()))
	return &audit, nil
}

func (s *reportingService) FinancialSummary(ctx context.Context, ownerID string, period domain.Period, asOf time.Time, narrative bool) (*domain.FinancialSummary, error) {
	snap, err := s.snapshot(ctx, ownerID, asOf)
	if err != nil {
		return nil, err
	}

	summary, err := BuildFinancialSummary(s.reconciler, snap, period, s.Now())
	if err != nil {
		return nil, s.computeFailed(ctx, err, "summary", ownerID)
	}
	if summary.CurrencyCode == "" {
		summary.CurrencyCode = s.defaultCurrency
	}
	s.warnLookupMisses(ctx, summary.Profit.Gross.Misses)

	if narrative {
		if s.narrator == nil {
			s.LogDebug(ctx, "Narrative requested but no narrator is configured")
		} else if text, err := s.narrator.Narrate(ctx, summary); err != nil {
			// The figures stand on their own; a failed commentary is not fatal.
			s.LogWarn(ctx, "Failed to generate report narrative", slog.String("error", err.Error()))
		} else {
			summary.Narrative = text
		}
	}
	return &summary, nil
}

func (s *reportingService) warnLookupMisses(ctx context.Context, misses []domain.LookupMiss) {
	if len(misses) == 0 {
		return
	}
	ids := make([]string, 0, len(misses))
	for _, m := range misses {
		ids = append(ids, m.ID)
	}
	s.LogWarn(ctx, "Sale items reference missing books; excluded from gross profit",
		slog.Int("count", len(misses)),
		slog.Any("book_ids", ids))
}

// BuildFinancialSummary computes every figure of the financial summary from
// one snapshot. It is shared by the API and the ledgerctl command.
func BuildFinancialSummary(r ledger.Reconciler, snap domain.Snapshot, period domain.Period, generatedAt time.Time) (domain.FinancialSummary, error) {
	sheet, err := r.BuildBalanceSheet(snap)
	if err != nil {
		return domain.FinancialSummary{}, err
	}
	profit, err := ledger.ComputeProfitReport(snap, period)
	if err != nil {
		return domain.FinancialSummary{}, err
	}
	receivables, err := ledger.ComputeOutstandingAsOf(snap.Transactions, domain.Receivable, snap.AsOf)
	if err != nil {
		return domain.FinancialSummary{}, err
	}
	payables, err := ledger.ComputeOutstandingAsOf(snap.Transactions, domain.Payable, snap.AsOf)
	if err != nil {
		return domain.FinancialSummary{}, err
	}
	return domain.FinancialSummary{
		GeneratedAt:  generatedAt,
		CurrencyCode: snap.Settings.CurrencyCode,
		Period:       period,
		BalanceSheet: sheet,
		Profit:       profit,
		Receivables:  receivables,
		Payables:     payables,
		Duplicates:   ledger.BuildDuplicateAudit(r.FindDuplicateCashEvents(snap.Sales, snap.Transactions)),
	}, nil
}
