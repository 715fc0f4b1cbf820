package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashPosition is the derived cash and bank balance.
type CashPosition struct {
	Cash decimal.Decimal `json:"cash"`
	Bank decimal.Decimal `json:"bank"`
	// ExcludedDuplicates lists customer payments left out because the paired
	// sale already counted the same money.
	ExcludedDuplicates []DuplicateCashEvent `json:"excludedDuplicates"`
}

// Total returns cash + bank.
func (c CashPosition) Total() decimal.Decimal {
	return c.Cash.Add(c.Bank)
}

// DuplicateCashEvent pairs a cash/bank sale with a paid customer payment that
// represents the same money. It is surfaced for a human to resolve.
type DuplicateCashEvent struct {
	Sale        Sale        `json:"sale"`
	Transaction Transaction `json:"transaction"`
	// Linked is true when the transaction references the sale by id.
	Linked bool `json:"linked"`
}

// OutstandingSummary aggregates pending receivables or payables.
// ByCustomer uses "" for entries without a customer.
type OutstandingSummary struct {
	PendingAmount decimal.Decimal            `json:"pendingAmount"`
	PendingCount  int                        `json:"pendingCount"`
	ByCustomer    map[string]decimal.Decimal `json:"byCustomer"`
}

// LookupKind names the collection a missed id was looked up in.
type LookupKind string

const (
	LookupBook     LookupKind = "BOOK"
	LookupCustomer LookupKind = "CUSTOMER"
)

// LookupMiss records a reference to a record that no longer exists. For a
// book miss the sale line contributed zero and Revenue is what it would have
// added; for a customer miss Revenue is the pending amount owed under that id.
type LookupMiss struct {
	Kind     LookupKind      `json:"kind"`
	ID       string          `json:"id"`
	SaleID   string          `json:"saleID,omitempty"`
	Quantity int64           `json:"quantity,omitempty"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// GrossProfit is revenue minus production cost of the books sold in a period.
type GrossProfit struct {
	Period      Period          `json:"period"`
	Revenue     decimal.Decimal `json:"revenue"`
	CostOfGoods decimal.Decimal `json:"costOfGoods"`
	Amount      decimal.Decimal `json:"amount"`
	Misses      []LookupMiss    `json:"misses"`
}

// ProfitReport keeps net profit (donations excluded) and net result
// (donations added back) as separate figures.
type ProfitReport struct {
	Period    Period          `json:"period"`
	Gross     GrossProfit     `json:"gross"`
	Expenses  decimal.Decimal `json:"expenses"`
	NetProfit decimal.Decimal `json:"netProfit"`
	Donations decimal.Decimal `json:"donations"`
	NetResult decimal.Decimal `json:"netResult"`
}

// BalanceSheet is the store's position. Equity is always TotalAssets - Payables.
type BalanceSheet struct {
	AsOf         time.Time       `json:"asOf"`
	Cash         decimal.Decimal `json:"cash"`
	Bank         decimal.Decimal `json:"bank"`
	Receivables  decimal.Decimal `json:"receivables"`
	StockValue   decimal.Decimal `json:"stockValue"`
	OfficeAssets decimal.Decimal `json:"officeAssets"`
	TotalAssets  decimal.Decimal `json:"totalAssets"`
	Payables     decimal.Decimal `json:"payables"`
	Equity       decimal.Decimal `json:"equity"`
}

// MonthlyStats are the dashboard figures of one calendar month.
type MonthlyStats struct {
	Month        YearMonth       `json:"month"`
	SalesCount   int             `json:"salesCount"`
	ItemsSold    int64           `json:"itemsSold"`
	SalesTotal   decimal.Decimal `json:"salesTotal"`
	Purchases    decimal.Decimal `json:"purchases"`
	GrossProfit  decimal.Decimal `json:"grossProfit"`
	Expenses     decimal.Decimal `json:"expenses"`
	NetProfit    decimal.Decimal `json:"netProfit"`
	Donations    decimal.Decimal `json:"donations"`
	NetResult    decimal.Decimal `json:"netResult"`
	LookupMisses int             `json:"lookupMisses"`
}

// Dashboard is the landing view of the application.
type Dashboard struct {
	AsOf         time.Time          `json:"asOf"`
	CashPosition CashPosition       `json:"cashPosition"`
	Receivables  OutstandingSummary `json:"receivables"`
	Payables     OutstandingSummary `json:"payables"`
	StockValue   decimal.Decimal    `json:"stockValue"`
	BookCount    int                `json:"bookCount"`
	CurrentMonth MonthlyStats       `json:"currentMonth"`
	Trend        []MonthlyStats     `json:"trend"`
}

// DuplicateAudit is the result of the duplicate cash event audit.
type DuplicateAudit struct {
	Pairs  []DuplicateCashEvent `json:"pairs"`
	Amount decimal.Decimal      `json:"amount"` // money that would be double counted
}

// FinancialSummary bundles the figures of a financial report with an optional narrative.
type FinancialSummary struct {
	GeneratedAt  time.Time          `json:"generatedAt"`
	CurrencyCode string             `json:"currencyCode"`
	Period       Period             `json:"period"`
	BalanceSheet BalanceSheet       `json:"balanceSheet"`
	Profit       ProfitReport       `json:"profit"`
	Receivables  OutstandingSummary `json:"receivables"`
	Payables     OutstandingSummary `json:"payables"`
	Duplicates   DuplicateAudit     `json:"duplicates"`
	Narrative    string             `json:"narrative,omitempty"`
}
