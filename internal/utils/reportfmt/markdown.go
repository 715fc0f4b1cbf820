package reportfmt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/SscSPs/bookstore_manager/internal/core/ledger"
	"github.com/shopspring/decimal"
)

type amountFunc func(decimal.Decimal) string

func amounts(code string) amountFunc {
	return func(d decimal.Decimal) string { return FormatAmount(d, code) }
}

// SummaryMarkdown renders a financial summary as a Markdown document.
func SummaryMarkdown(s domain.FinancialSummary) string {
	var b strings.Builder
	amt := amounts(s.CurrencyCode)

	fmt.Fprintf(&b, "# Financial Summary %s\n\n", s.Period)
	fmt.Fprintf(&b, "Generated %s, balances as of %s.\n",
		s.GeneratedAt.Format("2006-01-02 15:04"), s.BalanceSheet.AsOf.Format("2006-01-02"))

	writeBalanceSheet(&b, s.BalanceSheet, amt)
	writeProfit(&b, s.Profit, amt)
	writeOutstanding(&b, "Receivables", s.Receivables, amt)
	writeOutstanding(&b, "Payables", s.Payables, amt)
	if len(s.Duplicates.Pairs) > 0 {
		writeDuplicates(&b, s.Duplicates, amt)
	}

	if s.Narrative != "" {
		fmt.Fprint(&b, "\n## Commentary\n\n")
		fmt.Fprintln(&b, strings.TrimSpace(s.Narrative))
	}
	return b.String()
}

// BalanceSheetMarkdown renders a balance sheet and the duplicates left out of its cash.
func BalanceSheetMarkdown(bs domain.BalanceSheet, excluded []domain.DuplicateCashEvent, code string) string {
	var b strings.Builder
	amt := amounts(code)
	fmt.Fprintf(&b, "# Balance Sheet as of %s\n", bs.AsOf.Format("2006-01-02 15:04"))
	writeBalanceSheet(&b, bs, amt)
	if len(excluded) > 0 {
		writeDuplicates(&b, ledger.BuildDuplicateAudit(excluded), amt)
	}
	return b.String()
}

// ProfitMarkdown renders a profit report.
func ProfitMarkdown(p domain.ProfitReport, code string) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Profit Report\n")
	writeProfit(&b, p, amounts(code))
	if n := len(p.Gross.Misses); n > 0 {
		fmt.Fprint(&b, "\n## Missing Books\n\n")
		fmt.Fprintln(&b, "| Book | Sale | Quantity |")
		fmt.Fprintln(&b, "|:---|:---|---:|")
		for _, m := range p.Gross.Misses {
			fmt.Fprintf(&b, "| %s | %s | %d |\n", m.ID, m.SaleID, m.Quantity)
		}
	}
	return b.String()
}

// DuplicateAuditMarkdown renders the duplicate cash audit.
func DuplicateAuditMarkdown(a domain.DuplicateAudit, code string) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Duplicate Cash Audit\n")
	if len(a.Pairs) == 0 {
		fmt.Fprint(&b, "\nNo customer payment duplicates a cash or bank sale.\n")
		return b.String()
	}
	writeDuplicates(&b, a, amounts(code))
	return b.String()
}

func writeBalanceSheet(b *strings.Builder, bs domain.BalanceSheet, amt amountFunc) {
	fmt.Fprint(b, "\n## Balance Sheet\n\n")
	fmt.Fprintln(b, "| Item | Amount |")
	fmt.Fprintln(b, "|:---|---:|")
	rows := [][2]string{
		{"Cash", amt(bs.Cash)},
		{"Bank", amt(bs.Bank)},
		{"Receivables", amt(bs.Receivables)},
		{"Stock", amt(bs.StockValue)},
		{"Office assets", amt(bs.OfficeAssets)},
		{"**Total assets**", "**" + amt(bs.TotalAssets) + "**"},
		{"Payables", amt(bs.Payables)},
		{"**Equity**", "**" + amt(bs.Equity) + "**"},
	}
	for _, r := range rows {
		fmt.Fprintf(b, "| %s | %s |\n", r[0], r[1])
	}
}

func writeProfit(b *strings.Builder, p domain.ProfitReport, amt amountFunc) {
	fmt.Fprintf(b, "\n## Profit %s\n\n", p.Period)
	fmt.Fprintln(b, "| Item | Amount |")
	fmt.Fprintln(b, "|:---|---:|")
	fmt.Fprintf(b, "| Revenue | %s |\n", amt(p.Gross.Revenue))
	fmt.Fprintf(b, "| Cost of goods | %s |\n", amt(p.Gross.CostOfGoods))
	fmt.Fprintf(b, "| Gross profit | %s |\n", amt(p.Gross.Amount))
	fmt.Fprintf(b, "| Expenses | %s |\n", amt(p.Expenses))
	fmt.Fprintf(b, "| **Net profit** | **%s** |\n", amt(p.NetProfit))
	fmt.Fprintf(b, "| Donations | %s |\n", amt(p.Donations))
	fmt.Fprintf(b, "| **Net result** | **%s** |\n", amt(p.NetResult))

	if n := len(p.Gross.Misses); n > 0 {
		fmt.Fprintf(b, "\n%d sale line(s) reference books that no longer exist and were left out of gross profit.\n", n)
	}
}

func writeOutstanding(b *strings.Builder, title string, o domain.OutstandingSummary, amt amountFunc) {
	fmt.Fprintf(b, "\n## %s\n\n", title)
	fmt.Fprintf(b, "%d pending, %s in total.\n", o.PendingCount, amt(o.PendingAmount))
	if len(o.ByCustomer) == 0 {
		return
	}
	ids := make([]string, 0, len(o.ByCustomer))
	for id := range o.ByCustomer {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	fmt.Fprintln(b)
	fmt.Fprintln(b, "| Customer | Pending |")
	fmt.Fprintln(b, "|:---|---:|")
	for _, id := range ids {
		name := id
		if name == "" {
			name = "(none)"
		}
		fmt.Fprintf(b, "| %s | %s |\n", name, amt(o.ByCustomer[id]))
	}
}

func writeDuplicates(b *strings.Builder, a domain.DuplicateAudit, amt amountFunc) {
	fmt.Fprint(b, "\n## Possible Duplicate Cash\n\n")
	fmt.Fprintf(b, "%d customer payment(s) match a cash or bank sale, %s in total. They are excluded from cash.\n\n",
		len(a.Pairs), amt(a.Amount))
	fmt.Fprintln(b, "| Sale | Transaction | Amount | Linked |")
	fmt.Fprintln(b, "|:---|:---|---:|:---:|")
	for _, pair := range a.Pairs {
		linked := ""
		if pair.Linked {
			linked = "yes"
		}
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n",
			pair.Sale.SaleID, pair.Transaction.TransactionID, amt(pair.Transaction.Amount), linked)
	}
}
