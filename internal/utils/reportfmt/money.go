// Package reportfmt renders financial reports for people: amounts in their
// currency's notation, and whole summaries as Markdown or HTML.
package reportfmt

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatAmount renders amount in the notation of the ISO 4217 currency code,
// rounded to the currency's minor unit. Unknown codes fall back to the plain
// decimal followed by the code.
func FormatAmount(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2) + " " + code
	}
	frac := int32(cur.Fraction)
	minor := amount.Round(frac).Shift(frac).IntPart()
	return cur.Formatter().Format(minor)
}
