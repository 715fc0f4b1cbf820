package reportfmt

import (
	"bytes"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var htmlRenderer = goldmark.New(goldmark.WithExtensions(extension.Table))

// SummaryHTML renders a financial summary as an HTML fragment.
func SummaryHTML(s domain.FinancialSummary) (string, error) {
	var buf bytes.Buffer
	if err := htmlRenderer.Convert([]byte(SummaryMarkdown(s)), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
