package narrator

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrompt(t *testing.T) {
	summary := domain.FinancialSummary{
		CurrencyCode: "USD",
		Period:       domain.MonthPeriod(2025, time.March),
		Profit: domain.ProfitReport{
			NetProfit: decimal.NewFromInt(80),
		},
		Narrative: "old commentary",
	}

	p := Prompt(summary)

	assert.Contains(t, p, "Currency: USD")
	assert.Contains(t, p, "| **Net profit** | **$80.00** |")
	assert.NotContains(t, p, "Commentary")
}

func TestNarrate_RateLimitedBeforeCallingModel(t *testing.T) {
	g := &Gemini{limiter: newLimiter(1)}
	g.limiter.Allow()

	_, err := g.Narrate(context.Background(), domain.FinancialSummary{})
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestNewLimiter(t *testing.T) {
	l := newLimiter(2)
	assert.True(t, l.Allow())
	assert.True(t, l.Allow())
	assert.False(t, l.Allow())

	unlimited := newLimiter(0)
	for i := 0; i < 100; i++ {
		assert.True(t, unlimited.Allow())
	}
}
