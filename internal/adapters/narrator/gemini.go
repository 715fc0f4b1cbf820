// Package narrator writes plain language commentary on financial summaries
// with a Gemini model.
package narrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	portssvc "github.com/SscSPs/bookstore_manager/internal/core/ports/services"
	"github.com/SscSPs/bookstore_manager/internal/utils/reportfmt"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// ErrRateLimited is returned when the per-minute request budget is spent.
var ErrRateLimited = errors.New("narrative rate limit exceeded")

const systemInstruction = `You are the bookkeeper of a small bookstore.
You receive the store's financial summary as Markdown.
Write three to five sentences for the owner: how the period went, anything
that needs attention (pending receivables, possible duplicate cash,
books missing from the catalogue) and nothing else.
Only use the figures given. Never invent numbers. Do not use headings.`

// Gemini narrates summaries with the Gemini API.
type Gemini struct {
	client  *genai.Client
	model   string
	config  *genai.GenerateContentConfig
	limiter *rate.Limiter
}

var _ portssvc.Narrator = (*Gemini)(nil)

// NewGemini creates a narrator backed by model that sends at most
// perMinute requests a minute. perMinute <= 0 means no limit.
func NewGemini(ctx context.Context, apiKey, model string, perMinute int) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Gemini{
		client: client,
		model:  model,
		config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		},
		limiter: newLimiter(perMinute),
	}, nil
}

func newLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
}

// Narrate implements portssvc.Narrator.
func (g *Gemini) Narrate(ctx context.Context, summary domain.FinancialSummary) (string, error) {
	if !g.limiter.Allow() {
		return "", ErrRateLimited
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(Prompt(summary)), g.config)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("gemini returned no text")
	}
	return text, nil
}

// Prompt is the user message sent for summary. Any earlier narrative is left out.
func Prompt(summary domain.FinancialSummary) string {
	summary.Narrative = ""
	var b strings.Builder
	fmt.Fprintf(&b, "Currency: %s\n\n", summary.CurrencyCode)
	b.WriteString(reportfmt.SummaryMarkdown(summary))
	return b.String()
}
