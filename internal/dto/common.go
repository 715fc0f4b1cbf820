package dto

import (
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
)

// ListParams holds cursor pagination query parameters.
type ListParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// Page converts the query parameters to a repository page.
func (p ListParams) Page() portsrepo.Page {
	return portsrepo.Page{Limit: p.Limit, NextToken: p.NextToken}
}

// dateOrNow returns *d, or now when the request left the date out.
func dateOrNow(d *time.Time, now time.Time) time.Time {
	if d == nil || d.IsZero() {
		return now
	}
	return *d
}

// methodOrCash defaults an omitted payment method to CASH.
func methodOrCash(m domain.PaymentMethod) domain.PaymentMethod {
	if m == "" {
		return domain.PaymentCash
	}
	return m
}
