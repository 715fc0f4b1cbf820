package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/apperrors"
	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportPeriodQuery selects the calendar months of a report. Either Month,
// or From and To, in YYYY-MM form; the current month when all are empty.
type ReportPeriodQuery struct {
	Month string `form:"month"`
	From  string `form:"from"`
	To    string `form:"to"`
}

// Period resolves the query against now.
func (q ReportPeriodQuery) Period(now time.Time) (domain.Period, error) {
	switch {
	case q.Month != "":
		if q.From != "" || q.To != "" {
			return domain.Period{}, fmt.Errorf("%w: month cannot be combined with from/to", apperrors.ErrValidation)
		}
		ym, err := domain.ParseYearMonth(q.Month)
		if err != nil {
			return domain.Period{}, err
		}
		return domain.Period{From: ym, To: ym}, nil
	case q.From != "" || q.To != "":
		if q.From == "" || q.To == "" {
			return domain.Period{}, fmt.Errorf("%w: from and to must be given together", apperrors.ErrValidation)
		}
		from, err := domain.ParseYearMonth(q.From)
		if err != nil {
			return domain.Period{}, err
		}
		to, err := domain.ParseYearMonth(q.To)
		if err != nil {
			return domain.Period{}, err
		}
		p := domain.Period{From: from, To: to}
		return p, p.Validate()
	default:
		current := domain.YearMonthOf(now)
		return domain.Period{From: current, To: current}, nil
	}
}

// AsOfQuery selects the instant of a snapshot report, YYYY-MM-DD or RFC 3339.
type AsOfQuery struct {
	AsOf string `form:"asOf"`
}

// Time parses AsOf. A bare date means the end of that day in UTC. The zero
// time is returned when AsOf is empty, which services read as "now".
func (q AsOfQuery) Time() (time.Time, error) {
	if q.AsOf == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, q.AsOf); err == nil {
		return t.Add(24*time.Hour - time.Nanosecond), nil
	}
	t, err := time.Parse(time.RFC3339, q.AsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid asOf %q, use YYYY-MM-DD or RFC 3339", apperrors.ErrValidation, q.AsOf)
	}
	return t, nil
}

// SummaryQuery holds the parameters of the financial summary report.
type SummaryQuery struct {
	ReportPeriodQuery
	AsOfQuery
	Narrative bool   `form:"narrative"`
	Format    string `form:"format" binding:"omitempty,oneof=json markdown html"`
}

// DashboardQuery holds the parameters of the dashboard.
type DashboardQuery struct {
	AsOfQuery
	Months int `form:"months" binding:"omitempty,min=1,max=36"`
}

// StockValueResponse is the inventory valuation at production cost.
type StockValueResponse struct {
	StockValue decimal.Decimal `json:"stockValue"`
	BookCount  int             `json:"bookCount"`
}
