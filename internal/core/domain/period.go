package domain

import (
	"fmt"
	"time"
)

// YearMonth identifies one calendar month.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// ParseYearMonth parses "2006-01".
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, validationErr("invalid month %q, use YYYY-MM", s)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// YearMonthOf returns the UTC calendar month t falls in.
func YearMonthOf(t time.Time) YearMonth {
	t = t.UTC()
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

func (ym YearMonth) index() int {
	return ym.Year*12 + int(ym.Month) - 1
}

// Next returns the following month.
func (ym YearMonth) Next() YearMonth {
	i := ym.index() + 1
	return YearMonth{Year: i / 12, Month: time.Month(i%12 + 1)}
}

// Prev returns the preceding month.
func (ym YearMonth) Prev() YearMonth {
	i := ym.index() - 1
	return YearMonth{Year: i / 12, Month: time.Month(i%12 + 1)}
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Period is an inclusive window of calendar months. Months are UTC months:
// records are stored in UTC, so a sale at 00:30 on the 1st in UTC+6 belongs
// to the previous month.
type Period struct {
	From YearMonth `json:"from"`
	To   YearMonth `json:"to"`
}

// MonthPeriod is a one-month period.
func MonthPeriod(year int, month time.Month) Period {
	ym := YearMonth{Year: year, Month: month}
	return Period{From: ym, To: ym}
}

// YearPeriod covers January to December of year.
func YearPeriod(year int) Period {
	return Period{From: YearMonth{Year: year, Month: time.January}, To: YearMonth{Year: year, Month: time.December}}
}

// Validate checks that the months are real and ordered.
func (p Period) Validate() error {
	if p.From.Month < time.January || p.From.Month > time.December || p.To.Month < time.January || p.To.Month > time.December {
		return validationErr("period months must be between 1 and 12")
	}
	if p.From.index() > p.To.index() {
		return validationErr("period start %s is after end %s", p.From, p.To)
	}
	return nil
}

// Contains reports whether t falls in one of the period's calendar months.
// The zero time is never contained.
func (p Period) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	i := YearMonthOf(t).index()
	return i >= p.From.index() && i <= p.To.index()
}

// Months lists every month of the period in order.
func (p Period) Months() []YearMonth {
	months := make([]YearMonth, 0, p.To.index()-p.From.index()+1)
	for ym := p.From; ym.index() <= p.To.index(); ym = ym.Next() {
		months = append(months, ym)
	}
	return months
}

func (p Period) String() string {
	if p.From == p.To {
		return p.From.String()
	}
	return p.From.String() + ".." + p.To.String()
}
