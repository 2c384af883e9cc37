package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Series holds the cumulative totals. Index i is the end of month i+1.
type Series struct {
	Expenses []decimal.Decimal
	Sales    []decimal.Decimal
}

// Len returns the number of months in the series.
func (s Series) Len() int {
	return len(s.Expenses)
}

// BreakEven is the first month where cumulative sales cover expenses.
// Found is false when no month within the horizon qualifies.
type BreakEven struct {
	Index int
	Found bool
}

// Month returns the 1-based month number, or 0 when not found.
func (b BreakEven) Month() int {
	if !b.Found {
		return 0
	}
	return b.Index + 1
}

// Projection is a fully computed projection ready for display.
type Projection struct {
	Inputs    Inputs
	Series    Series
	BreakEven BreakEven
	Start     time.Time
	Labels    []string // one per month index
}

// BreakEvenLabel returns the display label of the break-even month.
func (p Projection) BreakEvenLabel() (string, bool) {
	if !p.BreakEven.Found || p.BreakEven.Index >= len(p.Labels) {
		return "", false
	}
	return p.Labels[p.BreakEven.Index], true
}

// Summary holds derived figures for the cards and report.
type Summary struct {
	FinalExpenses decimal.Decimal
	FinalSales    decimal.Decimal
	FinalNet      decimal.Decimal // sales minus expenses at the horizon
	MonthlyBurn   decimal.Decimal
	MonthlyMargin decimal.Decimal // monthly sales minus monthly burn
}
