// Package pipeline computes projections from model inputs.
package pipeline

import (
	"time"

	"github.com/theirongolddev/breakeven/internal/model"

	"github.com/shopspring/decimal"
)

// Project computes cumulative expenses and sales for each month of the horizon.
// expenses[i] = startup + (i+1)*(fixed+operational), sales[i] = (i+1)*sales.
func Project(in model.Inputs) model.Series {
	if in.Months < 1 {
		return model.Series{Expenses: []decimal.Decimal{}, Sales: []decimal.Decimal{}}
	}

	s := model.Series{
		Expenses: make([]decimal.Decimal, in.Months),
		Sales:    make([]decimal.Decimal, in.Months),
	}

	burn := in.MonthlyBurn()
	expenses := in.StartupExpenses
	sales := decimal.Zero
	for i := 0; i < in.Months; i++ {
		expenses = expenses.Add(burn)
		sales = sales.Add(in.MonthlySales)
		s.Expenses[i] = expenses
		s.Sales[i] = sales
	}
	return s
}

// FindBreakEven returns the first month index where sales >= expenses.
func FindBreakEven(s model.Series) model.BreakEven {
	n := min(len(s.Expenses), len(s.Sales))
	for i := 0; i < n; i++ {
		if s.Sales[i].GreaterThanOrEqual(s.Expenses[i]) {
			return model.BreakEven{Index: i, Found: true}
		}
	}
	return model.BreakEven{}
}

// Build runs the calculator, break-even search and label generation.
// Nothing is cached: callers rebuild on every input change.
func Build(in model.Inputs, start time.Time, layout string) model.Projection {
	series := Project(in)
	return model.Projection{
		Inputs:    in,
		Series:    series,
		BreakEven: FindBreakEven(series),
		Start:     MonthStart(start),
		Labels:    MonthLabels(start, series.Len(), layout),
	}
}

// Summarize derives the horizon totals shown on cards and reports.
func Summarize(p model.Projection) model.Summary {
	sum := model.Summary{
		FinalExpenses: decimal.Zero,
		FinalSales:    decimal.Zero,
		MonthlyBurn:   p.Inputs.MonthlyBurn(),
	}
	sum.MonthlyMargin = p.Inputs.MonthlySales.Sub(sum.MonthlyBurn)

	if n := p.Series.Len(); n > 0 {
		sum.FinalExpenses = p.Series.Expenses[n-1]
		sum.FinalSales = p.Series.Sales[n-1]
	}
	sum.FinalNet = sum.FinalSales.Sub(sum.FinalExpenses)
	return sum
}

// MonthsToBreakEven estimates the month number at which sales catch up,
// ignoring the horizon. ok is false when the monthly margin never closes
// the startup gap.
func MonthsToBreakEven(in model.Inputs) (int, bool) {
	margin := in.MonthlySales.Sub(in.MonthlyBurn())
	gap := in.StartupExpenses.Sub(margin)
	// Month 1 already covers everything.
	if !gap.IsPositive() {
		return 1, true
	}
	if !margin.IsPositive() {
		return 0, false
	}
	// Smallest m with m*margin >= startup.
	m := in.StartupExpenses.Div(margin).Ceil()
	return int(m.IntPart()), true
}
