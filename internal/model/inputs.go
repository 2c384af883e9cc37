// Package model defines the plain data types shared across breakeven.
package model

import "github.com/shopspring/decimal"

// Inputs holds the five scalars a projection is computed from.
// Currency values are in major units (e.g. euros, not cents).
type Inputs struct {
	StartupExpenses         decimal.Decimal
	MonthlyFixedExpenses    decimal.Decimal
	MonthlyOperationalCosts decimal.Decimal
	MonthlySales            decimal.Decimal
	Months                  int
}

// MonthlyBurn is the amount expenses grow by each month.
func (in Inputs) MonthlyBurn() decimal.Decimal {
	return in.MonthlyFixedExpenses.Add(in.MonthlyOperationalCosts)
}

// Get returns the value of the parameter with the given key as a decimal.
// Unknown keys return zero.
func (in Inputs) Get(key ParamKey) decimal.Decimal {
	switch key {
	case ParamStartup:
		return in.StartupExpenses
	case ParamFixed:
		return in.MonthlyFixedExpenses
	case ParamOperational:
		return in.MonthlyOperationalCosts
	case ParamSales:
		return in.MonthlySales
	case ParamMonths:
		return decimal.NewFromInt(int64(in.Months))
	}
	return decimal.Zero
}

// With returns a copy of in with the given parameter replaced.
// Months is truncated to a whole number.
func (in Inputs) With(key ParamKey, v decimal.Decimal) Inputs {
	switch key {
	case ParamStartup:
		in.StartupExpenses = v
	case ParamFixed:
		in.MonthlyFixedExpenses = v
	case ParamOperational:
		in.MonthlyOperationalCosts = v
	case ParamSales:
		in.MonthlySales = v
	case ParamMonths:
		in.Months = int(v.IntPart())
	}
	return in
}

// Equal reports whether two inputs describe the same projection.
func (in Inputs) Equal(o Inputs) bool {
	return in.Months == o.Months &&
		in.StartupExpenses.Equal(o.StartupExpenses) &&
		in.MonthlyFixedExpenses.Equal(o.MonthlyFixedExpenses) &&
		in.MonthlyOperationalCosts.Equal(o.MonthlyOperationalCosts) &&
		in.MonthlySales.Equal(o.MonthlySales)
}
