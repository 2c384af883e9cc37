package model

import "github.com/shopspring/decimal"

// ParamKey identifies one of the five projection inputs.
type ParamKey string

const (
	ParamStartup     ParamKey = "startup"
	ParamFixed       ParamKey = "fixed"
	ParamOperational ParamKey = "operational"
	ParamSales       ParamKey = "sales"
	ParamMonths      ParamKey = "months"
)

// Param describes a bounded input control.
type Param struct {
	Key      ParamKey
	Label    string
	Min      decimal.Decimal
	Max      decimal.Decimal
	Step     decimal.Decimal
	Default  decimal.Decimal
	Currency bool // false for the month count
}

// Bounds is the ordered set of controls shown on the panel.
type Bounds []Param

func currencyParam(key ParamKey, label string, maxV, def int64) Param {
	return Param{
		Key:      key,
		Label:    label,
		Min:      decimal.Zero,
		Max:      decimal.NewFromInt(maxV),
		Step:     decimal.NewFromInt(1000),
		Default:  decimal.NewFromInt(def),
		Currency: true,
	}
}

// DefaultBounds returns the reference control ranges.
func DefaultBounds() Bounds {
	return Bounds{
		currencyParam(ParamStartup, "Startup Expenses", 200_000, 100_000),
		currencyParam(ParamFixed, "Monthly Fixed Expenses", 20_000, 5_000),
		currencyParam(ParamOperational, "Monthly Operational Costs", 20_000, 5_000),
		currencyParam(ParamSales, "Monthly Sales", 50_000, 20_000),
		{
			Key:     ParamMonths,
			Label:   "Months to Forecast",
			Min:     decimal.NewFromInt(1),
			Max:     decimal.NewFromInt(60),
			Step:    decimal.NewFromInt(1),
			Default: decimal.NewFromInt(24),
		},
	}
}

// DefaultInputs returns the inputs at every control's default position.
func DefaultInputs() Inputs {
	var in Inputs
	for _, p := range DefaultBounds() {
		in = in.With(p.Key, p.Default)
	}
	return in
}
