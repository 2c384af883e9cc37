package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/breakeven/internal/model"

	"github.com/shopspring/decimal"
)

func inputs(startup, fixed, operational, sales int64, months int) model.Inputs {
	return model.Inputs{
		StartupExpenses:         decimal.NewFromInt(startup),
		MonthlyFixedExpenses:    decimal.NewFromInt(fixed),
		MonthlyOperationalCosts: decimal.NewFromInt(operational),
		MonthlySales:            decimal.NewFromInt(sales),
		Months:                  months,
	}
}

func mustEqual(t *testing.T, what string, got decimal.Decimal, want int64) {
	t.Helper()
	if !got.Equal(decimal.NewFromInt(want)) {
		t.Fatalf("%s = %s, want %d", what, got, want)
	}
}

func TestProject_ScenarioA(t *testing.T) {
	s := Project(inputs(100_000, 5_000, 5_000, 20_000, 24))

	if s.Len() != 24 || len(s.Sales) != 24 {
		t.Fatalf("len = %d/%d, want 24", len(s.Expenses), len(s.Sales))
	}
	mustEqual(t, "expenses[0]", s.Expenses[0], 110_000)
	mustEqual(t, "sales[0]", s.Sales[0], 20_000)
	mustEqual(t, "expenses[23]", s.Expenses[23], 340_000)
	mustEqual(t, "sales[23]", s.Sales[23], 480_000)

	be := FindBreakEven(s)
	if !be.Found || be.Index != 9 {
		t.Fatalf("break-even = %+v, want index 9", be)
	}
	if be.Month() != 10 {
		t.Errorf("Month() = %d, want 10", be.Month())
	}
}

func TestProject_ScenarioB(t *testing.T) {
	s := Project(inputs(0, 0, 0, 1_000, 5))

	for i, e := range s.Expenses {
		mustEqual(t, "expenses", e, 0)
		mustEqual(t, "sales", s.Sales[i], int64(i+1)*1_000)
	}

	be := FindBreakEven(s)
	if !be.Found || be.Index != 0 {
		t.Fatalf("break-even = %+v, want index 0", be)
	}
}

func TestProject_ScenarioC(t *testing.T) {
	be := FindBreakEven(Project(inputs(50_000, 10_000, 10_000, 5_000, 12)))
	if be.Found {
		t.Fatalf("break-even = %+v, want none", be)
	}
	if be.Month() != 0 {
		t.Errorf("Month() = %d, want 0 when not found", be.Month())
	}
}

func TestProject_Differences(t *testing.T) {
	cases := []model.Inputs{
		inputs(100_000, 5_000, 5_000, 20_000, 24),
		inputs(0, 0, 0, 0, 1),
		inputs(200_000, 20_000, 20_000, 50_000, 60),
		inputs(1_000, 0, 3_000, 0, 7),
	}

	for _, in := range cases {
		s := Project(in)
		if s.Len() != in.Months {
			t.Fatalf("len = %d, want %d", s.Len(), in.Months)
		}

		burn := in.MonthlyBurn()
		if !s.Expenses[0].Equal(in.StartupExpenses.Add(burn)) {
			t.Errorf("expenses[0] = %s, want %s", s.Expenses[0], in.StartupExpenses.Add(burn))
		}
		if !s.Sales[0].Equal(in.MonthlySales) {
			t.Errorf("sales[0] = %s, want %s", s.Sales[0], in.MonthlySales)
		}

		for i := 1; i < s.Len(); i++ {
			if d := s.Expenses[i].Sub(s.Expenses[i-1]); !d.Equal(burn) {
				t.Errorf("expenses step %d = %s, want %s", i, d, burn)
			}
			if d := s.Sales[i].Sub(s.Sales[i-1]); !d.Equal(in.MonthlySales) {
				t.Errorf("sales step %d = %s, want %s", i, d, in.MonthlySales)
			}
			if s.Expenses[i].LessThan(s.Expenses[i-1]) || s.Sales[i].LessThan(s.Sales[i-1]) {
				t.Errorf("series decreased at %d", i)
			}
		}
	}
}

func TestFindBreakEven_IsMinimal(t *testing.T) {
	for sales := int64(0); sales <= 50_000; sales += 7_000 {
		s := Project(inputs(30_000, 2_000, 1_000, sales, 36))
		be := FindBreakEven(s)
		if !be.Found {
			continue
		}
		if s.Sales[be.Index].LessThan(s.Expenses[be.Index]) {
			t.Fatalf("sales=%d: index %d does not break even", sales, be.Index)
		}
		for i := 0; i < be.Index; i++ {
			if s.Sales[i].GreaterThanOrEqual(s.Expenses[i]) {
				t.Fatalf("sales=%d: earlier index %d also breaks even", sales, i)
			}
		}
	}
}

func TestProject_Idempotent(t *testing.T) {
	in := inputs(100_000, 5_000, 5_000, 20_000, 24)
	a, b := Project(in), Project(in)
	for i := range a.Expenses {
		if !a.Expenses[i].Equal(b.Expenses[i]) || !a.Sales[i].Equal(b.Sales[i]) {
			t.Fatalf("run differs at %d", i)
		}
	}
}

func TestProject_NoMonths(t *testing.T) {
	s := Project(inputs(1, 1, 1, 1, 0))
	if s.Len() != 0 {
		t.Fatalf("len = %d, want 0", s.Len())
	}
	if be := FindBreakEven(s); be.Found {
		t.Fatalf("break-even on empty series: %+v", be)
	}
}

func TestBuild(t *testing.T) {
	start := time.Date(2024, time.November, 17, 9, 0, 0, 0, time.UTC)
	p := Build(inputs(100_000, 5_000, 5_000, 20_000, 24), start, "")

	if len(p.Labels) != 24 {
		t.Fatalf("labels = %d, want 24", len(p.Labels))
	}
	if p.Labels[0] != "Nov 2024" {
		t.Errorf("first label = %q, want Nov 2024", p.Labels[0])
	}
	label, ok := p.BreakEvenLabel()
	if !ok || label != "Aug 2025" {
		t.Errorf("break-even label = %q, %v, want Aug 2025", label, ok)
	}
	if !p.Start.Equal(time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v, want 2024-11-01", p.Start)
	}
}

func TestSummarize(t *testing.T) {
	p := Build(inputs(50_000, 10_000, 10_000, 5_000, 12), time.Now(), "")
	sum := Summarize(p)

	mustEqual(t, "FinalExpenses", sum.FinalExpenses, 290_000)
	mustEqual(t, "FinalSales", sum.FinalSales, 60_000)
	mustEqual(t, "FinalNet", sum.FinalNet, -230_000)
	mustEqual(t, "MonthlyBurn", sum.MonthlyBurn, 20_000)
	mustEqual(t, "MonthlyMargin", sum.MonthlyMargin, -15_000)
}

func TestMonthsToBreakEven(t *testing.T) {
	cases := []struct {
		name   string
		in     model.Inputs
		want   int
		wantOK bool
	}{
		{"scenario A", inputs(100_000, 5_000, 5_000, 20_000, 24), 10, true},
		{"scenario B", inputs(0, 0, 0, 1_000, 5), 1, true},
		{"scenario C", inputs(50_000, 10_000, 10_000, 5_000, 12), 0, false},
		{"beyond horizon", inputs(100_000, 0, 0, 1_000, 12), 100, true},
		{"all zero", inputs(0, 0, 0, 0, 3), 1, true},
	}

	for _, tc := range cases {
		got, ok := MonthsToBreakEven(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("%s: got %d, %v, want %d, %v", tc.name, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestValidate(t *testing.T) {
	b := model.DefaultBounds()

	if err := Validate(model.DefaultInputs(), b); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}

	bad := inputs(-1, 5_000, 5_000, 60_000, 0)
	err := Validate(bad, b)
	if err == nil {
		t.Fatal("expected error for out-of-range inputs")
	}
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("error %v does not wrap ErrOutOfBounds", err)
	}
}

func TestClampAndStep(t *testing.T) {
	b := model.DefaultBounds()
	got := Clamp(inputs(-5, 25_000, 3_000, 90_000, 99), b)

	mustEqual(t, "startup", got.StartupExpenses, 0)
	mustEqual(t, "fixed", got.MonthlyFixedExpenses, 20_000)
	mustEqual(t, "operational", got.MonthlyOperationalCosts, 3_000)
	mustEqual(t, "sales", got.MonthlySales, 50_000)
	if got.Months != 60 {
		t.Errorf("months = %d, want 60", got.Months)
	}

	sales := b[3]
	if sales.Key != model.ParamSales {
		t.Fatalf("bounds[3] = %s, want sales", sales.Key)
	}
	mustEqual(t, "step up", StepValue(decimal.NewFromInt(20_000), sales, 1), 21_000)
	mustEqual(t, "step down x10", StepValue(decimal.NewFromInt(5_000), sales, -10), 0)
	mustEqual(t, "step past max", StepValue(decimal.NewFromInt(49_500), sales, 1), 50_000)
}
