package pipeline

import (
	"testing"
	"time"
)

func TestMonthLabels_CalendarMonths(t *testing.T) {
	// Starting on the 31st must not skip short months.
	start := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	got := MonthLabels(start, 4, "")
	want := []string{"Jan 2025", "Feb 2025", "Mar 2025", "Apr 2025"}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMonthLabels_YearRollover(t *testing.T) {
	start := time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)
	got := MonthLabels(start, 15, "01/06")

	if got[0] != "11/24" {
		t.Errorf("first = %q, want 11/24", got[0])
	}
	if got[2] != "01/25" {
		t.Errorf("third = %q, want 01/25", got[2])
	}
	if got[14] != "01/26" {
		t.Errorf("last = %q, want 01/26", got[14])
	}
}

func TestMonthLabels_Empty(t *testing.T) {
	if got := MonthLabels(time.Now(), 0, ""); len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}
