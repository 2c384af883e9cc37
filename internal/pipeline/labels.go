package pipeline

import "time"

// DefaultLabelLayout renders labels like "Nov 2024".
const DefaultLabelLayout = "Jan 2006"

// MonthStart returns midnight on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthLabels builds one x-axis label per month index, stepping whole
// calendar months from the first of start's month.
func MonthLabels(start time.Time, n int, layout string) []string {
	if n <= 0 {
		return []string{}
	}
	if layout == "" {
		layout = DefaultLabelLayout
	}

	first := MonthStart(start)
	labels := make([]string, n)
	for i := range labels {
		// Day 1 never overflows, so AddDate stays in the intended month.
		labels[i] = first.AddDate(0, i, 0).Format(layout)
	}
	return labels
}
