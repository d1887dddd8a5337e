package ledger

import (
	"fmt"
	"time"
)

// MonthKey returns the monthly bucket key, e.g. "2026-08".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// WeekKey returns the ISO-8601 weekly bucket key, e.g. "2026-W35".
// time.ISOWeek implements the Thursday-of-the-week rule, so the year in
// the key can differ from the calendar year at year boundaries.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
