package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/weberkan/mevatur-backend/internal/utils/ledger"
)

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2026-08", ledger.MonthKey(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-01", ledger.MonthKey(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)))
}

func TestWeekKey(t *testing.T) {
	// 2026-01-01 is a Thursday, so it belongs to week 1 of 2026.
	assert.Equal(t, "2026-W01", ledger.WeekKey(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	// 2027-01-01 is a Friday whose Thursday falls in 2026: still 2026-W53.
	assert.Equal(t, "2026-W53", ledger.WeekKey(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-W35", ledger.WeekKey(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)))
}
