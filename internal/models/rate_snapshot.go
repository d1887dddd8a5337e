package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSnapshot represents a row of the rate_history table.
type RateSnapshot struct {
	SnapshotID string          `json:"snapshotID" db:"snapshot_id"`
	USDTRY     decimal.Decimal `json:"USDTRY" db:"usd_try"`
	SARTRY     decimal.Decimal `json:"SARTRY" db:"sar_try"`
	USDSAR     decimal.Decimal `json:"USDSAR" db:"usd_sar"`
	Source     string          `json:"source" db:"source"`
	FetchedAt  time.Time       `json:"fetchedAt" db:"fetched_at"`
}
