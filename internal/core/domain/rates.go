package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Hardcoded fallback rates used when a live rate is unavailable. Callers
// must never divide by a zero rate; they substitute these instead.
var (
	DefaultUSDTRY = decimal.NewFromInt(34)
	DefaultSARTRY = decimal.NewFromInt(9)
	DefaultUSDSAR = decimal.NewFromFloat(3.75)
)

// ExchangeRates is a snapshot of the conversion rates in effect at
// FetchedAt. A zero value means "unknown", not a real rate of zero.
// USDSAR is always derived from the other two, never fetched.
type ExchangeRates struct {
	USDTRY    decimal.Decimal `json:"USDTRY"`
	SARTRY    decimal.Decimal `json:"SARTRY"`
	USDSAR    decimal.Decimal `json:"USDSAR"`
	FetchedAt time.Time       `json:"fetchedAt"`
	Source    string          `json:"source"`
}

// IsZero reports whether no rate at all is known.
func (r ExchangeRates) IsZero() bool {
	return !r.USDTRY.IsPositive() && !r.SARTRY.IsPositive()
}

// Effective returns a copy with every unknown rate replaced by its
// hardcoded default, so ledger arithmetic never divides by zero. USDSAR is
// rederived when both TRY legs are known.
func (r ExchangeRates) Effective() ExchangeRates {
	out := r
	if !out.USDTRY.IsPositive() {
		out.USDTRY = DefaultUSDTRY
	}
	if !out.SARTRY.IsPositive() {
		out.SARTRY = DefaultSARTRY
	}
	if out.USDTRY.IsPositive() && out.SARTRY.IsPositive() {
		out.USDSAR = out.USDTRY.Div(out.SARTRY)
	} else {
		out.USDSAR = DefaultUSDSAR
	}
	return out
}

// RateSnapshot is one persisted rate refresh, kept as history.
type RateSnapshot struct {
	SnapshotID string          `json:"snapshotID"`
	USDTRY     decimal.Decimal `json:"USDTRY"`
	SARTRY     decimal.Decimal `json:"SARTRY"`
	USDSAR     decimal.Decimal `json:"USDSAR"`
	Source     string          `json:"source"`
	FetchedAt  time.Time       `json:"fetchedAt"`
}
