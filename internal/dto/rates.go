package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// RatesResponse defines the data returned for the current exchange rates.
// Zero values mean the rate is unknown; clients should treat the paired
// defaults field as the numbers actually used in calculations.
type RatesResponse struct {
	USDTRY    decimal.Decimal `json:"USDTRY"`
	SARTRY    decimal.Decimal `json:"SARTRY"`
	USDSAR    decimal.Decimal `json:"USDSAR"`
	FetchedAt time.Time       `json:"fetchedAt"`
	Source    string          `json:"source,omitempty"`
}

// ToRatesResponse converts domain.ExchangeRates to RatesResponse DTO
func ToRatesResponse(r domain.ExchangeRates) RatesResponse {
	return RatesResponse{
		USDTRY:    r.USDTRY,
		SARTRY:    r.SARTRY,
		USDSAR:    r.USDSAR,
		FetchedAt: r.FetchedAt,
		Source:    r.Source,
	}
}

// RateSnapshotResponse defines the data returned for one historical rate
// snapshot.
type RateSnapshotResponse struct {
	SnapshotID string          `json:"snapshotID"`
	USDTRY     decimal.Decimal `json:"USDTRY"`
	SARTRY     decimal.Decimal `json:"SARTRY"`
	USDSAR     decimal.Decimal `json:"USDSAR"`
	Source     string          `json:"source"`
	FetchedAt  time.Time       `json:"fetchedAt"`
}

// ToListRateSnapshotResponse converts a slice of domain.RateSnapshot to DTOs
func ToListRateSnapshotResponse(snapshots []domain.RateSnapshot) []RateSnapshotResponse {
	res := make([]RateSnapshotResponse, len(snapshots))
	for i, s := range snapshots {
		res[i] = RateSnapshotResponse{
			SnapshotID: s.SnapshotID,
			USDTRY:     s.USDTRY,
			SARTRY:     s.SARTRY,
			USDSAR:     s.USDSAR,
			Source:     s.Source,
			FetchedAt:  s.FetchedAt,
		}
	}
	return res
}
