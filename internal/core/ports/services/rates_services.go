package services

import (
	"context"
	"time"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// RatesSvc provides the current exchange rates and their refresh cycle.
type RatesSvc interface {
	// Current returns the last known rates. It never blocks on the
	// network; with no refresh yet, all rates are zero and callers fall
	// back to the hardcoded defaults.
	Current(ctx context.Context) domain.ExchangeRates

	// Refresh fetches fresh rates from the provider chain, merges them
	// without downgrading known values and persists a history snapshot.
	Refresh(ctx context.Context) (domain.ExchangeRates, error)

	// History returns recent persisted snapshots, newest first.
	History(ctx context.Context, limit int) ([]domain.RateSnapshot, error)

	// StartRefreshLoop refreshes in the background until ctx is done.
	StartRefreshLoop(ctx context.Context, interval time.Duration)
}
