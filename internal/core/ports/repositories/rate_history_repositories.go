package repositories

import (
	"context"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// RateHistoryReader defines read operations for persisted rate snapshots
type RateHistoryReader interface {
	// ListRateSnapshots retrieves the most recent snapshots, newest first.
	ListRateSnapshots(ctx context.Context, limit int) ([]domain.RateSnapshot, error)

	// FindLatestRateSnapshot retrieves the most recent snapshot.
	FindLatestRateSnapshot(ctx context.Context) (*domain.RateSnapshot, error)
}

// RateHistoryWriter defines write operations for persisted rate snapshots
type RateHistoryWriter interface {
	// SaveRateSnapshot persists one rate refresh.
	SaveRateSnapshot(ctx context.Context, snapshot domain.RateSnapshot) error
}

// RateHistoryRepositoryFacade combines all rate-history repository interfaces
type RateHistoryRepositoryFacade interface {
	RateHistoryReader
	RateHistoryWriter
}
