package mapping

import (
	"github.com/weberkan/mevatur-backend/internal/core/domain"
	"github.com/weberkan/mevatur-backend/internal/models"
)

// ToModelRateSnapshot converts a domain RateSnapshot to a model RateSnapshot
func ToModelRateSnapshot(d domain.RateSnapshot) models.RateSnapshot {
	return models.RateSnapshot{
		SnapshotID: d.SnapshotID,
		USDTRY:     d.USDTRY,
		SARTRY:     d.SARTRY,
		USDSAR:     d.USDSAR,
		Source:     d.Source,
		FetchedAt:  d.FetchedAt,
	}
}

// ToDomainRateSnapshot converts a model RateSnapshot to a domain RateSnapshot
func ToDomainRateSnapshot(m models.RateSnapshot) domain.RateSnapshot {
	return domain.RateSnapshot{
		SnapshotID: m.SnapshotID,
		USDTRY:     m.USDTRY,
		SARTRY:     m.SARTRY,
		USDSAR:     m.USDSAR,
		Source:     m.Source,
		FetchedAt:  m.FetchedAt,
	}
}

// ToDomainRateSnapshotSlice converts a slice of model RateSnapshots to domain RateSnapshots
func ToDomainRateSnapshotSlice(ms []models.RateSnapshot) []domain.RateSnapshot {
	ds := make([]domain.RateSnapshot, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRateSnapshot(m)
	}
	return ds
}
