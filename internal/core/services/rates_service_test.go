package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
	"github.com/weberkan/mevatur-backend/internal/core/services"
)

// stubFetcher returns whatever rates the test loads into it.
type stubFetcher struct {
	rates domain.ExchangeRates
}

func (f *stubFetcher) Fetch(ctx context.Context) domain.ExchangeRates {
	return f.rates
}

func TestRefresh_PersistsSnapshotOnSuccess(t *testing.T) {
	fetcher := &stubFetcher{rates: domain.ExchangeRates{
		USDTRY:    decimal.NewFromInt(40),
		SARTRY:    decimal.NewFromInt(10),
		FetchedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		Source:    "tcmb",
	}}

	var saved domain.RateSnapshot
	historyRepo := &fakeRateHistoryRepo{
		SaveRateSnapshotFn: func(ctx context.Context, snapshot domain.RateSnapshot) error {
			saved = snapshot
			return nil
		},
	}

	svc := services.NewRatesService(fetcher, historyRepo, nil)
	rates, err := svc.Refresh(context.Background())

	require.NoError(t, err)
	assert.True(t, rates.USDTRY.Equal(decimal.NewFromInt(40)))
	assert.True(t, rates.SARTRY.Equal(decimal.NewFromInt(10)))
	assert.True(t, rates.USDSAR.Equal(decimal.NewFromInt(4)), "USDSAR must be derived, got %s", rates.USDSAR)
	assert.Equal(t, "tcmb", rates.Source)

	assert.NotEmpty(t, saved.SnapshotID)
	assert.True(t, saved.USDTRY.Equal(decimal.NewFromInt(40)))
	assert.True(t, saved.SARTRY.Equal(decimal.NewFromInt(10)))
}

func TestRefresh_PartialFetchKeepsKnownLeg(t *testing.T) {
	fetcher := &stubFetcher{rates: domain.ExchangeRates{
		USDTRY:    decimal.NewFromInt(40),
		SARTRY:    decimal.NewFromInt(10),
		FetchedAt: time.Now(),
		Source:    "tcmb",
	}}
	svc := services.NewRatesService(fetcher, &fakeRateHistoryRepo{}, nil)

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	// Second fetch only delivers USD. The SAR leg must survive.
	fetcher.rates = domain.ExchangeRates{
		USDTRY:    decimal.NewFromInt(41),
		FetchedAt: time.Now(),
		Source:    "altinkaynak",
	}
	rates, err := svc.Refresh(context.Background())

	require.NoError(t, err)
	assert.True(t, rates.USDTRY.Equal(decimal.NewFromInt(41)))
	assert.True(t, rates.SARTRY.Equal(decimal.NewFromInt(10)), "SARTRY downgraded to %s", rates.SARTRY)
	assert.True(t, rates.USDSAR.Equal(decimal.NewFromFloat(4.1)), "USDSAR not rederived, got %s", rates.USDSAR)
	assert.Equal(t, "altinkaynak", rates.Source)
}

func TestRefresh_TotalFailureKeepsPreviousRates(t *testing.T) {
	fetcher := &stubFetcher{rates: domain.ExchangeRates{
		USDTRY:    decimal.NewFromInt(40),
		SARTRY:    decimal.NewFromInt(10),
		FetchedAt: time.Now(),
		Source:    "tcmb",
	}}

	var snapshots int
	historyRepo := &fakeRateHistoryRepo{
		SaveRateSnapshotFn: func(ctx context.Context, snapshot domain.RateSnapshot) error {
			snapshots++
			return nil
		},
	}

	svc := services.NewRatesService(fetcher, historyRepo, nil)
	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	fetcher.rates = domain.ExchangeRates{FetchedAt: time.Now()}
	_, err = svc.Refresh(context.Background())
	assert.Error(t, err)

	current := svc.Current(context.Background())
	assert.True(t, current.USDTRY.Equal(decimal.NewFromInt(40)))
	assert.True(t, current.SARTRY.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 1, snapshots, "a failed refresh must not be persisted")
}

func TestCurrent_WarmsFromHistoryBeforeFirstRefresh(t *testing.T) {
	fetchedAt := time.Date(2026, 4, 30, 9, 0, 0, 0, time.UTC)
	historyRepo := &fakeRateHistoryRepo{
		FindLatestRateSnapshotFn: func(ctx context.Context) (*domain.RateSnapshot, error) {
			return &domain.RateSnapshot{
				SnapshotID: "snap-1",
				USDTRY:     decimal.NewFromInt(39),
				SARTRY:     decimal.NewFromInt(10),
				USDSAR:     decimal.NewFromFloat(3.9),
				Source:     "tcmb",
				FetchedAt:  fetchedAt,
			}, nil
		},
	}

	svc := services.NewRatesService(&stubFetcher{}, historyRepo, nil)
	current := svc.Current(context.Background())

	assert.True(t, current.USDTRY.Equal(decimal.NewFromInt(39)))
	assert.True(t, current.SARTRY.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "tcmb", current.Source)
	assert.True(t, current.FetchedAt.Equal(fetchedAt))
}

func TestCurrent_UnknownRatesStayZeroUntilRefresh(t *testing.T) {
	svc := services.NewRatesService(&stubFetcher{}, &fakeRateHistoryRepo{}, nil)
	current := svc.Current(context.Background())
	assert.True(t, current.IsZero())
}

func TestHistory_ClampsLimit(t *testing.T) {
	var requested int
	historyRepo := &fakeRateHistoryRepo{
		ListRateSnapshotsFn: func(ctx context.Context, limit int) ([]domain.RateSnapshot, error) {
			requested = limit
			return []domain.RateSnapshot{}, nil
		},
	}

	svc := services.NewRatesService(&stubFetcher{}, historyRepo, nil)
	_, err := svc.History(context.Background(), -5)
	require.NoError(t, err)
	assert.Equal(t, 100, requested)

	_, err = svc.History(context.Background(), 10000)
	require.NoError(t, err)
	assert.Equal(t, 100, requested)
}
