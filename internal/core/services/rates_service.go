package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/weberkan/mevatur-backend/internal/apperrors"
	"github.com/weberkan/mevatur-backend/internal/core/domain"
	portsrepo "github.com/weberkan/mevatur-backend/internal/core/ports/repositories"
	portssvc "github.com/weberkan/mevatur-backend/internal/core/ports/services"
)

// ratesCacheKey is where the latest snapshot lives in redis, so a restarted
// instance serves real rates before its first refresh completes.
const ratesCacheKey = "rates:latest"

// RateFetcher fetches fresh exchange rates from the provider chain.
type RateFetcher interface {
	Fetch(ctx context.Context) domain.ExchangeRates
}

type ratesService struct {
	BaseService
	fetcher     RateFetcher
	historyRepo portsrepo.RateHistoryRepositoryFacade
	cache       *redis.Client // nil disables caching

	mu       sync.RWMutex
	current  domain.ExchangeRates
	warmOnce sync.Once
}

// NewRatesService creates the exchange-rate service. cache may be nil.
func NewRatesService(fetcher RateFetcher, historyRepo portsrepo.RateHistoryRepositoryFacade, cache *redis.Client) portssvc.RatesSvc {
	return &ratesService{
		fetcher:     fetcher,
		historyRepo: historyRepo,
		cache:       cache,
	}
}

var _ portssvc.RatesSvc = (*ratesService)(nil)

// Current returns the last known rates without touching the network. Before
// the first refresh it tries the redis cache, then the persisted history, so
// restarts do not reset to the hardcoded defaults.
func (s *ratesService) Current(ctx context.Context) domain.ExchangeRates {
	s.warmOnce.Do(func() { s.warmFromStorage(ctx) })

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *ratesService) warmFromStorage(ctx context.Context) {
	if rates, ok := s.loadFromCache(ctx); ok {
		s.mu.Lock()
		s.current = rates
		s.mu.Unlock()
		return
	}

	snapshot, err := s.historyRepo.FindLatestRateSnapshot(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to warm rates from history")
		}
		return
	}
	s.mu.Lock()
	s.current = domain.ExchangeRates{
		USDTRY:    snapshot.USDTRY,
		SARTRY:    snapshot.SARTRY,
		USDSAR:    snapshot.USDSAR,
		FetchedAt: snapshot.FetchedAt,
		Source:    snapshot.Source,
	}
	s.mu.Unlock()
}

func (s *ratesService) loadFromCache(ctx context.Context) (domain.ExchangeRates, bool) {
	if s.cache == nil {
		return domain.ExchangeRates{}, false
	}
	payload, err := s.cache.Get(ctx, ratesCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.LogError(ctx, err, "Failed to read rates from cache")
		}
		return domain.ExchangeRates{}, false
	}
	var rates domain.ExchangeRates
	if err := json.Unmarshal(payload, &rates); err != nil {
		s.LogError(ctx, err, "Failed to decode cached rates")
		return domain.ExchangeRates{}, false
	}
	return rates, true
}

// Refresh fetches fresh rates and merges them over the known ones. A source
// that cannot produce a rate never downgrades a value another source (or a
// previous refresh) already delivered.
func (s *ratesService) Refresh(ctx context.Context) (domain.ExchangeRates, error) {
	fetched := s.fetcher.Fetch(ctx)

	s.mu.Lock()
	merged := s.current
	if fetched.USDTRY.IsPositive() {
		merged.USDTRY = fetched.USDTRY
	}
	if fetched.SARTRY.IsPositive() {
		merged.SARTRY = fetched.SARTRY
	}
	if merged.USDTRY.IsPositive() && merged.SARTRY.IsPositive() {
		merged.USDSAR = merged.USDTRY.Div(merged.SARTRY)
	}
	merged.FetchedAt = fetched.FetchedAt
	if fetched.Source != "" {
		merged.Source = fetched.Source
	}
	s.current = merged
	s.mu.Unlock()

	if fetched.IsZero() {
		s.LogInfo(ctx, "Rate refresh produced no usable rate, keeping previous values")
		return merged, fmt.Errorf("no rate source produced a usable rate")
	}

	s.persist(ctx, merged)

	s.LogInfo(ctx, "Rates refreshed",
		slog.String("usd_try", merged.USDTRY.String()),
		slog.String("sar_try", merged.SARTRY.String()),
		slog.String("source", merged.Source))
	return merged, nil
}

// persist records the refresh in history and the cache. Failures are logged
// only; fresh rates are already being served from memory.
func (s *ratesService) persist(ctx context.Context, rates domain.ExchangeRates) {
	snapshot := domain.RateSnapshot{
		SnapshotID: uuid.NewString(),
		USDTRY:     rates.USDTRY,
		SARTRY:     rates.SARTRY,
		USDSAR:     rates.USDSAR,
		Source:     rates.Source,
		FetchedAt:  rates.FetchedAt,
	}
	if err := s.historyRepo.SaveRateSnapshot(ctx, snapshot); err != nil {
		s.LogError(ctx, err, "Failed to persist rate snapshot")
	}

	if s.cache != nil {
		payload, err := json.Marshal(rates)
		if err == nil {
			err = s.cache.Set(ctx, ratesCacheKey, payload, 0).Err()
		}
		if err != nil {
			s.LogError(ctx, err, "Failed to cache rates")
		}
	}
}

func (s *ratesService) History(ctx context.Context, limit int) ([]domain.RateSnapshot, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	snapshots, err := s.historyRepo.ListRateSnapshots(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rate history")
		return nil, err
	}
	if snapshots == nil {
		return []domain.RateSnapshot{}, nil
	}
	return snapshots, nil
}

// StartRefreshLoop refreshes immediately, then on every tick until ctx is done.
func (s *ratesService) StartRefreshLoop(ctx context.Context, interval time.Duration) {
	go func() {
		if _, err := s.Refresh(ctx); err != nil {
			s.LogError(ctx, err, "Initial rate refresh failed")
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.Refresh(ctx); err != nil {
					s.LogError(ctx, err, "Scheduled rate refresh failed")
				}
			}
		}
	}()
}
