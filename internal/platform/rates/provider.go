// Package rates fetches USD/TRY and SAR/TRY conversion rates from a
// ranked chain of external sources: the Turkish central bank XML feed
// first, then two JSON APIs. Source failures degrade to zero values and
// silently trigger fallthrough; they are never surfaced as errors to the
// operations that consume rates.
package rates

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// Quote is one source's answer. Zero fields mean "this source could not
// supply that pair".
type Quote struct {
	USDTRY decimal.Decimal
	SARTRY decimal.Decimal
	Source string
}

// Source is a single ranked rate source.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (Quote, error)
}

// Provider walks the ranked sources until both pairs are obtained,
// keeping whichever value each source did supply. A value obtained from
// an earlier source is never overwritten by a later one.
type Provider struct {
	sources []Source
}

// NewProvider builds a provider over the given ranked sources.
func NewProvider(sources ...Source) *Provider {
	return &Provider{sources: sources}
}

// NewDefaultProvider builds the production chain: TCMB, exchangerate.host,
// frankfurter.
func NewDefaultProvider() *Provider {
	client := &http.Client{Timeout: 10 * time.Second}
	return NewProvider(
		NewTCMBSource(client, ""),
		NewExchangerateHostSource(client, ""),
		NewFrankfurterSource(client, ""),
	)
}

// Fetch returns the merged snapshot. Total failure across all sources
// yields all-zero rates; callers must treat zero as "unknown" and fall
// back to defaults rather than dividing by it.
func (p *Provider) Fetch(ctx context.Context) domain.ExchangeRates {
	logger := slog.Default()

	var usdtry, sartry decimal.Decimal
	source := ""
	for _, s := range p.sources {
		if usdtry.IsPositive() && sartry.IsPositive() {
			break
		}
		q, err := s.Fetch(ctx)
		if err != nil {
			logger.Warn("rate source failed, falling through",
				slog.String("source", s.Name()), slog.String("error", err.Error()))
			continue
		}
		if !usdtry.IsPositive() && q.USDTRY.IsPositive() {
			usdtry = q.USDTRY
			source = s.Name()
		}
		if !sartry.IsPositive() && q.SARTRY.IsPositive() {
			sartry = q.SARTRY
			if source == "" {
				source = s.Name()
			}
		}
	}

	snapshot := domain.ExchangeRates{
		USDTRY:    usdtry,
		SARTRY:    sartry,
		FetchedAt: time.Now(),
		Source:    source,
	}
	// USDSAR is always derived, never fetched.
	if usdtry.IsPositive() && sartry.IsPositive() {
		snapshot.USDSAR = usdtry.Div(sartry)
	}
	return snapshot
}
