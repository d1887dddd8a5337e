package rates_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weberkan/mevatur-backend/internal/platform/rates"
)

type stubSource struct {
	name  string
	quote rates.Quote
	err   error
	calls int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context) (rates.Quote, error) {
	s.calls++
	return s.quote, s.err
}

func q(usdtry, sartry float64) rates.Quote {
	return rates.Quote{
		USDTRY: decimal.NewFromFloat(usdtry),
		SARTRY: decimal.NewFromFloat(sartry),
	}
}

func TestProvider_NeverDowngradesObtainedValues(t *testing.T) {
	// Primary supplies SARTRY only; secondary supplies USDTRY only.
	primary := &stubSource{name: "primary", quote: q(0, 9.1)}
	secondary := &stubSource{name: "secondary", quote: q(34.2, 0)}
	tertiary := &stubSource{name: "tertiary", quote: q(1, 1)}

	got := rates.NewProvider(primary, secondary, tertiary).Fetch(context.Background())

	assert.Equal(t, "34.2", got.USDTRY.String())
	assert.Equal(t, "9.1", got.SARTRY.String())
	// Both pairs were complete after the secondary; the tertiary is not consulted.
	assert.Equal(t, 0, tertiary.calls)
}

func TestProvider_DerivesUSDSAR(t *testing.T) {
	primary := &stubSource{name: "primary", quote: q(30, 10)}

	got := rates.NewProvider(primary).Fetch(context.Background())

	assert.Equal(t, "3", got.USDSAR.String())
	assert.Equal(t, "primary", got.Source)
	assert.False(t, got.FetchedAt.IsZero())
}

func TestProvider_SourceErrorFallsThrough(t *testing.T) {
	primary := &stubSource{name: "primary", err: errors.New("unreachable")}
	secondary := &stubSource{name: "secondary", quote: q(34, 9)}

	got := rates.NewProvider(primary, secondary).Fetch(context.Background())

	assert.Equal(t, "34", got.USDTRY.String())
	assert.Equal(t, "secondary", got.Source)
}

func TestProvider_TotalFailureYieldsZeroRates(t *testing.T) {
	a := &stubSource{name: "a", err: errors.New("down")}
	b := &stubSource{name: "b", err: errors.New("down")}

	got := rates.NewProvider(a, b).Fetch(context.Background())

	assert.True(t, got.IsZero())
	assert.True(t, got.USDSAR.IsZero(), "USDSAR stays 0 when a leg is unknown")
}

func TestParseTCMB(t *testing.T) {
	feed := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<Tarih_Date Tarih="30.08.2026" Date="08/30/2026">
	<Currency CrossOrder="0" Kod="USD" CurrencyCode="USD">
		<Unit>1</Unit>
		<ForexSelling>41,0013</ForexSelling>
		<BanknoteSelling>41,0628</BanknoteSelling>
	</Currency>
	<Currency CrossOrder="22" Kod="SAR" CurrencyCode="SAR">
		<Unit>1</Unit>
		<ForexSelling></ForexSelling>
		<BanknoteSelling>10,9164</BanknoteSelling>
	</Currency>
	<Currency CrossOrder="9" Kod="JPY" CurrencyCode="JPY">
		<Unit>100</Unit>
		<ForexSelling>27,6731</ForexSelling>
	</Currency>
</Tarih_Date>`)

	got, err := rates.ParseTCMB(feed)
	require.NoError(t, err)

	// ForexSelling preferred, BanknoteSelling as fallback.
	assert.Equal(t, "41.0013", got.USDTRY.String())
	assert.Equal(t, "10.9164", got.SARTRY.String())
}

func TestParseTCMB_UnitDivisor(t *testing.T) {
	feed := []byte(`<Tarih_Date>
	<Currency Kod="USD"><Unit>10</Unit><ForexSelling>410,50</ForexSelling></Currency>
</Tarih_Date>`)

	got, err := rates.ParseTCMB(feed)
	require.NoError(t, err)
	assert.Equal(t, "41.05", got.USDTRY.String())
}

func TestParseTCMB_Malformed(t *testing.T) {
	_, err := rates.ParseTCMB([]byte("<html>not the feed"))
	assert.Error(t, err)
}
