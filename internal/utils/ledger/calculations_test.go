package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weberkan/mevatur-backend/internal/core/domain"
	"github.com/weberkan/mevatur-backend/internal/utils/ledger"
)

func usdGroup() domain.Group {
	return domain.Group{
		GroupID:  "g1",
		Currency: domain.CurrencyUSD,
		FeesByDuration: domain.FeesByDuration{
			D7: domain.FeeSet{
				Room2: decimal.NewFromInt(1000),
				Room3: decimal.NewFromInt(800),
				Room4: decimal.NewFromInt(700),
			},
			D10: domain.FeeSet{Room2: decimal.NewFromInt(1400)},
		},
	}
}

func liveRates(usdtry, sartry float64) domain.ExchangeRates {
	r := domain.ExchangeRates{
		USDTRY: decimal.NewFromFloat(usdtry),
		SARTRY: decimal.NewFromFloat(sartry),
	}
	if r.USDTRY.IsPositive() && r.SARTRY.IsPositive() {
		r.USDSAR = r.USDTRY.Div(r.SARTRY)
	}
	return r
}

func TestFee(t *testing.T) {
	g := usdGroup()

	p := domain.Participant{GroupID: "g1", RoomType: "2", DayCount: 7, Discount: decimal.NewFromInt(50)}
	assert.True(t, ledger.Fee(g, p).Equal(decimal.NewFromInt(950)))

	// No discount.
	p.Discount = decimal.Zero
	assert.True(t, ledger.Fee(g, p).Equal(decimal.NewFromInt(1000)))

	// Discount larger than the nominal fee clamps at zero.
	p.Discount = decimal.NewFromInt(1200)
	assert.True(t, ledger.Fee(g, p).IsZero())

	// Missing (duration, room-type) combination resolves to 0, not an error.
	p = domain.Participant{GroupID: "g1", RoomType: "3", DayCount: 10}
	assert.True(t, ledger.Fee(g, p).IsZero())
	p = domain.Participant{GroupID: "g1", RoomType: "2", DayCount: 14}
	assert.True(t, ledger.Fee(g, p).IsZero())
}

func TestFeeInTRY_FallsBackToDefaultRate(t *testing.T) {
	g := usdGroup()
	p := domain.Participant{GroupID: "g1", RoomType: "2", DayCount: 7}

	// No known rates: the hardcoded 34 TRY/USD default applies.
	got := ledger.FeeInTRY(g, p, domain.ExchangeRates{})
	assert.True(t, got.Equal(decimal.NewFromInt(34000)), "got %s", got)

	got = ledger.FeeInTRY(g, p, liveRates(30, 9))
	assert.True(t, got.Equal(decimal.NewFromInt(30000)), "got %s", got)
}

func TestBalance_EndToEnd(t *testing.T) {
	// Group currency USD, d7/room2 fee 1000, discount 50 -> fee 950.
	// Payments: 500 USD and 1000 TRY at USDTRY=30 read-time rate.
	// paid = 500 + 1000/30 = 533.33 -> balance = 416.67.
	g := usdGroup()
	p := domain.Participant{ParticipantID: "p1", GroupID: "g1", RoomType: "2", DayCount: 7, Discount: decimal.NewFromInt(50)}
	payments := []domain.Payment{
		{ParticipantID: "p1", Amount: decimal.NewFromInt(500), Currency: domain.CurrencyUSD},
		{ParticipantID: "p1", Amount: decimal.NewFromInt(1000), Currency: domain.CurrencyTRY},
	}

	balance := ledger.Balance(g, payments, p, liveRates(30, 9))
	assert.Equal(t, "416.67", balance.Round(2).String())
}

func TestBalance_LinearInPayments(t *testing.T) {
	g := usdGroup()
	p := domain.Participant{ParticipantID: "p1", GroupID: "g1", RoomType: "2", DayCount: 7}
	rates := liveRates(30, 9)

	base := ledger.Balance(g, nil, p, rates)

	// A payment in the group's currency decreases balance by exactly a.
	withUSD := ledger.Balance(g, []domain.Payment{
		{Amount: decimal.NewFromInt(120), Currency: domain.CurrencyUSD},
	}, p, rates)
	assert.True(t, base.Sub(withUSD).Equal(decimal.NewFromInt(120)))

	// A foreign payment decreases balance by a*rate at evaluation time,
	// regardless of any stored amountTRY snapshot.
	withTRY := ledger.Balance(g, []domain.Payment{
		{Amount: decimal.NewFromInt(300), Currency: domain.CurrencyTRY, AmountTRY: decimal.NewFromInt(999)},
	}, p, rates)
	assert.True(t, base.Sub(withTRY).Equal(decimal.NewFromInt(300).Div(decimal.NewFromInt(30))))
}

func TestBalance_SARPaymentsConvertThroughReference(t *testing.T) {
	g := usdGroup()
	p := domain.Participant{ParticipantID: "p1", GroupID: "g1", RoomType: "2", DayCount: 7}
	rates := liveRates(30, 10) // USDSAR = 3

	balance := ledger.Balance(g, []domain.Payment{
		{Amount: decimal.NewFromInt(300), Currency: domain.CurrencySAR},
	}, p, rates)

	// 300 SAR = 3000 TRY = 100 USD.
	assert.True(t, decimal.NewFromInt(1000).Sub(balance).Equal(decimal.NewFromInt(100)), "balance %s", balance)
}

func TestBalanceTRY_UsesRecordedSnapshots(t *testing.T) {
	g := usdGroup()
	p := domain.Participant{ParticipantID: "p1", GroupID: "g1", RoomType: "2", DayCount: 7}

	// Payment recorded at an older 28 TRY/USD rate; read-time rate is 30.
	payments := []domain.Payment{
		{Amount: decimal.NewFromInt(500), Currency: domain.CurrencyUSD, AmountTRY: decimal.NewFromInt(14000)},
	}
	rates := liveRates(30, 9)

	balanceTRY := ledger.BalanceTRY(g, payments, p, rates)
	// fee 1000 USD * 30 = 30000 TRY, minus the 14000 snapshot.
	assert.True(t, balanceTRY.Equal(decimal.NewFromInt(16000)), "got %s", balanceTRY)

	// The group-currency view converts live instead and disagrees.
	balance := ledger.Balance(g, payments, p, rates)
	assert.True(t, balance.Equal(decimal.NewFromInt(500)))
}

func TestPaymentSumsByCurrency_NeverMergesCurrencies(t *testing.T) {
	sums := ledger.PaymentSumsByCurrency([]domain.Payment{
		{Amount: decimal.NewFromInt(100), Currency: domain.CurrencyUSD},
		{Amount: decimal.NewFromInt(100), Currency: domain.CurrencyTRY},
	})

	require.Len(t, sums, 2)
	assert.True(t, sums[domain.CurrencyUSD].Equal(decimal.NewFromInt(100)))
	assert.True(t, sums[domain.CurrencyTRY].Equal(decimal.NewFromInt(100)))
	_, hasSAR := sums[domain.CurrencySAR]
	assert.False(t, hasSAR, "zero-activity currencies are omitted, not zero rows")
}
