package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// Fee resolves a participant's nominal fee in the group's currency:
// feesByDuration[dayCount][roomType] minus the discount, clamped at 0.
// A missing (duration, room-type) combination resolves to 0, not an error.
func Fee(group domain.Group, p domain.Participant) decimal.Decimal {
	base := group.FeesByDuration.ForDuration(p.DayCount).ForRoomType(p.RoomType)
	fee := base.Sub(p.Discount)
	if fee.IsNegative() {
		return decimal.Zero
	}
	return fee
}

// FeeInTRY converts the participant fee into the reference currency using
// the rates in effect now; unknown rates fall back to the hardcoded
// defaults rather than propagating an error.
func FeeInTRY(group domain.Group, p domain.Participant, rates domain.ExchangeRates) decimal.Decimal {
	return ConvertToTRY(Fee(group, p), group.Currency, rates)
}

// ConvertToTRY converts an amount from the given currency into TRY.
func ConvertToTRY(amount decimal.Decimal, currency string, rates domain.ExchangeRates) decimal.Decimal {
	eff := rates.Effective()
	switch currency {
	case domain.CurrencyTRY:
		return amount
	case domain.CurrencyUSD:
		return amount.Mul(eff.USDTRY)
	case domain.CurrencySAR:
		return amount.Mul(eff.SARTRY)
	}
	return amount
}

// Convert converts an amount between any two supported currencies. When
// neither side is the reference currency the cross-rate goes through TRY.
func Convert(amount decimal.Decimal, from, to string, rates domain.ExchangeRates) decimal.Decimal {
	if from == to {
		return amount
	}
	eff := rates.Effective()
	inTRY := ConvertToTRY(amount, from, eff)
	switch to {
	case domain.CurrencyTRY:
		return inTRY
	case domain.CurrencyUSD:
		return inTRY.Div(eff.USDTRY)
	case domain.CurrencySAR:
		return inTRY.Div(eff.SARTRY)
	}
	return amount
}

// PaymentSumsByCurrency partitions payments into per-currency buckets.
// Currencies without any payment are absent from the result.
func PaymentSumsByCurrency(payments []domain.Payment) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, p := range payments {
		sums[p.Currency] = sums[p.Currency].Add(p.Amount)
	}
	return sums
}

// PaidInCurrency converts every bucket into the target currency with the
// rates at evaluation time and sums them with the native bucket.
func PaidInCurrency(sums map[string]decimal.Decimal, target string, rates domain.ExchangeRates) decimal.Decimal {
	total := decimal.Zero
	for currency, amount := range sums {
		total = total.Add(Convert(amount, currency, target, rates))
	}
	return total
}

// Balance computes fee minus payments in the group's currency. Foreign
// payments convert at the rates in effect now, not at payment time, which
// intentionally diverges from the stored amountTRY snapshots. Positive
// means still owed, negative means overpaid.
func Balance(group domain.Group, payments []domain.Payment, p domain.Participant, rates domain.ExchangeRates) decimal.Decimal {
	fee := Fee(group, p)
	paid := PaidInCurrency(PaymentSumsByCurrency(payments), group.Currency, rates)
	return fee.Sub(paid)
}

// PaidTRYRecorded sums the amountTRY snapshots stored at write time. A
// payment with no snapshot counts its original amount, matching how the
// rows were persisted.
func PaidTRYRecorded(payments []domain.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.AmountTRY.IsZero() {
			total = total.Add(p.Amount)
			continue
		}
		total = total.Add(p.AmountTRY)
	}
	return total
}

// BalanceTRY is the reference-currency view: the fee converted live minus
// the recorded amountTRY snapshots. It can disagree with Balance purely
// through rate staleness between payment time and read time; both views
// are valid and must stay labeled distinctly.
func BalanceTRY(group domain.Group, payments []domain.Payment, p domain.Participant, rates domain.ExchangeRates) decimal.Decimal {
	return FeeInTRY(group, p, rates).Sub(PaidTRYRecorded(payments))
}
