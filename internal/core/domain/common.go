package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// Supported currency codes. TRY is the reference currency: every
// cross-currency conversion normalizes through it.
const (
	CurrencyTRY = "TRY"
	CurrencyUSD = "USD"
	CurrencySAR = "SAR"

	ReferenceCurrency = CurrencyTRY
)

// SupportedCurrencies lists the currencies amounts may be denominated in.
var SupportedCurrencies = []string{CurrencyTRY, CurrencyUSD, CurrencySAR}

// IsSupportedCurrency reports whether code is one of the supported currencies.
func IsSupportedCurrency(code string) bool {
	for _, c := range SupportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}
