package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

const (
	exchangerateHostURL = "https://api.exchangerate.host/latest"
	frankfurterURL      = "https://api.frankfurter.app/latest"
)

// latestResponse covers both JSON fallback feeds; each returns the TRY
// rate for the requested base currency under "rates".
type latestResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// JSONSource fetches USD/TRY and SAR/TRY from a JSON rate API that takes
// base/target query parameters. Both fallback sources share this shape.
type JSONSource struct {
	client   *http.Client
	name     string
	baseURL  string
	baseKey  string // query param naming the base currency
	quoteKey string // query param naming the target currency list
}

// NewExchangerateHostSource creates the secondary ranked source.
func NewExchangerateHostSource(client *http.Client, baseURL string) *JSONSource {
	if baseURL == "" {
		baseURL = exchangerateHostURL
	}
	return &JSONSource{client: client, name: "exchangerate.host", baseURL: baseURL, baseKey: "base", quoteKey: "symbols"}
}

// NewFrankfurterSource creates the tertiary ranked source.
func NewFrankfurterSource(client *http.Client, baseURL string) *JSONSource {
	if baseURL == "" {
		baseURL = frankfurterURL
	}
	return &JSONSource{client: client, name: "frankfurter", baseURL: baseURL, baseKey: "from", quoteKey: "to"}
}

func (s *JSONSource) Name() string { return s.name }

func (s *JSONSource) Fetch(ctx context.Context) (Quote, error) {
	usdtry, err := s.fetchTRYRate(ctx, "USD")
	if err != nil {
		return Quote{}, err
	}
	sartry, err := s.fetchTRYRate(ctx, "SAR")
	if err != nil {
		// Keep whatever the first call supplied.
		return Quote{USDTRY: usdtry, Source: s.name}, nil
	}
	return Quote{USDTRY: usdtry, SARTRY: sartry, Source: s.name}, nil
}

func (s *JSONSource) fetchTRYRate(ctx context.Context, base string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s?%s=%s&%s=TRY", s.baseURL, s.baseKey, base, s.quoteKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%s returned status %d", s.name, resp.StatusCode)
	}

	var parsed latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return decimal.Zero, err
	}
	rate, ok := parsed.Rates["TRY"]
	if !ok || rate <= 0 {
		return decimal.Zero, nil
	}
	return decimal.NewFromFloat(rate), nil
}
