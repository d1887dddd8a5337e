package rates

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
)

const tcmbURL = "https://www.tcmb.gov.tr/kurlar/today.xml"

// tcmbDocument mirrors the central bank's daily rates feed. Only the
// fields needed for a per-single-unit selling rate are mapped.
type tcmbDocument struct {
	XMLName    xml.Name       `xml:"Tarih_Date"`
	Currencies []tcmbCurrency `xml:"Currency"`
}

type tcmbCurrency struct {
	Code            string `xml:"Kod,attr"`
	Unit            string `xml:"Unit"`
	ForexSelling    string `xml:"ForexSelling"`
	BanknoteSelling string `xml:"BanknoteSelling"`
}

// TCMBSource fetches USD/TRY and SAR/TRY from the Turkish central bank's
// XML feed. It is the primary ranked source.
type TCMBSource struct {
	client *http.Client
	url    string
}

// NewTCMBSource creates the primary source. An empty url uses the
// production feed.
func NewTCMBSource(client *http.Client, url string) *TCMBSource {
	if url == "" {
		url = tcmbURL
	}
	return &TCMBSource{client: client, url: url}
}

func (s *TCMBSource) Name() string { return "tcmb" }

func (s *TCMBSource) Fetch(ctx context.Context) (Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return Quote{}, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return Quote{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("tcmb returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Quote{}, err
	}
	return ParseTCMB(body)
}

// ParseTCMB extracts per-single-unit USD/TRY and SAR/TRY selling rates
// from the feed body: rate = sellingPrice / units. A currency block that
// is missing or unparseable yields 0 for that pair, never an error.
func ParseTCMB(body []byte) (Quote, error) {
	var doc tcmbDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return Quote{}, fmt.Errorf("failed to decode tcmb feed: %w", err)
	}

	q := Quote{Source: "tcmb"}
	for _, c := range doc.Currencies {
		switch c.Code {
		case "USD":
			q.USDTRY = perUnitSelling(c)
		case "SAR":
			q.SARTRY = perUnitSelling(c)
		}
	}
	return q, nil
}

func perUnitSelling(c tcmbCurrency) decimal.Decimal {
	unit, err := strconv.Atoi(c.Unit)
	if err != nil || unit < 1 {
		unit = 1
	}

	raw := c.ForexSelling
	if raw == "" {
		raw = c.BanknoteSelling
	}
	rate := ParseDecimalSmart(raw)
	if !rate.IsPositive() {
		return decimal.Zero
	}
	return rate.Div(decimal.NewFromInt(int64(unit)))
}
