package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"settlement-ledger/config"
	"settlement-ledger/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// rateResponse is the wire format of the market-data feed.
type rateResponse struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
	Rate  string `json:"rate"`
}

// HTTPProvider implements ports.QuoteProvider against an HTTP
// market-data feed. It fails closed: any fetch or decode problem is an
// error, never a stale or defaulted rate.
type HTTPProvider struct {
	baseURL  string
	validity time.Duration
	client   *http.Client
	log      zerolog.Logger
}

// NewHTTPProvider creates a quote provider for the configured feed.
func NewHTTPProvider(cfg config.QuotesConfig, log zerolog.Logger) *HTTPProvider {
	return &HTTPProvider{
		baseURL:  cfg.URL,
		validity: cfg.Validity,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// QuoteFor fetches a point-in-time rate for the base/quote pair. The
// returned quote is valid for the configured validity window from the
// moment of the fetch.
func (p *HTTPProvider) QuoteFor(ctx context.Context, base, quote domain.Currency) (*domain.ExchangeRateQuote, error) {
	reqURL := fmt.Sprintf("%s?base=%s&quote=%s", p.baseURL, url.QueryEscape(string(base)), url.QueryEscape(string(quote)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building quote request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote feed returned status %d", resp.StatusCode)
	}

	var body rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding quote response: %w", err)
	}

	// Rates travel as strings to keep the feed's precision intact.
	rate, err := decimal.NewFromString(body.Rate)
	if err != nil {
		return nil, fmt.Errorf("parsing quote rate %q: %w", body.Rate, err)
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("quote feed returned non-positive rate %s", rate)
	}
	if body.Base != string(base) || body.Quote != string(quote) {
		return nil, fmt.Errorf("quote feed returned pair %s/%s, requested %s/%s", body.Base, body.Quote, base, quote)
	}

	q := &domain.ExchangeRateQuote{
		Base:       base,
		Quote:      quote,
		Rate:       rate,
		ValidUntil: time.Now().Add(p.validity),
	}

	p.log.Debug().
		Str("base", string(base)).
		Str("quote", string(quote)).
		Str("rate", rate.String()).
		Time("valid_until", q.ValidUntil).
		Msg("exchange rate quote fetched")

	return q, nil
}
