package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/bitport/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

const (
	// DefaultBaseURL is the public CoinGecko v3 API
	DefaultBaseURL  = "https://api.coingecko.com/api/v3"
	simplePricePath = "/simple/price"
	apiKeyHeader    = "x-cg-demo-api-key"

	maxResponseBytes = 1 << 20
)

// Lookup results reported to the latency observer
const (
	ResultOK          = "ok"
	ResultUnavailable = "unavailable"
)

// LatencyObserver receives the duration and result of every price lookup
type LatencyObserver interface {
	ObserveQuote(result string, elapsed time.Duration)
}

// CoinGeckoClient prices asset pairs with the CoinGecko simple price endpoint
type CoinGeckoClient struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	observer     LatencyObserver
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCoinGeckoClient creates a client. A nil httpClient gets one with the given timeout; observer may be nil.
func NewCoinGeckoClient(
	baseURL string,
	apiKey string,
	timeout time.Duration,
	httpClient *http.Client,
	observer LatencyObserver,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *CoinGeckoClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &CoinGeckoClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		apiKey:       apiKey,
		httpClient:   httpClient,
		observer:     observer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetPrice returns how many units of toAsset one unit of fromAsset is worth.
// Every failure wraps ErrQuoteUnavailable.
func (c *CoinGeckoClient) GetPrice(ctx context.Context, fromAsset, toAsset string) (decimal.Decimal, error) {
	from := strings.ToLower(strings.TrimSpace(fromAsset))
	to := strings.ToLower(strings.TrimSpace(toAsset))

	start := c.timeProvider.Now()
	price, err := c.fetch(ctx, from, to)
	elapsed := c.timeProvider.Since(start).Std()

	if err != nil {
		c.observe(ResultUnavailable, elapsed)
		quoteErr := errs.NewQuoteError(from, to, err.Error(), nil)
		c.logger.Warn("Price lookup failed", map[string]any{
			"from_currency": from,
			"to_currency":   to,
			"elapsed":       elapsed.String(),
			"error":         err.Error(),
		})
		return decimal.Zero, quoteErr
	}

	c.observe(ResultOK, elapsed)
	c.logger.Debug("Price lookup succeeded", map[string]any{
		"from_currency": from,
		"to_currency":   to,
		"price":         price.String(),
		"elapsed":       elapsed.String(),
	})
	return price, nil
}

func (c *CoinGeckoClient) fetch(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if from == "" || to == "" {
		return decimal.Zero, fmt.Errorf("empty asset identifier")
	}

	query := url.Values{}
	query.Set("ids", from)
	query.Set("vs_currencies", to)
	reqURL := c.baseURL + simplePricePath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	// {"bitcoin":{"usd":65000.12}}
	var prices map[string]map[string]decimal.Decimal
	if err := json.Unmarshal(body, &prices); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode response: %w", err)
	}

	price, ok := prices[from][to]
	if !ok {
		return decimal.Zero, fmt.Errorf("pair not listed")
	}
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("non-positive price %s", price.String())
	}

	return price, nil
}

func (c *CoinGeckoClient) observe(result string, elapsed time.Duration) {
	if c.observer != nil {
		c.observer.ObserveQuote(result, elapsed)
	}
}
