package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/bitport/internal/domain/error"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedQuote struct {
	result  string
	elapsed time.Duration
}

type fakeObserver struct {
	calls []recordedQuote
}

func (o *fakeObserver) ObserveQuote(result string, elapsed time.Duration) {
	o.calls = append(o.calls, recordedQuote{result: result, elapsed: elapsed})
}

func newTestClient(t *testing.T, handler http.HandlerFunc, apiKey string) (*CoinGeckoClient, *fakeObserver) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	observer := &fakeObserver{}
	client := NewCoinGeckoClient(server.URL, apiKey, time.Second, nil, observer,
		timeprovider.NewRealTimeProvider(), logger.NewNoopLogger())
	return client, observer
}

func TestCoinGeckoClient_GetPrice(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the listed price", func(t *testing.T) {
		client, observer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/simple/price", r.URL.Path)
			assert.Equal(t, "bitcoin", r.URL.Query().Get("ids"))
			assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
			assert.Equal(t, "demo-key", r.Header.Get("x-cg-demo-api-key"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"bitcoin":{"usd":65000.123456789}}`))
		}, "demo-key")

		price, err := client.GetPrice(ctx, "  Bitcoin ", "USD")
		require.NoError(t, err)
		assert.Equal(t, "65000.123456789", price.String())
		require.Len(t, observer.calls, 1)
		assert.Equal(t, ResultOK, observer.calls[0].result)
	})

	t.Run("No API key header without a key", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("x-cg-demo-api-key"))
			_, _ = w.Write([]byte(`{"ethereum":{"eur":3000}}`))
		}, "")

		price, err := client.GetPrice(ctx, "ethereum", "eur")
		require.NoError(t, err)
		assert.Equal(t, "3000", price.String())
	})

	failures := []struct {
		name    string
		status  int
		body    string
		from    string
		to      string
		snippet string
	}{
		{"Unknown pair", http.StatusOK, `{}`, "dogecoin", "xyz", "pair not listed"},
		{"Known asset, unknown quote currency", http.StatusOK, `{"bitcoin":{}}`, "bitcoin", "xyz", "pair not listed"},
		{"Zero price", http.StatusOK, `{"bitcoin":{"usd":0}}`, "bitcoin", "usd", "non-positive"},
		{"Malformed JSON", http.StatusOK, `{"bitcoin":`, "bitcoin", "usd", "decode"},
		{"Rate limited", http.StatusTooManyRequests, `{"error":"slow down"}`, "bitcoin", "usd", "status 429"},
		{"Server error", http.StatusInternalServerError, ``, "bitcoin", "usd", "status 500"},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			client, observer := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, "")

			_, err := client.GetPrice(ctx, tt.from, tt.to)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
			assert.Contains(t, err.Error(), tt.snippet)
			require.Len(t, observer.calls, 1)
			assert.Equal(t, ResultUnavailable, observer.calls[0].result)
		})
	}

	t.Run("Network failure", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		client := NewCoinGeckoClient(url, "", time.Second, nil, nil,
			timeprovider.NewRealTimeProvider(), logger.NewNoopLogger())

		_, err := client.GetPrice(ctx, "bitcoin", "usd")
		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	})

	t.Run("Timeout", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}, "")

		ctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		_, err := client.GetPrice(ctx, "bitcoin", "usd")
		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	})

	t.Run("Blank asset never reaches the provider", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected request")
		}, "")

		_, err := client.GetPrice(ctx, " ", "usd")
		assert.ErrorIs(t, err, errs.ErrQuoteUnavailable)
	})
}

func TestNewCoinGeckoClient_Defaults(t *testing.T) {
	client := NewCoinGeckoClient("", "", 0, nil, nil, timeprovider.NewRealTimeProvider(), logger.NewNoopLogger())

	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, 10*time.Second, client.httpClient.Timeout)

	trimmed := NewCoinGeckoClient("http://localhost:9999/api/v3/", "", time.Second, nil, nil,
		timeprovider.NewRealTimeProvider(), logger.NewNoopLogger())
	assert.Equal(t, "http://localhost:9999/api/v3", trimmed.baseURL)
}
