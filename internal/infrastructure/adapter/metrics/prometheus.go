package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bitport"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	swapsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swaps_total",
			Help:      "Total number of swap requests by outcome",
		},
		[]string{"outcome"},
	)

	quoteDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_request_duration_seconds",
			Help:      "Duration of price provider lookups",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2, 5, 10},
		},
		[]string{"result"},
	)

	dbPoolConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_connections",
			Help:      "Database pool connections by state",
		},
		[]string{"state"},
	)

	dbPoolWaitCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_wait_count",
			Help:      "Total number of connections waited for",
		},
	)
)

// Recorder publishes application metrics to the default Prometheus registry
type Recorder struct{}

// NewRecorder creates a recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordSwap counts one swap request by outcome
func (r *Recorder) RecordSwap(outcome coreport.SwapOutcome) {
	swapsTotal.WithLabelValues(string(outcome)).Inc()
}

// ObserveQuote records the latency of one price lookup
func (r *Recorder) ObserveQuote(result string, elapsed time.Duration) {
	quoteDuration.WithLabelValues(result).Observe(elapsed.Seconds())
}

// ObservePoolStats publishes a connection pool snapshot
func (r *Recorder) ObservePoolStats(stats sql.DBStats) {
	dbPoolConnections.WithLabelValues("open").Set(float64(stats.OpenConnections))
	dbPoolConnections.WithLabelValues("in_use").Set(float64(stats.InUse))
	dbPoolConnections.WithLabelValues("idle").Set(float64(stats.Idle))
	dbPoolConnections.WithLabelValues("max_open").Set(float64(stats.MaxOpenConnections))
	dbPoolWaitCount.Set(float64(stats.WaitCount))
}

// ObserveHTTPRequest counts one served request. route is the matched route template, not the raw path.
func (r *Recorder) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the default registry in the Prometheus exposition format
func Handler() http.Handler {
	return promhttp.Handler()
}
