package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                        sync.Once
	metricsRouter               *chi.Mux
	ledgerClientLatency         *prometheus.HistogramVec
	dbLatency                   *prometheus.HistogramVec
	pollerDurationHistogram     *prometheus.HistogramVec
	syncPassDurationHistogram   *prometheus.HistogramVec
	syncPassSkippedCounter      prometheus.Counter
	walletsDiscoveredCounter    prometheus.Counter
	transactionsIngestedCounter *prometheus.CounterVec
	sweepUsersGauge             prometheus.Gauge
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	ledgerClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_client_latency_seconds",
			Help:    "Histogram of ledger client request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_latency_seconds",
			Help:    "Histogram of db query durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller execution durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"poller", "status"},
	)

	syncPassDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sync_pass_duration_seconds",
			Help:    "Histogram of reconciliation pass durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"trigger", "status"},
	)

	syncPassSkippedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sync_pass_skipped_count",
			Help: "The total number of reconciliation passes skipped because one was already in progress",
		},
	)

	walletsDiscoveredCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wallets_discovered_count",
			Help: "The total number of counterpart wallets discovered during reconciliation",
		},
	)

	transactionsIngestedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transactions_ingested_count",
			Help: "The total number of ledger transactions ingested, by result",
		},
		[]string{"result"},
	)

	sweepUsersGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "background_sweep_users",
			Help: "Number of users selected by the most recent background sweep",
		},
	)

	prometheus.MustRegister(
		ledgerClientLatency,
		dbLatency,
		pollerDurationHistogram,
		syncPassDurationHistogram,
		syncPassSkippedCounter,
		walletsDiscoveredCounter,
		transactionsIngestedCounter,
		sweepUsersGauge,
	)
}

func outcome(failure bool) Outcome {
	if failure {
		return Error
	}
	return Success
}

func RecordLedgerClientLatency(duration time.Duration, method string, failure bool) {
	if ledgerClientLatency == nil {
		return
	}
	ledgerClientLatency.WithLabelValues(method, outcome(failure).String()).Observe(duration.Seconds())
}

func RecordDBLatency(duration time.Duration, method string, failure bool) {
	if dbLatency == nil {
		return
	}
	dbLatency.WithLabelValues(method, outcome(failure).String()).Observe(duration.Seconds())
}

func RecordSyncPassDuration(duration time.Duration, trigger string, failure bool) {
	if syncPassDurationHistogram == nil {
		return
	}
	syncPassDurationHistogram.WithLabelValues(trigger, outcome(failure).String()).Observe(duration.Seconds())
}

func RecordSyncPassSkipped() {
	if syncPassSkippedCounter == nil {
		return
	}
	syncPassSkippedCounter.Inc()
}

func RecordWalletsDiscovered(count int) {
	if walletsDiscoveredCounter == nil {
		return
	}
	walletsDiscoveredCounter.Add(float64(count))
}

func RecordTransactionsIngested(result string, count int) {
	if transactionsIngestedCounter == nil {
		return
	}
	transactionsIngestedCounter.WithLabelValues(result).Add(float64(count))
}

func RecordSweepUsers(count int) {
	if sweepUsersGauge == nil {
		return
	}
	sweepUsersGauge.Set(float64(count))
}
