package observability

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "octofit"

// Metrics owns a private registry so separate instances (tests, tools) never collide.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	recomputeRuns     *prometheus.CounterVec
	recomputeDuration prometheus.Histogram
	leaderboardSize   prometheus.Gauge

	seedRuns       *prometheus.CounterVec
	seedActivities prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
			},
			[]string{"method", "route"},
		),
		recomputeRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "leaderboard",
				Name:      "recompute_total",
				Help:      "Leaderboard recomputations by outcome.",
			},
			[]string{"outcome"},
		),
		recomputeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "leaderboard",
				Name:      "recompute_duration_seconds",
				Help:      "Duration of leaderboard recomputations.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
			},
		),
		leaderboardSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: "leaderboard",
				Name:      "entries",
				Help:      "Entries written by the last successful recomputation.",
			},
		),
		seedRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "seed",
				Name:      "runs_total",
				Help:      "Seed runs by outcome.",
			},
			[]string{"outcome"},
		),
		seedActivities: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "seed",
				Name:      "activities_total",
				Help:      "Activities inserted by seed runs.",
			},
		),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.recomputeRuns,
		m.recomputeDuration,
		m.leaderboardSize,
		m.seedRuns,
		m.seedActivities,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	method = strings.ToUpper(method)
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveLeaderboardRecompute(entries int, elapsed time.Duration, err error) {
	m.recomputeRuns.WithLabelValues(outcome(err)).Inc()
	m.recomputeDuration.Observe(elapsed.Seconds())
	if err == nil {
		m.leaderboardSize.Set(float64(entries))
	}
}

func (m *Metrics) ObserveSeed(activities int, elapsed time.Duration, err error) {
	m.seedRuns.WithLabelValues(outcome(err)).Inc()
	if err == nil && activities > 0 {
		m.seedActivities.Add(float64(activities))
	}
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
