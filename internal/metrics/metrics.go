// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is used by services and middleware to report events.
type Recorder interface {
	RecordFlowStarted(kind string)
	RecordFlowOutcome(kind, outcome string)
	RecordLogin(outcome string)
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
	RecordSharesPurged(count int64)
}

// Flow and login outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeInvalidCode = "invalid_code"
	OutcomeExpired     = "expired"
	OutcomeFailed      = "failed"
	OutcomeNotFound    = "not_found"
	OutcomeBadPassword = "invalid_credential"
)

var _ Recorder = (*Collector)(nil)

// Collector is the Prometheus Recorder.
type Collector struct {
	flowsStarted *prometheus.CounterVec
	flowOutcomes *prometheus.CounterVec
	logins       *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
	sharesPurged prometheus.Counter
}

// NewCollector creates a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		flowsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aethercure_flows_started_total",
			Help: "Signup and password reset flows started.",
		}, []string{"kind"}),
		flowOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aethercure_flow_outcomes_total",
			Help: "Flow completion attempts by outcome.",
		}, []string{"kind", "outcome"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aethercure_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aethercure_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "aethercure_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		sharesPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aethercure_shares_purged_total",
			Help: "Expired share links removed by the cleanup worker.",
		}),
	}

	reg.MustRegister(
		c.flowsStarted,
		c.flowOutcomes,
		c.logins,
		c.httpRequests,
		c.httpLatency,
		c.sharesPurged,
	)

	return c
}

func (c *Collector) RecordFlowStarted(kind string) {
	c.flowsStarted.WithLabelValues(kind).Inc()
}

func (c *Collector) RecordFlowOutcome(kind, outcome string) {
	c.flowOutcomes.WithLabelValues(kind, outcome).Inc()
}

func (c *Collector) RecordLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordSharesPurged(count int64) {
	c.sharesPurged.Add(float64(count))
}

// Noop discards all events.
type Noop struct{}

func (Noop) RecordFlowStarted(string) {}
func (Noop) RecordFlowOutcome(string, string) {}
func (Noop) RecordLogin(string) {}
func (Noop) RecordHTTPRequest(string, string, int, time.Duration) {}
func (Noop) RecordSharesPurged(int64) {}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
