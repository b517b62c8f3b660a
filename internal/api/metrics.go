package api

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records Prometheus metrics for executed requests. It is safe for
// concurrent use and every method is a no-op on a nil receiver.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	rateLimitWait    prometheus.Histogram
	errorsTotal      *prometheus.CounterVec
}

// NewMetrics registers the request metrics on reg. Clients registered on the
// same registerer share the collectors already there. Any other registration
// failure is returned.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{}
	var err error
	if m.requestsTotal, err = register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resend_requests_total",
			Help: "Total number of API requests that produced a response",
		},
		[]string{"operation", "status_code"},
	)); err != nil {
		return nil, err
	}
	if m.requestDuration, err = register(reg, prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resend_request_duration_seconds",
			Help:    "Duration of API requests in seconds, including rate-limit wait",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)); err != nil {
		return nil, err
	}
	if m.requestsInFlight, err = register(reg, prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "resend_requests_in_flight",
			Help: "Number of admitted API requests awaiting a response",
		},
	)); err != nil {
		return nil, err
	}
	if m.rateLimitWait, err = register(reg, prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resend_rate_limit_wait_seconds",
			Help:    "Time spent waiting for client-side rate-limit admission",
			Buckets: []float64{0, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)); err != nil {
		return nil, err
	}
	if m.errorsTotal, err = register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resend_errors_total",
			Help: "Total number of failed API calls by error kind",
		},
		[]string{"operation", "kind"},
	)); err != nil {
		return nil, err
	}
	return m, nil
}

// register adds c to reg, or returns the equal collector already registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	var zero C
	return zero, fmt.Errorf("register metrics: %w", err)
}

func (m *Metrics) recordRequest(operation string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(operation, strconv.Itoa(statusCode)).Inc()
	m.requestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *Metrics) recordWait(d time.Duration) {
	if m == nil {
		return
	}
	m.rateLimitWait.Observe(d.Seconds())
}

func (m *Metrics) recordError(operation, kind string) {
	if m == nil {
		return
	}
	m.errorsTotal.WithLabelValues(operation, kind).Inc()
}

func (m *Metrics) inFlight(delta float64) {
	if m == nil {
		return
	}
	m.requestsInFlight.Add(delta)
}
