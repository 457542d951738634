// Package metrics exports Prometheus metrics for passage lookups.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/FocuswithJustin/DailyBread/core/errors"
	"github.com/FocuswithJustin/DailyBread/core/fetch"
)

const namespace = "dailybread"

// Status label values.
const (
	StatusFound    = "found"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

var _ fetch.Observer = (*Metrics)(nil)

// Metrics records fetch planning and assembly. It implements fetch.Observer.
type Metrics struct {
	registry *prometheus.Registry

	queriesTotal      *prometheus.CounterVec
	queryDuration     prometheus.Histogram
	passagesTotal     *prometheus.CounterVec
	referencesDropped prometheus.Counter
	planQueries       prometheus.Histogram

	httpRequests *prometheus.CounterVec
}

// New registers the DailyBread metrics, plus Go runtime and process
// collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg)
}

// NewWithRegistry registers the DailyBread metrics on reg.
func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		queriesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "queries_total",
			Help:      "Range queries issued to the content source, by outcome.",
		}, []string{"status"}),
		queryDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "query_duration_seconds",
			Help:      "Latency of range queries to the content source.",
			Buckets:   prometheus.DefBuckets,
		}),
		passagesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passages_total",
			Help:      "Passages resolved, by outcome.",
		}, []string{"status"}),
		referencesDropped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "references_dropped_total",
			Help:      "References dropped by lenient lookups.",
		}),
		planQueries: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "plan_queries",
			Help:      "Number of range queries planned per passage.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34},
		}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "API requests, by route and status code class.",
		}, []string{"route", "code"}),
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Planned(queries int) {
	m.planQueries.Observe(float64(queries))
}

func (m *Metrics) QueryFinished(d time.Duration, found bool, err error) {
	m.queryDuration.Observe(d.Seconds())
	m.queriesTotal.WithLabelValues(status(found, err)).Inc()
}

func (m *Metrics) PassageFinished(err error) {
	switch {
	case err == nil:
		m.passagesTotal.WithLabelValues(StatusFound).Inc()
	case errors.Is(err, errors.ErrNotFound):
		m.passagesTotal.WithLabelValues(StatusNotFound).Inc()
	default:
		m.passagesTotal.WithLabelValues(StatusError).Inc()
	}
}

func (m *Metrics) ReferenceDropped() {
	m.referencesDropped.Inc()
}

// HTTPRequest counts one API request. code is reduced to its class, such
// as "2xx", to bound label cardinality.
func (m *Metrics) HTTPRequest(route string, code int) {
	m.httpRequests.WithLabelValues(route, codeClass(code)).Inc()
}

func status(found bool, err error) string {
	switch {
	case err != nil:
		return StatusError
	case found:
		return StatusFound
	default:
		return StatusNotFound
	}
}

func codeClass(code int) string {
	if code < 100 || code > 599 {
		return "other"
	}
	return string(rune('0'+code/100)) + "xx"
}
