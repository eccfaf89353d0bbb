package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcomes recorded on FetchesTotal.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
	OutcomeStale = "stale"
)

// Metrics provides observability for the notice board controller.
// Tracks fetch outcomes, fetch latency and committed searches.
//
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	FetchesTotal      *prometheus.CounterVec
	FetchDuration     prometheus.Histogram
	SearchesCommitted prometheus.Counter
}

// New creates a new Metrics instance with all collectors registered on reg.
// Pass prometheus.DefaultRegisterer to expose them on the default registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FetchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "noticeboard_fetches_total",
			Help: "Total number of notice fetches by outcome (ok, error, stale)",
		}, []string{"outcome"}),
		FetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "noticeboard_fetch_duration_seconds",
			Help:    "Duration of notice list fetches",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		SearchesCommitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "noticeboard_searches_committed_total",
			Help: "Total number of committed keyword searches",
		}),
	}
}

// ObserveFetch records the duration and outcome of a fetch.
// Call with time.Now() taken before the fetch started.
func (m *Metrics) ObserveFetch(start time.Time, outcome string) {
	if m == nil {
		return
	}
	m.FetchDuration.Observe(time.Since(start).Seconds())
	m.FetchesTotal.WithLabelValues(outcome).Inc()
}

// IncrementSearchesCommitted records a committed search.
func (m *Metrics) IncrementSearchesCommitted() {
	if m == nil {
		return
	}
	m.SearchesCommitted.Inc()
}
