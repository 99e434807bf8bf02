package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the cascade module.
type Metrics struct {
	AggregateDuration prometheus.Histogram
	LoadRowsDuration  prometheus.Histogram
	RowsAggregated    prometheus.Counter
	InvalidInput      prometheus.Counter
	CacheResults      *prometheus.CounterVec
}

// New creates the cascade metrics registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AggregateDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "deskflow_cascade_aggregate_duration_seconds",
			Help:    "Duration of the in-memory cascade rollup",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),
		LoadRowsDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "deskflow_cascade_load_rows_duration_seconds",
			Help:    "Duration of loading cascade rows from the row source",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		RowsAggregated: factory.NewCounter(prometheus.CounterOpts{
			Name: "deskflow_cascade_rows_aggregated_total",
			Help: "File distribution rows rolled up into cascades",
		}),
		InvalidInput: factory.NewCounter(prometheus.CounterOpts{
			Name: "deskflow_cascade_invalid_input_total",
			Help: "Cascades aborted because a row failed normalization",
		}),
		CacheResults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "deskflow_cascade_cache_results_total",
			Help: "Cascade cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
	}
}

// ObserveAggregate records one rollup over rows rows.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveAggregate(start time.Time, rows int) {
	if m == nil {
		return
	}
	m.AggregateDuration.Observe(time.Since(start).Seconds())
	m.RowsAggregated.Add(float64(rows))
}

// ObserveLoadRows records the duration of a row source call.
func (m *Metrics) ObserveLoadRows(start time.Time) {
	if m == nil {
		return
	}
	m.LoadRowsDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementInvalidInput() {
	if m == nil {
		return
	}
	m.InvalidInput.Inc()
}

// IncrementCache counts a cache lookup outcome: "hit", "miss" or "error".
func (m *Metrics) IncrementCache(result string) {
	if m == nil {
		return
	}
	m.CacheResults.WithLabelValues(result).Inc()
}
