package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	DocumentsParsed prometheus.Counter
	SlotsProjected  prometheus.Counter
	SwapsRequested  prometheus.Counter
	ProcessingTime  prometheus.Histogram
	ErrorsCount     *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		DocumentsParsed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_parsed_total",
			Help:      "The total number of schedule documents parsed",
		}),
		SlotsProjected: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slots_projected_total",
			Help:      "The total number of schedule slots written to the database",
		}),
		SwapsRequested: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swaps_requested_total",
			Help:      "The total number of slot and surveillance swap requests created",
		}),
		ProcessingTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "import_processing_time_seconds",
			Help:      "Time taken to process one schedule import",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
