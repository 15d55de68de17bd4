package obs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Plan outcome labels.
const (
	StatusSuccess              = "success"
	StatusUnknownCity          = "unknown_city"
	StatusInsufficientCoverage = "insufficient_coverage"
	StatusError                = "error"
)

var (
	planRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "itinerary_plans_total",
			Help: "Total itinerary planning runs",
		},
		[]string{"mode", "status"},
	)
	planDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "itinerary_plan_duration_seconds",
			Help:    "Itinerary planning duration",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
		[]string{"mode"},
	)
)

// ObservePlan starts timing a planning run; call the returned func with the
// run's outcome status.
func ObservePlan(mode string) func(status string) {
	start := time.Now()
	return func(status string) {
		planDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
		planRequests.WithLabelValues(mode, status).Inc()
	}
}
