package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fitness_tracker"

var (
	CheckInsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "readiness",
		Name:      "checkins_total",
		Help:      "Number of readiness check-ins stored, labeled by readiness level.",
	}, []string{"level"})

	ReadinessScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "readiness",
		Name:      "score",
		Help:      "Distribution of submitted readiness scores.",
		Buckets:   prometheus.LinearBuckets(20, 10, 9), // 20..100
	})

	FilterResults = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "exercise",
		Name:      "filter_results",
		Help:      "Number of exercises returned per library query.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	GoalsCompletedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "goals",
		Name:      "completed_total",
		Help:      "Number of goals that transitioned to completed.",
	})

	AuthFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "failures_total",
		Help:      "Failed sign-in and sign-up attempts, labeled by cause.",
	}, []string{"cause"})

	EventsPublishedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Domain events handed to the broker, labeled by topic and result.",
	}, []string{"topic", "result"})
)

func init() {
	prometheus.MustRegister(
		CheckInsTotal,
		ReadinessScore,
		FilterResults,
		GoalsCompletedTotal,
		AuthFailuresTotal,
		EventsPublishedTotal,
	)
}
