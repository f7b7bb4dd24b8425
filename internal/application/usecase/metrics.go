package usecase

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	creationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "launchpad_token_creations_total",
		Help: "Token creation workflow runs by outcome.",
	}, []string{"outcome"})

	creationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "launchpad_token_creation_duration_seconds",
		Help:    "Wall time of the three-transaction creation workflow.",
		Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
	})
)

func observeCreation(outcome string, elapsed time.Duration) {
	creationTotal.WithLabelValues(outcome).Inc()
	creationDuration.Observe(elapsed.Seconds())
}
