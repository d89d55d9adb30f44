package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FeedMetrics holds all Prometheus metrics for the feed module
type FeedMetrics struct {
	FeedsCreated        prometheus.Counter
	RoundsStarted       prometheus.Counter
	RoundsPruned        prometheus.Counter
	SubmissionsReceived prometheus.Counter
	AnswersUpdated      prometheus.Counter
}

var (
	feedMetricsOnce sync.Once
	feedMetrics     *FeedMetrics
)

// NewFeedMetrics creates and registers feed metrics (singleton pattern)
func NewFeedMetrics() *FeedMetrics {
	feedMetricsOnce.Do(func() {
		feedMetrics = &FeedMetrics{
			FeedsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "feed",
					Name:      "feeds_created_total",
					Help:      "Total oracle feeds created",
				},
			),
			RoundsStarted: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "feed",
					Name:      "rounds_started_total",
					Help:      "Total oracle rounds started",
				},
			),
			RoundsPruned: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "feed",
					Name:      "rounds_pruned_total",
					Help:      "Total rounds removed by the pruning engine",
				},
			),
			SubmissionsReceived: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "feed",
					Name:      "submissions_received_total",
					Help:      "Total oracle submissions accepted",
				},
			),
			AnswersUpdated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "feed",
					Name:      "answers_updated_total",
					Help:      "Total feed answers aggregated",
				},
			),
		}
	})
	return feedMetrics
}
