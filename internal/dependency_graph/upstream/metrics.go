package upstream

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
)

var (
	providerCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "knitviz_provider_calls_total",
		Help: "Class-info provider calls by operation and outcome",
	}, []string{"operation", "outcome"})

	providerLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "knitviz_provider_call_duration_seconds",
		Help:    "Class-info provider call latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
	}, []string{"operation"})
)

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrClassNotFound):
		return "not_found"
	default:
		return "error"
	}
}

func recordProviderCall(op string, d time.Duration, err error) {
	providerCalls.WithLabelValues(op, outcome(err)).Inc()
	providerLatency.WithLabelValues(op).Observe(d.Seconds())
}
