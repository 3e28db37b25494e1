package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "knitviz_uploads_total",
		Help: "knit document uploads by outcome",
	}, []string{"outcome"})

	explorationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "knitviz_explorations_total",
		Help: "Explorations by outcome",
	}, []string{"outcome"})

	exploredNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "knitviz_explored_nodes",
		Help:    "Nodes in the graph produced by one exploration",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
	})

	explorationLookups = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "knitviz_exploration_lookups",
		Help:    "Provider lookups made by one exploration",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
	})
)

func outcomeLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
