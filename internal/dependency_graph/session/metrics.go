package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "knitviz_sessions_active",
		Help: "Navigation sessions currently held in memory",
	})

	sweptSessions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "knitviz_sessions_expired_total",
		Help: "Sessions removed by the idle sweeper",
	})
)
