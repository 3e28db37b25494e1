package session

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/knitviz/di-graph-backend/internal/logger"
)

const DefaultSweepSpec = "@every 5m"

// Sweeper runs Manager.Sweep on a cron schedule.
type Sweeper struct {
	c *cron.Cron
}

func NewSweeper(m *Manager, spec string) (*Sweeper, error) {
	if spec == "" {
		spec = DefaultSweepSpec
	}
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if n := m.Sweep(time.Now()); n > 0 {
			sweptSessions.Add(float64(n))
			logger.Base().Info("expired idle sessions", "count", n, "remaining", m.Len())
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule session sweep %q: %w", spec, err)
	}
	return &Sweeper{c: c}, nil
}

func (s *Sweeper) Start() {
	s.c.Start()
	logger.Base().Info("session sweeper started")
}

// Stop waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.c.Stop().Done()
}
