package service

import (
	"context"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/analysis"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/explorer"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/graph/export"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/ingest/mapper"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/session"
	"github.com/knitviz/di-graph-backend/internal/logger"
)

func (s *Service) CreateSession(ctx context.Context) session.Info {
	sess := s.sessions.Create()
	logger.New(ctx).LogInfof("session", "created session %s", sess.ID)
	return sess.Info()
}

func (s *Service) DeleteSession(ctx context.Context, id string) error {
	if err := s.sessions.Delete(id); err != nil {
		return err
	}
	logger.New(ctx).LogInfof("session", "deleted session %s", id)
	return nil
}

func (s *Service) SessionView(id string) (*View, error) {
	var g *domain.ProjectGraph
	info, err := s.sessions.With(id, func(st *session.State) error {
		g = st.Graph.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &View{Session: info, Graph: g}, nil
}

// LoadBase replaces the session graph with the base-class hierarchy and
// clears its history.
func (s *Service) LoadBase(ctx context.Context, id string) (*View, error) {
	if _, err := s.sessions.Get(id); err != nil {
		return nil, err
	}
	bc, err := s.BaseClasses(ctx)
	if err != nil {
		return nil, err
	}
	g := mapper.BaseClassesToGraph(bc)

	info, err := s.sessions.With(id, func(st *session.State) error {
		st.Graph = g
		st.Nav.ClearHistory()
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.New(ctx).LogInfof("load", "session %s loaded %d base nodes", id, len(g.Nodes))
	return &View{Session: info, Graph: g.Clone()}, nil
}

// Explore grows the session graph from className. The previous graph is
// pushed onto the history and focus is cleared. A failed exploration leaves
// the session untouched.
func (s *Service) Explore(ctx context.Context, id, className string, isolated bool) (*ExploreResult, error) {
	log := logger.New(ctx)
	exp, err := s.Explorer(ctx)
	if err != nil {
		return nil, err
	}

	var res *explorer.Result
	info, err := s.sessions.With(id, func(st *session.State) error {
		r, err := exp.ExploreDetailed(ctx, className, explorer.Options{Seed: st.Graph, Isolated: isolated})
		explorationsTotal.WithLabelValues(outcomeLabel(err)).Inc()
		if err != nil {
			return err
		}
		st.Nav.Push(st.Graph, st.Nav.Focused())
		st.Nav.SetFocus("")
		st.Graph = r.Graph
		res = r
		return nil
	})
	if err != nil {
		log.LogWarnf("explore", "session %s: exploring %q failed: %v", id, className, err)
		return nil, err
	}

	exploredNodes.Observe(float64(len(res.Graph.Nodes)))
	explorationLookups.Observe(float64(res.Stats.Lookups))
	return &ExploreResult{
		View:  View{Session: info, Graph: res.Graph.Clone()},
		Root:  res.Root,
		Stats: res.Stats,
	}, nil
}

func (s *Service) Focus(ctx context.Context, id, nodeID string) (*View, error) {
	var view *domain.ProjectGraph
	info, err := s.sessions.With(id, func(st *session.State) error {
		v, err := st.Nav.Focus(nodeID, st.Graph)
		if err != nil {
			return err
		}
		st.Graph = v
		view = v.Clone()
		return nil
	})
	if err != nil {
		logger.New(ctx).LogWarnf("focus", "session %s: focus %q failed: %v", id, nodeID, err)
		return nil, err
	}
	return &View{Session: info, Graph: view}, nil
}

// Back restores the previous graph. With an empty history it returns the
// current graph and Restored=false.
func (s *Service) Back(id string) (*BackResult, error) {
	var (
		g        *domain.ProjectGraph
		restored bool
	)
	info, err := s.sessions.With(id, func(st *session.State) error {
		frame, ok := st.Nav.GoBack()
		if ok {
			st.Graph = frame.Graph()
			restored = true
		}
		g = st.Graph.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &BackResult{View: View{Session: info, Graph: g}, Restored: restored}, nil
}

func (s *Service) ClearHistory(id string) (*View, error) {
	var g *domain.ProjectGraph
	info, err := s.sessions.With(id, func(st *session.State) error {
		st.Nav.ClearHistory()
		g = st.Graph.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &View{Session: info, Graph: g}, nil
}

func (s *Service) SessionAnalysis(id string) (*AnalysisResult, error) {
	v, err := s.SessionView(id)
	if err != nil {
		return nil, err
	}
	return Analyze(v.Graph)
}

func (s *Service) SessionDOT(id, title string) (string, error) {
	v, err := s.SessionView(id)
	if err != nil {
		return "", err
	}
	return export.ToDOT(v.Graph, title, analysis.DetectCircularPairs(v.Graph)), nil
}
