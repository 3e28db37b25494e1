// Package service wires the knit catalog, the explorer, the analysis core and
// navigation sessions into the operations the HTTP layer and CLI expose.
package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/catalog"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/explorer"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/ingest/mapper"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/ingest/parser"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/ingest/validator"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/session"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/store"
	"github.com/knitviz/di-graph-backend/internal/logger"
)

const uploadMessage = "File uploaded and saved successfully"

type Options struct {
	Limits explorer.Limits
	// Remote, when set, answers class lookups instead of the uploaded document.
	Remote domain.Provider
}

type Service struct {
	store    store.DocumentStore
	sessions *session.Manager
	limits   explorer.Limits
	remote   domain.Provider

	mu      sync.RWMutex
	catalog *catalog.Catalog
	docID   string
}

func New(st store.DocumentStore, sessions *session.Manager, opts Options) *Service {
	return &Service{
		store:    st,
		sessions: sessions,
		limits:   opts.Limits,
		remote:   opts.Remote,
	}
}

func (s *Service) Store() store.DocumentStore { return s.store }

func (s *Service) Sessions() *session.Manager { return s.sessions }

// Upload parses and validates a knit document, stores it and makes it the
// document every catalog query answers from.
func (s *Service) Upload(ctx context.Context, filename string, data []byte) (res *UploadResult, err error) {
	log := logger.New(ctx)
	defer func() { uploadsTotal.WithLabelValues(outcomeLabel(err)).Inc() }()

	cat, err := buildCatalog(data)
	if err != nil {
		log.LogWarnf("upload", "rejected %s: %v", filename, err)
		return nil, err
	}

	id := uuid.NewString()
	doc := &store.StoredDocument{
		ID:         id,
		Filename:   filepath.Base(filename),
		Size:       len(data),
		UploadedAt: time.Now().UTC(),
		Data:       data,
	}
	if err := s.store.Save(ctx, doc); err != nil {
		log.LogError("upload", err)
		return nil, fmt.Errorf("save document: %w", err)
	}
	s.setCatalog(id, cat)

	log.LogInfof("upload", "stored %s as %s (%d bytes, %d classes)", doc.Filename, id, doc.Size, cat.Len())
	return &UploadResult{
		Message:  uploadMessage,
		Filename: doc.Filename,
		SavedAs:  id + ".json",
		Size:     doc.Size,
	}, nil
}

// LoadFile uploads a knit document from disk, used to seed the server at
// startup.
func (s *Service) LoadFile(ctx context.Context, path string) (*UploadResult, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.Upload(ctx, path, b)
}

func buildCatalog(data []byte) (*catalog.Catalog, error) {
	doc, err := parser.ParseJSONBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidDocument, err)
	}
	if err := validator.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidDocument, err)
	}
	return catalog.New(doc), nil
}

func (s *Service) setCatalog(id string, c *catalog.Catalog) {
	s.mu.Lock()
	s.catalog = c
	s.docID = id
	s.mu.Unlock()
}

// currentCatalog returns the catalog of the store's current document,
// reloading it when another replica uploaded a newer one.
func (s *Service) currentCatalog(ctx context.Context) (*catalog.Catalog, error) {
	doc, err := s.store.Current(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	cat, id := s.catalog, s.docID
	s.mu.RUnlock()
	if cat != nil && id == doc.ID {
		return cat, nil
	}

	cat, err = buildCatalog(doc.Data)
	if err != nil {
		return nil, err
	}
	s.setCatalog(doc.ID, cat)
	logger.New(ctx).LogInfof("catalog", "loaded document %s (%d classes)", doc.ID, cat.Len())
	return cat, nil
}

func (s *Service) provider(ctx context.Context) (domain.Provider, error) {
	if s.remote != nil {
		return s.remote, nil
	}
	return s.currentCatalog(ctx)
}

func (s *Service) BaseClasses(ctx context.Context) (domain.BaseClasses, error) {
	p, err := s.provider(ctx)
	if err != nil {
		return nil, err
	}
	return p.BaseClasses(ctx)
}

func (s *Service) ClassInfo(ctx context.Context, name string) (*domain.ClassInfo, error) {
	p, err := s.provider(ctx)
	if err != nil {
		return nil, err
	}
	return p.ClassInfo(ctx, name)
}

func (s *Service) ChildClasses(ctx context.Context, name string) (*domain.ChildClasses, error) {
	p, err := s.provider(ctx)
	if err != nil {
		return nil, err
	}
	return p.ChildClasses(ctx, name)
}

// OverallGraph needs the raw document, so it always reads the uploaded one.
func (s *Service) OverallGraph(ctx context.Context) (*mapper.OverallGraph, error) {
	cat, err := s.currentCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToOverallGraph(cat.Document()), nil
}

// Explorer returns an explorer bound to the active provider.
func (s *Service) Explorer(ctx context.Context) (*explorer.Explorer, error) {
	p, err := s.provider(ctx)
	if err != nil {
		return nil, err
	}
	return explorer.New(p, s.limits), nil
}

// Ready reports whether a document is available to answer queries.
func (s *Service) Ready(ctx context.Context) bool {
	if s.remote != nil {
		return true
	}
	_, err := s.store.Current(ctx)
	return err == nil
}
