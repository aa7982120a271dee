package memory

import (
	"context"
	"sync"

	"prioritize/application/ports"
	"prioritize/domain/core/aggregates"

	"go.uber.org/zap"
)

// ItemStore keeps the item graph in memory. Readers share the graph,
// writers work on a copy that replaces it on success.
type ItemStore struct {
	mu     sync.RWMutex
	graph  *aggregates.ItemGraph
	logger *zap.Logger
}

var _ ports.ItemStore = (*ItemStore)(nil)

// NewItemStore creates an empty store
func NewItemStore(logger *zap.Logger) *ItemStore {
	return &ItemStore{
		graph:  aggregates.NewItemGraph(),
		logger: logger,
	}
}

// View runs fn under a read lock
func (s *ItemStore) View(ctx context.Context, fn func(g *aggregates.ItemGraph) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.graph)
}

// Update runs fn on a copy of the graph and keeps the copy if fn succeeds
func (s *ItemStore) Update(ctx context.Context, fn func(g *aggregates.ItemGraph) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.graph.Clone()
	if err := fn(working); err != nil {
		return err
	}
	s.graph = working

	s.logger.Debug("Item graph committed",
		zap.Int("items", working.Len()),
		zap.Int("edges", working.EdgeCount()),
	)
	return nil
}
