package ports

import (
	"context"

	"prioritize/domain/core/aggregates"
)

// ItemStore defines the interface for the graph service's item persistence.
// This is a port in hexagonal architecture - the domain doesn't know about the implementation.
type ItemStore interface {
	// View runs fn against the current graph. fn must not modify it.
	View(ctx context.Context, fn func(g *aggregates.ItemGraph) error) error

	// Update runs fn against a working copy of the graph and commits the copy
	// only when fn returns nil, so a rejected mutation leaves no trace.
	Update(ctx context.Context, fn func(g *aggregates.ItemGraph) error) error
}
