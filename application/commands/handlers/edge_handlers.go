package handlers

import (
	"context"

	"prioritize/application/commands"
	"prioritize/application/commands/bus"
	"prioritize/application/ports"
	"prioritize/domain/core/aggregates"

	"go.uber.org/zap"
)

// PutEdgeHandler handles edge creation commands
type PutEdgeHandler struct {
	store  ports.ItemStore
	logger *zap.Logger
}

// NewPutEdgeHandler creates a new put edge handler
func NewPutEdgeHandler(store ports.ItemStore, logger *zap.Logger) *PutEdgeHandler {
	return &PutEdgeHandler{store: store, logger: logger}
}

// Handle executes the put edge command
func (h *PutEdgeHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(commands.PutEdgeCommand)
	if !ok {
		return unexpected(cmd)
	}

	return h.store.Update(ctx, func(g *aggregates.ItemGraph) error {
		if err := g.AddEdge(c.From, c.To); err != nil {
			return err
		}
		h.logger.Debug("Edge created", zap.String("from", c.From), zap.String("to", c.To))
		return nil
	})
}

// RemoveEdgeHandler handles edge deletion commands
type RemoveEdgeHandler struct {
	store  ports.ItemStore
	logger *zap.Logger
}

// NewRemoveEdgeHandler creates a new remove edge handler
func NewRemoveEdgeHandler(store ports.ItemStore, logger *zap.Logger) *RemoveEdgeHandler {
	return &RemoveEdgeHandler{store: store, logger: logger}
}

// Handle executes the remove edge command
func (h *RemoveEdgeHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(commands.RemoveEdgeCommand)
	if !ok {
		return unexpected(cmd)
	}

	return h.store.Update(ctx, func(g *aggregates.ItemGraph) error {
		if err := g.RemoveEdge(c.From, c.To); err != nil {
			return err
		}
		h.logger.Debug("Edge removed", zap.String("from", c.From), zap.String("to", c.To))
		return nil
	})
}
