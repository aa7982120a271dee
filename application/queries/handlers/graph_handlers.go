package handlers

import (
	"context"
	"fmt"

	"prioritize/application/ports"
	"prioritize/application/queries"
	"prioritize/application/queries/bus"
	"prioritize/application/services"
	"prioritize/domain/core/aggregates"
	"prioritize/domain/core/entities"
	pkgerrors "prioritize/pkg/errors"

	"go.uber.org/zap"
)

// GetVisDataSetHandler handles vis data set queries
type GetVisDataSetHandler struct {
	store  ports.ItemStore
	logger *zap.Logger
}

// NewGetVisDataSetHandler creates a new vis data set handler
func NewGetVisDataSetHandler(store ports.ItemStore, logger *zap.Logger) *GetVisDataSetHandler {
	return &GetVisDataSetHandler{store: store, logger: logger}
}

// Handle executes the vis data set query
func (h *GetVisDataSetHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	if _, ok := query.(queries.GetVisDataSetQuery); !ok {
		return nil, unexpected(query)
	}

	var ds entities.DataSet
	err := h.store.View(ctx, func(g *aggregates.ItemGraph) error {
		ds = services.BuildVisDataSet(g)
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.logger.Debug("Vis data set built",
		zap.Int("nodes", len(ds.Nodes)),
		zap.Int("edges", len(ds.Edges)),
	)
	return &ds, nil
}

// GetGraphvizHandler handles DOT export queries
type GetGraphvizHandler struct {
	store ports.ItemStore
}

// NewGetGraphvizHandler creates a new graphviz handler
func NewGetGraphvizHandler(store ports.ItemStore) *GetGraphvizHandler {
	return &GetGraphvizHandler{store: store}
}

// Handle executes the graphviz query
func (h *GetGraphvizHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	if _, ok := query.(queries.GetGraphvizQuery); !ok {
		return nil, unexpected(query)
	}

	var dot string
	err := h.store.View(ctx, func(g *aggregates.ItemGraph) error {
		var err error
		dot, err = services.RenderGraphviz(g)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dot, nil
}

// GetAppNameHandler answers app name queries from configuration
type GetAppNameHandler struct {
	name string
}

// NewGetAppNameHandler creates a handler that always answers name
func NewGetAppNameHandler(name string) *GetAppNameHandler {
	return &GetAppNameHandler{name: name}
}

// Handle executes the app name query
func (h *GetAppNameHandler) Handle(ctx context.Context, query bus.Query) (interface{}, error) {
	if _, ok := query.(queries.GetAppNameQuery); !ok {
		return nil, unexpected(query)
	}
	return &queries.AppNameResult{Name: h.name}, nil
}

func unexpected(query bus.Query) error {
	return pkgerrors.NewInternalError(fmt.Sprintf("unexpected query type %T", query))
}
