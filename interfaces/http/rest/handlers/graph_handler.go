package handlers

import (
	"net/http"

	"prioritize/application/queries"
	querybus "prioritize/application/queries/bus"
	pkgerrors "prioritize/pkg/errors"

	"go.uber.org/zap"
)

// GraphHandler handles read-only graph requests
type GraphHandler struct {
	queryBus     *querybus.QueryBus
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(queryBus *querybus.QueryBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		queryBus:     queryBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// GetVisDataSet handles GET /item/vis
func (h *GraphHandler) GetVisDataSet(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetVisDataSetQuery{})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, result)
}

// GetAppName handles GET /app/name
func (h *GraphHandler) GetAppName(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetAppNameQuery{})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, result)
}

// GetGraphviz handles GET /item/graphviz
func (h *GraphHandler) GetGraphviz(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetGraphvizQuery{})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	dot, ok := result.(string)
	if !ok {
		h.errorHandler.Handle(w, r, pkgerrors.NewInternalError("unexpected graphviz result"))
		return
	}

	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(dot)); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
