package handlers

import (
	"net/http"

	"prioritize/application/commands"
	"prioritize/application/commands/bus"
	pkgerrors "prioritize/pkg/errors"

	"go.uber.org/zap"
)

// EdgeHandler handles edge-related HTTP requests
type EdgeHandler struct {
	commandBus   *bus.CommandBus
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewEdgeHandler creates a new edge handler
func NewEdgeHandler(commandBus *bus.CommandBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *EdgeHandler {
	return &EdgeHandler{
		commandBus:   commandBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// PutEdge handles PUT /item/put-edge
func (h *EdgeHandler) PutEdge(w http.ResponseWriter, r *http.Request) {
	var cmd commands.PutEdgeCommand
	if err := decode(r, &cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	respondOK(w)
}

// RemoveEdge handles DELETE /item/remove-edge
func (h *EdgeHandler) RemoveEdge(w http.ResponseWriter, r *http.Request) {
	var cmd commands.RemoveEdgeCommand
	if err := decode(r, &cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	respondOK(w)
}
