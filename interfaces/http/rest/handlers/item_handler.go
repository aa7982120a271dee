package handlers

import (
	"net/http"

	"prioritize/application/commands"
	"prioritize/application/commands/bus"
	pkgerrors "prioritize/pkg/errors"

	"go.uber.org/zap"
)

// ItemHandler handles item-related HTTP requests
type ItemHandler struct {
	commandBus   *bus.CommandBus
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(commandBus *bus.CommandBus, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{
		commandBus:   commandBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// PutItem handles PUT /item/put
func (h *ItemHandler) PutItem(w http.ResponseWriter, r *http.Request) {
	var cmd commands.PutItemCommand
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

// RenameItem handles PATCH /item/rename
func (h *ItemHandler) RenameItem(w http.ResponseWriter, r *http.Request) {
	var cmd commands.RenameItemCommand
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

// RemoveItem handles DELETE /item/remove
func (h *ItemHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var cmd commands.RemoveItemCommand
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
