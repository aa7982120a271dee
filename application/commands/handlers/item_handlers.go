package handlers

import (
	"context"
	"fmt"

	"prioritize/application/commands"
	"prioritize/application/commands/bus"
	"prioritize/application/ports"
	"prioritize/domain/core/aggregates"
	"prioritize/domain/core/valueobjects"
	pkgerrors "prioritize/pkg/errors"

	"go.uber.org/zap"
)

// PutItemHandler handles item creation commands
type PutItemHandler struct {
	store  ports.ItemStore
	logger *zap.Logger
}

// NewPutItemHandler creates a new put item handler
func NewPutItemHandler(store ports.ItemStore, logger *zap.Logger) *PutItemHandler {
	return &PutItemHandler{store: store, logger: logger}
}

// Handle executes the put item command
func (h *PutItemHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(commands.PutItemCommand)
	if !ok {
		return unexpected(cmd)
	}

	name, err := valueobjects.NewLabel(c.Name)
	if err != nil {
		return err
	}

	return h.store.Update(ctx, func(g *aggregates.ItemGraph) error {
		if err := g.AddItem(name, c.Tags); err != nil {
			return err
		}
		h.logger.Debug("Item created", zap.String("name", name.String()))
		return nil
	})
}

// RenameItemHandler handles rename commands
type RenameItemHandler struct {
	store  ports.ItemStore
	logger *zap.Logger
}

// NewRenameItemHandler creates a new rename item handler
func NewRenameItemHandler(store ports.ItemStore, logger *zap.Logger) *RenameItemHandler {
	return &RenameItemHandler{store: store, logger: logger}
}

// Handle executes the rename item command
func (h *RenameItemHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(commands.RenameItemCommand)
	if !ok {
		return unexpected(cmd)
	}

	newName, err := valueobjects.NewLabel(c.New)
	if err != nil {
		return err
	}

	return h.store.Update(ctx, func(g *aggregates.ItemGraph) error {
		if err := g.RenameItem(c.Old, newName); err != nil {
			return err
		}
		h.logger.Debug("Item renamed",
			zap.String("old", c.Old),
			zap.String("new", newName.String()),
		)
		return nil
	})
}

// RemoveItemHandler handles item deletion commands
type RemoveItemHandler struct {
	store  ports.ItemStore
	logger *zap.Logger
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(store ports.ItemStore, logger *zap.Logger) *RemoveItemHandler {
	return &RemoveItemHandler{store: store, logger: logger}
}

// Handle executes the remove item command. Edges touching the item go with it.
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(commands.RemoveItemCommand)
	if !ok {
		return unexpected(cmd)
	}

	return h.store.Update(ctx, func(g *aggregates.ItemGraph) error {
		if err := g.RemoveItem(c.Name); err != nil {
			return err
		}
		h.logger.Debug("Item removed", zap.String("name", c.Name))
		return nil
	})
}

func unexpected(cmd bus.Command) error {
	return pkgerrors.NewInternalError(fmt.Sprintf("unexpected command type %T", cmd))
}
