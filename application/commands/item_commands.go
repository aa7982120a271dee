package commands

import (
	pkgerrors "prioritize/pkg/errors"
	"prioritize/pkg/utils"
)

// PutItemCommand creates a new item
type PutItemCommand struct {
	Name string   `json:"Name" validate:"required"`
	Tags []string `json:"Tags,omitempty" validate:"max=20,dive,required,max=30"`
}

// Validate validates the command
func (c PutItemCommand) Validate() error {
	return validate(c)
}

// PutEdgeCommand makes From depend on To
type PutEdgeCommand struct {
	From string `json:"From" validate:"required"`
	To   string `json:"To" validate:"required,nefield=From"`
}

// Validate validates the command
func (c PutEdgeCommand) Validate() error {
	return validate(c)
}

// RenameItemCommand moves an item to a new label
type RenameItemCommand struct {
	Old string `json:"Old" validate:"required"`
	New string `json:"New" validate:"required,nefield=Old"`
}

// Validate validates the command
func (c RenameItemCommand) Validate() error {
	return validate(c)
}

// RemoveItemCommand deletes an item and its edges
type RemoveItemCommand struct {
	Name string `json:"Name" validate:"required"`
}

// Validate validates the command
func (c RemoveItemCommand) Validate() error {
	return validate(c)
}

// RemoveEdgeCommand deletes the edge From -> To
type RemoveEdgeCommand struct {
	From string `json:"From" validate:"required"`
	To   string `json:"To" validate:"required"`
}

// Validate validates the command
func (c RemoveEdgeCommand) Validate() error {
	return validate(c)
}

func validate(cmd interface{}) error {
	if err := utils.ValidateStruct(cmd); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}
