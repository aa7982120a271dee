package valueobjects

import (
	"strings"

	pkgerrors "prioritize/pkg/errors"
)

// Label is the durable identity of a node. The graph service keys every
// node by its label, so two nodes never share one.
type Label struct {
	value string
}

// NewLabel creates a Label from user input. Surrounding whitespace is
// dropped; an empty result is a validation error.
func NewLabel(s string) (Label, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Label{}, pkgerrors.NewValidationError("label cannot be empty")
	}
	return Label{value: s}, nil
}

// MustLabel is NewLabel for literals known to be valid
func MustLabel(s string) Label {
	l, err := NewLabel(s)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the label text
func (l Label) String() string {
	return l.value
}

// Equals checks if two labels are equal
func (l Label) Equals(other Label) bool {
	return l.value == other.value
}

// IsZero checks if the Label is the zero value
func (l Label) IsZero() bool {
	return l.value == ""
}
