package entities

import (
	"slices"

	"prioritize/domain/core/valueobjects"
	pkgerrors "prioritize/pkg/errors"
)

// Item is a node as the graph service stores it. An item depends on the
// items it has edges to: the edge From -> To is recorded as To in
// From's dependency list.
type Item struct {
	name      valueobjects.Label
	tags      []string
	dependsOn []string
}

// NewItem creates an item without dependencies
func NewItem(name valueobjects.Label, tags []string) *Item {
	return &Item{
		name: name,
		tags: slices.Clone(tags),
	}
}

// Name returns the label of the item
func (i *Item) Name() string {
	return i.name.String()
}

// Tags returns a copy of the item's tags
func (i *Item) Tags() []string {
	return slices.Clone(i.tags)
}

// DependsOn returns a copy of the labels this item depends on, in insertion order
func (i *Item) DependsOn() []string {
	return slices.Clone(i.dependsOn)
}

// HasDependency reports whether the item depends on name directly
func (i *Item) HasDependency(name string) bool {
	return slices.Contains(i.dependsOn, name)
}

// AddDependency records an edge to name. Self-loops and duplicate edges are rejected.
func (i *Item) AddDependency(name string) error {
	if name == i.name.String() {
		return pkgerrors.NewValidationError("an item cannot depend on itself")
	}
	if i.HasDependency(name) {
		return pkgerrors.NewConflictError("edge " + i.name.String() + " -> " + name + " already exists")
	}
	i.dependsOn = append(i.dependsOn, name)
	return nil
}

// RemoveDependency drops the edge to name and reports whether it existed
func (i *Item) RemoveDependency(name string) bool {
	before := len(i.dependsOn)
	i.dependsOn = slices.DeleteFunc(i.dependsOn, func(d string) bool { return d == name })
	return len(i.dependsOn) != before
}

// ReplaceDependency points every edge to oldName at newName instead
func (i *Item) ReplaceDependency(oldName, newName string) {
	for idx, d := range i.dependsOn {
		if d == oldName {
			i.dependsOn[idx] = newName
		}
	}
}

// Rename returns a copy of the item under a new label, keeping tags and edges
func (i *Item) Rename(name valueobjects.Label) *Item {
	return &Item{
		name:      name,
		tags:      slices.Clone(i.tags),
		dependsOn: slices.Clone(i.dependsOn),
	}
}

// Clone returns a deep copy of the item
func (i *Item) Clone() *Item {
	return i.Rename(i.name)
}
