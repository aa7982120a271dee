package aggregates

import (
	"fmt"
	"sort"

	"prioritize/domain/core/entities"
	"prioritize/domain/core/valueobjects"
	pkgerrors "prioritize/pkg/errors"
)

// ItemGraph is the aggregate root of the graph service. It owns every item
// and keeps the label and edge invariants: labels are unique, edges connect
// existing items, there are no self-loops and no duplicate edges.
type ItemGraph struct {
	items map[string]*entities.Item
}

// NewItemGraph creates an empty graph
func NewItemGraph() *ItemGraph {
	return &ItemGraph{
		items: make(map[string]*entities.Item),
	}
}

// Len returns the number of items
func (g *ItemGraph) Len() int {
	return len(g.items)
}

// Item returns a copy of the named item
func (g *ItemGraph) Item(name string) (*entities.Item, bool) {
	item, ok := g.items[name]
	if !ok {
		return nil, false
	}
	return item.Clone(), true
}

// Items returns copies of all items ordered by name
func (g *ItemGraph) Items() []*entities.Item {
	items := make([]*entities.Item, 0, len(g.items))
	for _, item := range g.items {
		items = append(items, item.Clone())
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name() < items[j].Name()
	})
	return items
}

// EdgeCount returns the number of edges
func (g *ItemGraph) EdgeCount() int {
	n := 0
	for _, item := range g.items {
		n += len(item.DependsOn())
	}
	return n
}

// AddItem creates a new item. An existing label is a conflict.
func (g *ItemGraph) AddItem(name valueobjects.Label, tags []string) error {
	if _, exists := g.items[name.String()]; exists {
		return pkgerrors.NewConflictError(fmt.Sprintf("item %q already exists", name))
	}
	g.items[name.String()] = entities.NewItem(name, tags)
	return nil
}

// AddEdge adds the edge from -> to between two existing items
func (g *ItemGraph) AddEdge(from, to string) error {
	if from == to {
		return pkgerrors.NewValidationError("self-loops are not allowed")
	}
	source, ok := g.items[from]
	if !ok {
		return pkgerrors.NewValidationError(fmt.Sprintf("unknown item %q", from))
	}
	if _, ok := g.items[to]; !ok {
		return pkgerrors.NewValidationError(fmt.Sprintf("unknown item %q", to))
	}
	return source.AddDependency(to)
}

// RemoveEdge removes the edge from -> to
func (g *ItemGraph) RemoveEdge(from, to string) error {
	source, ok := g.items[from]
	if !ok {
		return pkgerrors.NewNotFoundError(fmt.Sprintf("item %q", from))
	}
	if !source.RemoveDependency(to) {
		return pkgerrors.NewNotFoundError(fmt.Sprintf("edge %q -> %q", from, to))
	}
	return nil
}

// RenameItem moves an item to a new label. Every edge that pointed at the
// old label points at the new one afterwards, so the old label disappears
// from the graph entirely.
func (g *ItemGraph) RenameItem(oldName string, newName valueobjects.Label) error {
	item, ok := g.items[oldName]
	if !ok {
		return pkgerrors.NewNotFoundError(fmt.Sprintf("item %q", oldName))
	}
	if oldName == newName.String() {
		return pkgerrors.NewValidationError("new label equals the current label")
	}
	if _, exists := g.items[newName.String()]; exists {
		return pkgerrors.NewConflictError(fmt.Sprintf("item %q already exists", newName))
	}

	delete(g.items, oldName)
	g.items[newName.String()] = item.Rename(newName)
	for _, other := range g.items {
		other.ReplaceDependency(oldName, newName.String())
	}
	return nil
}

// RemoveItem deletes an item together with every edge that touches it
func (g *ItemGraph) RemoveItem(name string) error {
	if _, ok := g.items[name]; !ok {
		return pkgerrors.NewNotFoundError(fmt.Sprintf("item %q", name))
	}
	delete(g.items, name)
	for _, other := range g.items {
		other.RemoveDependency(name)
	}
	return nil
}

// DependantCounts returns, for every item, how many items depend on it
// directly or through other items.
func (g *ItemGraph) DependantCounts() map[string]int {
	counts := make(map[string]int, len(g.items))
	for name := range g.items {
		counts[name] = 0
	}
	for name := range g.items {
		for reached := range g.reachableFrom(name) {
			counts[reached]++
		}
	}
	return counts
}

// reachableFrom returns every item reachable from name, excluding name itself
func (g *ItemGraph) reachableFrom(name string) map[string]struct{} {
	seen := map[string]struct{}{name: {}}
	stack := []string{name}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		item, ok := g.items[current]
		if !ok {
			continue
		}
		for _, dep := range item.DependsOn() {
			if _, visited := seen[dep]; visited {
				continue
			}
			seen[dep] = struct{}{}
			stack = append(stack, dep)
		}
	}
	delete(seen, name)
	return seen
}

// Clone returns a deep copy of the graph
func (g *ItemGraph) Clone() *ItemGraph {
	clone := NewItemGraph()
	for name, item := range g.items {
		clone.items[name] = item.Clone()
	}
	return clone
}
