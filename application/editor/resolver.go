package editor

import (
	"prioritize/domain/core/entities"
	"prioritize/domain/core/valueobjects"
	pkgerrors "prioritize/pkg/errors"
)

// SnapshotSource provides the snapshot currently on screen
type SnapshotSource interface {
	Current() *entities.Snapshot
}

// IdentityResolver maps renderer handles back to labels, the only identity
// the graph service understands. It always reads the current snapshot, so
// handles are never carried across a refresh.
type IdentityResolver struct {
	source SnapshotSource
}

// NewIdentityResolver creates a resolver over the given snapshot source
func NewIdentityResolver(source SnapshotSource) *IdentityResolver {
	return &IdentityResolver{source: source}
}

// NodeOf returns the rendered node behind a handle
func (r *IdentityResolver) NodeOf(h valueobjects.Handle) (entities.Node, error) {
	node, ok := r.source.Current().Node(h)
	if !ok {
		return entities.Node{}, pkgerrors.NewUnknownHandleError("node", int(h))
	}
	return node, nil
}

// LabelOf returns the label of the node behind a handle. Tentative nodes
// have no label yet and resolve to an UNKNOWN_HANDLE error.
func (r *IdentityResolver) LabelOf(h valueobjects.Handle) (string, error) {
	node, err := r.NodeOf(h)
	if err != nil {
		return "", err
	}
	return node.Label, nil
}

// EdgeOf returns the rendered edge behind a handle with both endpoint
// labels resolved against the current node table.
func (r *IdentityResolver) EdgeOf(h valueobjects.EdgeHandle) (entities.Edge, error) {
	edge, ok := r.source.Current().Edge(h)
	if !ok {
		return entities.Edge{}, pkgerrors.NewUnknownHandleError("edge", int(h))
	}

	from, err := r.LabelOf(edge.From)
	if err != nil {
		return entities.Edge{}, err
	}
	to, err := r.LabelOf(edge.To)
	if err != nil {
		return entities.Edge{}, err
	}

	edge.FromLabel = from
	edge.ToLabel = to
	return edge, nil
}
