package ports

import (
	"context"

	"prioritize/domain/core/entities"
)

// GraphService is the remote graph service. It owns the authoritative graph
// and only understands labels.
type GraphService interface {
	// Snapshot fetches the whole graph (GET /item/vis)
	Snapshot(ctx context.Context) (*entities.DataSet, error)

	// AppName fetches the name shown in the page title (GET /app/name)
	AppName(ctx context.Context) (string, error)

	// PutItem creates a node (PUT /item/put)
	PutItem(ctx context.Context, name string) error

	// PutEdge creates the edge from -> to (PUT /item/put-edge)
	PutEdge(ctx context.Context, from, to string) error

	// RenameItem moves a node to a new label (PATCH /item/rename)
	RenameItem(ctx context.Context, oldName, newName string) error

	// RemoveItem deletes a node and its incident edges (DELETE /item/remove)
	RemoveItem(ctx context.Context, name string) error

	// RemoveEdge deletes the edge from -> to (DELETE /item/remove-edge)
	RemoveEdge(ctx context.Context, from, to string) error
}

// Renderer draws the graph and emits the user's edit intents
type Renderer interface {
	// SetData replaces everything the renderer shows
	SetData(snapshot *entities.Snapshot)

	// Redraw paints the current data
	Redraw()
}

// ErrorSignal surfaces failures to the user
type ErrorSignal interface {
	Signal(err error)
}
