package console

import (
	"fmt"
	"io"
	"sync"

	"prioritize/domain/core/entities"
	pkgerrors "prioritize/pkg/errors"
)

// Renderer draws snapshots as plain text. It doubles as the error signal
// of the session.
type Renderer struct {
	mu       sync.Mutex
	out      io.Writer
	snapshot *entities.Snapshot
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:      out,
		snapshot: entities.EmptySnapshot(),
	}
}

// SetData replaces the snapshot to draw
func (r *Renderer) SetData(snapshot *entities.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = snapshot
}

// Redraw prints the current snapshot
func (r *Renderer) Redraw() {
	r.mu.Lock()
	defer r.mu.Unlock()

	nodes := r.snapshot.Nodes()
	edges := r.snapshot.Edges()

	fmt.Fprintf(r.out, "items (%d)\n", len(nodes))
	for _, n := range nodes {
		fmt.Fprintf(r.out, "  [%s] %s  value=%d %s", n.Handle, n.Label, n.Value, n.Group)
		if n.Title != "" {
			fmt.Fprintf(r.out, "  (%s)", n.Title)
		}
		fmt.Fprintln(r.out)
	}

	fmt.Fprintf(r.out, "edges (%d)\n", len(edges))
	for _, e := range edges {
		fmt.Fprintf(r.out, "  <%s> %s -> %s\n", e.Handle, e.FromLabel, e.ToLabel)
	}
}

// Signal reports a failure to the user
func (r *Renderer) Signal(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch pkgerrors.Kind(err) {
	case pkgerrors.ErrorTypeRemoteRejected:
		fmt.Fprintf(r.out, "! rejected by the graph service: %v\n", err)
	case pkgerrors.ErrorTypeNetwork:
		fmt.Fprintf(r.out, "! graph service unreachable: %v\n", err)
	default:
		fmt.Fprintf(r.out, "! %v\n", err)
	}
}

// Notice prints a one-line message
func (r *Renderer) Notice(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, format+"\n", args...)
}
