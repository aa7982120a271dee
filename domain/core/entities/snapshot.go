package entities

import (
	"fmt"

	"prioritize/domain/core/valueobjects"
	pkgerrors "prioritize/pkg/errors"
)

// Node is a rendered node. Label is its durable identity; Handle is only
// meaningful within the snapshot it came from.
type Node struct {
	Handle valueobjects.Handle
	Label  string
	Group  string
	Title  string
	Value  int
}

// Edge is a rendered, directed edge. The endpoint labels are resolved when
// the snapshot is built so they never depend on handles of a later snapshot.
type Edge struct {
	Handle    valueobjects.EdgeHandle
	From      valueobjects.Handle
	To        valueobjects.Handle
	FromLabel string
	ToLabel   string
}

// Snapshot is an immutable view of the whole remote graph. It is replaced
// wholesale on every refresh and never patched.
type Snapshot struct {
	nodes   []Node
	edges   []Edge
	byNode  map[valueobjects.Handle]int
	byEdge  map[valueobjects.EdgeHandle]int
	byLabel map[string]int
}

// EmptySnapshot returns a snapshot without nodes or edges
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		byNode:  map[valueobjects.Handle]int{},
		byEdge:  map[valueobjects.EdgeHandle]int{},
		byLabel: map[string]int{},
	}
}

// NewSnapshot builds a snapshot from a data set. Edge handles are assigned
// 1..n in data set order. A data set with duplicate ids or labels, or with
// an edge to an unknown id, is rejected.
func NewSnapshot(ds DataSet) (*Snapshot, error) {
	s := &Snapshot{
		nodes:   make([]Node, 0, len(ds.Nodes)),
		edges:   make([]Edge, 0, len(ds.Edges)),
		byNode:  make(map[valueobjects.Handle]int, len(ds.Nodes)),
		byEdge:  make(map[valueobjects.EdgeHandle]int, len(ds.Edges)),
		byLabel: make(map[string]int, len(ds.Nodes)),
	}

	for _, vn := range ds.Nodes {
		h := valueobjects.Handle(vn.ID)
		if _, dup := s.byNode[h]; dup {
			return nil, malformed("duplicate node id %d", vn.ID)
		}
		if _, dup := s.byLabel[vn.Label]; dup {
			return nil, malformed("duplicate node label %q", vn.Label)
		}
		s.byNode[h] = len(s.nodes)
		s.byLabel[vn.Label] = len(s.nodes)
		s.nodes = append(s.nodes, Node{
			Handle: h,
			Label:  vn.Label,
			Group:  vn.Group,
			Title:  vn.Title,
			Value:  vn.Value,
		})
	}

	for i, ve := range ds.Edges {
		from, ok := s.Node(valueobjects.Handle(ve.From))
		if !ok {
			return nil, malformed("edge %d starts at unknown node id %d", i, ve.From)
		}
		to, ok := s.Node(valueobjects.Handle(ve.To))
		if !ok {
			return nil, malformed("edge %d ends at unknown node id %d", i, ve.To)
		}
		h := valueobjects.EdgeHandle(i + 1)
		s.byEdge[h] = len(s.edges)
		s.edges = append(s.edges, Edge{
			Handle:    h,
			From:      from.Handle,
			To:        to.Handle,
			FromLabel: from.Label,
			ToLabel:   to.Label,
		})
	}

	return s, nil
}

func malformed(format string, args ...interface{}) error {
	return pkgerrors.NewInternalError("malformed snapshot: " + fmt.Sprintf(format, args...))
}

// Nodes returns a copy of the nodes in data set order
func (s *Snapshot) Nodes() []Node {
	return append([]Node(nil), s.nodes...)
}

// Edges returns a copy of the edges in data set order
func (s *Snapshot) Edges() []Edge {
	return append([]Edge(nil), s.edges...)
}

// NodeCount returns the number of nodes
func (s *Snapshot) NodeCount() int {
	return len(s.nodes)
}

// EdgeCount returns the number of edges
func (s *Snapshot) EdgeCount() int {
	return len(s.edges)
}

// Node looks a node up by handle
func (s *Snapshot) Node(h valueobjects.Handle) (Node, bool) {
	i, ok := s.byNode[h]
	if !ok {
		return Node{}, false
	}
	return s.nodes[i], true
}

// NodeByLabel looks a node up by label
func (s *Snapshot) NodeByLabel(label string) (Node, bool) {
	i, ok := s.byLabel[label]
	if !ok {
		return Node{}, false
	}
	return s.nodes[i], true
}

// Edge looks an edge up by handle
func (s *Snapshot) Edge(h valueobjects.EdgeHandle) (Edge, bool) {
	i, ok := s.byEdge[h]
	if !ok {
		return Edge{}, false
	}
	return s.edges[i], true
}

// HasEdge reports whether the edge fromLabel -> toLabel is part of the snapshot
func (s *Snapshot) HasEdge(fromLabel, toLabel string) bool {
	for _, e := range s.edges {
		if e.FromLabel == fromLabel && e.ToLabel == toLabel {
			return true
		}
	}
	return false
}
