package valueobjects

import "strconv"

// Handle is the renderer-local id of a node. Handles are reassigned on every
// snapshot refresh and must never be kept across one.
type Handle int

// IsTentative reports whether the handle belongs to a node the renderer drew
// before the graph service confirmed it. Tentative handles are negative.
func (h Handle) IsTentative() bool {
	return h < 0
}

func (h Handle) String() string {
	return strconv.Itoa(int(h))
}

// EdgeHandle is the renderer-local id of an edge, valid for one snapshot only
type EdgeHandle int

func (h EdgeHandle) String() string {
	return strconv.Itoa(int(h))
}
