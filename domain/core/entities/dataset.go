package entities

// VisNode is a node of the /item/vis data set
type VisNode struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Value int    `json:"value,omitempty"`
	Title string `json:"title,omitempty"`
	Group string `json:"group,omitempty"`
}

// VisEdge is an edge of the /item/vis data set. From and To are node ids.
type VisEdge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// DataSet is the full graph as the graph service serves it on /item/vis
type DataSet struct {
	Nodes []VisNode `json:"nodes"`
	Edges []VisEdge `json:"edges"`
}
