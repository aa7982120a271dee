package services

import (
	"math"
	"sort"
	"strings"

	"prioritize/domain/core/aggregates"
	"prioritize/domain/core/entities"
)

const (
	firstNodeID = 2
	groupCount  = 5
)

// BuildVisDataSet projects the item graph into the data set the editor
// renders. A node's value is the number of items that depend on it directly
// or transitively. Nodes are ordered by value, then label, so the same graph
// always yields the same ids.
func BuildVisDataSet(g *aggregates.ItemGraph) entities.DataSet {
	items := g.Items()
	values := g.DependantCounts()

	sort.SliceStable(items, func(i, j int) bool {
		vi, vj := values[items[i].Name()], values[items[j].Name()]
		if vi != vj {
			return vi > vj
		}
		return items[i].Name() < items[j].Name()
	})

	ds := entities.DataSet{
		Nodes: make([]entities.VisNode, 0, len(items)),
		Edges: make([]entities.VisEdge, 0, g.EdgeCount()),
	}

	ids := make(map[string]int, len(items))
	max := 0
	for i, item := range items {
		id := firstNodeID + i
		ids[item.Name()] = id

		value := values[item.Name()]
		if value > max {
			max = value
		}
		ds.Nodes = append(ds.Nodes, entities.VisNode{
			ID:    id,
			Label: item.Name(),
			Value: value,
			Title: strings.Join(item.Tags(), ", "),
		})
	}

	for i := range ds.Nodes {
		ds.Nodes[i].Group = groupOf(ds.Nodes[i].Value, max)
	}

	for _, item := range items {
		for _, dep := range item.DependsOn() {
			ds.Edges = append(ds.Edges, entities.VisEdge{
				From: ids[item.Name()],
				To:   ids[dep],
			})
		}
	}

	return ds
}

// groupOf buckets value into group0..group5 relative to the largest value
func groupOf(value, max int) string {
	if max == 0 {
		return "group0"
	}
	step := float64(max) / groupCount
	bucket := int(math.RoundToEven(float64(value) / step))
	if bucket < 0 || bucket > groupCount {
		bucket = 0
	}
	return "group" + string(rune('0'+bucket))
}
