package services

import (
	"fmt"

	"prioritize/domain/core/aggregates"

	"github.com/awalterschulze/gographviz"
)

const graphName = "G"

// RenderGraphviz renders the item graph as a DOT digraph. Every item points
// at the items it depends on; colours follow the number of dependants.
func RenderGraphviz(g *aggregates.ItemGraph) (string, error) {
	values := g.DependantCounts()

	graph := gographviz.NewEscape()
	steps := []func() error{
		func() error { return graph.SetName(graphName) },
		func() error { return graph.SetDir(true) },
		func() error { return graph.SetStrict(false) },
		func() error { return graph.AddAttr(graphName, "concentrate", "true") },
		func() error { return graph.AddAttr(graphName, "nodesep", "0.5") },
		func() error { return graph.AddAttr(graphName, "ranksep", "0.3 equally") },
		func() error { return graph.AddAttr(graphName, "rankdir", "BT") },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return "", fmt.Errorf("failed to set up graph: %w", err)
		}
	}

	items := g.Items()
	for _, item := range items {
		color, fontColor := nodeColors(values[item.Name()])
		if err := graph.AddNode(graphName, item.Name(), map[string]string{
			"shape":     "box",
			"style":     "filled",
			"fontsize":  "16",
			"color":     color,
			"fontcolor": fontColor,
		}); err != nil {
			return "", fmt.Errorf("failed to add node %q: %w", item.Name(), err)
		}
	}

	for _, item := range items {
		for _, dep := range item.DependsOn() {
			if err := graph.AddEdge(item.Name(), dep, true, map[string]string{
				"weight":    fmt.Sprintf("%d", values[item.Name()]),
				"arrowsize": "0.6",
			}); err != nil {
				return "", fmt.Errorf("failed to add edge %q -> %q: %w", item.Name(), dep, err)
			}
		}
	}

	return graph.String(), nil
}

func nodeColors(value int) (color, fontColor string) {
	switch value {
	case 3:
		return "yellow", "black"
	case 4:
		return "green", "black"
	case 5:
		return "lightblue", "black"
	case 6:
		return "blue", "white"
	case 7:
		return "magenta", "white"
	}
	if value > 8 {
		return "red", "white"
	}
	return "grey", "black"
}
