package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/beurling/pkg/beurling"
)

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID     int    `json:"id"`
	Serial string `json:"serial"`
	Label  string `json:"label"`
	Depth  int    `json:"depth"`
	Prime  bool   `json:"prime,omitempty"`
}

type edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// WriteJSON encodes t as a node/edge list and writes it to w.
// Node ids are the tree handles; nodes appear in breadth-first order.
func WriteJSON(w io.Writer, t *beurling.Tree) error {
	out := graph{
		Nodes: make([]node, 0, t.Len()),
		Edges: make([]edge, 0, t.Len()-1),
	}
	err := t.BreadthFirst(
		func(n *beurling.Node) error {
			v := n.Value()
			out.Nodes = append(out.Nodes, node{
				ID:     n.ID(),
				Serial: v.String(),
				Label:  v.DotString(),
				Depth:  n.Depth(),
				Prime:  v.IsPrime(),
			})
			return nil
		},
		func(parent, child *beurling.Node) error {
			out.Edges = append(out.Edges, edge{From: parent.ID(), To: child.ID()})
			return nil
		},
	)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes t to a JSON file at path.
func ExportJSON(path string, t *beurling.Tree) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(f, t)
}
