package perm

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the enumeration order for
// the given labels.
//
// Every permutation is a node, labelled with the labels joined in that
// order. Consecutive permutations are linked by an edge labelled with the two
// positions that were swapped. The first node, the input itself, is drawn
// bold.
//
// If limit > 0, only the first limit permutations are drawn. An empty labels
// slice produces an empty digraph.
//
// The labels slice is not modified.
func ToDOT(labels []string, limit int) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Permutations {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, shape=box, style=\"filled,rounded\", fillcolor=white];\n")
	buf.WriteString("  edge [fontname=\"SF Mono, Menlo, monospace\", fontsize=10];\n\n")

	perms := GenerateN(labels, limit)
	swaps := Swaps(len(labels), limit)

	for i, p := range perms {
		style := ""
		if i == 0 {
			style = ", penwidth=2"
		}
		fmt.Fprintf(&buf, "  n%d [label=%q%s];\n", i, strings.Join(p, ""), style)
	}
	for i, s := range swaps {
		fmt.Fprintf(&buf, "  n%d -> n%d [label=\"%d↔%d\"];\n", i, i+1, s.J, s.I)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders the enumeration order as an SVG image.
//
// RenderSVG generates a DOT representation via ToDOT, then uses Graphviz to
// render it. Errors are returned if Graphviz cannot initialize, the DOT is
// malformed, or rendering fails.
func RenderSVG(labels []string, limit int) ([]byte, error) {
	dot := ToDOT(labels, limit)

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
