package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"catwalk/pkg/catgraph"
)

// DOTOptions configures Graphviz export.
type DOTOptions struct {
	// ShowCounts includes page and subcategory counters in node labels.
	ShowCounts bool
	// MaxDepth limits how deep below the root the export descends.
	// 0 means unlimited.
	MaxDepth int
}

// ToDOT converts the subtree rooted at root to Graphviz DOT format.
// Nodes are the categories reached by the traversal; edges follow the
// parent each category was reached through, so a category reachable along
// several branches shows one edge per branch. The resulting DOT string can
// be rendered with [RenderSVG].
func ToDOT(g *catgraph.Graph, root string, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph categories {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	declared := map[string]bool{}
	declare := func(title string) {
		if declared[title] {
			return
		}
		declared[title] = true
		fmt.Fprintf(&buf, "  %q [label=%q];\n", title, nodeLabel(g, title, opts.ShowCounts))
	}
	declare(root)

	var edges bytes.Buffer
	walker := catgraph.Walk(g, root)
	for {
		e, ok := walker.Next()
		if !ok {
			break
		}
		if opts.MaxDepth > 0 && len(e.Path) > opts.MaxDepth {
			continue
		}
		declare(e.Title)
		fmt.Fprintf(&edges, "  %q -> %q;\n", e.Parent, e.Title)
	}

	buf.WriteString("\n")
	buf.Write(edges.Bytes())
	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(g *catgraph.Graph, title string, counts bool) string {
	if !counts {
		return title
	}
	info := g.Info[title]
	return fmt.Sprintf("%s\n%d pages, %d subcats", title, info.Pages, info.Subcats)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
