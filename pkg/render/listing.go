package render

import (
	"fmt"
	"io"
	"strings"

	"catwalk/pkg/catgraph"
)

// ListingOptions configures tree listing output.
type ListingOptions struct {
	// ShowCounts appends the category's page and subcategory counters to
	// each line.
	ShowCounts bool
	// MaxDepth limits how deep below the root the listing descends.
	// 0 means unlimited.
	MaxDepth int
	// Indent is the per-level indentation string. Empty means four spaces.
	Indent string
}

func (o ListingOptions) indent() string {
	if o.Indent == "" {
		return "    "
	}
	return o.Indent
}

// WriteListing writes the subtree rooted at root as an indented plain-text
// listing, one category per line in traversal order. The root itself is the
// first line, at depth zero. An unknown root produces just that line with
// zero counters.
func WriteListing(w io.Writer, g *catgraph.Graph, root string, opts ListingOptions) error {
	if err := writeListingLine(w, g, root, 0, opts); err != nil {
		return err
	}

	walker := catgraph.Walk(g, root)
	for {
		e, ok := walker.Next()
		if !ok {
			return nil
		}
		if opts.MaxDepth > 0 && len(e.Path) > opts.MaxDepth {
			continue
		}
		if err := writeListingLine(w, g, e.Title, len(e.Path), opts); err != nil {
			return err
		}
	}
}

func writeListingLine(w io.Writer, g *catgraph.Graph, title string, depth int, opts ListingOptions) error {
	prefix := strings.Repeat(opts.indent(), depth)
	if !opts.ShowCounts {
		_, err := fmt.Fprintf(w, "%s%s\n", prefix, title)
		return err
	}
	info := g.Info[title]
	_, err := fmt.Fprintf(w, "%s%s (%d pages, %d subcats)\n", prefix, title, info.Pages, info.Subcats)
	return err
}

// WriteCompare writes aligned diff pairs as tab-separated two-column text,
// one pair per line. An absent side is an empty column. The single empty
// pair of a fully empty comparison produces one blank line.
func WriteCompare(w io.Writer, d *catgraph.Differ) error {
	for {
		p, ok := d.Next()
		if !ok {
			return nil
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", sideTitle(p.Left), sideTitle(p.Right)); err != nil {
			return err
		}
	}
}

func sideTitle(e *catgraph.Entry) string {
	if e == nil {
		return ""
	}
	return e.Title
}
