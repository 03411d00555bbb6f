package render

import (
	"fmt"
	"io"
	"strings"

	"catwalk/pkg/catgraph"
)

// WriteWikitextListing writes the subtree rooted at root as a nested
// wikitext bullet list. Each category becomes a link with a leading colon,
// so pasting the output into a wiki page does not categorize that page.
func WriteWikitextListing(w io.Writer, g *catgraph.Graph, root string, opts ListingOptions) error {
	if err := writeWikitextLine(w, g, root, 0, opts); err != nil {
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
		if err := writeWikitextLine(w, g, e.Title, len(e.Path), opts); err != nil {
			return err
		}
	}
}

func writeWikitextLine(w io.Writer, g *catgraph.Graph, title string, depth int, opts ListingOptions) error {
	bullets := strings.Repeat("*", depth+1)
	if !opts.ShowCounts {
		_, err := fmt.Fprintf(w, "%s %s\n", bullets, wikiLink(title))
		return err
	}
	info := g.Info[title]
	_, err := fmt.Fprintf(w, "%s %s (%d pages, %d subcats)\n", bullets, wikiLink(title), info.Pages, info.Subcats)
	return err
}

// WriteWikitextCompare writes aligned diff pairs as a two-column wikitable.
// The header row carries the two root titles. Absent sides become empty
// cells; the single empty pair of a fully empty comparison is skipped, which
// leaves a header-only table.
func WriteWikitextCompare(w io.Writer, leftHeader, rightHeader string, d *catgraph.Differ) error {
	if _, err := fmt.Fprintf(w, "{| class=\"wikitable\"\n! %s !! %s\n", leftHeader, rightHeader); err != nil {
		return err
	}
	for {
		p, ok := d.Next()
		if !ok {
			break
		}
		if p.Left == nil && p.Right == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "|-\n| %s || %s\n", sideLink(p.Left), sideLink(p.Right)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "|}\n")
	return err
}

func sideLink(e *catgraph.Entry) string {
	if e == nil {
		return ""
	}
	return wikiLink(e.Title)
}

func wikiLink(title string) string {
	return fmt.Sprintf("[[:%s]]", title)
}
