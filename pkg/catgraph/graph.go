package catgraph

import (
	"errors"
	"fmt"
)

// ErrMissingTitle is returned by [Build] when a record has an empty title.
// Membership records come from an upstream data source that guarantees a
// title for every page, so an empty title means the snapshot is corrupt and
// the build is aborted rather than partially recovered.
var ErrMissingTitle = errors.New("record has no title")

// CategoryInfo holds the member counters reported for a category.
// Categories that exist only by reference (some page lists them as a parent
// but the source never produced their own info record) keep the zero value.
type CategoryInfo struct {
	Files   int `json:"files"`
	Pages   int `json:"pages"`
	Subcats int `json:"subcats"`
	Size    int `json:"size"`
}

// Record is one page's category membership as consumed by [Build]: the page
// title, the titles of its non-hidden parent categories, and the page's own
// category counters when the source reported them. Hidden-category filtering
// happens upstream; Build treats every listed parent as visible.
type Record struct {
	Title      string
	Categories []string
	Info       *CategoryInfo
}

// Graph is the category graph: two adjacency maps built from the same records
// (inverse of each other by construction) plus per-category counters.
//
// Titles are the primary keys; there is no separate node type. Membership
// lists preserve source order and may reference categories that never appear
// as records themselves.
type Graph struct {
	// Parents maps a category title to the titles of its parent categories.
	Parents map[string][]string
	// Children maps a category title to the titles of its subcategories.
	Children map[string][]string
	// Info maps a category title to its counters. Every title that appears
	// as a key in Parents or Children has an entry, zero-valued when the
	// source never supplied counters for it.
	Info map[string]CategoryInfo
}

// Build constructs a [Graph] from membership records.
//
// For each record, every listed category becomes a parent of the record's
// title and the title becomes a child of that category. Counters default to
// zero and are overwritten when the record carries info. Repeated listings
// are kept as-is; the source yields each page once per category.
//
// Returns [ErrMissingTitle] if any record lacks a title.
func Build(records []Record) (*Graph, error) {
	g := &Graph{
		Parents:  make(map[string][]string),
		Children: make(map[string][]string),
		Info:     make(map[string]CategoryInfo),
	}

	for i, rec := range records {
		if rec.Title == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrMissingTitle)
		}

		if len(rec.Categories) > 0 {
			g.Parents[rec.Title] = append(g.Parents[rec.Title], rec.Categories...)
			for _, cat := range rec.Categories {
				g.Children[cat] = append(g.Children[cat], rec.Title)
				// A category referenced only as a parent still gets an
				// info entry; empty categories have no info record of
				// their own.
				if _, ok := g.Info[cat]; !ok {
					g.Info[cat] = CategoryInfo{}
				}
			}
		}

		if rec.Info != nil {
			g.Info[rec.Title] = *rec.Info
		} else if _, ok := g.Info[rec.Title]; !ok {
			g.Info[rec.Title] = CategoryInfo{}
		}
	}

	return g, nil
}
