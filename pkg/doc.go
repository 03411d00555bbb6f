// Package pkg provides the core libraries for catwalk wiki category
// maintenance.
//
// # Overview
//
// Catwalk builds a directed graph from a snapshot of a wiki's category
// namespace, walks category subtrees in a deterministic order, and aligns
// two subtrees (typically two language variants) into a structural diff.
// The pkg directory is organized around that flow:
//
//  1. [snapshot] - Category-membership snapshots (the input boundary)
//  2. [catgraph] - Graph construction, tree walking, tree diffing
//  3. [lang] - Language-variant detection and locale ranking
//  4. [render] - Report output (listings, tables, wikitext, DOT/SVG)
//  5. [report] - Orchestration of the full snapshot → report pipeline
//
// # Architecture
//
// The typical data flow through catwalk:
//
//	Snapshot JSON (allpages dump)
//	         ↓
//	    [snapshot] package (decode, drop hidden relations)
//	         ↓
//	    [catgraph] package (build graph, walk, diff)
//	         ↓
//	    [render] package (listing / table / wikitext / DOT)
//	         ↓
//	    terminal, file, or wiki-ready markup
//
// # Quick Start
//
// Build a graph and print a subtree:
//
//	import (
//	    "catwalk/pkg/catgraph"
//	    "catwalk/pkg/snapshot"
//	)
//
//	s, _ := snapshot.ReadFile("categories.json")
//	g, _ := catgraph.Build(s.Records())
//
//	w := catgraph.Walk(g, "Category:Software")
//	for e, ok := w.Next(); ok; e, ok = w.Next() {
//	    fmt.Printf("%*s%s\n", 2*len(e.Path), "", e.Title)
//	}
//
// Compare two language variants:
//
//	ranker := lang.NewDefaultDetector()
//	d := catgraph.Diff(g, "Category:Xfce", "Category:Xfce (Česky)", ranker.RankTitle)
//	for p, ok := d.Next(); ok; p, ok = d.Next() {
//	    // p.Left / p.Right
//	}
//
// # Infrastructure
//
// [cache] - Cache interface with file, Redis, and null backends; report runs
// cache built graphs keyed by the snapshot's content hash.
//
// [config] - TOML configuration (language ordering, cache settings).
//
// [errors] - Structured error codes shared by all commands.
//
// [observability] - Optional hooks for report and cache events.
//
// [lazy] - Peekable iterator used by the diff merge.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/catgraph     # Core graph/walk/diff tests
package pkg
