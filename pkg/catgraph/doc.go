// Package catgraph builds wiki category graphs and compares category trees.
//
// The package turns flat category-membership records into a pair of adjacency
// maps (parents and children) plus per-category counters, walks subtrees in a
// deterministic depth-first order, and aligns two independently rooted walks
// into a lock-step diff. It is the algorithmic core of catwalk; fetching the
// membership data and rendering the results live in collaborating packages.
//
// # Core Types
//
//   - [Graph]: parents/children adjacency plus [CategoryInfo] counters
//   - [Record]: one page's membership data, the input to [Build]
//   - [Walker]: lazy cycle-safe depth-first traversal yielding [Entry] values
//   - [Differ]: merge of two walks into [Pair] values
//
// # Building
//
//	g, err := catgraph.Build(records)
//	if err != nil {
//	    return err
//	}
//
// # Walking
//
// Walks are pull-based and lazy; stop calling Next to stop the traversal:
//
//	w := catgraph.Walk(g, "Category:Software")
//	for e, ok := w.Next(); ok; e, ok = w.Next() {
//	    fmt.Println(strings.Repeat("  ", len(e.Path)), e.Title)
//	}
//
// Sibling order is case-insensitive lexical with a natural-order tie-break,
// and a child already on the active root-to-node path is silently skipped, so
// cyclic category structures terminate without special handling.
//
// # Comparing
//
// [Diff] aligns two subtrees (typically two language variants of the same
// category tree). Entries are ordered by depth and by the locale rank of the
// detected title language; equal keys pair the two sides, unequal keys emit
// one-sided pairs:
//
//	d := catgraph.Diff(g, "Category:Xfce", "Category:Xfce (Česky)", ranker.Rank)
//	for p, ok := d.Next(); ok; p, ok = d.Next() {
//	    // p.Left and/or p.Right
//	}
//
// # Concurrency
//
// Graphs are safe for concurrent reads. Walker and Differ are single-consumer
// iterators and are not safe for concurrent use.
package catgraph
