package catgraph

import (
	"cmp"
	"slices"
	"strings"
)

// Entry is one step of a traversal: a category, the parent it was reached
// through, and the path of sibling indexes from the root down to it.
//
// Path holds one element per depth level, each the 0-based index of that
// ancestor in the sorted sibling list it was visited from. Entries own their
// Path slice; the walker never mutates it after emitting.
type Entry struct {
	Title  string
	Parent string
	Path   []int
}

// frame is one level of the explicit traversal stack: the node whose children
// are being visited and the cursor into its sorted child list.
type frame struct {
	node     string
	children []string
	next     int
}

// Walker is a lazy depth-first traversal of a category subtree.
//
// Children are visited in case-insensitive lexical order (ties broken by the
// raw title) and a child already on the active root-to-node path is skipped
// without being emitted, which breaks cycles. A category removed from the
// active path may be visited again through a different branch.
//
// The traversal is implemented with an explicit stack rather than recursion,
// so arbitrarily deep category hierarchies cannot overflow the call stack.
// A Walker is a single-consumer iterator; it is not safe for concurrent use.
type Walker struct {
	g       *Graph
	stack   []frame
	visited map[string]struct{}
	path    []int
}

// Walk starts a traversal of g rooted at root. An unknown root produces an
// empty traversal.
func Walk(g *Graph, root string) *Walker {
	w := &Walker{
		g:       g,
		visited: map[string]struct{}{root: {}},
	}
	w.stack = append(w.stack, frame{node: root, children: g.SortedChildren(root)})
	return w
}

// Next returns the next traversal entry, or ok=false once the subtree is
// exhausted.
func (w *Walker) Next() (Entry, bool) {
	for len(w.stack) > 0 {
		f := &w.stack[len(w.stack)-1]

		for f.next < len(f.children) {
			i := f.next
			child := f.children[i]
			f.next++

			// Back-edge: the child is already on the active path.
			// It still consumed its sibling index above.
			if _, onPath := w.visited[child]; onPath {
				continue
			}

			w.path = append(w.path, i)
			w.visited[child] = struct{}{}
			parent := f.node
			w.stack = append(w.stack, frame{node: child, children: w.g.SortedChildren(child)})
			return Entry{Title: child, Parent: parent, Path: slices.Clone(w.path)}, true
		}

		// Frame exhausted: backtrack. The root frame has no path element
		// and the root stays marked for the whole traversal.
		w.stack = w.stack[:len(w.stack)-1]
		if len(w.stack) > 0 {
			delete(w.visited, f.node)
			w.path = w.path[:len(w.path)-1]
		}
	}
	var zero Entry
	return zero, false
}

// SortedChildren returns a sorted copy of a category's child list, in the
// order a traversal visits them: case-insensitive lexical order with ties
// broken by the raw title. The graph's own slices are never reordered.
func (g *Graph) SortedChildren(node string) []string {
	children := slices.Clone(g.Children[node])
	slices.SortFunc(children, func(a, b string) int {
		if c := cmp.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return children
}
