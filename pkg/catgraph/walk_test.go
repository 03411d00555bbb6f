package catgraph

import (
	"reflect"
	"testing"
)

// graphFromChildren builds a Graph directly from a children adjacency map.
// Walk only consults Children, so Parents and Info can stay minimal.
func graphFromChildren(children map[string][]string) *Graph {
	g := &Graph{
		Parents:  map[string][]string{},
		Children: children,
		Info:     map[string]CategoryInfo{},
	}
	return g
}

func collect(w *Walker) []Entry {
	var out []Entry
	for e, ok := w.Next(); ok; e, ok = w.Next() {
		out = append(out, e)
	}
	return out
}

func TestWalk(t *testing.T) {
	tests := []struct {
		name     string
		children map[string][]string
		root     string
		want     []Entry
	}{
		{
			name:     "UnknownRoot",
			children: map[string][]string{},
			root:     "Category:Nowhere",
			want:     nil,
		},
		{
			name: "SiblingsSortCaseInsensitive",
			children: map[string][]string{
				"root": {"b", "A", "c"},
			},
			root: "root",
			want: []Entry{
				{Title: "A", Parent: "root", Path: []int{0}},
				{Title: "b", Parent: "root", Path: []int{1}},
				{Title: "c", Parent: "root", Path: []int{2}},
			},
		},
		{
			name: "DepthFirstWithBacktracking",
			children: map[string][]string{
				"root": {"a", "b"},
				"a":    {"a2", "a1"},
				"b":    {"b1"},
			},
			root: "root",
			want: []Entry{
				{Title: "a", Parent: "root", Path: []int{0}},
				{Title: "a1", Parent: "a", Path: []int{0, 0}},
				{Title: "a2", Parent: "a", Path: []int{0, 1}},
				{Title: "b", Parent: "root", Path: []int{1}},
				{Title: "b1", Parent: "b", Path: []int{1, 0}},
			},
		},
		{
			// A node may be reached again through a sibling branch once
			// its first branch has unwound.
			name: "DiamondRevisited",
			children: map[string][]string{
				"root":   {"left", "right"},
				"left":   {"shared"},
				"right":  {"shared"},
				"shared": nil,
			},
			root: "root",
			want: []Entry{
				{Title: "left", Parent: "root", Path: []int{0}},
				{Title: "shared", Parent: "left", Path: []int{0, 0}},
				{Title: "right", Parent: "root", Path: []int{1}},
				{Title: "shared", Parent: "right", Path: []int{1, 0}},
			},
		},
		{
			// Skipped back-edges still consume their sibling index.
			name: "BackEdgeConsumesSiblingIndex",
			children: map[string][]string{
				"root": {"a"},
				"a":    {"root", "z"},
			},
			root: "root",
			want: []Entry{
				{Title: "a", Parent: "root", Path: []int{0}},
				{Title: "z", Parent: "a", Path: []int{0, 1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(Walk(graphFromChildren(tt.children), tt.root))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Walk() = %v, want %v", got, tt.want)
			}
		})
	}
}

// A two-node cycle terminates: the back-edge to the root is skipped and
// nothing below it is emitted.
func TestWalkCycle(t *testing.T) {
	g := graphFromChildren(map[string][]string{
		"X": {"Y"},
		"Y": {"X"},
	})

	got := collect(Walk(g, "X"))
	want := []Entry{{Title: "Y", Parent: "X", Path: []int{0}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

// Emitted entries must stay intact after the walker backtracks; the path
// buffer is internal and each entry owns its own copy.
func TestWalkEntriesDoNotAlias(t *testing.T) {
	g := graphFromChildren(map[string][]string{
		"root": {"a", "b"},
		"a":    {"a1"},
	})

	entries := collect(Walk(g, "root"))
	want := [][]int{{0}, {0, 0}, {1}}
	for i, e := range entries {
		if !reflect.DeepEqual(e.Path, want[i]) {
			t.Errorf("entries[%d].Path = %v, want %v", i, e.Path, want[i])
		}
	}
}

// Acyclic graphs yield every reachable node exactly once.
func TestWalkCoversReachableSet(t *testing.T) {
	g := graphFromChildren(map[string][]string{
		"root": {"a", "b"},
		"a":    {"c", "d"},
		"b":    {"e"},
		"e":    {"f"},
	})

	seen := map[string]int{}
	for _, e := range collect(Walk(g, "root")) {
		seen[e.Title]++
	}

	want := []string{"a", "b", "c", "d", "e", "f"}
	if len(seen) != len(want) {
		t.Fatalf("visited %d distinct nodes, want %d (%v)", len(seen), len(want), seen)
	}
	for _, title := range want {
		if seen[title] != 1 {
			t.Errorf("node %q visited %d times, want 1", title, seen[title])
		}
	}
}

func TestSortedChildren(t *testing.T) {
	g := graphFromChildren(map[string][]string{
		"root": {"beta", "Alpha", "alpha", "Gamma"},
	})

	got := g.SortedChildren("root")
	want := []string{"Alpha", "alpha", "beta", "Gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedChildren() = %v, want %v", got, want)
	}

	// The stored adjacency list must not be reordered.
	if g.Children["root"][0] != "beta" {
		t.Errorf("SortedChildren mutated the graph: %v", g.Children["root"])
	}

	if got := g.SortedChildren("absent"); got != nil {
		t.Errorf("SortedChildren(absent) = %v, want nil", got)
	}
}

// Interlanguage leaves sort by code point after lowercasing: "č" (U+010D)
// orders after "d", so the Deutsch variant comes first.
func TestWalkInterlanguageOrder(t *testing.T) {
	g := graphFromChildren(map[string][]string{
		"Category:Root": {"Category:Root (Česky)", "Category:Root (Deutsch)"},
	})

	got := collect(Walk(g, "Category:Root"))
	want := []Entry{
		{Title: "Category:Root (Deutsch)", Parent: "Category:Root", Path: []int{0}},
		{Title: "Category:Root (Česky)", Parent: "Category:Root", Path: []int{1}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}
