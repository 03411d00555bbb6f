package catgraph

import (
	"reflect"
	"strings"
	"testing"
)

// testRank is a fixed three-language ordering: untagged (English) first,
// then Česky, then Deutsch.
func testRank(title string) int {
	switch {
	case strings.HasSuffix(title, "(Česky)"):
		return 1
	case strings.HasSuffix(title, "(Deutsch)"):
		return 2
	default:
		return 0
	}
}

func collectPairs(d *Differ) []Pair {
	var out []Pair
	for p, ok := d.Next(); ok; p, ok = d.Next() {
		out = append(out, p)
	}
	return out
}

// Diffing a subtree against itself pairs every entry with its twin; no
// one-sided pairs appear.
func TestDiffSameRoot(t *testing.T) {
	g := graphFromChildren(map[string][]string{
		"root": {"a", "b"},
		"a":    {"a1", "a2"},
		"b":    {"b1"},
	})

	pairs := collectPairs(Diff(g, "root", "root", testRank))

	wantLen := len(collect(Walk(g, "root")))
	if len(pairs) != wantLen {
		t.Fatalf("got %d pairs, want %d", len(pairs), wantLen)
	}
	for i, p := range pairs {
		if p.Left == nil || p.Right == nil {
			t.Fatalf("pairs[%d] is one-sided: %+v", i, p)
		}
		if !reflect.DeepEqual(*p.Left, *p.Right) {
			t.Errorf("pairs[%d]: left %+v != right %+v", i, *p.Left, *p.Right)
		}
	}
}

// Entries with equal keys (same depth, same detected language) occupy the
// same slot and pair up even though their titles differ.
func TestDiffPairsSameSlot(t *testing.T) {
	g := graphFromChildren(map[string][]string{
		"L": {"Category:Editors"},
		"R": {"Category:Browsers"},

		"Category:Editors":  {"Category:Vim"},
		"Category:Browsers": {"Category:Firefox"},
	})

	pairs := collectPairs(Diff(g, "L", "R", testRank))

	want := [][2]string{
		{"Category:Editors", "Category:Browsers"},
		{"Category:Vim", "Category:Firefox"},
	}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d: %+v", len(pairs), len(want), pairs)
	}
	for i, p := range pairs {
		if p.Left == nil || p.Right == nil {
			t.Fatalf("pairs[%d] is one-sided: %+v", i, p)
		}
		if p.Left.Title != want[i][0] || p.Right.Title != want[i][1] {
			t.Errorf("pairs[%d] = (%s, %s), want (%s, %s)",
				i, p.Left.Title, p.Right.Title, want[i][0], want[i][1])
		}
	}
}

// Comparing an original tree against its translated variant reports the
// untranslated (deeper-ordered, lower-ranked) entries as left-only and the
// translated ones as right-only, each side in its own traversal order.
func TestDiffLanguageVariantReport(t *testing.T) {
	g := graphFromChildren(map[string][]string{
		"Category:Applications":         {"Category:Editors"},
		"Category:Applications (Česky)": {"Category:Editors (Česky)"},
	})

	pairs := collectPairs(Diff(g, "Category:Applications", "Category:Applications (Česky)", testRank))

	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2: %+v", len(pairs), pairs)
	}
	if pairs[0].Left == nil || pairs[0].Right != nil || pairs[0].Left.Title != "Category:Editors" {
		t.Errorf("pairs[0] = %+v, want left-only Category:Editors", pairs[0])
	}
	if pairs[1].Right == nil || pairs[1].Left != nil || pairs[1].Right.Title != "Category:Editors (Česky)" {
		t.Errorf("pairs[1] = %+v, want right-only Category:Editors (Česky)", pairs[1])
	}
}

// Disjoint subtrees with no locale-rank collisions produce only one-sided
// pairs, covering each side's entries in its own traversal order.
func TestDiffDisjoint(t *testing.T) {
	g := graphFromChildren(map[string][]string{
		"L": {"Category:A (Česky)"},
		"R": {"Category:B (Deutsch)"},

		"Category:A (Česky)":   {"Category:A sub (Česky)"},
		"Category:B (Deutsch)": {"Category:B sub (Deutsch)"},
	})

	pairs := collectPairs(Diff(g, "L", "R", testRank))

	var lefts, rights []string
	for i, p := range pairs {
		switch {
		case p.Left != nil && p.Right != nil:
			t.Fatalf("pairs[%d] is two-sided: %+v", i, p)
		case p.Left != nil:
			lefts = append(lefts, p.Left.Title)
		case p.Right != nil:
			rights = append(rights, p.Right.Title)
		default:
			t.Fatalf("pairs[%d] is empty", i)
		}
	}

	wantLeft := []string{"Category:A (Česky)", "Category:A sub (Česky)"}
	wantRight := []string{"Category:B (Deutsch)", "Category:B sub (Deutsch)"}
	if !reflect.DeepEqual(lefts, wantLeft) {
		t.Errorf("left side = %v, want %v", lefts, wantLeft)
	}
	if !reflect.DeepEqual(rights, wantRight) {
		t.Errorf("right side = %v, want %v", rights, wantRight)
	}
}

// Two empty roots produce exactly one explicit empty pair.
func TestDiffBothEmpty(t *testing.T) {
	g := graphFromChildren(map[string][]string{})

	d := Diff(g, "left", "right", testRank)

	p, ok := d.Next()
	if !ok {
		t.Fatal("first Next() = ok=false, want the empty-signal pair")
	}
	if p.Left != nil || p.Right != nil {
		t.Errorf("empty-signal pair = %+v, want both sides nil", p)
	}
	if _, ok := d.Next(); ok {
		t.Error("second Next() = ok=true, want exhausted")
	}
}

func TestDiffOneSideEmpty(t *testing.T) {
	g := graphFromChildren(map[string][]string{
		"R": {"b", "a"},
	})

	t.Run("EmptyLeft", func(t *testing.T) {
		pairs := collectPairs(Diff(g, "L", "R", testRank))
		want := []string{"a", "b"}
		if len(pairs) != len(want) {
			t.Fatalf("got %d pairs, want %d", len(pairs), len(want))
		}
		for i, p := range pairs {
			if p.Left != nil || p.Right == nil {
				t.Fatalf("pairs[%d] = %+v, want right-only", i, p)
			}
			if p.Right.Title != want[i] {
				t.Errorf("pairs[%d].Right = %s, want %s", i, p.Right.Title, want[i])
			}
		}
	})

	t.Run("EmptyRight", func(t *testing.T) {
		pairs := collectPairs(Diff(g, "R", "L", testRank))
		want := []string{"a", "b"}
		if len(pairs) != len(want) {
			t.Fatalf("got %d pairs, want %d", len(pairs), len(want))
		}
		for i, p := range pairs {
			if p.Right != nil || p.Left == nil {
				t.Fatalf("pairs[%d] = %+v, want left-only", i, p)
			}
			if p.Left.Title != want[i] {
				t.Errorf("pairs[%d].Left = %s, want %s", i, p.Left.Title, want[i])
			}
		}
	})
}

// When the left side runs out in the middle of an equal run, the remaining
// right entries drain as right-only pairs; the exhausted side is never
// re-paired.
func TestDiffRightResidualAfterEqualRun(t *testing.T) {
	g := graphFromChildren(map[string][]string{
		"L": {"Category:One"},
		"R": {"Category:Eins", "Category:Zwei (Česky)"},
	})

	pairs := collectPairs(Diff(g, "L", "R", testRank))

	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2: %+v", len(pairs), pairs)
	}
	if pairs[0].Left == nil || pairs[0].Right == nil {
		t.Fatalf("pairs[0] = %+v, want two-sided", pairs[0])
	}
	if pairs[0].Left.Title != "Category:One" || pairs[0].Right.Title != "Category:Eins" {
		t.Errorf("pairs[0] = (%s, %s), want (Category:One, Category:Eins)",
			pairs[0].Left.Title, pairs[0].Right.Title)
	}
	if pairs[1].Left != nil || pairs[1].Right == nil {
		t.Fatalf("pairs[1] = %+v, want right-only", pairs[1])
	}
	if pairs[1].Right.Title != "Category:Zwei (Česky)" {
		t.Errorf("pairs[1].Right = %s, want Category:Zwei (Česky)", pairs[1].Right.Title)
	}
}
