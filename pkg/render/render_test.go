package render

import (
	"strings"
	"testing"

	"catwalk/pkg/catgraph"
)

// testGraph builds a small category tree:
//
//	Desktop environments
//	├── GNOME
//	│   └── GNOME Shell
//	└── Xfce
func testGraph(t *testing.T) *catgraph.Graph {
	t.Helper()
	g, err := catgraph.Build([]catgraph.Record{
		{Title: "Category:Desktop environments", Info: &catgraph.CategoryInfo{Pages: 3, Subcats: 2}},
		{Title: "Category:GNOME", Categories: []string{"Category:Desktop environments"}, Info: &catgraph.CategoryInfo{Pages: 9, Subcats: 1}},
		{Title: "Category:GNOME Shell", Categories: []string{"Category:GNOME"}},
		{Title: "Category:Xfce", Categories: []string{"Category:Desktop environments"}, Info: &catgraph.CategoryInfo{Pages: 12}},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return g
}

func TestWriteListing(t *testing.T) {
	tests := []struct {
		name string
		opts ListingOptions
		want string
	}{
		{
			name: "Plain",
			opts: ListingOptions{Indent: "  "},
			want: "Category:Desktop environments\n" +
				"  Category:GNOME\n" +
				"    Category:GNOME Shell\n" +
				"  Category:Xfce\n",
		},
		{
			name: "WithCounts",
			opts: ListingOptions{Indent: "  ", ShowCounts: true},
			want: "Category:Desktop environments (3 pages, 2 subcats)\n" +
				"  Category:GNOME (9 pages, 1 subcats)\n" +
				"    Category:GNOME Shell (0 pages, 0 subcats)\n" +
				"  Category:Xfce (12 pages, 0 subcats)\n",
		},
		{
			name: "MaxDepth",
			opts: ListingOptions{Indent: "  ", MaxDepth: 1},
			want: "Category:Desktop environments\n" +
				"  Category:GNOME\n" +
				"  Category:Xfce\n",
		},
	}

	g := testGraph(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			if err := WriteListing(&b, g, "Category:Desktop environments", tt.opts); err != nil {
				t.Fatalf("WriteListing() error = %v", err)
			}
			if b.String() != tt.want {
				t.Errorf("WriteListing() =\n%s\nwant:\n%s", b.String(), tt.want)
			}
		})
	}
}

func TestWriteListingUnknownRoot(t *testing.T) {
	var b strings.Builder
	if err := WriteListing(&b, testGraph(t), "Category:Nope", ListingOptions{}); err != nil {
		t.Fatalf("WriteListing() error = %v", err)
	}
	if got := b.String(); got != "Category:Nope\n" {
		t.Errorf("WriteListing() = %q, want root line only", got)
	}
}

func TestWriteWikitextListing(t *testing.T) {
	var b strings.Builder
	if err := WriteWikitextListing(&b, testGraph(t), "Category:Desktop environments", ListingOptions{}); err != nil {
		t.Fatalf("WriteWikitextListing() error = %v", err)
	}
	want := "* [[:Category:Desktop environments]]\n" +
		"** [[:Category:GNOME]]\n" +
		"*** [[:Category:GNOME Shell]]\n" +
		"** [[:Category:Xfce]]\n"
	if b.String() != want {
		t.Errorf("WriteWikitextListing() =\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestWriteCompare(t *testing.T) {
	g := testGraph(t)
	d := catgraph.Diff(g, "Category:Desktop environments", "Category:Desktop environments", func(string) int { return 0 })

	var b strings.Builder
	if err := WriteCompare(&b, d); err != nil {
		t.Fatalf("WriteCompare() error = %v", err)
	}
	want := "Category:GNOME\tCategory:GNOME\n" +
		"Category:GNOME Shell\tCategory:GNOME Shell\n" +
		"Category:Xfce\tCategory:Xfce\n"
	if b.String() != want {
		t.Errorf("WriteCompare() =\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestWriteWikitextCompare(t *testing.T) {
	g := testGraph(t)
	d := catgraph.Diff(g, "Category:GNOME", "Category:Xfce", func(string) int { return 0 })

	var b strings.Builder
	if err := WriteWikitextCompare(&b, "GNOME", "Xfce", d); err != nil {
		t.Fatalf("WriteWikitextCompare() error = %v", err)
	}
	want := "{| class=\"wikitable\"\n" +
		"! GNOME !! Xfce\n" +
		"|-\n" +
		"| [[:Category:GNOME Shell]] || \n" +
		"|}\n"
	if b.String() != want {
		t.Errorf("WriteWikitextCompare() =\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestWriteWikitextCompareEmpty(t *testing.T) {
	g := testGraph(t)
	d := catgraph.Diff(g, "Category:A", "Category:B", func(string) int { return 0 })

	var b strings.Builder
	if err := WriteWikitextCompare(&b, "A", "B", d); err != nil {
		t.Fatalf("WriteWikitextCompare() error = %v", err)
	}
	want := "{| class=\"wikitable\"\n! A !! B\n|}\n"
	if b.String() != want {
		t.Errorf("WriteWikitextCompare() = %q, want header-only table", b.String())
	}
}

func TestToDOT(t *testing.T) {
	g := testGraph(t)
	dot := ToDOT(g, "Category:Desktop environments", DOTOptions{})

	if !strings.HasPrefix(dot, "digraph categories {") {
		t.Errorf("ToDOT() missing digraph header:\n%s", dot)
	}
	for _, want := range []string{
		`"Category:Desktop environments" [label="Category:Desktop environments"];`,
		`"Category:GNOME" -> "Category:GNOME Shell";`,
		`"Category:Desktop environments" -> "Category:Xfce";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTCounts(t *testing.T) {
	dot := ToDOT(testGraph(t), "Category:Desktop environments", DOTOptions{ShowCounts: true})
	if !strings.Contains(dot, `label="Category:Xfce\n12 pages, 0 subcats"`) {
		t.Errorf("ToDOT() missing counter label:\n%s", dot)
	}
}

func TestToDOTMaxDepth(t *testing.T) {
	dot := ToDOT(testGraph(t), "Category:Desktop environments", DOTOptions{MaxDepth: 1})
	if strings.Contains(dot, "GNOME Shell") {
		t.Errorf("ToDOT() depth 1 should not include grandchildren:\n%s", dot)
	}
}
