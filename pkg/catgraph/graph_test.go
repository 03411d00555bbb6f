package catgraph

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name         string
		records      []Record
		wantParents  map[string][]string
		wantChildren map[string][]string
		wantInfo     map[string]CategoryInfo
	}{
		{
			name:         "Empty",
			records:      nil,
			wantParents:  map[string][]string{},
			wantChildren: map[string][]string{},
			wantInfo:     map[string]CategoryInfo{},
		},
		{
			name: "SingleMembership",
			records: []Record{
				{Title: "Category:Xfce", Categories: []string{"Category:Desktop environments"}},
			},
			wantParents: map[string][]string{
				"Category:Xfce": {"Category:Desktop environments"},
			},
			wantChildren: map[string][]string{
				"Category:Desktop environments": {"Category:Xfce"},
			},
			wantInfo: map[string]CategoryInfo{
				"Category:Xfce":                 {},
				"Category:Desktop environments": {},
			},
		},
		{
			name: "InfoOverwritesDefaults",
			records: []Record{
				{
					Title:      "Category:Xfce",
					Categories: []string{"Category:Desktop environments"},
					Info:       &CategoryInfo{Files: 1, Pages: 12, Subcats: 2, Size: 15},
				},
			},
			wantParents: map[string][]string{
				"Category:Xfce": {"Category:Desktop environments"},
			},
			wantChildren: map[string][]string{
				"Category:Desktop environments": {"Category:Xfce"},
			},
			wantInfo: map[string]CategoryInfo{
				"Category:Xfce":                 {Files: 1, Pages: 12, Subcats: 2, Size: 15},
				"Category:Desktop environments": {},
			},
		},
		{
			name: "MultipleParentsKeepSourceOrder",
			records: []Record{
				{Title: "Category:Vim", Categories: []string{"Category:Text editors", "Category:Development tools"}},
				{Title: "Category:Emacs", Categories: []string{"Category:Text editors"}},
			},
			wantParents: map[string][]string{
				"Category:Vim":   {"Category:Text editors", "Category:Development tools"},
				"Category:Emacs": {"Category:Text editors"},
			},
			wantChildren: map[string][]string{
				"Category:Text editors":      {"Category:Vim", "Category:Emacs"},
				"Category:Development tools": {"Category:Vim"},
			},
			wantInfo: map[string]CategoryInfo{
				"Category:Vim":               {},
				"Category:Emacs":             {},
				"Category:Text editors":      {},
				"Category:Development tools": {},
			},
		},
		{
			name: "RecordWithoutMemberships",
			records: []Record{
				{Title: "Category:Empty", Info: &CategoryInfo{}},
			},
			wantParents:  map[string][]string{},
			wantChildren: map[string][]string{},
			wantInfo: map[string]CategoryInfo{
				"Category:Empty": {},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Build(tt.records)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if !reflect.DeepEqual(g.Parents, tt.wantParents) {
				t.Errorf("Parents = %v, want %v", g.Parents, tt.wantParents)
			}
			if !reflect.DeepEqual(g.Children, tt.wantChildren) {
				t.Errorf("Children = %v, want %v", g.Children, tt.wantChildren)
			}
			if !reflect.DeepEqual(g.Info, tt.wantInfo) {
				t.Errorf("Info = %v, want %v", g.Info, tt.wantInfo)
			}
		})
	}
}

func TestBuildMissingTitle(t *testing.T) {
	_, err := Build([]Record{
		{Title: "Category:Xfce"},
		{Categories: []string{"Category:Desktop environments"}},
	})
	if !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("Build() error = %v, want ErrMissingTitle", err)
	}
}

// Re-running Build on the same input must produce structurally identical
// mappings; reports are generated from snapshots and must be reproducible.
func TestBuildIdempotent(t *testing.T) {
	records := []Record{
		{Title: "Category:Xfce", Categories: []string{"Category:Desktop environments"}, Info: &CategoryInfo{Pages: 12}},
		{Title: "Category:KDE", Categories: []string{"Category:Desktop environments"}},
		{Title: "Category:Desktop environments", Categories: []string{"Category:Software"}},
	}

	first, err := Build(records)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	second, err := Build(records)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Build produced different graphs:\n%v\n%v", first, second)
	}
}

// Every title that appears as a key in Parents or Children must have an Info
// entry, even when the source never reported counters for it.
func TestBuildInfoInvariant(t *testing.T) {
	g, err := Build([]Record{
		{Title: "Category:Xfce", Categories: []string{"Category:Desktop environments", "Category:Software"}},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for title := range g.Parents {
		if _, ok := g.Info[title]; !ok {
			t.Errorf("Parents key %q has no Info entry", title)
		}
	}
	for title := range g.Children {
		if _, ok := g.Info[title]; !ok {
			t.Errorf("Children key %q has no Info entry", title)
		}
	}
}
