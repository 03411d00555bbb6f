// Package snapshot reads and writes category-membership snapshots.
//
// A snapshot is the materialized output of the wiki API's allpages generator
// over the category namespace (prop=categories|categoryinfo): one record per
// page with its category memberships and, when the category is non-empty,
// its member counters. Snapshots are the input boundary of catwalk; the
// graph core never talks to a network.
//
// The JSON format mirrors the API response shape:
//
//	{
//	  "pages": [
//	    {
//	      "title": "Category:Xfce",
//	      "categories": [{"title": "Category:Desktop environments"}],
//	      "categoryinfo": {"files": 0, "pages": 12, "subcats": 2, "size": 14}
//	    }
//	  ]
//	}
//
// Hidden-category relations are filtered here, when a snapshot is converted
// to graph records; the graph builder only ever sees visible memberships.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"catwalk/pkg/catgraph"
)

// CategoryRef is one category membership of a page.
type CategoryRef struct {
	Title  string `json:"title"`
	Hidden bool   `json:"hidden,omitempty"`
}

// Page is one record of a snapshot: a page in the category namespace, its
// memberships, and its own counters when the source reported any.
type Page struct {
	Title        string                 `json:"title"`
	Categories   []CategoryRef          `json:"categories,omitempty"`
	CategoryInfo *catgraph.CategoryInfo `json:"categoryinfo,omitempty"`
}

// Snapshot is a point-in-time dump of category membership data.
type Snapshot struct {
	// Site names the wiki the snapshot was taken from (informational).
	Site string `json:"site,omitempty"`
	// Taken is the snapshot timestamp (informational).
	Taken time.Time `json:"taken,omitempty"`
	// Pages holds one record per page in the category namespace.
	Pages []Page `json:"pages"`
}

// Records converts the snapshot into graph-builder records, dropping hidden
// category relations. Pages themselves are never dropped; a page whose only
// memberships are hidden becomes a record without categories.
func (s Snapshot) Records() []catgraph.Record {
	records := make([]catgraph.Record, 0, len(s.Pages))
	for _, p := range s.Pages {
		rec := catgraph.Record{Title: p.Title, Info: p.CategoryInfo}
		for _, c := range p.Categories {
			if c.Hidden {
				continue
			}
			rec.Categories = append(rec.Categories, c.Title)
		}
		records = append(records, rec)
	}
	return records
}

// Marshal converts a snapshot to indented JSON bytes.
func Marshal(s Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Unmarshal decodes JSON bytes into a snapshot.
func Unmarshal(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}

// Read decodes a snapshot from an io.Reader.
func Read(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}

// Write encodes a snapshot as indented JSON to an io.Writer.
func Write(s Snapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// ReadFile reads a snapshot from a JSON file.
func ReadFile(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// WriteFile writes a snapshot to a JSON file with 0644 permissions.
func WriteFile(s Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(s, f)
}
