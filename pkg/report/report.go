// Package report provides the snapshot → graph → render pipeline for catwalk.
//
// This package implements the complete load → build → render pipeline shared
// by all CLI commands. Centralizing it keeps caching and logging behavior
// identical no matter which command triggered a run.
//
// # Architecture
//
// A report run has three stages:
//
//  1. Load: Read the snapshot file and compute its content hash
//  2. Build: Construct the category graph from the snapshot records
//  3. Render: Produce the requested report over the graph
//
// The built graph is cached by the snapshot's content hash, and rendered
// reports are cached by the hash plus the report parameters, so repeated
// runs over an unchanged snapshot skip straight to output.
//
// # Usage
//
// Create a Runner and execute a run:
//
//	runner := report.NewRunner(cache, nil, logger)
//	opts := report.Options{
//	    SnapshotPath: "archwiki.json",
//	    Kind:         report.KindCompare,
//	    Roots:        []string{"Category:Xfce", "Category:Xfce (Česky)"},
//	    Format:       report.FormatText,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.Output)
package report

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"catwalk/pkg/catgraph"
	"catwalk/pkg/errors"
	"catwalk/pkg/lang"
)

// Report kinds.
const (
	// KindTree lists one category subtree.
	KindTree = "tree"
	// KindCompare aligns two category subtrees side by side.
	KindCompare = "compare"
	// KindDOT exports one category subtree as a Graphviz graph.
	KindDOT = "dot"
)

// Output format constants.
const (
	FormatText     = "text"
	FormatWikitext = "wikitext"
	FormatDOT      = "dot"
	FormatSVG      = "svg"
)

// validFormats maps each report kind to its supported output formats.
var validFormats = map[string]map[string]bool{
	KindTree:    {FormatText: true, FormatWikitext: true},
	KindCompare: {FormatText: true, FormatWikitext: true},
	KindDOT:     {FormatDOT: true, FormatSVG: true},
}

// rootCount is the number of roots each report kind takes.
var rootCount = map[string]int{
	KindTree:    1,
	KindCompare: 2,
	KindDOT:     1,
}

// Options contains all configuration for a report run.
type Options struct {
	// SnapshotPath is the snapshot file the graph is built from.
	SnapshotPath string `json:"snapshot_path"`

	// Kind selects the report: tree, compare, or dot.
	Kind string `json:"kind"`

	// Roots are the subtree roots: one for tree/dot, two for compare.
	Roots []string `json:"roots"`

	// Format is the output format. Empty means the kind's default
	// (text for tree/compare, dot for dot).
	Format string `json:"format,omitempty"`

	// Languages is the locale ordering used for language detection and
	// diff alignment. Empty means the built-in ordering.
	Languages []string `json:"languages,omitempty"`

	// ShowCounts includes page and subcategory counters in the output.
	ShowCounts bool `json:"show_counts,omitempty"`

	// MaxDepth limits traversal depth for tree and dot reports.
	// 0 means unlimited.
	MaxDepth int `json:"max_depth,omitempty"`

	// Refresh bypasses the cache and overwrites cached entries.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a report run.
type Result struct {
	// RunID uniquely identifies this run in logs.
	RunID string

	// Graph is the built category graph.
	Graph *catgraph.Graph

	// SnapshotHash is the content hash of the snapshot file.
	SnapshotHash string

	// Output is the rendered report.
	Output []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains report run statistics.
type Stats struct {
	PageCount     int
	CategoryCount int
	BuildTime     time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each run stage.
type CacheInfo struct {
	GraphHit  bool // Whether the built graph came from cache
	ReportHit bool // Whether the rendered output came from cache
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if err := errors.ValidateSnapshotPath(o.SnapshotPath); err != nil {
		return err
	}

	want, ok := rootCount[o.Kind]
	if !ok {
		return errors.New(errors.ErrCodeUnsupported, "unknown report kind %q (must be one of: tree, compare, dot)", o.Kind)
	}
	if len(o.Roots) != want {
		return errors.New(errors.ErrCodeInvalidInput, "%s report takes %d root(s), got %d", o.Kind, want, len(o.Roots))
	}
	for _, root := range o.Roots {
		if err := errors.ValidateCategoryTitle(root); err != nil {
			return err
		}
	}

	if o.Format == "" {
		o.Format = defaultFormat(o.Kind)
	}
	if !validFormats[o.Kind][o.Format] {
		return errors.New(errors.ErrCodeInvalidFormat, "format %q is not supported for %s reports", o.Format, o.Kind)
	}

	if len(o.Languages) == 0 {
		o.Languages = lang.DefaultOrder
	}
	for _, name := range o.Languages {
		if err := errors.ValidateLanguageName(name); err != nil {
			return err
		}
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Detector builds the language detector for this run's ordering.
// Call ValidateAndSetDefaults first.
func (o *Options) Detector() (*lang.Detector, error) {
	d, err := lang.NewDetector(o.Languages)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLanguage, err, "language ordering")
	}
	return d, nil
}

func defaultFormat(kind string) string {
	if kind == KindDOT {
		return FormatDOT
	}
	return FormatText
}
