// Package lang detects the language variant of wiki page titles.
//
// Language variants are marked with a title suffix such as
// "Category:Xfce (Česky)". A [Detector] strips a recognized suffix and maps
// the language to its rank in a configured ordering, which the category
// tree-diff uses as part of its sort key. The ordering is explicit
// configuration, not process-wide state: construct a Detector from the
// configured list and pass it where it is needed.
package lang

import (
	"errors"
	"regexp"
)

// ErrNoLanguages is returned by [NewDetector] when the ordering is empty.
var ErrNoLanguages = errors.New("lang: ordering must list at least the default language")

// suffixRe matches a trailing language marker: " (Language)".
var suffixRe = regexp.MustCompile(`^(.*) \(([^()]+)\)$`)

// DefaultOrder is the built-in language ordering. The first entry is the
// default language: untagged titles (and titles with an unrecognized tag)
// detect as the default, which ranks first.
var DefaultOrder = []string{
	"English",
	"العربية",
	"Bosanski",
	"Български",
	"Català",
	"Česky",
	"Dansk",
	"Deutsch",
	"Ελληνικά",
	"Español",
	"Esperanto",
	"Hrvatski",
	"Magyar",
	"Indonesia",
	"Italiano",
	"עברית",
	"Lietuviškai",
	"Nederlands",
	"日本語",
	"Polski",
	"Português",
	"Română",
	"Русский",
	"Slovenský",
	"Српски",
	"Suomi",
	"Svenska",
	"ไทย",
	"Türkçe",
	"Українська",
	"简体中文",
	"正體中文",
}

// Detector recognizes language markers against a fixed ordering.
// Detectors are immutable and safe for concurrent use.
type Detector struct {
	def   string
	ranks map[string]int
}

// NewDetector builds a detector from an ordered language list. The first
// entry is the default language and ranks 0; the remaining entries rank by
// position. Returns [ErrNoLanguages] for an empty list.
func NewDetector(order []string) (*Detector, error) {
	if len(order) == 0 {
		return nil, ErrNoLanguages
	}
	ranks := make(map[string]int, len(order))
	for i, name := range order {
		ranks[name] = i
	}
	return &Detector{def: order[0], ranks: ranks}, nil
}

// NewDefaultDetector builds a detector over [DefaultOrder].
func NewDefaultDetector() *Detector {
	d, err := NewDetector(DefaultOrder)
	if err != nil {
		panic(err) // DefaultOrder is never empty
	}
	return d
}

// Default returns the default language name.
func (d *Detector) Default() string { return d.def }

// Detect splits a title into its pure form and its language. Titles without
// a recognized " (Language)" suffix belong to the default language and are
// returned unchanged.
func (d *Detector) Detect(title string) (pure, language string) {
	m := suffixRe.FindStringSubmatch(title)
	if m == nil {
		return title, d.def
	}
	if _, known := d.ranks[m[2]]; !known {
		return title, d.def
	}
	return m[1], m[2]
}

// Rank returns the position of a language in the ordering. The default
// language ranks 0; an unknown language also ranks 0, sorting with the
// default.
func (d *Detector) Rank(language string) int {
	return d.ranks[language]
}

// RankTitle detects a title's language and returns its rank. Its signature
// matches catgraph.RankFunc so a Detector method can be passed straight to
// the differ.
func (d *Detector) RankTitle(title string) int {
	_, language := d.Detect(title)
	return d.Rank(language)
}

// Tagged reports whether a title carries a recognized non-default language
// marker.
func (d *Detector) Tagged(title string) bool {
	_, language := d.Detect(title)
	return language != d.def
}

// Format appends a language marker to a pure title. Formatting with the
// default language returns the title unchanged.
func (d *Detector) Format(pure, language string) string {
	if language == d.def {
		return pure
	}
	return pure + " (" + language + ")"
}

// Known reports whether a language is part of the ordering.
func (d *Detector) Known(language string) bool {
	_, ok := d.ranks[language]
	return ok
}
