package catgraph

import (
	"cmp"

	"catwalk/pkg/lazy"
)

// RankFunc maps a category title to its locale rank: the position of the
// title's detected language in a fixed, externally configured language
// ordering. The default (untagged) language ranks first. The ranking
// collaborator is passed in explicitly; this package holds no language state.
type RankFunc func(title string) int

// Key is the comparable sort key the diff merge is driven by. Keys compare
// lexicographically: deeper entries first (NegDepth), then by locale rank.
// Entries with equal keys are considered the same slot of the two trees and
// are paired regardless of their titles.
type Key struct {
	NegDepth   int
	LocaleRank int
}

// Pair is one unit of diff output. At least one side is set, except for the
// single (nil, nil) pair emitted when both roots produce no entries at all.
type Pair struct {
	Left  *Entry
	Right *Entry
}

// Differ merges two subtree traversals into an aligned sequence of pairs.
//
// Both sides are walked independently and compared entry by entry under
// [Key] ordering. An exhausted side compares strictly greater than any
// remaining entry, so once one traversal ends the other drains with
// one-sided pairs; a residual value is never re-paired. Differ is a
// single-consumer iterator and is not safe for concurrent use.
type Differ struct {
	left    *lazy.Iterator[Entry]
	right   *lazy.Iterator[Entry]
	rank    RankFunc
	lcur    *Entry
	rcur    *Entry
	emitted bool
	done    bool
}

// Diff starts a comparison of the subtrees rooted at left and right.
// The two walks are typically two language variants of the same category
// tree; rank supplies the locale ordering used to align them.
func Diff(g *Graph, left, right string, rank RankFunc) *Differ {
	d := &Differ{
		left:  lazy.New(Walk(g, left).Next),
		right: lazy.New(Walk(g, right).Next),
		rank:  rank,
	}
	d.advanceLeft()
	d.advanceRight()
	return d
}

// Next returns the next aligned pair, or ok=false once both sides are
// exhausted. If both roots are empty, the first call returns the single
// explicit (nil, nil) pair.
func (d *Differ) Next() (Pair, bool) {
	if d.done {
		return Pair{}, false
	}

	if d.lcur == nil && d.rcur == nil {
		d.done = true
		if d.emitted {
			return Pair{}, false
		}
		// Nothing to compare on either side: a single empty pair signals
		// the empty result explicitly.
		return Pair{}, true
	}
	d.emitted = true

	switch c := d.compare(); {
	case c < 0:
		p := Pair{Left: d.lcur}
		d.advanceLeft()
		return p, true
	case c > 0:
		p := Pair{Right: d.rcur}
		d.advanceRight()
		return p, true
	default:
		p := Pair{Left: d.lcur, Right: d.rcur}
		d.advanceLeft()
		d.advanceRight()
		return p, true
	}
}

// compare orders the two current entries. An absent side loses against a
// present one so the surviving side drains first.
func (d *Differ) compare() int {
	switch {
	case d.lcur == nil && d.rcur == nil:
		return 0
	case d.lcur == nil:
		return 1
	case d.rcur == nil:
		return -1
	}
	lk := d.key(d.lcur)
	rk := d.key(d.rcur)
	if c := cmp.Compare(lk.NegDepth, rk.NegDepth); c != 0 {
		return c
	}
	return cmp.Compare(lk.LocaleRank, rk.LocaleRank)
}

func (d *Differ) key(e *Entry) Key {
	return Key{NegDepth: -len(e.Path), LocaleRank: d.rank(e.Title)}
}

func (d *Differ) advanceLeft() {
	if !d.left.HasNext() {
		d.lcur = nil
		return
	}
	e, err := d.left.Next()
	if err != nil {
		// Unreachable: HasNext was just checked and the iterator has a
		// single consumer.
		panic(err)
	}
	d.lcur = &e
}

func (d *Differ) advanceRight() {
	if !d.right.HasNext() {
		d.rcur = nil
		return
	}
	e, err := d.right.Next()
	if err != nil {
		panic(err)
	}
	d.rcur = &e
}
