// Package lazy provides a peekable wrapper for pull-based iterators.
//
// Go iterators in this codebase follow the pull convention: a Next function
// returning (value, ok) where ok reports whether a value was produced. That
// convention cannot answer "is there another value" without consuming it,
// which the tree-diff merge loop needs constantly. [Iterator] buffers exactly
// one pending value so callers can test for exhaustion explicitly.
//
// An Iterator is a single-consumer, one-shot view of its source. It is not
// safe for concurrent use and cannot be restarted.
package lazy

import "errors"

// ErrExhausted is returned by [Iterator.Next] when the source has been fully
// drained. Correct callers guard every Next with HasNext, so observing this
// error indicates a logic bug in the consumer.
var ErrExhausted = errors.New("lazy: iterator exhausted")

// Pull is the producer contract wrapped by [Iterator]: it returns the next
// value and true, or the zero value and false once the source is exhausted.
type Pull[T any] func() (T, bool)

// Iterator buffers one pending value pulled from a [Pull] source.
//
// Construction eagerly pulls the first value, so an Iterator over an empty
// source reports exhaustion immediately.
type Iterator[T any] struct {
	pull      Pull[T]
	buffered  T
	exhausted bool
}

// New wraps a pull source in a peekable iterator and primes the buffer with
// the first value.
func New[T any](pull Pull[T]) *Iterator[T] {
	it := &Iterator[T]{pull: pull}
	it.fill()
	return it
}

// fill replaces the buffer with the next value from the source, or marks the
// iterator exhausted.
func (it *Iterator[T]) fill() {
	v, ok := it.pull()
	if !ok {
		var zero T
		it.buffered = zero
		it.exhausted = true
		return
	}
	it.buffered = v
}

// HasNext reports whether a subsequent Next call would yield a value.
// It never consumes from the source.
func (it *Iterator[T]) HasNext() bool {
	return !it.exhausted
}

// Next returns the buffered value and pulls the following one into the
// buffer. It returns [ErrExhausted] if the iterator is already drained.
func (it *Iterator[T]) Next() (T, error) {
	if it.exhausted {
		var zero T
		return zero, ErrExhausted
	}
	v := it.buffered
	it.fill()
	return v, nil
}

// FromSlice returns a pull source over the elements of s, in order.
// Intended for tests and small fixed sequences.
func FromSlice[T any](s []T) Pull[T] {
	i := 0
	return func() (T, bool) {
		if i >= len(s) {
			var zero T
			return zero, false
		}
		v := s[i]
		i++
		return v, true
	}
}
