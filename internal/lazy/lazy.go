// Package lazy provides the single deferred-sequence abstraction the series
// engine is built on. Slices and arbitrary iter.Seq iterables are adapted
// into a Seq at the API boundary, so everything downstream has one code path
// and one set of consumption rules.
//
// A Seq is pull-based: nothing is produced until a Cursor requests the next
// element, and production advances exactly as far as requested. Sources
// backed by a slice are restartable and may be traversed any number of
// times. Sources backed by an arbitrary iterable are treated as single-pass:
// the first Cursor claims the traversal and later claims fail with
// ErrConsumed.
package lazy

import (
	"errors"
	"iter"
	"slices"
)

// ErrConsumed is returned when a single-pass source is claimed a second time.
var ErrConsumed = errors.New("lazy: single-pass source already consumed")

// Seq is a lazily evaluated sequence of values.
//
// The zero value is an empty, restartable sequence.
type Seq[T any] struct {
	length int   // element count, or -1 when unknown before traversal
	spent  *bool // single-pass claim flag; nil for restartable sources
	seq    iter.Seq[T]
}

// FromSlice adapts a slice into a restartable Seq with a known length.
// The slice is referenced, not copied; callers must not mutate it.
func FromSlice[T any](vs []T) Seq[T] {
	return Seq[T]{length: len(vs), seq: slices.Values(vs)}
}

// FromSeq adapts an arbitrary iterable into a single-pass Seq of unknown
// length. Even if the underlying iterator happens to be restartable, the
// Seq makes no use of that: exactly one traversal is permitted.
func FromSeq[T any](seq iter.Seq[T]) Seq[T] {
	return Seq[T]{length: -1, spent: new(bool), seq: seq}
}

// Empty returns a restartable Seq with no elements.
func Empty[T any]() Seq[T] {
	return Seq[T]{length: 0, seq: func(func(T) bool) {}}
}

// Counter returns an unbounded sequence start, start+1, start+2, ...
// It is restartable and must only ever be pulled in lockstep with a finite
// sequence; its reported length is unknown.
func Counter(start int) Seq[int] {
	return Seq[int]{
		length: -1,
		seq: func(yield func(int) bool) {
			for i := start; ; i++ {
				if !yield(i) {
					return
				}
			}
		},
	}
}

// Len reports the element count and whether it is known without traversal.
func (s Seq[T]) Len() (int, bool) {
	if s.length < 0 {
		return 0, false
	}
	return s.length, true
}

// Restartable reports whether the sequence may be traversed more than once.
func (s Seq[T]) Restartable() bool {
	return s.spent == nil
}

// Spent reports whether a single-pass sequence has already been claimed.
// Always false for restartable sequences.
func (s Seq[T]) Spent() bool {
	return s.spent != nil && *s.spent
}

// Cursor claims a traversal and returns a pull cursor positioned before the
// first element. A second claim on a single-pass sequence fails with
// ErrConsumed. Callers must call Stop when done with a partially consumed
// cursor.
func (s Seq[T]) Cursor() (*Cursor[T], error) {
	if s.spent != nil {
		if *s.spent {
			return nil, ErrConsumed
		}
		*s.spent = true
	}
	if s.seq == nil {
		return &Cursor[T]{next: func() (T, bool) { var zero T; return zero, false }, stop: func() {}}, nil
	}
	next, stop := iter.Pull(s.seq)
	return &Cursor[T]{next: next, stop: stop}, nil
}

// Values returns a push iterator over the sequence. For a single-pass
// sequence whose traversal was already claimed, the iterator is empty;
// callers that need the distinction should use Cursor.
func (s Seq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		c, err := s.Cursor()
		if err != nil {
			return
		}
		defer c.Stop()
		for {
			v, ok := c.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Cursor is an independently advanceable position in a Seq.
type Cursor[T any] struct {
	next    func() (T, bool)
	stop    func()
	stopped bool
}

// Next returns the next element. ok is false once the sequence is exhausted.
func (c *Cursor[T]) Next() (T, bool) {
	if c.stopped {
		var zero T
		return zero, false
	}
	return c.next()
}

// Stop releases the cursor. Further Next calls return no elements.
// Stop is idempotent.
func (c *Cursor[T]) Stop() {
	if c.stopped {
		return
	}
	c.stopped = true
	c.stop()
}
