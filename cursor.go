package seriesgo

import (
	"github.com/hupe1980/seriesgo/internal/lazy"
)

// pairSource produces single-use cursors over an ordered pair sequence.
// Every construction path and every transform is expressed as a pairSource
// wrapping another, so the engine has exactly one consumption code path.
type pairSource[K, V any] interface {
	// open claims a traversal and returns a cursor positioned before the
	// first pair. Fails with lazy.ErrConsumed when a single-pass upstream
	// has already been claimed.
	open() (pairCursor[K, V], error)

	// count reports the pair count when known without traversal.
	count() (int, bool)
}

// pairCursor walks pairs in declared order. Once next has returned false,
// fail reports whether the traversal ended in a length mismatch.
type pairCursor[K, V any] interface {
	next() (Pair[K, V], bool)
	stop()
	fail() error
}

// zipSource pairs an independent key sequence and value sequence
// positionally. The two sequences are advanced in lockstep, one pair at a
// time; neither is ever pulled more than one element ahead of the other.
type zipSource[K, V any] struct {
	keys lazy.Seq[K]
	vals lazy.Seq[V]

	// unbounded marks a synthesized sequential index, which generates keys
	// on demand and therefore can never run short or long.
	unbounded bool
}

func (zs *zipSource[K, V]) count() (int, bool) {
	nv, ok := zs.vals.Len()
	if !ok {
		return 0, false
	}
	if zs.unbounded {
		return nv, true
	}
	nk, ok := zs.keys.Len()
	if !ok || nk != nv {
		return 0, false
	}
	return nv, true
}

func (zs *zipSource[K, V]) open() (pairCursor[K, V], error) {
	kc, err := zs.keys.Cursor()
	if err != nil {
		return nil, err
	}
	vc, err := zs.vals.Cursor()
	if err != nil {
		kc.Stop()
		return nil, err
	}
	return &zipCursor[K, V]{kc: kc, vc: vc, unbounded: zs.unbounded}, nil
}

type zipCursor[K, V any] struct {
	kc        *lazy.Cursor[K]
	vc        *lazy.Cursor[V]
	unbounded bool
	nk, nv    int
	done      bool
	err       error
}

func (c *zipCursor[K, V]) next() (Pair[K, V], bool) {
	var zero Pair[K, V]
	if c.done {
		return zero, false
	}
	k, okk := c.kc.Next()
	v, okv := c.vc.Next()
	if okk && okv {
		c.nk++
		c.nv++
		return Pair[K, V]{Key: k, Value: v}, true
	}
	c.done = true
	if okk {
		c.nk++
	}
	if okv {
		c.nv++
	}
	if !c.unbounded && okk != okv {
		// One side ran short. Drain the other so the error carries exact
		// counts rather than "at least".
		for {
			if _, ok := c.kc.Next(); !ok {
				break
			}
			c.nk++
		}
		for {
			if _, ok := c.vc.Next(); !ok {
				break
			}
			c.nv++
		}
		c.err = &LengthMismatchError{Keys: c.nk, Values: c.nv}
	}
	c.kc.Stop()
	c.vc.Stop()
	return zero, false
}

func (c *zipCursor[K, V]) stop() {
	c.done = true
	c.kc.Stop()
	c.vc.Stop()
}

func (c *zipCursor[K, V]) fail() error { return c.err }

// pairSeqSource wraps an already-paired sequence, as produced by the pairs
// configuration arm or by a baked cache.
type pairSeqSource[K, V any] struct {
	pairs lazy.Seq[Pair[K, V]]
}

func (ps *pairSeqSource[K, V]) count() (int, bool) {
	return ps.pairs.Len()
}

func (ps *pairSeqSource[K, V]) open() (pairCursor[K, V], error) {
	c, err := ps.pairs.Cursor()
	if err != nil {
		return nil, err
	}
	return &pairSeqCursor[K, V]{c: c}, nil
}

type pairSeqCursor[K, V any] struct {
	c *lazy.Cursor[Pair[K, V]]
}

func (c *pairSeqCursor[K, V]) next() (Pair[K, V], bool) { return c.c.Next() }
func (c *pairSeqCursor[K, V]) stop()                    { c.c.Stop() }
func (c *pairSeqCursor[K, V]) fail() error              { return nil }

// selectSource maps values through a selector, keeping keys untouched.
// The selector runs only when a pair is actually requested.
type selectSource[K, V, R any] struct {
	up      pairSource[K, V]
	fn      func(V, int) R
	metrics MetricsCollector
}

func (ss *selectSource[K, V, R]) count() (int, bool) {
	return ss.up.count()
}

func (ss *selectSource[K, V, R]) open() (pairCursor[K, R], error) {
	up, err := ss.up.open()
	if err != nil {
		return nil, err
	}
	return &selectCursor[K, V, R]{up: up, fn: ss.fn, metrics: ss.metrics}, nil
}

type selectCursor[K, V, R any] struct {
	up      pairCursor[K, V]
	fn      func(V, int) R
	metrics MetricsCollector
	pos     int
}

func (c *selectCursor[K, V, R]) next() (Pair[K, R], bool) {
	p, ok := c.up.next()
	if !ok {
		var zero Pair[K, R]
		return zero, false
	}
	r := c.fn(p.Value, c.pos)
	c.pos++
	c.metrics.RecordSelector()
	return Pair[K, R]{Key: p.Key, Value: r}, true
}

func (c *selectCursor[K, V, R]) stop()       { c.up.stop() }
func (c *selectCursor[K, V, R]) fail() error { return c.up.fail() }

// dropSource discards the first n pairs of its upstream, consuming them
// pair by pair so index and values stay in lockstep.
type dropSource[K, V any] struct {
	up pairSource[K, V]
	n  int
}

func (ds *dropSource[K, V]) count() (int, bool) {
	n, ok := ds.up.count()
	if !ok {
		return 0, false
	}
	return max(0, n-ds.n), true
}

func (ds *dropSource[K, V]) open() (pairCursor[K, V], error) {
	up, err := ds.up.open()
	if err != nil {
		return nil, err
	}
	return &dropCursor[K, V]{up: up, n: ds.n}, nil
}

type dropCursor[K, V any] struct {
	up      pairCursor[K, V]
	n       int
	skipped bool
}

func (c *dropCursor[K, V]) next() (Pair[K, V], bool) {
	if !c.skipped {
		c.skipped = true
		for i := 0; i < c.n; i++ {
			if _, ok := c.up.next(); !ok {
				var zero Pair[K, V]
				return zero, false
			}
		}
	}
	return c.up.next()
}

func (c *dropCursor[K, V]) stop()       { c.up.stop() }
func (c *dropCursor[K, V]) fail() error { return c.up.fail() }
