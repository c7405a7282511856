package art

import (
	"iter"

	"github.com/arthane/artd/internal/debug"
	"github.com/arthane/artd/internal/xsync"
	"github.com/arthane/artd/pkg/arena"
	coretree "github.com/arthane/artd/pkg/arena/art"
	"github.com/arthane/artd/pkg/arena/slice"
	"github.com/arthane/artd/pkg/opt"
	"github.com/arthane/artd/pkg/res"
	"github.com/arthane/artd/pkg/tuple"
	"github.com/arthane/artd/pkg/untrust"
	"github.com/arthane/artd/pkg/zc"
)

// Tree is the public, byte-buffer-valued Adaptive Radix Tree.
//
// A Tree owns every byte it stores: keys and values passed to Insert are
// cloned into arena storage before the tree's root is mutated, so the
// caller's buffers may be reused or discarded immediately after the call
// returns.
type Tree struct {
	inner  coretree.Tree[[]byte]
	arena  arena.AllocatorExt
	pool   *xsync.Pool[arena.Arena]
	pooled bool
	size   int
	cfg    Config
}

// New constructs an empty Tree over a fresh arena.Arena.
func New(opts ...Option) *Tree {
	return &Tree{
		arena: &arena.Arena{},
		cfg:   newConfig(opts),
	}
}

// NewPooled constructs an empty Tree over an arena checked out of pool.
//
// Close returns the arena to the pool (reset, ready for reuse) rather than
// freeing it outright — a cheaper bulk recycle than per-tree allocation for
// callers that construct and discard many short-lived trees.
func NewPooled(pool *xsync.Pool[arena.Arena], opts ...Option) *Tree {
	debug.Assert(pool != nil, "art.NewPooled: pool must not be nil")

	return &Tree{
		arena:  pool.Get(),
		pool:   pool,
		pooled: true,
		cfg:    newConfig(opts),
	}
}

// Close releases all memory owned by the tree.
//
// For a pooled tree this returns the backing arena to its pool instead of
// discarding it. The tree must not be used again after Close.
func (t *Tree) Close() {
	a, ok := t.arena.(*arena.Arena)
	if !ok {
		return
	}

	if t.pooled {
		t.pool.Put(a)
	} else {
		a.Reset()
	}

	t.arena = nil
	t.size = 0
}

// Len returns the number of leaves stored in the tree.
func (t *Tree) Len() int { return t.size }

// Lookup searches the tree for key.
//
// On a hit, the returned View is relative to the matching leaf's own value
// buffer; materialize it with Bytes. On a miss, opt.None is returned — a
// normal outcome, never an error.
func (t *Tree) Lookup(key []byte) opt.Option[zc.View] {
	val := t.inner.Search(untrust.Input(key).AsSliceLessSafe())
	if val == nil {
		return opt.None[zc.View]()
	}

	buf := *val
	if len(buf) == 0 {
		return opt.Some(zc.View(0))
	}

	return opt.Some(zc.Raw(0, len(buf)))
}

// Bytes resolves a View returned by Lookup(key) back into the stored value.
//
// It re-walks the tree for key, since View itself only carries an offset
// and length relative to a source buffer it does not hold a pointer to.
func (t *Tree) Bytes(key []byte, v zc.View) []byte {
	val := t.inner.Search(untrust.Input(key).AsSliceLessSafe())
	if val == nil || len(*val) == 0 {
		return nil
	}

	return v.Bytes(&(*val)[0])
}

// LookupBytes is a convenience wrapper around Lookup+Bytes for callers that
// don't need the zero-copy View and just want the stored value.
func (t *Tree) LookupBytes(key []byte) opt.Option[[]byte] {
	val := t.inner.Search(untrust.Input(key).AsSliceLessSafe())
	if val == nil {
		return opt.None[[]byte]()
	}

	return opt.Some(*val)
}

// InsertOutcome reports what Insert did.
type InsertOutcome struct {
	// Replaced is true when key already had a leaf; Previous then holds
	// the value that leaf carried before being overwritten.
	Replaced bool
	Previous []byte
}

// Insert stores value under key, cloning both into arena-owned storage.
//
// Per the fixed duplicate-key policy, inserting an existing key replaces
// its value in place rather than erroring; InsertOutcome.Replaced reports
// this. The only failure mode is an arena allocation failure, surfaced as
// a *AllocationError; no partial mutation is left behind.
func (t *Tree) Insert(key, value []byte) (out res.Result[InsertOutcome]) {
	debug.Assert(t.arena != nil, "art.Tree.Insert: use of a closed tree")

	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				panic(r)
			}

			t.cfg.Logger.Warn("art: allocation failed during insert", "err", err)
			out = res.Err[InsertOutcome](&AllocationError{Cause: err})
		}
	}()

	k := untrust.Input(key).AsSliceLessSafe()
	v := untrust.Input(value).AsSliceLessSafe()
	owned := slice.FromBytes(t.arena, v).Raw()

	old := t.inner.Insert(t.arena, k, owned)
	if old == nil {
		t.size++
		t.cfg.Logger.Debug("art: inserted", "key_len", len(k), "value_len", len(v))

		return res.Ok(InsertOutcome{})
	}

	t.cfg.Logger.Debug("art: replaced", "key_len", len(k), "value_len", len(v))

	return res.Ok(InsertOutcome{Replaced: true, Previous: *old})
}

// Delete removes key from the tree, returning its value if present.
func (t *Tree) Delete(key []byte) opt.Option[[]byte] {
	debug.Assert(t.arena != nil, "art.Tree.Delete: use of a closed tree")

	old := t.inner.Delete(t.arena, untrust.Input(key).AsSliceLessSafe())
	if old == nil {
		return opt.None[[]byte]()
	}

	t.size--

	return opt.Some(*old)
}

// Require adapts a Lookup/Delete result into a res.Result, surfacing a miss
// as a typed *NotFoundError for callers that want to propagate "not found"
// through an error-returning call chain instead of branching on opt.Option.
func Require(v opt.Option[[]byte], key []byte) res.Result[[]byte] {
	if v.IsNone() {
		return res.Err[[]byte](&NotFoundError{Key: key})
	}

	return res.Ok(v.Expect("checked IsNone above"))
}

// All iterates over every key/value pair in the tree in key order.
func (t *Tree) All() iter.Seq2[[]byte, []byte] {
	return func(yield func([]byte, []byte) bool) {
		for k, v := range t.inner.All() {
			if !yield(k, *v) {
				return
			}
		}
	}
}

// AllPrefix iterates over every key/value pair whose key starts with prefix.
func (t *Tree) AllPrefix(prefix []byte) iter.Seq2[[]byte, []byte] {
	return func(yield func([]byte, []byte) bool) {
		for k, v := range t.inner.AllPrefix(prefix) {
			if !yield(k, *v) {
				return
			}
		}
	}
}

// Items materializes All() into a slice of key/value tuples, for callers
// that prefer a concrete collection over a range-over-func iterator.
func (t *Tree) Items() []tuple.Tuple2[[]byte, []byte] {
	items := make([]tuple.Tuple2[[]byte, []byte], 0, t.size)
	for k, v := range t.All() {
		items = append(items, tuple.New2(k, v))
	}

	return items
}
