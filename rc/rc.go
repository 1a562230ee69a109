// Package rc implements a manually reference-counted shared-ownership
// handle. Every live handle that aliases one control block co-owns the
// pointee; the last Drop releases pointee and block exactly once,
// through injectable allocators. The counter discipline is a type
// parameter: Rc counts with a plain integer, Arc atomically.
package rc

import (
	"fmt"

	"fortio.org/safecast"

	"boxkit/alloc"
	"boxkit/internal/contract"
)

// Block is the control block: one independently allocated pair of owned
// pointer and live-reference count, shared by every handle attached to
// it. Callers never touch it directly; it is exported only so counting
// allocators can be instantiated over it.
type Block[T any, C any] struct {
	value *T
	count C
}

// Shared is the generic handle. A zero Shared is the well-defined null
// handle: no control block, count 0, safe to Drop. That state is
// distinct from "block allocated but value released".
//
// The handle struct itself is single-writer; only the control block is
// shared, and only through the counter discipline C.
type Shared[T any, C any, PC counterOf[C]] struct {
	inner  *Block[T, C]
	elems  alloc.Allocator[T]
	blocks alloc.Allocator[Block[T, C]]
}

// Rc is the single-threaded handle.
type Rc[T any] = Shared[T, Plain, *Plain]

// Arc is the handle whose count is atomically updated, for handles
// cloned and dropped across concurrent execution contexts.
type Arc[T any] = Shared[T, Atomic, *Atomic]

// New wraps an owned pointer in an Rc with count 1.
func New[T any](p *T) Rc[T] {
	var r Rc[T]
	r.Reset(p)
	return r
}

// NewAtomic wraps an owned pointer in an Arc with count 1.
func NewAtomic[T any](p *T) Arc[T] {
	var r Arc[T]
	r.Reset(p)
	return r
}

// NewIn is New with injected allocators for the pointee and the control
// block. Nil allocators fall back to alloc.Heap.
func NewIn[T any](p *T, elems alloc.Allocator[T], blocks alloc.Allocator[Block[T, Plain]]) Rc[T] {
	r := Rc[T]{elems: elems, blocks: blocks}
	r.Reset(p)
	return r
}

// NewAtomicIn is NewAtomic with injected allocators.
func NewAtomicIn[T any](p *T, elems alloc.Allocator[T], blocks alloc.Allocator[Block[T, Atomic]]) Arc[T] {
	r := Arc[T]{elems: elems, blocks: blocks}
	r.Reset(p)
	return r
}

// Make allocates a T holding v through the default allocator and wraps
// it with count 1.
func Make[T any](v T) Rc[T] {
	return MakeIn(v, nil, nil)
}

// MakeAtomic is Make for the atomic discipline.
func MakeAtomic[T any](v T) Arc[T] {
	return MakeAtomicIn(v, nil, nil)
}

// MakeIn allocates the pointee through elems and wraps it.
func MakeIn[T any](v T, elems alloc.Allocator[T], blocks alloc.Allocator[Block[T, Plain]]) Rc[T] {
	if elems == nil {
		elems = alloc.Heap[T]{}
	}
	p := elems.Construct()
	*p = v
	return NewIn(p, elems, blocks)
}

// MakeAtomicIn is MakeIn for the atomic discipline.
func MakeAtomicIn[T any](v T, elems alloc.Allocator[T], blocks alloc.Allocator[Block[T, Atomic]]) Arc[T] {
	if elems == nil {
		elems = alloc.Heap[T]{}
	}
	p := elems.Construct()
	*p = v
	return NewAtomicIn(p, elems, blocks)
}

func (r *Shared[T, C, PC]) allocs() (alloc.Allocator[T], alloc.Allocator[Block[T, C]]) {
	ea, ba := r.elems, r.blocks
	if ea == nil {
		ea = alloc.Heap[T]{}
	}
	if ba == nil {
		ba = alloc.Heap[Block[T, C]]{}
	}
	return ea, ba
}

// Clone attaches a new handle to the same control block and increments
// the count. Cloning a null handle yields a null handle.
func (r Shared[T, C, PC]) Clone() Shared[T, C, PC] {
	if r.inner != nil {
		PC(&r.inner.count).Add(1)
	}
	return r
}

// Adopt is copy-assignment: it releases the current attachment, then
// attaches to src's control block and increments the count. Adopting
// the own block (including self-adopt) is a no-op.
func (r *Shared[T, C, PC]) Adopt(src *Shared[T, C, PC]) {
	if r == src || r.inner == src.inner {
		return
	}
	r.Drop()
	r.inner = src.inner
	r.elems, r.blocks = src.elems, src.blocks
	if r.inner != nil {
		PC(&r.inner.count).Add(1)
	}
}

// Move transfers the attachment without touching the count. The source
// becomes the null handle, so dropping it later is a no-op rather than
// a double free.
func (r *Shared[T, C, PC]) Move() Shared[T, C, PC] {
	out := *r
	r.inner = nil
	return out
}

// MoveFrom releases r's current attachment and takes over src's. src
// becomes the null handle.
func (r *Shared[T, C, PC]) MoveFrom(src *Shared[T, C, PC]) {
	if r == src {
		return
	}
	if r.inner == src.inner {
		// Same block: taking over src's reference means giving up one.
		src.Drop()
		return
	}
	r.Drop()
	r.inner, r.elems, r.blocks = src.inner, src.elems, src.blocks
	src.inner = nil
}

// Drop gives up this handle's reference. When the post-decrement count
// reaches 0 the pointee and then the control block are destroyed
// through the configured allocators. The handle is nulled afterward, so
// repeated Drops are safe.
func (r *Shared[T, C, PC]) Drop() {
	if r.inner == nil {
		return
	}
	n := PC(&r.inner.count).Add(-1)
	contract.Check(n >= 0, contract.CodeUnderflow, "rc.Drop", "reference count underflow")
	if n == 0 {
		ea, ba := r.allocs()
		ea.Destroy(r.inner.value)
		r.inner.value = nil
		ba.Destroy(r.inner)
	}
	r.inner = nil
}

// Reset releases the current attachment and attaches to p through a
// fresh control block with count 1.
func (r *Shared[T, C, PC]) Reset(p *T) {
	r.Drop()
	_, ba := r.allocs()
	b := ba.Construct()
	b.value = p
	PC(&b.count).Add(1)
	r.inner = b
}

// Count returns the live reference count, or 0 for a null handle. It is
// a diagnostic, not a synchronization primitive: under the atomic
// discipline the value may be stale by the time it is read.
func (r *Shared[T, C, PC]) Count() uint64 {
	if r.inner == nil {
		return 0
	}
	n, err := safecast.Conv[uint64](PC(&r.inner.count).Load())
	if err != nil {
		panic(fmt.Errorf("reference count out of range: %w", err))
	}
	return n
}

// HasValue reports whether the handle is attached to a live value.
func (r *Shared[T, C, PC]) HasValue() bool {
	return r.inner != nil && r.inner.value != nil
}

// IsNull is the null-sentinel comparison: presence only, never pointee
// identity.
func (r *Shared[T, C, PC]) IsNull() bool {
	return !r.HasValue()
}

// Get returns the pointee. The handle must have a value.
func (r *Shared[T, C, PC]) Get() *T {
	contract.Check(r.HasValue(), contract.CodeNilDeref, "rc.Get", "nil handle dereference")
	return r.inner.value
}

// TryGet returns the pointee and whether the handle has one.
func (r *Shared[T, C, PC]) TryGet() (*T, bool) {
	if !r.HasValue() {
		return nil, false
	}
	return r.inner.value, true
}
