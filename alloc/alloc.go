// Package alloc defines the allocator capability the reference-counted
// handles consume. An Allocator is parameterized per element type; the
// control block of an rc handle goes through the same capability family
// applied to the block type.
package alloc

import "boxkit/box"

// Allocator is the per-element-type allocation capability.
type Allocator[T any] interface {
	// Construct allocates and returns a zeroed T.
	Construct() *T
	// Destroy releases the object at p. Destroy(nil) is a no-op.
	Destroy(p *T)
}

// Heap is the default allocator: plain heap allocation, with Destroy
// running the Dropper capability when T carries it and then zeroing the
// object so it holds no references while it awaits collection.
type Heap[T any] struct{}

// Construct allocates a zeroed T.
func (Heap[T]) Construct() *T {
	return new(T)
}

// Destroy releases the object at p.
func (Heap[T]) Destroy(p *T) {
	if p == nil {
		return
	}
	box.Release(p)
}
