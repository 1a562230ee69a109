package alloc

import "sync/atomic"

// Stats accumulates construct/destroy totals. A single Stats may be
// shared by several Counting allocators (e.g. the element and block
// allocators of one handle) so a test can assert the whole allocation
// web returned to zero live objects.
type Stats struct {
	constructs atomic.Int64
	destroys   atomic.Int64
}

// Constructs returns the total number of Construct calls recorded.
func (s *Stats) Constructs() int64 {
	return s.constructs.Load()
}

// Destroys returns the total number of Destroy calls recorded.
func (s *Stats) Destroys() int64 {
	return s.destroys.Load()
}

// Live returns constructs minus destroys.
func (s *Stats) Live() int64 {
	return s.constructs.Load() - s.destroys.Load()
}

// Counting decorates an inner allocator with allocation accounting.
// Destroy(nil) is forwarded but not counted.
type Counting[T any] struct {
	Inner Allocator[T]
	Stats *Stats
}

// NewCounting returns a Counting allocator over the default Heap
// allocator, recording into stats.
func NewCounting[T any](stats *Stats) Counting[T] {
	return Counting[T]{Inner: Heap[T]{}, Stats: stats}
}

// Construct allocates through the inner allocator and records it.
func (c Counting[T]) Construct() *T {
	c.Stats.constructs.Add(1)
	return c.Inner.Construct()
}

// Destroy releases through the inner allocator and records it.
func (c Counting[T]) Destroy(p *T) {
	if p == nil {
		return
	}
	c.Inner.Destroy(p)
	c.Stats.destroys.Add(1)
}
