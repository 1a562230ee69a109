package rc

import "sync/atomic"

// Counter is the reference-count discipline a handle is instantiated
// over. Add must apply the delta and return the post-update value as
// one operation: the "did I become the last owner" decision is made on
// that return value, and a separate decrement-then-load would race
// under the atomic discipline.
type Counter interface {
	Add(delta int64) int64
	Load() int64
}

// Plain is the single-threaded counter. All handles sharing one control
// block must be cloned and dropped from the same execution context (or
// be serialized by the caller).
type Plain int64

// Add applies delta and returns the post-update value.
func (c *Plain) Add(delta int64) int64 {
	*c += Plain(delta)
	return int64(*c)
}

// Load returns the current count.
func (c *Plain) Load() int64 {
	return int64(*c)
}

// Atomic is the concurrent counter backing Arc. Clone and Drop may run
// concurrently on handles aliasing one control block.
type Atomic struct {
	n atomic.Int64
}

// Add applies delta atomically and returns the post-update value.
func (c *Atomic) Add(delta int64) int64 {
	return c.n.Add(delta)
}

// Load returns the current count.
func (c *Atomic) Load() int64 {
	return c.n.Load()
}

// counterOf pins the pointer-to-counter relationship so Shared can call
// counter methods on the block's embedded counter storage.
type counterOf[C any] interface {
	*C
	Counter
}
