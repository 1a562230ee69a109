package box

// Ptr is the raw-pointer slot. It stores an address and never owns the
// pointee; copying the slot copies the address. The zero slot holds nil,
// which is a legal value here, not a contract violation.
type Ptr[T any] struct {
	p *T
}

// NewPtr returns a slot holding p as-is.
func NewPtr[T any](p *T) Ptr[T] {
	return Ptr[T]{p: p}
}

// Borrow returns the stored address by value.
func (b *Ptr[T]) Borrow() *T {
	return b.p
}

// Get returns the stored address.
func (b *Ptr[T]) Get() *T {
	return b.p
}

// Set stores p as-is; the previous address is not released.
func (b *Ptr[T]) Set(p *T) {
	b.p = p
}

// IsNull reports whether the slot holds the null address.
func (b *Ptr[T]) IsNull() bool {
	return b.p == nil
}

// Release is a no-op: a Ptr slot never owns its referent.
func (b *Ptr[T]) Release() {}
