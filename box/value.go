package box

// Value is the owned-value slot: it stores one T by value and is the
// only variant that does work on Release. It has no empty state; a
// zero-valued slot holds a present, default T. Emptiness is the
// option package's concern, not this one's.
type Value[T any] struct {
	v T
}

// NewValue returns a slot owning v.
func NewValue[T any](v T) Value[T] {
	return Value[T]{v: v}
}

// Borrow returns the owned storage.
func (b *Value[T]) Borrow() *T {
	return &b.v
}

// Get returns a copy of the held value.
func (b *Value[T]) Get() T {
	return b.v
}

// Take moves the value out, leaving zeroed storage behind. The slot
// stays valid and "present"; it just holds the zero T afterward.
func (b *Value[T]) Take() T {
	v := b.v
	var zero T
	b.v = zero
	return v
}

// Set releases the previously owned content, then installs v.
func (b *Value[T]) Set(v T) {
	Release(&b.v)
	b.v = v
}

// Release drops the held value (via Dropper when implemented) and
// zeroes the storage.
func (b *Value[T]) Release() {
	Release(&b.v)
}
