package box

import "boxkit/internal/contract"

// Ref is the borrowed-reference slot. It stores the address of a bound
// object but exposes the referent: Deref yields the target directly,
// mutations of the target are observed through the slot. The zero slot
// is unbound and must not be dereferenced; in checked builds that is a
// diagnosed contract violation.
type Ref[T any] struct {
	target *T
}

// NewRef returns a slot bound to target.
func NewRef[T any](target *T) Ref[T] {
	return Ref[T]{target: target}
}

// Bind rebinds the slot to target. Binding nil returns the slot to the
// unbound state.
func (b *Ref[T]) Bind(target *T) {
	b.target = target
}

// IsBound reports whether the slot has a target.
func (b *Ref[T]) IsBound() bool {
	return b.target != nil
}

// Borrow returns the bound target. The slot must be bound.
func (b *Ref[T]) Borrow() *T {
	contract.Check(b.target != nil, contract.CodeUnbound, "box.Ref.Borrow", "unbound reference slot")
	return b.target
}

// Deref returns the referent itself. The slot must be bound.
func (b *Ref[T]) Deref() T {
	contract.Check(b.target != nil, contract.CodeUnbound, "box.Ref.Deref", "unbound reference slot")
	return *b.target
}

// Release is a no-op: a Ref slot never owns its referent.
func (b *Ref[T]) Release() {}
