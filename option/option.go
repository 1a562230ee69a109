// Package option implements a nullable container: an owned-value slot
// plus an explicit presence flag. Reading the value of an empty Option
// is a contract violation, diagnosed in checked builds.
//
// Copying an Option is plain struct assignment and follows the slot's
// aliasing rules: a copy is independent for value-shaped T and aliases
// the same target for pointer-shaped T. Moving out (Take, MoveFrom)
// always leaves the source observably empty.
package option

import (
	"boxkit/box"
	"boxkit/internal/contract"
)

// Option holds either nothing or one T.
type Option[T any] struct {
	slot box.Value[T]
	some bool
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{slot: box.NewValue(v), some: true}
}

// FromPtr folds the null-pointer sentinel into absence: nil yields
// None, otherwise the pointee is copied into a present Option.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsEmpty reports whether no value is held.
func (o Option[T]) IsEmpty() bool {
	return !o.some
}

// HasValue reports whether a value is held.
func (o Option[T]) HasValue() bool {
	return o.some
}

// Get returns the held value. The Option must be present.
func (o Option[T]) Get() T {
	contract.Check(o.some, contract.CodeNoValue, "option.Get", "no value present")
	return o.slot.Get()
}

// Borrow returns the held value's storage. The Option must be present.
func (o *Option[T]) Borrow() *T {
	contract.Check(o.some, contract.CodeNoValue, "option.Borrow", "no value present")
	return o.slot.Borrow()
}

// TryGet returns the held value and whether one was present.
func (o Option[T]) TryGet() (T, bool) {
	if !o.some {
		var zero T
		return zero, false
	}
	return o.slot.Get(), true
}

// GetOr returns the held value, or def when empty.
func (o Option[T]) GetOr(def T) T {
	if !o.some {
		return def
	}
	return o.slot.Get()
}

// Ptr returns the held value's storage, or nil when empty.
func (o *Option[T]) Ptr() *T {
	if !o.some {
		return nil
	}
	return o.slot.Borrow()
}

// Set installs v, releasing the previously held value first.
func (o *Option[T]) Set(v T) {
	if o.some {
		o.slot.Set(v)
		return
	}
	o.slot = box.NewValue(v)
	o.some = true
}

// Reset releases the held value (if any) and clears presence.
func (o *Option[T]) Reset() {
	if !o.some {
		return
	}
	o.slot.Release()
	o.some = false
}

// Take moves the value out. The source is empty afterward; the second
// result reports whether a value was actually present.
func (o *Option[T]) Take() (T, bool) {
	if !o.some {
		var zero T
		return zero, false
	}
	o.some = false
	return o.slot.Take(), true
}

// MoveFrom transfers src's content into o, releasing o's previous value
// first. src is empty afterward.
func (o *Option[T]) MoveFrom(src *Option[T]) {
	if o == src {
		return
	}
	o.Reset()
	if v, ok := src.Take(); ok {
		o.slot = box.NewValue(v)
		o.some = true
	}
}
