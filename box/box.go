// Package box implements the ownership slots the container packages are
// built on. A slot picks one of three storage strategies for a type T at
// compile time, by picking the concrete slot type:
//
//   - Value[T] owns one T by value and releases it on Release.
//   - Ptr[T] stores a raw *T and never owns the pointee.
//   - Ref[T] stores the address of a bound object but exposes the
//     referent, never the address.
//
// The variant is fixed by the slot's static type and never changes at
// runtime; the shared Slot contract is the only runtime polymorphism.
package box

// Dropper is the destructibility capability. A type that owns resources
// implements Drop to release them; Release on a Value slot (and Destroy
// on the allocators) invoke it. Types without Drop release as a no-op.
type Dropper interface {
	Drop()
}

// Slot is the contract shared by the three storage variants.
type Slot[T any] interface {
	// Borrow exposes the held content. Value slots return the owned
	// storage, Ref slots the bound target, Ptr slots the stored address
	// itself (pointer borrowing is pass-by-value of the address).
	Borrow() *T
	// Release ends the slot's ownership of its content. Only Value
	// slots do work here; Ptr and Ref slots never owned the referent.
	Release()
}

// Conformance is pinned at compile time.
var (
	_ Slot[int] = (*Value[int])(nil)
	_ Slot[int] = (*Ptr[int])(nil)
	_ Slot[int] = (*Ref[int])(nil)
)

// Release drops the content at p in place: runs Drop if T carries the
// capability, then zeroes the storage so later releases are no-ops.
func Release[T any](p *T) {
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
	} else if d, ok := any(*p).(Dropper); ok {
		d.Drop()
	}
	var zero T
	*p = zero
}
