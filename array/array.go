// Package array implements a fixed-size array of owned elements: a thin
// wrapper over value slots with checked indexing. The length is fixed at
// construction and never changes.
package array

import (
	"boxkit/box"
	"boxkit/internal/contract"
)

// Array owns size elements of type T.
type Array[T any] struct {
	elems []T
}

// New returns an array of size zeroed elements.
func New[T any](size int) Array[T] {
	contract.Check(size >= 0, contract.CodeOutOfBounds, "array.New", "negative size")
	return Array[T]{elems: make([]T, size)}
}

// Of returns an array owning copies of elems.
func Of[T any](elems ...T) Array[T] {
	return Array[T]{elems: append([]T(nil), elems...)}
}

// Len returns the fixed element count.
func (a Array[T]) Len() int {
	return len(a.elems)
}

// At returns the storage of element i. The index must be in range.
func (a Array[T]) At(i int) *T {
	contract.Check(i >= 0 && i < len(a.elems), contract.CodeOutOfBounds, "array.At", "index out of bounds")
	return &a.elems[i]
}

// TryAt returns the storage of element i and whether i was in range.
func (a Array[T]) TryAt(i int) (*T, bool) {
	if i < 0 || i >= len(a.elems) {
		return nil, false
	}
	return &a.elems[i], true
}

// Set releases the previous element i, then installs v.
func (a Array[T]) Set(i int, v T) {
	contract.Check(i >= 0 && i < len(a.elems), contract.CodeOutOfBounds, "array.Set", "index out of bounds")
	box.Release(&a.elems[i])
	a.elems[i] = v
}

// Slice borrows the underlying storage. The array keeps ownership.
func (a Array[T]) Slice() []T {
	return a.elems
}

// Clone returns an independent copy of the storage. Element aliasing
// follows T: value elements copy, pointer elements alias.
func (a Array[T]) Clone() Array[T] {
	return Array[T]{elems: append([]T(nil), a.elems...)}
}

// Release drops every element in reverse index order, leaving zeroed
// storage of the same length.
func (a Array[T]) Release() {
	for i := len(a.elems) - 1; i >= 0; i-- {
		box.Release(&a.elems[i])
	}
}
