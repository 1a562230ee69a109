// Package tuple implements flat product types whose elements live in
// owned-value slots. Release drops the elements in reverse order.
package tuple

import "boxkit/box"

// Pair owns two values.
type Pair[A, B any] struct {
	first  box.Value[A]
	second box.Value[B]
}

// NewPair returns a pair owning a and b.
func NewPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{first: box.NewValue(a), second: box.NewValue(b)}
}

// First borrows the first element.
func (p *Pair[A, B]) First() *A {
	return p.first.Borrow()
}

// Second borrows the second element.
func (p *Pair[A, B]) Second() *B {
	return p.second.Borrow()
}

// SetFirst replaces the first element, releasing the previous one.
func (p *Pair[A, B]) SetFirst(a A) {
	p.first.Set(a)
}

// SetSecond replaces the second element, releasing the previous one.
func (p *Pair[A, B]) SetSecond(b B) {
	p.second.Set(b)
}

// Unpack returns copies of both elements.
func (p *Pair[A, B]) Unpack() (A, B) {
	return p.first.Get(), p.second.Get()
}

// Release drops both elements, second first.
func (p *Pair[A, B]) Release() {
	p.second.Release()
	p.first.Release()
}

// Triple owns three values.
type Triple[A, B, C any] struct {
	first  box.Value[A]
	second box.Value[B]
	third  box.Value[C]
}

// NewTriple returns a triple owning a, b and c.
func NewTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{
		first:  box.NewValue(a),
		second: box.NewValue(b),
		third:  box.NewValue(c),
	}
}

// First borrows the first element.
func (t *Triple[A, B, C]) First() *A {
	return t.first.Borrow()
}

// Second borrows the second element.
func (t *Triple[A, B, C]) Second() *B {
	return t.second.Borrow()
}

// Third borrows the third element.
func (t *Triple[A, B, C]) Third() *C {
	return t.third.Borrow()
}

// Unpack returns copies of all three elements.
func (t *Triple[A, B, C]) Unpack() (A, B, C) {
	return t.first.Get(), t.second.Get(), t.third.Get()
}

// Release drops the elements in reverse order.
func (t *Triple[A, B, C]) Release() {
	t.third.Release()
	t.second.Release()
	t.first.Release()
}
