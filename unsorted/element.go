package unsorted

import "golang.org/x/exp/constraints"

// Element is a single link of the list chain.
type Element[T constraints.Ordered] struct {
	value T
	next  *Element[T]
}

func (e *Element[T]) Value() T {
	return e.value
}

func (e *Element[T]) Next() *Element[T] {
	return e.next
}
