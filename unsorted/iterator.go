package unsorted

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/CarterSmith318/CarterSmithLab2DataStructures/utils"
)

// Iterator is a cursor independent of the list's own ResetList/GetNextItem
// cursor. Several iterators may walk the same list at once as long as the
// list is not modified meanwhile.
type Iterator[T constraints.Ordered] struct {
	list    *List[T]
	curr    *Element[T]
	started bool
}

func (l *List[T]) Begin() *Iterator[T] {
	return &Iterator[T]{list: l}
}

func (it *Iterator[T]) Next() bool {
	if !it.started {
		it.started = true
		it.curr = it.list.head
	} else if it.curr != nil {
		it.curr = it.curr.next
	}
	return it.curr != nil
}

func (it *Iterator[T]) Item() T {
	if it.curr == nil {
		return utils.GetZero[T]()
	}
	return it.curr.value
}

func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for curr := l.head; curr != nil; curr = curr.next {
			if !yield(curr.value) {
				return
			}
		}
	}
}
