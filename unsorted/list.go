// Package unsorted implements a bounded, unsorted singly linked list with a
// cursor based iteration protocol and a deduplicating Union.
package unsorted

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/CarterSmith318/CarterSmithLab2DataStructures/log"
	"github.com/CarterSmith318/CarterSmithLab2DataStructures/utils"
)

var (
	ErrCapacityExceeded = errors.New("list is at maximum capacity")
)

// List is an unsorted singly linked list with a fixed capacity.
// It is not safe for concurrent use.
type List[T constraints.Ordered] struct {
	head *Element[T]

	// a nil position means the next GetNextItem starts at head
	position  *Element[T]
	exhausted bool

	count    int
	capacity int
	logger   log.Logger
}

func New[T constraints.Ordered](options ...Option) *List[T] {
	lc := listConfig{
		capacity: DefaultCapacity,
	}

	for _, o := range options {
		o(&lc)
	}

	return &List[T]{
		capacity: lc.capacity,
		logger:   lc.logger,
	}
}

func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Size counts the elements by walking the chain.
func (l *List[T]) Size() int {
	n := 0
	for curr := l.head; curr != nil; curr = curr.next {
		n++
	}
	return n
}

// Len returns the maintained element counter.
func (l *List[T]) Len() int {
	return l.count
}

// Capacity falls back to DefaultCapacity for a zero value List.
func (l *List[T]) Capacity() int {
	if l.capacity < 1 {
		return DefaultCapacity
	}
	return l.capacity
}

func (l *List[T]) IsFull() bool {
	return l.count >= l.Capacity()
}

// InsertItem prepends item. Duplicates are not detected.
func (l *List[T]) InsertItem(item T) error {
	if l.IsFull() {
		l.log().Warn("list is at maximum capacity, item dropped",
			"capacity", l.Capacity(),
			"size", l.count,
		)
		return errors.Wrapf(ErrCapacityExceeded, "capacity %d", l.Capacity())
	}

	l.head = &Element[T]{value: item, next: l.head}
	l.count++
	return nil
}

// DeleteItem removes the first element equal to item and reports whether
// anything was removed.
func (l *List[T]) DeleteItem(item T) bool {
	var pred *Element[T]
	curr := l.head
	for curr != nil && curr.value != item {
		pred = curr
		curr = curr.next
	}

	if curr == nil {
		return false
	}

	if pred == nil {
		l.head = curr.next
	} else {
		pred.next = curr.next
	}

	// keep the cursor inside the chain; the next GetNextItem yields the successor
	if l.position == curr {
		l.position = pred
	}

	curr.next = nil
	l.count--
	return true
}

func (l *List[T]) MakeEmpty() {
	for l.head != nil {
		curr := l.head
		l.head = curr.next
		curr.next = nil
	}
	l.count = 0
	l.ResetList()
}

func (l *List[T]) ResetList() {
	l.position = nil
	l.exhausted = false
}

// GetNextItem advances the cursor and returns the item under it.
// The second value is false once the cursor has moved past the last element
// and stays false until ResetList is called.
func (l *List[T]) GetNextItem() (T, bool) {
	if l.exhausted {
		return utils.GetZero[T](), false
	}

	if l.position == nil {
		l.position = l.head
	} else {
		l.position = l.position.next
	}

	if l.position == nil {
		l.exhausted = true
		return utils.GetZero[T](), false
	}

	return l.position.value, true
}

// Search returns the first element equal to item or nil.
func (l *List[T]) Search(item T) *Element[T] {
	curr := l.head
	for curr != nil && curr.value != item {
		curr = curr.next
	}
	return curr
}

func (l *List[T]) Has(item T) bool {
	return l.Search(item) != nil
}

// Items returns a snapshot of the items in iteration order.
func (l *List[T]) Items() []T {
	items := make([]T, 0, l.count)
	for curr := l.head; curr != nil; curr = curr.next {
		items = append(items, curr.value)
	}
	return items
}

func (l *List[T]) log() log.Logger {
	if l.logger != nil {
		return l.logger
	}
	return log.Global()
}
