package unsorted_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CarterSmith318/CarterSmithLab2DataStructures/unsorted"
)

func printList(title string, l *unsorted.List[int]) {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString(":")
	l.ResetList()
	for item, ok := l.GetNextItem(); ok; item, ok = l.GetNextItem() {
		fmt.Fprintf(&b, " %d", item)
	}
	fmt.Println(b.String())
}

func ExampleList_Union() {
	list1 := unsorted.New[int]()
	_ = list1.InsertItem(1)
	_ = list1.InsertItem(2)
	_ = list1.InsertItem(3)

	list2 := unsorted.New[int]()
	_ = list2.InsertItem(3)
	_ = list2.InsertItem(4)
	_ = list2.InsertItem(5)

	result := unsorted.New[int]()
	_ = result.Union(list1, list2)
	printList("union", result)

	empty := unsorted.New[int]()
	_ = empty.Union(unsorted.New[int](), unsorted.New[int]())
	printList("union of empty lists", empty)

	withDuplicates := unsorted.New[int]()
	for _, v := range []int{1, 2, 2, 3, 3} {
		_ = withDuplicates.InsertItem(v)
	}
	deduped := unsorted.New[int]()
	_ = deduped.Union(withDuplicates, withDuplicates)
	printList("union with duplicates", deduped)

	// Output:
	// union: 4 5 1 2 3
	// union of empty lists:
	// union with duplicates: 1 2 3
}

func ExampleList_InsertItem() {
	l := unsorted.New[int](unsorted.WithCapacity(5))
	for i := 1; i <= 5; i++ {
		_ = l.InsertItem(i)
	}

	err := l.InsertItem(6)
	fmt.Println(errors.Is(err, unsorted.ErrCapacityExceeded), l.Size())

	// Output:
	// true 5
}
