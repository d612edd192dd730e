package unsorted

import "github.com/pkg/errors"

// Union inserts every item of src1 and then src2 that the receiver does not
// already hold. The receiver should be empty for the result to be the set
// union. Both sources are drained through their ResetList/GetNextItem cursor,
// which is left exhausted. Each candidate costs a linear Search, so the
// whole operation is O(n*m).
//
// Candidates rejected because the receiver is full are dropped and counted;
// the returned error wraps ErrCapacityExceeded. A nil source is treated as
// empty.
func (l *List[T]) Union(src1, src2 *List[T]) error {
	dropped := 0
	for _, src := range [...]*List[T]{src1, src2} {
		if src == nil {
			continue
		}

		src.ResetList()
		for item, ok := src.GetNextItem(); ok; item, ok = src.GetNextItem() {
			if l.Search(item) != nil {
				continue
			}

			if err := l.InsertItem(item); err != nil {
				dropped++
			}
		}
	}

	if dropped > 0 {
		return errors.Wrapf(ErrCapacityExceeded, "union dropped %d items", dropped)
	}

	return nil
}
