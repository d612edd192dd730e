package unsorted

import "golang.org/x/exp/constraints"

type RelationType uint8

const (
	Less RelationType = iota
	Greater
	Equal
)

func (r RelationType) String() string {
	switch r {
	case Less:
		return "LESS"
	case Greater:
		return "GREATER"
	case Equal:
		return "EQUAL"
	default:
		return "UNKNOWN"
	}
}

// Compare falls back to Equal when neither a < b nor a > b holds,
// which is also the case for NaN operands.
func Compare[T constraints.Ordered](a, b T) RelationType {
	if a < b {
		return Less
	} else if a > b {
		return Greater
	}
	return Equal
}

func (l *List[T]) ComparedTo(item1, item2 T) RelationType {
	return Compare(item1, item2)
}
