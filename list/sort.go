package list

import "cmp"

// Sort sorts l in ascending order. The sort is stable.
func Sort[V cmp.Ordered](l *List[V]) {
	SortFunc(l, cmp.Compare[V])
}

// SortFunc sorts l in ascending order as determined by the cmp function.
// The sort is stable.
//
// It is a top-down merge sort with O(log n) recursion depth.
func SortFunc[V any](l *List[V], cmp func(a, b V) int) {
	if l.Len() < 2 {
		return
	}
	l.restore(mergeSort(l.linearize(), cmp))
}

func mergeSort[V any](first *Element[V], cmp func(a, b V) int) *Element[V] {
	if first == nil || first.next == nil {
		return first
	}

	second := splitMiddle(first)

	return merge(mergeSort(first, cmp), mergeSort(second, cmp), cmp)
}

// SortIterative sorts l in ascending order without recursion. The sort is stable.
func SortIterative[V cmp.Ordered](l *List[V]) {
	SortIterativeFunc(l, cmp.Compare[V])
}

// SortIterativeFunc is the bottom-up variant of SortFunc.
// Runs of doubling width are merged pass by pass.
func SortIterativeFunc[V any](l *List[V], cmp func(a, b V) int) {
	n := l.Len()
	if n < 2 {
		return
	}

	first := l.linearize()

	for width := 1; width < n; width *= 2 {
		var head *Element[V]
		tail := &head

		for left := first; left != nil; {
			right := cut(left, width)
			next := cut(right, width)

			*tail = merge(left, right, cmp)
			for *tail != nil {
				tail = &(*tail).next
			}

			left = next
		}

		first = head
	}

	l.restore(first)
}

// MergeAll merges sorted lists into lists[0] in ascending order
// and returns the length of the merged list.
func MergeAll[V cmp.Ordered](lists ...*List[V]) int {
	return MergeAllFunc(lists, cmp.Compare[V])
}

// MergeAllFunc merges sorted lists into lists[0] as determined by the cmp
// function and returns the length of the merged list. The other lists
// are left empty.
//
// Lists are paired by position: list i absorbs list i+interval while the
// interval doubles every pass.
func MergeAllFunc[V any](lists []*List[V], cmp func(a, b V) int) int {
	if len(lists) == 0 {
		return 0
	}

	chains := make([]*Element[V], len(lists))
	for i, l := range lists {
		chains[i] = l.linearize()
	}

	for interval := 1; interval < len(chains); interval *= 2 {
		for i := 0; i+interval < len(chains); i += interval * 2 {
			chains[i] = merge(chains[i], chains[i+interval], cmp)
			chains[i+interval] = nil
		}
	}

	lists[0].restore(chains[0])

	return lists[0].Len()
}
