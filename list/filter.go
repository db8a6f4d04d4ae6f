package list

import "cmp"

// DeleteMiddle removes the middle element of l and returns its value.
// For even lengths the later of the two middle elements is removed.
func DeleteMiddle[V any](l *List[V]) (value V, ok bool) {
	if l.Len() == 0 {
		return value, false
	}

	slow, fast := l.root.next, l.root.next
	for fast != &l.root && fast != l.root.prev {
		slow = slow.next
		fast = fast.next.next
	}

	value = slow.Value
	l.remove(slow)
	release(slow)

	return value, true
}

// DeleteDuplicates removes every run of two or more consecutive equal
// elements in its entirety and returns the number of removed elements.
func DeleteDuplicates[V comparable](l *List[V]) int {
	return DeleteDuplicatesFunc(l, func(a, b V) bool {
		return a == b
	})
}

// DeleteDuplicatesFunc is like DeleteDuplicates but uses eq to compare elements.
func DeleteDuplicatesFunc[V any](l *List[V], eq func(a, b V) bool) int {
	l.lazyInit()

	removed := 0
	inRun := false

	for e := l.root.next; e != &l.root; {
		next := e.next
		dup := next != &l.root && eq(e.Value, next.Value)

		if dup || inRun {
			l.remove(e)
			release(e)
			removed++
		}

		inRun = dup
		e = next
	}

	return removed
}

// Descend removes every element that has a strictly greater element
// anywhere to its right and returns the resulting length.
func Descend[V cmp.Ordered](l *List[V]) int {
	return DescendFunc(l, cmp.Compare[V])
}

// DescendFunc is like Descend but uses cmp to compare elements.
func DescendFunc[V any](l *List[V], cmp func(a, b V) int) int {
	return filterMonotonic(l, func(left, right V) bool {
		return cmp(left, right) < 0
	})
}

// Ascend removes every element that has a strictly smaller element
// anywhere to its right and returns the resulting length.
func Ascend[V cmp.Ordered](l *List[V]) int {
	return AscendFunc(l, cmp.Compare[V])
}

// AscendFunc is like Ascend but uses cmp to compare elements.
func AscendFunc[V any](l *List[V], cmp func(a, b V) int) int {
	return filterMonotonic(l, func(left, right V) bool {
		return cmp(left, right) > 0
	})
}

// filterMonotonic scans left to right and removes kept left neighbors of
// the current element for as long as drop reports true for them.
func filterMonotonic[V any](l *List[V], drop func(left, right V) bool) int {
	if l.Len() < 2 {
		return l.Len()
	}

	for e := l.root.next.next; e != &l.root; e = e.next {
		for p := e.prev; p != &l.root && drop(p.Value, e.Value); p = e.prev {
			l.remove(p)
			release(p)
		}
	}

	return l.Len()
}
