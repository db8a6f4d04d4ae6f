package list

// SwapPairs swaps every two adjacent elements of l.
// With an odd length the back element stays in place.
func SwapPairs[V any](l *List[V]) {
	if l.Len() < 2 {
		return
	}

	for a := l.root.next; a != &l.root && a.next != &l.root; a = a.next {
		a.swap(a.next)
	}
}

// Reverse reverses the order of elements in l.
func Reverse[V any](l *List[V]) {
	if l.Len() < 2 {
		return
	}
	reverseSpan(l.root.next, l.root.prev)
}

// ReverseK reverses the elements of l k at a time. A trailing group
// shorter than k keeps its order. It panics if k < 1.
func ReverseK[V any](l *List[V], k int) {
	if k < 1 {
		panic("list: invalid group size")
	}

	if k == 1 || l.Len() < k {
		return
	}

	for start := l.root.next; start != &l.root; {
		end := start
		n := 1
		for n < k && end.next != &l.root {
			end = end.next
			n++
		}

		if n < k {
			return
		}

		next := end.next
		reverseSpan(start, end)
		start = next
	}
}

// reverseSpan reverses the closed span [start, end] by swapping its outer
// elements and shrinking the span from both ends.
func reverseSpan[V any](start, end *Element[V]) {
	for start != end && start != end.next {
		start.swap(end)
		start, end = end.next, start.prev
	}
}
