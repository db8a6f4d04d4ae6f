package list

// linearize detaches the sentinel from the ring and returns the first
// element of a nil terminated chain linked through next. The prev links
// of the chain are stale until restore. l is left empty.
func (l *List[V]) linearize() *Element[V] {
	l.lazyInit()
	if l.len == 0 {
		return nil
	}

	first := l.root.next
	l.root.prev.next = nil
	first.prev = nil
	l.Init()

	return first
}

// restore threads a nil terminated chain back into the empty list l,
// rebuilding prev links and claiming every element for l.
func (l *List[V]) restore(first *Element[V]) {
	prev := &l.root
	n := 0

	for e := first; e != nil; e = e.next {
		prev.next = e
		e.prev = prev
		e.list = l
		prev = e
		n++
	}

	prev.next = &l.root
	l.root.prev = prev
	l.len = n
}

// merge merges two sorted chains. On ties the element from a is taken
// first, which keeps the merge stable.
func merge[V any](a, b *Element[V], cmp func(a, b V) int) *Element[V] {
	var head *Element[V]
	indirect := &head

	for a != nil && b != nil {
		if cmp(b.Value, a.Value) < 0 {
			*indirect = b
			b = b.next
		} else {
			*indirect = a
			a = a.next
		}
		indirect = &(*indirect).next
	}

	if a != nil {
		*indirect = a
	} else {
		*indirect = b
	}

	return head
}

// splitMiddle cuts the chain before its middle element and returns the
// head of the second half. The middle is the element DeleteMiddle picks,
// so for even lengths the second half starts at the later of the two
// middle elements. A chain of one element is not split.
func splitMiddle[V any](first *Element[V]) *Element[V] {
	var prev *Element[V]
	slow, fast := first, first
	for fast != nil && fast.next != nil {
		prev = slow
		slow = slow.next
		fast = fast.next.next
	}

	if prev == nil {
		return nil
	}
	prev.next = nil

	return slow
}

// cut detaches the chain after n elements and returns the rest.
func cut[V any](first *Element[V], n int) *Element[V] {
	for ; first != nil && n > 1; n-- {
		first = first.next
	}
	if first == nil {
		return nil
	}

	rest := first.next
	first.next = nil

	return rest
}
