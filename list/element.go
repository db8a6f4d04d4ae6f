package list

// Element is a list element.
type Element[V any] struct {
	next, prev *Element[V]
	list       *List[V]
	Value      V
}

// NewElement creates a detached list element.
func NewElement[V any](v V) *Element[V] {
	return &Element[V]{
		Value: v,
	}
}

// Next returns the next element or nil if e is the last element in its list.
func (e *Element[V]) Next() *Element[V] {
	if p := e.next; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// Prev returns the previous element or nil if e is the first element in its list.
func (e *Element[V]) Prev() *Element[V] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// List returns the list e belongs to or nil.
func (e *Element[V]) List() *List[V] {
	return e.list
}

// link inserts an element after this element.
func (e *Element[V]) link(s *Element[V]) {
	n := e.next
	e.next = s
	s.prev = e
	n.prev = s
	s.next = n
}

// unlink unlinks this element.
func (e *Element[V]) unlink() {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
	e.list = nil
}

// swap exchanges the positions of e and s in their ring.
// e and s may be adjacent in either order or the same element.
func (e *Element[V]) swap(s *Element[V]) {
	tmp := e.next
	e.next = s.next
	s.next.prev = e
	s.next = tmp
	s.next.prev = s

	tmp = s.prev
	s.prev = e.prev
	e.prev.next = s
	e.prev = tmp
	e.prev.next = e
}
