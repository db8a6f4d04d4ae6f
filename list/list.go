/*
Package list implements a sentinel-headed circular doubly linked list
and in-place algorithms over it.
*/
package list

import "iter"

// List is a circular doubly linked list anchored on a sentinel element.
//
// The zero value is a ready to use empty list.
type List[V any] struct {
	root Element[V]
	len  int
}

// New creates an empty list.
func New[V any]() *List[V] {
	return new(List[V]).Init()
}

// Init initializes or clears list l.
func (l *List[V]) Init() *List[V] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
	return l
}

func (l *List[V]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// Front returns the first element of the list or nil.
func (l *List[V]) Front() *Element[V] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element of the list or nil.
func (l *List[V]) Back() *Element[V] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// PushBack inserts a value at the back of list l and returns the new element.
func (l *List[V]) PushBack(value V) *Element[V] {
	e := NewElement(value)
	l.PushBackElem(e)
	return e
}

// PushBackElem inserts a detached element at the back of list l.
func (l *List[V]) PushBackElem(e *Element[V]) {
	l.lazyInit()
	l.insert(e, l.root.prev)
}

// PushFront inserts a value at the front of list l and returns the new element.
func (l *List[V]) PushFront(value V) *Element[V] {
	e := NewElement(value)
	l.PushFrontElem(e)
	return e
}

// PushFrontElem inserts a detached element at the front of list l.
func (l *List[V]) PushFrontElem(e *Element[V]) {
	l.lazyInit()
	l.insert(e, &l.root)
}

func (l *List[V]) insert(e, at *Element[V]) {
	if e.list != nil {
		panic("list: invalid element")
	}
	e.list = l
	at.link(e)
	l.len++
}

// Remove an element from the list and return its value.
// It is a no-op if e does not belong to l.
func (l *List[V]) Remove(e *Element[V]) V {
	if e.list == l {
		l.remove(e)
	}
	return e.Value
}

func (l *List[V]) remove(e *Element[V]) {
	e.unlink()
	l.len--
}

// PopFront removes the front element and hands it to the caller.
func (l *List[V]) PopFront() (*Element[V], bool) {
	if l.len == 0 {
		return nil, false
	}
	e := l.root.next
	l.remove(e)
	return e, true
}

// PopBack removes the back element and hands it to the caller.
func (l *List[V]) PopBack() (*Element[V], bool) {
	if l.len == 0 {
		return nil, false
	}
	e := l.root.prev
	l.remove(e)
	return e, true
}

// Clear unlinks every element and releases its value.
func (l *List[V]) Clear() {
	l.lazyInit()
	for e := l.root.next; e != &l.root; {
		next := e.next
		e.next = nil
		e.prev = nil
		e.list = nil
		release(e)
		e = next
	}
	l.Init()
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(e *Element[V]) bool) {
	if l.len == 0 {
		return
	}

	for e := l.root.next; e != &l.root; e = e.next {
		if !f(e) {
			return
		}
	}
}

// All returns an iterator over the elements of l in forward order.
func (l *List[V]) All() iter.Seq[*Element[V]] {
	return l.Do
}

// Values returns an iterator over the values of l in forward order.
func (l *List[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		l.Do(func(e *Element[V]) bool {
			return yield(e.Value)
		})
	}
}

// MoveAfter moves an element to its new position after mark.
// If mark == l.Back(), e becomes the new back element.
func (l *List[V]) MoveAfter(e, mark *Element[V]) {
	if e.list != l || mark.list != l {
		return
	}
	l.move(e, mark)
}

// MoveBefore moves an element to its new position before mark.
// if mark == l.Front(), e becomes the new front element.
func (l *List[V]) MoveBefore(e, mark *Element[V]) {
	if e.list != l || mark.list != l {
		return
	}
	l.move(e, mark.prev)
}

// MoveToFront moves the element to the front of list l.
func (l *List[V]) MoveToFront(e *Element[V]) {
	if e.list != l {
		return
	}
	l.move(e, &l.root)
}

// MoveToBack moves the element to the back of list l.
func (l *List[V]) MoveToBack(e *Element[V]) {
	if e.list != l {
		return
	}
	l.move(e, l.root.prev)
}

// Move moves element e forward or backwards by at most delta positions
// or until the element becomes the front or back element in the list.
func (l *List[V]) Move(e *Element[V], delta int) {
	if e.list != l {
		panic("list: invalid element")
	}

	mark := e

	switch {
	case delta == 0:
		return

	case delta > 0:
		for i := 0; i < delta && mark != l.root.prev; i++ {
			mark = mark.next
		}

		l.move(e, mark)

	case delta < 0:
		for i := 0; i > delta && mark != l.root.next; i-- {
			mark = mark.prev
		}

		l.move(e, mark.prev)
	}
}

// Swap exchanges the positions of elements a and b.
func (l *List[V]) Swap(a, b *Element[V]) {
	if a.list != l || b.list != l {
		panic("list: invalid element")
	}
	a.swap(b)
}

// move splices e out of its position and links it after at.
func (l *List[V]) move(e, at *Element[V]) {
	if e == at {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	at.link(e)
}

func release[V any](e *Element[V]) {
	var zero V
	e.Value = zero
}
