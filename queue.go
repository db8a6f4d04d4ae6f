/*
Package lqueue implements a queue of strings on a sentinel-headed circular doubly linked list,
with in-place sorting, merging, reversal, filtering and shuffling.

A nil *Queue is an invalid handle: mutating methods report failure, queries return zero values.
*/
package lqueue

import (
	"iter"
	"strings"

	"github.com/mgnsk/lqueue/list"
	"go.uber.org/zap"
)

// Element is a queue element owning its string value.
type Element = list.Element[string]

// Queue is a queue of strings. It is not safe for concurrent use.
type Queue struct {
	list   list.List[string]
	log    *zap.Logger
	source list.Source
}

// New creates an empty queue.
func New(opts ...Option) *Queue {
	o := newDefaultQueueOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	q := &Queue{
		log:    o.logger,
		source: o.source,
	}
	q.list.Init()

	return q
}

func (q *Queue) logger() *zap.Logger {
	if q.log == nil {
		return zap.NewNop()
	}
	return q.log
}

// Free releases every element of the queue.
func (q *Queue) Free() {
	if q == nil {
		return
	}

	q.logger().Debug("freeing queue", zap.Int("len", q.list.Len()))
	q.list.Clear()
}

// InsertHead inserts a copy of s at the head of the queue.
func (q *Queue) InsertHead(s string) bool {
	if q == nil {
		return false
	}

	q.list.PushFront(strings.Clone(s))

	return true
}

// InsertTail inserts a copy of s at the tail of the queue.
func (q *Queue) InsertTail(s string) bool {
	if q == nil {
		return false
	}

	q.list.PushBack(strings.Clone(s))

	return true
}

// RemoveHead removes the head element and hands it to the caller.
// If sp is not empty, up to len(sp)-1 bytes of the value are copied to sp
// followed by a NUL byte. It returns nil if the queue is empty.
func (q *Queue) RemoveHead(sp []byte) *Element {
	if q == nil {
		return nil
	}

	e, ok := q.list.PopFront()
	if !ok {
		return nil
	}

	copyValue(sp, e.Value)

	return e
}

// RemoveTail removes the tail element and hands it to the caller.
// sp is filled like in RemoveHead.
func (q *Queue) RemoveTail(sp []byte) *Element {
	if q == nil {
		return nil
	}

	e, ok := q.list.PopBack()
	if !ok {
		return nil
	}

	copyValue(sp, e.Value)

	return e
}

func copyValue(sp []byte, value string) {
	if len(sp) == 0 {
		return
	}

	n := copy(sp[:len(sp)-1], value)
	sp[n] = 0
}

// Release releases an element, unlinking it first if it is still queued.
func Release(e *Element) {
	if e == nil {
		return
	}

	if l := e.List(); l != nil {
		l.Remove(e)
	}

	e.Value = ""
}

// Size returns the number of elements in the queue.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}
	return q.list.Len()
}

// Front returns the head element or nil.
func (q *Queue) Front() *Element {
	if q == nil {
		return nil
	}
	return q.list.Front()
}

// Back returns the tail element or nil.
func (q *Queue) Back() *Element {
	if q == nil {
		return nil
	}
	return q.list.Back()
}

// Values returns an iterator over the values from head to tail.
func (q *Queue) Values() iter.Seq[string] {
	if q == nil {
		return func(func(string) bool) {}
	}
	return q.list.Values()
}

// DeleteMid deletes the middle element. For an even size the later
// of the two middle elements is deleted.
func (q *Queue) DeleteMid() bool {
	if q == nil {
		return false
	}

	list.DeleteMiddle(&q.list)

	return true
}

// DeleteDup deletes every run of consecutive equal values in its entirety.
func (q *Queue) DeleteDup() bool {
	if q == nil {
		return false
	}

	n := list.DeleteDuplicates(&q.list)
	q.logger().Debug("deleted duplicates", zap.Int("removed", n), zap.Int("len", q.list.Len()))

	return true
}

// Swap swaps every two adjacent elements.
func (q *Queue) Swap() {
	if q == nil {
		return
	}
	list.SwapPairs(&q.list)
}

// Reverse reverses the queue.
func (q *Queue) Reverse() {
	if q == nil {
		return
	}
	list.Reverse(&q.list)
}

// ReverseK reverses the queue k elements at a time.
// A trailing group shorter than k keeps its order.
func (q *Queue) ReverseK(k int) error {
	if k < 1 {
		return ErrInvalidGroupSize
	}

	if q == nil {
		return nil
	}

	list.ReverseK(&q.list, k)

	return nil
}

// Sort sorts the queue in ascending byte order. The sort is stable.
func (q *Queue) Sort() {
	if q == nil {
		return
	}

	q.logger().Debug("sorting queue", zap.Int("len", q.list.Len()))
	list.Sort(&q.list)
}

// SortIterative is like Sort but uses the bottom-up merge sort.
func (q *Queue) SortIterative() {
	if q == nil {
		return
	}

	q.logger().Debug("sorting queue", zap.Int("len", q.list.Len()), zap.Bool("iterative", true))
	list.SortIterative(&q.list)
}

// Descend removes every element that has a strictly greater value to its
// right and returns the resulting size.
func (q *Queue) Descend() int {
	if q == nil {
		return 0
	}

	n := list.Descend(&q.list)
	q.logger().Debug("filtered queue", zap.String("order", "descend"), zap.Int("len", n))

	return n
}

// Ascend removes every element that has a strictly smaller value to its
// right and returns the resulting size.
func (q *Queue) Ascend() int {
	if q == nil {
		return 0
	}

	n := list.Ascend(&q.list)
	q.logger().Debug("filtered queue", zap.String("order", "ascend"), zap.Int("len", n))

	return n
}

// Shuffle randomly permutes the queue with the configured source.
func (q *Queue) Shuffle() {
	if q == nil {
		return
	}

	q.logger().Debug("shuffling queue", zap.Int("len", q.list.Len()))
	list.Shuffle(&q.list, q.source)
}
