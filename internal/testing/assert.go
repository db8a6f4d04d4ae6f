package testing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mgnsk/lqueue/list"
)

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if diff := cmp.Diff(b, a); diff != "" {
		t.Fatalf("expected '%v' to be equal to '%v' (-want +got):\n%s", a, b, diff)
	}
}

// AssertValidList asserts that l is a consistent circular doubly linked list:
// walking forward and backward visits the same Len() elements in mirrored
// order and every link is matched by its reverse link.
func AssertValidList[V any](t testing.TB, l *list.List[V]) {
	t.Helper()

	if l.Len() == 0 {
		if l.Front() != nil || l.Back() != nil {
			t.Fatalf("expected empty list to have no front and back")
		}
		return
	}

	if l.Front().Prev() != nil {
		t.Fatalf("expected front element to have no previous element")
	}

	if l.Back().Next() != nil {
		t.Fatalf("expected back element to have no next element")
	}

	var forward []*list.Element[V]
	for e := l.Front(); e != nil; e = e.Next() {
		if e.List() != l {
			t.Fatalf("expected element %d to belong to the list", len(forward))
		}
		if next := e.Next(); next != nil && next.Prev() != e {
			t.Fatalf("expected element %d to be linked back from its successor", len(forward))
		}
		forward = append(forward, e)
		if len(forward) > l.Len() {
			t.Fatalf("expected forward walk to end after %d elements", l.Len())
		}
	}

	if len(forward) != l.Len() {
		t.Fatalf("expected %d elements walking forward, got %d", l.Len(), len(forward))
	}

	i := len(forward) - 1
	for e := l.Back(); e != nil; e = e.Prev() {
		if i < 0 || forward[i] != e {
			t.Fatalf("expected backward walk to mirror forward walk at %d", i)
		}
		i--
	}

	if i != -1 {
		t.Fatalf("expected backward walk to visit %d elements", len(forward))
	}
}

// Values collects the values of l in forward order.
func Values[V any](l *list.List[V]) []V {
	values := make([]V, 0, l.Len())
	for v := range l.Values() {
		values = append(values, v)
	}
	return values
}
