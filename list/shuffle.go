package list

import "math/rand/v2"

// Source is a source of uniformly distributed random integers.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform random int in [0, n).
	IntN(n int) int
}

// Shuffle randomly permutes the elements of l in place using the
// Fisher-Yates algorithm. Every permutation is equally likely when src is
// uniform. If src is nil, the math/rand/v2 top-level source is used.
func Shuffle[V any](l *List[V], src Source) {
	if l.Len() < 2 {
		return
	}

	intN := rand.IntN
	if src != nil {
		intN = src.IntN
	}

	tail := l.root.prev

	for i := l.len - 1; i > 0; i-- {
		e := l.root.next
		for j := intN(i + 1); j > 0; j-- {
			e = e.next
		}

		e.swap(tail)
		tail = e.prev
	}
}
