// Weighted random sampling with a reservoir
// Pavlos S. Efraimidis, Paul G. Spirakis
// 2006
// https://doi.org/10.1016/j.ipl.2005.11.003

package reservoir

import (
	"math"
	"math/rand"
	"time"

	"github.com/lightstep/reservoir/internal"
)

// Weighted maintains a sample of at most Capacity() items from a
// stream of weighted observations using Algorithm A-Res.  Every item
// is assigned the key ln(u)/weight for u uniform on (0,1), and the
// reservoir retains the items with the largest keys.  Ordering by
// ln(u)/weight is the same as ordering by u^(1/weight), but stays
// representable for weights far from 1.
//
// Weighted is not safe for concurrent use.
type Weighted[T any] struct {
	// Retained items, lowest key at the root.
	heap internal.KeyHeap[T]

	// Size of sample
	capacity int

	rnd *rand.Rand

	totalCount  int
	totalWeight float64
}

// New returns a reservoir holding at most capacity items.  If rnd is
// nil a generator seeded from the current time is used.
func New[T any](capacity int, rnd *rand.Rand) (*Weighted[T], error) {
	if capacity <= 0 {
		return nil, &CapacityError{Capacity: capacity}
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Weighted[T]{
		heap:     make(internal.KeyHeap[T], 0, capacity),
		capacity: capacity,
		rnd:      rnd,
	}, nil
}

// Add considers a new observation for the sample.  When the reservoir
// is full, exactly one value leaves: either the new one or the
// lowest-keyed entry it displaces.  That value is returned with
// ejected set, which lets callers recycle value storage.
//
// Weights that are zero, negative or NaN are accepted.  Such items
// occupy free space while the reservoir is filling, but are the first
// to be displaced and never displace anything themselves.
func (s *Weighted[T]) Add(value T, weight float64) (eject T, ejected bool) {
	s.totalCount++
	if weight > 0 {
		s.totalWeight += weight
	}

	return s.offer(internal.Entry[T]{
		Value: value,
		Key:   s.key(weight),
	})
}

func (s *Weighted[T]) offer(e internal.Entry[T]) (eject T, ejected bool) {
	if s.heap.Len() < s.capacity {
		s.heap.Push(e)
		return eject, false
	}

	if e.Key > s.heap.Min().Key {
		return s.heap.ReplaceMin(e).Value, true
	}
	return e.Value, true
}

// key returns ln(u)/weight.  The result lies in [-Inf, 0].
func (s *Weighted[T]) key(weight float64) float64 {
	u := s.uniform()
	if !(weight > 0) {
		return math.Inf(-1)
	}
	return math.Log(u) / weight
}

func (s *Weighted[T]) uniform() float64 {
	for {
		r := s.rnd.Float64()
		if r != 0.0 {
			return r
		}
	}
}

// Samples returns a copy of the retained values, in no particular
// order.
func (s *Weighted[T]) Samples() []T {
	values := make([]T, s.heap.Len())
	for i, e := range s.heap.Entries() {
		values[i] = e.Value
	}
	return values
}

// Get returns the i'th retained value.
func (s *Weighted[T]) Get(i int) T {
	return s.heap[i].Value
}

// Capacity returns the maximum number of retained items.
func (s *Weighted[T]) Capacity() int {
	return s.capacity
}

// Size returns the number of retained items, which is the lesser of
// Capacity() and TotalCount().
func (s *Weighted[T]) Size() int {
	return s.heap.Len()
}

// TotalCount returns the number of items offered to Add, including
// those merged in from other reservoirs.
func (s *Weighted[T]) TotalCount() int {
	return s.totalCount
}

// TotalWeight returns the sum of all positive weights passed to Add.
func (s *Weighted[T]) TotalWeight() float64 {
	return s.totalWeight
}

// Reset empties the reservoir, retaining its capacity and generator.
func (s *Weighted[T]) Reset() {
	s.heap.Reset()
	s.totalCount = 0
	s.totalWeight = 0
}
