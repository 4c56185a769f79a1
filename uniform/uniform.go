// Copyright 2019, LightStep Inc.

package uniform

import (
	"math/rand"
)

// Reservoir implements unweighted reservoir sampling using Algorithm R
// from "Random sampling with a reservoir" by Jeffrey Vitter (1985)
// https://en.wikipedia.org/wiki/Reservoir_sampling#Algorithm_R
//
// A Reservoir is typically used to presample one partition of a
// stream.  Its items, each carrying Weight(), can then be fed to a
// weighted reservoir that combines partitions of different sizes.
type Reservoir[T any] struct {
	capacity int
	observed int
	buffer   []T
	rnd      *rand.Rand
}

// New returns an unweighted reservoir sampler with given capacity
// (i.e., reservoir size) and random number generator.
func New[T any](capacity int, rnd *rand.Rand) *Reservoir[T] {
	s := &Reservoir[T]{}
	s.Init(capacity, rnd)
	return s
}

func (s *Reservoir[T]) Init(capacity int, rnd *rand.Rand) {
	*s = Reservoir[T]{
		capacity: capacity,
		buffer:   make([]T, 0, capacity),
		rnd:      rnd,
	}
}

// Add considers a new observation for the sample.  Items have unit
// weight.
func (s *Reservoir[T]) Add(item T) {
	s.observed++

	if len(s.buffer) < s.capacity {
		s.buffer = append(s.buffer, item)
		return
	}

	// Give this a capacity/observed chance of replacing an existing entry.
	index := s.rnd.Intn(s.observed)
	if index < s.capacity {
		s.buffer[index] = item
	}
}

// Get returns the i'th selected item from the sample.
func (s *Reservoir[T]) Get(i int) T {
	return s.buffer[i]
}

// Samples returns a copy of the selected items.
func (s *Reservoir[T]) Samples() []T {
	items := make([]T, len(s.buffer))
	copy(items, s.buffer)
	return items
}

// Size returns the number of items in the sample.  If the reservoir is
// full, Size() equals the capacity.
func (s *Reservoir[T]) Size() int {
	return len(s.buffer)
}

// Count returns the number of items that were observed.
func (s *Reservoir[T]) Count() int {
	return s.observed
}

// Weight returns the number of observed items each selected item
// stands for, the inverse of its inclusion probability.  It is zero
// for an empty sample.
func (s *Reservoir[T]) Weight() float64 {
	if len(s.buffer) == 0 {
		return 0
	}
	return float64(s.observed) / float64(len(s.buffer))
}

// Reset discards the sample, retaining its storage.
func (s *Reservoir[T]) Reset() {
	clear(s.buffer)
	s.buffer = s.buffer[:0]
	s.observed = 0
}
