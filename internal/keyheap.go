// Copyright 2019, LightStep Inc.

package internal

// Entry is a retained value and the priority key that ranks it.
type Entry[T any] struct {
	Value T
	Key   float64
}

// KeyHeap is a min-heap of entries ordered by Key.  It avoids
// container/heap so that entries are never boxed in an interface.
type KeyHeap[T any] []Entry[T]

func (h KeyHeap[T]) Len() int {
	return len(h)
}

// Min returns the lowest-keyed entry.  The heap must not be empty.
func (h KeyHeap[T]) Min() Entry[T] {
	return h[0]
}

// Entries returns the underlying storage in heap order.
func (h KeyHeap[T]) Entries() []Entry[T] {
	return h
}

func (h *KeyHeap[T]) Push(e Entry[T]) {
	*h = append(*h, e)
	h.up(len(*h) - 1)
}

// Pop removes and returns the lowest-keyed entry.
func (h *KeyHeap[T]) Pop() Entry[T] {
	old := *h
	n := len(old) - 1
	top := old[0]
	old[0] = old[n]
	old[n] = Entry[T]{}
	*h = old[:n]
	h.down(0)
	return top
}

// ReplaceMin overwrites the lowest-keyed entry with e and restores
// heap order, returning the entry that was replaced.
func (h KeyHeap[T]) ReplaceMin(e Entry[T]) Entry[T] {
	old := h[0]
	h[0] = e
	h.down(0)
	return old
}

// Reset empties the heap, retaining its storage.
func (h *KeyHeap[T]) Reset() {
	clear(*h)
	*h = (*h)[:0]
}

func (h KeyHeap[T]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2
		if !(h[j].Key < h[i].Key) {
			break
		}
		h[i], h[j] = h[j], h[i]
		j = i
	}
}

func (h KeyHeap[T]) down(i int) {
	n := len(h)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		j := l
		if r := l + 1; r < n && h[r].Key < h[l].Key {
			j = r
		}
		if !(h[j].Key < h[i].Key) {
			return
		}
		h[i], h[j] = h[j], h[i]
		i = j
	}
}
