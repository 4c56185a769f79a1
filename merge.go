// Copyright 2019, LightStep Inc.

package reservoir

// Merge folds the retained items of other into s, so that s becomes a
// sample of both streams together.
//
// Keys depend only on an item's weight and its own random draw, so the
// largest keys of the combined stream are among the largest keys of
// each part.  Keeping the Capacity() largest keys of the union is
// therefore the same sample A-Res would have produced over the
// concatenated stream.  That only holds if other kept at least as many
// keys as s will: once other has dropped an item, a smaller capacity
// means it may have dropped keys s needs, and Merge returns
// ErrIncompatibleMerge without modifying either reservoir.
//
// other is not modified.
func (s *Weighted[T]) Merge(other *Weighted[T]) error {
	if other == s {
		return ErrIncompatibleMerge
	}
	if other.totalCount > other.heap.Len() && other.capacity < s.capacity {
		return ErrIncompatibleMerge
	}

	for _, e := range other.heap.Entries() {
		s.offer(e)
	}
	s.totalCount += other.totalCount
	s.totalWeight += other.totalWeight
	return nil
}
