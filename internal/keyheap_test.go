// Copyright 2019, LightStep Inc.

package internal_test

import (
	"container/heap"
	"math/rand"
	"sort"
	"testing"

	"github.com/lightstep/reservoir/internal"
	"github.com/stretchr/testify/require"
)

type simpleHeap []float64

func (s *simpleHeap) Len() int {
	return len(*s)
}

func (s *simpleHeap) Swap(i, j int) {
	(*s)[i], (*s)[j] = (*s)[j], (*s)[i]
}

func (s *simpleHeap) Less(i, j int) bool {
	return (*s)[i] < (*s)[j]
}

func (s *simpleHeap) Push(x interface{}) {
	*s = append(*s, x.(float64))
}

func (s *simpleHeap) Pop() interface{} {
	old := *s
	n := len(old)
	x := old[n-1]
	*s = old[0 : n-1]
	return x
}

func TestKeyHeap(t *testing.T) {
	rnd := rand.New(rand.NewSource(7919))

	var L internal.KeyHeap[float64]
	var S simpleHeap

	for i := 0; i < 1e5; i++ {
		v := rnd.NormFloat64()
		L.Push(internal.Entry[float64]{
			Value: v,
			Key:   v,
		})
		heap.Push(&S, v)
	}

	for len(S) > 0 {
		v1 := heap.Pop(&S)
		e := L.Pop()

		require.Equal(t, v1, e.Key)
		require.Equal(t, e.Key, e.Value)
	}

	require.Equal(t, 0, L.Len())
}

func TestReplaceMin(t *testing.T) {
	const size = 100

	rnd := rand.New(rand.NewSource(104723))

	var L internal.KeyHeap[int]
	for i := 0; i < size; i++ {
		L.Push(internal.Entry[int]{Value: i, Key: rnd.Float64()})
	}

	// Keep the largest keys seen, as a bounded top-k would.
	var all []float64
	for _, e := range L.Entries() {
		all = append(all, e.Key)
	}
	for i := 0; i < 10000; i++ {
		k := rnd.Float64()
		all = append(all, k)
		if k > L.Min().Key {
			old := L.ReplaceMin(internal.Entry[int]{Value: size + i, Key: k})
			require.LessOrEqual(t, old.Key, L.Min().Key)
		}
	}
	require.Equal(t, size, L.Len())

	sort.Sort(sort.Reverse(sort.Float64Slice(all)))
	expect := all[:size]
	sort.Float64s(expect)

	var got []float64
	for L.Len() > 0 {
		got = append(got, L.Pop().Key)
	}
	require.Equal(t, expect, got)
}

func TestReset(t *testing.T) {
	var L internal.KeyHeap[string]
	L.Push(internal.Entry[string]{Value: "a", Key: 1})
	L.Push(internal.Entry[string]{Value: "b", Key: 0.5})
	require.Equal(t, "b", L.Min().Value)

	L.Reset()
	require.Equal(t, 0, L.Len())

	L.Push(internal.Entry[string]{Value: "c", Key: 2})
	require.Equal(t, "c", L.Min().Value)
}
