package parallel

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapPreservesOrder(t *testing.T) {
	in := make([]int, 5000)
	for i := range in {
		in[i] = i
	}

	out := Map(in, 4, func(i int) int { return i * i })

	for i := range in {
		require.Equal(t, i*i, out[i])
	}
}

func TestJoinConcatenatesInOrder(t *testing.T) {
	chunks := [][]int{{1, 2, 3}, {}, {4}, {5, 6}}
	got := Join(chunks)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)
}

func TestDedupRemovesAdjacentDuplicatesAcrossChunks(t *testing.T) {
	sorted := make([]int, 0, 10000)
	for i := 0; i < 2000; i++ {
		sorted = append(sorted, i, i, i, i, i)
	}

	got := Dedup(sorted, 8)

	want := make([]int, 2000)
	for i := range want {
		want[i] = i
	}
	require.Equal(t, want, got)
}

func TestDedupEmpty(t *testing.T) {
	require.Empty(t, Dedup([]int{}, 4))
}

func TestRadixSortMatchesStdlibSort(t *testing.T) {
	const n = 20000
	items := make([]uint64, n)
	x := uint64(88172645463325252)
	for i := range items {
		// xorshift64, deterministic and dependency-free.
		x ^= x << 13
		x ^= x >> 7
		x ^= x << 17
		items[i] = x % (1 << 24)
	}

	got := RadixSort(items, 6, 24, func(v uint64) uint64 { return v })

	want := make([]uint64, n)
	copy(want, items)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	require.Equal(t, want, got)
}

func TestRadixSortSmallInputSingleThreaded(t *testing.T) {
	items := []uint64{5, 1, 4, 2, 3}
	got := RadixSort(items, 4, 8, func(v uint64) uint64 { return v })
	require.Equal(t, []uint64{1, 2, 3, 4, 5}, got)
}
