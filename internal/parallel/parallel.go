/*
Package parallel provides the chunk-parallel primitives the frontier solver
builds its layer expansion on: a parallel map, a parallel join of chunked
results, a parallel dedup of already-sorted input, and a parallel LSD radix
sort. None of these retain a goroutine pool across calls; every call spawns
and joins its own goroutines, so the caller controls the thread count per
invocation.
*/
package parallel

import "golang.org/x/sync/errgroup"

// minChunk is the smallest input size worth splitting across goroutines;
// below it the overhead of spawning workers exceeds the work itself.
const minChunk = 1024

// chunkRanges splits [0,n) into up to threads contiguous, non-overlapping
// ranges. Falls back to a single range when n is too small to benefit from
// splitting, or when threads < 1.
func chunkRanges(n, threads int) [][2]int {
	if threads < 1 || n < minChunk {
		return [][2]int{{0, n}}
	}
	size := (n + threads - 1) / threads
	ranges := make([][2]int, 0, threads)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		ranges = append(ranges, [2]int{lo, hi})
	}
	return ranges
}

// Map applies f to every element of in, split across up to threads
// goroutines, and returns the results in the same order as in. f must be
// safe to call concurrently.
func Map[T, R any](in []T, threads int, f func(T) R) []R {
	out := make([]R, len(in))
	ranges := chunkRanges(len(in), threads)

	var g errgroup.Group
	for _, r := range ranges {
		r := r
		g.Go(func() error {
			for i := r[0]; i < r[1]; i++ {
				out[i] = f(in[i])
			}
			return nil
		})
	}
	g.Wait() //nolint:errcheck // f never returns an error

	return out
}

// Join flattens a slice of chunks (for example, the per-goroutine
// successor lists produced while expanding one solver layer) into a single
// slice, preserving chunk order. The copy of each chunk runs concurrently
// once the final offsets are known.
func Join[T any](chunks [][]T) []T {
	total := 0
	offsets := make([]int, len(chunks))
	for i, c := range chunks {
		offsets[i] = total
		total += len(c)
	}

	out := make([]T, total)
	var g errgroup.Group
	for i, c := range chunks {
		i, c := i, c
		g.Go(func() error {
			copy(out[offsets[i]:], c)
			return nil
		})
	}
	g.Wait() //nolint:errcheck

	return out
}

/*
Dedup removes adjacent duplicates from an already-sorted slice, splitting
the work across up to threads goroutines. Each chunk is deduplicated
independently; only the run straddling a chunk boundary can still contain a
duplicate afterward, so the boundary fixup is a cheap serial pass over at
most len(ranges) elements.
*/
func Dedup[T comparable](sorted []T, threads int) []T {
	if len(sorted) == 0 {
		return sorted
	}

	ranges := chunkRanges(len(sorted), threads)
	kept := make([][]T, len(ranges))

	var g errgroup.Group
	for i, r := range ranges {
		i, r := i, r
		g.Go(func() error {
			chunk := sorted[r[0]:r[1]]
			out := make([]T, 0, len(chunk))
			for j, v := range chunk {
				if j == 0 || v != chunk[j-1] {
					out = append(out, v)
				}
			}
			kept[i] = out
			return nil
		})
	}
	g.Wait() //nolint:errcheck

	result := kept[0]
	for i := 1; i < len(kept); i++ {
		cur := kept[i]
		if len(result) > 0 && len(cur) > 0 && result[len(result)-1] == cur[0] {
			cur = cur[1:]
		}
		result = append(result, cur...)
	}
	return result
}

/*
RadixSort performs a stable LSD radix sort of items in ascending order of
key(item), a value understood to fit within the low bits bits. The
histogram pass is chunked across up to threads goroutines; the prefix sum
between passes is inherently serial (each chunk's write offsets depend on
every earlier chunk's counts), and the scatter pass is chunked again.
*/
func RadixSort[T any](items []T, threads, bits int, key func(T) uint64) []T {
	n := len(items)
	src := make([]T, n)
	copy(src, items)
	dst := make([]T, n)

	passes := (bits + 7) / 8
	ranges := chunkRanges(n, threads)

	for pass := 0; pass < passes; pass++ {
		shift := uint(pass * 8)

		hist := make([][256]int, len(ranges))
		var g errgroup.Group
		for ci, r := range ranges {
			ci, r := ci, r
			g.Go(func() error {
				for i := r[0]; i < r[1]; i++ {
					d := (key(src[i]) >> shift) & 0xFF
					hist[ci][d]++
				}
				return nil
			})
		}
		g.Wait() //nolint:errcheck

		// Exclusive prefix sum in (digit, chunk) scan order: this is what
		// keeps the sort stable across chunk boundaries.
		starts := make([][256]int, len(ranges))
		acc := 0
		for d := range 256 {
			for ci := range ranges {
				starts[ci][d] = acc
				acc += hist[ci][d]
			}
		}

		var g2 errgroup.Group
		for ci, r := range ranges {
			ci, r := ci, r
			g2.Go(func() error {
				pos := starts[ci]
				for i := r[0]; i < r[1]; i++ {
					d := (key(src[i]) >> shift) & 0xFF
					dst[pos[d]] = src[i]
					pos[d]++
				}
				return nil
			})
		}
		g2.Wait() //nolint:errcheck

		src, dst = dst, src
	}
	return src
}
