package perm

import (
	"iter"
	"math"
	"slices"
)

// maxPrealloc bounds the capacity reserved up front by Generate and GenerateN.
// 12! entries is the largest result worth reserving in one allocation.
const maxPrealloc = 12

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
//
// Factorials grow extremely fast: 21! already exceeds a 64-bit int, so
// Factorial saturates at math.MaxInt instead of wrapping around.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		if result > math.MaxInt/i {
			return math.MaxInt
		}
		result *= i
	}
	return result
}

// Count returns the number of permutations Generate produces for a sequence
// of length n: n! for n >= 1 and 0 for the empty sequence.
func Count(n int) int {
	if n <= 0 {
		return 0
	}
	return Factorial(n)
}

// Generate returns every permutation of s using Heap's algorithm.
//
// The result holds exactly n! entries for len(s) = n >= 1, in generation
// order. The first entry is s unchanged. Symbols need not be distinct:
// repeated symbols yield value-identical entries, one per permutation of
// positions.
//
// An empty s yields an empty result, not a single empty permutation.
//
// s is never modified. Each returned slice is a separate allocation, safe to
// modify without affecting the others.
//
// Memory use is O(n · n!). For n >= 11 prefer [GenerateN] with a limit or
// iterate lazily with [All].
func Generate[S ~[]E, E any](s S) []S {
	return GenerateN(s, 0)
}

// GenerateN is like [Generate] but stops after limit permutations.
//
// If limit > 0, GenerateN returns at most limit permutations, which are
// always a prefix of what Generate returns.
// If limit <= 0, GenerateN returns all n! permutations.
func GenerateN[S ~[]E, E any](s S, limit int) []S {
	n := len(s)
	if n == 0 {
		return nil
	}

	capacity := Factorial(min(n, maxPrealloc))
	if limit > 0 {
		capacity = min(capacity, limit)
	}
	result := make([]S, 0, capacity)

	h := newHeap(s)
	result = append(result, slices.Clone(h.perm))
	for (limit <= 0 || len(result) < limit) && h.next() {
		result = append(result, slices.Clone(h.perm))
	}
	return result
}

// All returns an iterator over the permutations of s, in the same order as
// [Generate].
//
// Each yielded slice is a fresh copy. Breaking out of the range loop stops
// the enumeration. Every range over the returned sequence starts again from
// s, which is copied at that point; later changes to s are therefore
// visible to later ranges.
func All[S ~[]E, E any](s S) iter.Seq[S] {
	return func(yield func(S) bool) {
		if len(s) == 0 {
			return
		}
		h := newHeap(s)
		if !yield(slices.Clone(h.perm)) {
			return
		}
		for h.next() {
			if !yield(slices.Clone(h.perm)) {
				return
			}
		}
	}
}

// Swap records the two positions exchanged to produce a permutation from its
// predecessor. I is the cursor position, J its partner.
type Swap struct {
	I, J int
}

// Swaps returns the transpositions performed while enumerating a sequence of
// length n. Entry k turns permutation k into permutation k+1, so for n >= 1
// the result holds n! - 1 entries.
//
// If limit > 0, at most limit-1 swaps are returned, matching the first limit
// permutations of [GenerateN].
func Swaps(n, limit int) []Swap {
	if n <= 0 {
		return nil
	}
	h := newHeap(Seq(n))
	var swaps []Swap
	for emitted := 1; (limit <= 0 || emitted < limit) && h.next(); emitted++ {
		swaps = append(swaps, h.last)
	}
	return swaps
}

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	result := make([]int, max(n, 0))
	for i := range result {
		result[i] = i
	}
	return result
}

// heap holds the state of one enumeration: a private working copy and one
// control index per position. state[i] stays within [0, i].
type heap[S ~[]E, E any] struct {
	perm  S
	state []int
	i     int
	last  Swap
}

func newHeap[S ~[]E, E any](s S) *heap[S, E] {
	return &heap[S, E]{
		perm:  slices.Clone(s),
		state: make([]int, len(s)),
	}
}

// next advances perm to the following permutation with a single swap.
// It reports false once every permutation has been produced.
func (h *heap[S, E]) next() bool {
	perm, state := h.perm, h.state
	for h.i < len(perm) {
		i := h.i
		if state[i] < i {
			j := 0
			if i&1 == 1 {
				j = state[i]
			}
			perm[j], perm[i] = perm[i], perm[j]
			h.last = Swap{I: i, J: j}
			state[i]++
			h.i = 0
			return true
		}
		state[i] = 0
		h.i++
	}
	return false
}
