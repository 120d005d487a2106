// Package perm enumerates the permutations of a finite sequence.
//
// # Overview
//
// The enumeration is Heap's algorithm in its iterative form. A working copy of
// the input is permuted in place, one swap at a time, and a copy is taken
// after every swap. A control index per position decides which pair is
// swapped next and when the cursor backtracks, so each permutation costs
// amortized O(1) work beyond the copy itself.
//
// For the sequence [a b c] the order is:
//
//	[a b c] [b a c] [c a b] [a c b] [b c a] [c b a]
//
// The order is deterministic and part of the contract: the same input always
// produces the same sequence of permutations.
//
// # Surfaces
//
//   - [Generate]: every permutation, materialized
//   - [GenerateN]: the first N permutations, materialized
//   - [All]: a lazy [iter.Seq] over the same order
//   - [Swaps]: the transposition behind each step
//   - [ToDOT], [RenderSVG]: the enumeration drawn as a chain
//
// # Memory
//
// A materialized result holds n! slices of length n. Ten symbols produce
// 3,628,800 permutations; thirteen already exceed six billion. Use a limit
// or [All] when n is not small.
//
// # Repeated symbols
//
// The enumeration runs over positions, not values. [a a b] yields 3! = 6
// entries, and each distinct arrangement appears twice.
package perm
