package perm

import (
	"math"
	"slices"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "a", []string{"a"}},
		{"pair", "ab", []string{"ab", "ba"}},
		{"three", "abc", []string{"abc", "bac", "cab", "acb", "bca", "cba"}},
		{"repeated", "aab", []string{"aab", "aab", "baa", "aba", "aba", "baa"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := joinAll(Generate([]rune(tt.input)))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Generate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateEmptyIsEmpty(t *testing.T) {
	if got := Generate([]rune{}); len(got) != 0 {
		t.Errorf("Generate(empty) returned %d entries, want 0", len(got))
	}
	if got := Generate([]int(nil)); len(got) != 0 {
		t.Errorf("Generate(nil) returned %d entries, want 0", len(got))
	}
}

func TestGenerateProperties(t *testing.T) {
	for n := 1; n <= 8; n++ {
		s := Seq(n)
		perms := Generate(s)

		if len(perms) != Factorial(n) {
			t.Fatalf("n=%d: got %d permutations, want %d", n, len(perms), Factorial(n))
		}
		if !slices.Equal(perms[0], s) {
			t.Errorf("n=%d: first permutation %v, want input %v", n, perms[0], s)
		}

		seen := make(map[string]bool, len(perms))
		for _, p := range perms {
			key := string(intsToRunes(p))
			if seen[key] {
				t.Fatalf("n=%d: duplicated permutation %v", n, p)
			}
			seen[key] = true

			sorted := slices.Clone(p)
			slices.Sort(sorted)
			if !slices.Equal(sorted, s) {
				t.Fatalf("n=%d: %v is not a permutation of %v", n, p, s)
			}
		}
	}
}

func TestGenerateRepeatedMultiplicity(t *testing.T) {
	perms := joinAll(Generate([]rune("aab")))
	if len(perms) != 6 {
		t.Fatalf("got %d entries, want 6", len(perms))
	}

	counts := map[string]int{}
	for _, p := range perms {
		counts[p]++
	}
	for _, v := range []string{"aab", "aba", "baa"} {
		if counts[v] != 2 {
			t.Errorf("%q appears %d times, want 2", v, counts[v])
		}
	}
}

func TestGenerateDoesNotModifyInput(t *testing.T) {
	s := []rune("abcd")
	Generate(s)
	if string(s) != "abcd" {
		t.Errorf("input modified to %q", string(s))
	}
}

func TestGenerateEntriesDoNotAlias(t *testing.T) {
	perms := Generate([]rune("abc"))
	perms[0][0] = 'z'
	for i, p := range perms[1:] {
		if slices.Contains(p, 'z') {
			t.Errorf("entry %d aliases entry 0: %q", i+1, string(p))
		}
	}
}

func TestGenerateN(t *testing.T) {
	all := Generate([]rune("abcd"))

	tests := []struct {
		limit int
		want  int
	}{
		{-1, 24},
		{0, 24},
		{1, 1},
		{5, 5},
		{24, 24},
		{100, 24},
	}

	for _, tt := range tests {
		got := GenerateN([]rune("abcd"), tt.limit)
		if len(got) != tt.want {
			t.Errorf("GenerateN(limit=%d) returned %d, want %d", tt.limit, len(got), tt.want)
			continue
		}
		for i := range got {
			if !slices.Equal(got[i], all[i]) {
				t.Errorf("GenerateN(limit=%d)[%d] = %q, want %q", tt.limit, i, string(got[i]), string(all[i]))
			}
		}
	}
}

func TestGenerateNLargeInputWithLimit(t *testing.T) {
	perms := GenerateN(Seq(20), 3)
	if len(perms) != 3 {
		t.Fatalf("got %d permutations, want 3", len(perms))
	}
	if !slices.Equal(perms[0], Seq(20)) {
		t.Errorf("first permutation should be the input")
	}
}

func TestAll(t *testing.T) {
	s := []rune("abcd")
	var got [][]rune
	for p := range All(s) {
		got = append(got, p)
	}

	want := Generate(s)
	if len(got) != len(want) {
		t.Fatalf("All yielded %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("All[%d] = %q, want %q", i, string(got[i]), string(want[i]))
		}
	}
}

func TestAllStopsEarly(t *testing.T) {
	count := 0
	for range All(Seq(10)) {
		count++
		if count == 7 {
			break
		}
	}
	if count != 7 {
		t.Errorf("count = %d, want 7", count)
	}
}

func TestAllEmpty(t *testing.T) {
	for p := range All([]rune{}) {
		t.Errorf("All(empty) yielded %v", p)
	}
}

func TestAllRestarts(t *testing.T) {
	seq := All([]rune("abc"))
	first := joinAll(slices.Collect(seq))
	second := joinAll(slices.Collect(seq))
	if !slices.Equal(first, second) {
		t.Errorf("second range = %v, want %v", second, first)
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-1, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 6},
		{4, 24},
		{10, 3628800},
		{20, 2432902008176640000},
		{21, math.MaxInt},
		{100, math.MaxInt},
	}

	for _, tt := range tests {
		if got := Factorial(tt.n); got != tt.want {
			t.Errorf("Factorial(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestCount(t *testing.T) {
	if got := Count(0); got != 0 {
		t.Errorf("Count(0) = %d, want 0", got)
	}
	if got := Count(1); got != 1 {
		t.Errorf("Count(1) = %d, want 1", got)
	}
	if got := Count(5); got != 120 {
		t.Errorf("Count(5) = %d, want 120", got)
	}
}

func TestSwaps(t *testing.T) {
	want := []Swap{{1, 0}, {2, 0}, {1, 0}, {2, 0}, {1, 0}}
	if got := Swaps(3, 0); !slices.Equal(got, want) {
		t.Errorf("Swaps(3) = %v, want %v", got, want)
	}

	if got := Swaps(0, 0); got != nil {
		t.Errorf("Swaps(0) = %v, want nil", got)
	}
	if got := Swaps(1, 0); len(got) != 0 {
		t.Errorf("Swaps(1) = %v, want none", got)
	}
	if got := Swaps(4, 0); len(got) != 23 {
		t.Errorf("len(Swaps(4)) = %d, want 23", len(got))
	}
	if got := Swaps(4, 5); len(got) != 4 {
		t.Errorf("len(Swaps(4, 5)) = %d, want 4", len(got))
	}
}

func TestSwapsReplay(t *testing.T) {
	s := []rune("abcde")
	perms := Generate(s)
	work := slices.Clone(s)
	for k, sw := range Swaps(len(s), 0) {
		work[sw.I], work[sw.J] = work[sw.J], work[sw.I]
		if !slices.Equal(work, perms[k+1]) {
			t.Fatalf("after swap %d: %q, want %q", k, string(work), string(perms[k+1]))
		}
	}
}

func TestControlIndexBounds(t *testing.T) {
	h := newHeap(Seq(6))
	for h.next() {
		for i, c := range h.state {
			if c < 0 || c > i {
				t.Fatalf("state[%d] = %d out of range [0, %d]", i, c, i)
			}
		}
	}
}

func joinAll(perms [][]rune) []string {
	if perms == nil {
		return nil
	}
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}

func intsToRunes(s []int) []rune {
	r := make([]rune, len(s))
	for i, v := range s {
		r[i] = rune('a' + v)
	}
	return r
}
