// Package pkg provides the libraries behind the anagram CLI and API.
//
// # Overview
//
// Anagram lists every reordering of the letters of a word. Generation uses
// Heap's algorithm, so consecutive anagrams differ by exactly one swap and the
// first anagram is always the input itself. The pkg directory is organized
// into three areas:
//
//  1. [perm] and [anagram] - Domain logic (permutations, text validation)
//  2. [pipeline] - Orchestration (validate → lookup → generate → encode)
//  3. [cache], [io], [errors], [observability] - Supporting infrastructure
//
// # Architecture
//
// The data flow for one request:
//
//	letters (argument, prompt or URL)
//	         ↓
//	    [anagram] package (validate, split into runes)
//	         ↓
//	    [perm] package (Heap's algorithm)
//	         ↓
//	    [io] package (text or JSON)
//	         ↓
//	    [cache] package (file or Redis)
//
// # Quick Start
//
//	words, err := anagram.Generate("abc")
//	if err != nil {
//	    return err // errors.ErrCodeInvalidInput
//	}
//	// words: abc bac cab acb bca cba
//
// Permute any slice, eagerly or lazily:
//
//	perm.Generate([]int{1, 2, 3})
//	for p := range perm.All([]string{"x", "y", "z"}) {
//	    fmt.Println(p)
//	}
//
// Run a cached request the way the CLI and API do:
//
//	fc, _ := cache.NewFileCache(dir)
//	runner := pipeline.NewRunner(fc, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Letters: "stone", Limit: 10})
//
// # Memory
//
// n letters have n! anagrams and materializing them takes O(n·n!) memory.
// [pipeline.Runner] refuses more than [pipeline.DefaultMaxLetters] letters
// unless a limit bounds the output; [perm.All] produces one permutation at a
// time for callers that can stream.
//
// # Testing
//
//	go test ./pkg/...                            # All tests
//	go test -run Example ./pkg/perm              # Examples only
//	REDIS_ADDR=localhost:6379 go test ./pkg/cache  # Include Redis tests
//
// [perm]: https://pkg.go.dev/github.com/matzehuels/anagram/pkg/perm
// [anagram]: https://pkg.go.dev/github.com/matzehuels/anagram/pkg/anagram
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/anagram/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/anagram/pkg/cache
// [io]: https://pkg.go.dev/github.com/matzehuels/anagram/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/anagram/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/anagram/pkg/observability
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/anagram/pkg/pipeline#Runner
// [pipeline.DefaultMaxLetters]: https://pkg.go.dev/github.com/matzehuels/anagram/pkg/pipeline#DefaultMaxLetters
// [perm.All]: https://pkg.go.dev/github.com/matzehuels/anagram/pkg/perm#All
package pkg
