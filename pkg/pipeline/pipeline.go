// Package pipeline runs anagram requests for the CLI and the API server.
//
// A request goes through four steps:
//
//  1. Validate: the letters must be non-empty and letters only
//  2. Lookup: an encoded result may already be cached
//  3. Generate: permute the letters with [perm]
//  4. Encode: render the anagrams as text or JSON and cache the bytes
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Letters: "abc",
//	    Format:  io.FormatText,
//	})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(result.Artifact)
//
// [perm]: github.com/matzehuels/anagram/pkg/perm
package pipeline

import (
	"time"

	"github.com/matzehuels/anagram/pkg/anagram"
	"github.com/matzehuels/anagram/pkg/errors"
	"github.com/matzehuels/anagram/pkg/io"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultMaxLetters is the longest input generated without a limit.
	// Ten letters already produce 3,628,800 anagrams.
	DefaultMaxLetters = 10

	// DefaultFormat is the default output format.
	DefaultFormat = io.FormatText
)

// =============================================================================
// Options - Request Configuration
// =============================================================================

// Options describes one anagram request.
// This struct supports JSON serialization for API requests.
type Options struct {
	Letters    string `json:"letters"`
	Limit      int    `json:"limit,omitempty"`
	Format     string `json:"format,omitempty"`
	MaxLetters int    `json:"max_letters,omitempty"`
	Refresh    bool   `json:"refresh,omitempty"`
}

// ValidateAndSetDefaults checks the request and fills in defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if err := anagram.Validate(o.Letters); err != nil {
		return err
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if err := errors.ValidateFormat(o.Format, io.Formats...); err != nil {
		return err
	}
	if err := errors.ValidateLimit(o.Limit); err != nil {
		return err
	}
	if o.MaxLetters <= 0 {
		o.MaxLetters = DefaultMaxLetters
	}
	return nil
}

// Bounded reports whether the request can be generated without exhausting
// memory: either the input is short enough or a limit caps the output.
func (o *Options) Bounded() bool {
	return o.Limit > 0 || len(anagram.Letters(o.Letters)) <= o.MaxLetters
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of one request.
type Result struct {
	// Letters is the validated input.
	Letters string

	// Anagrams are the generated anagrams, in generation order.
	Anagrams []string

	// Total is the number of anagrams the letters have in all (n!).
	Total int

	// Truncated is set when a limit cut the list short.
	Truncated bool

	// Format is the format of Artifact.
	Format string

	// Artifact is the encoded output.
	Artifact []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit is set when the result came from the cache.
	CacheHit bool
}

// Stats contains execution statistics.
type Stats struct {
	Count    int
	Duration time.Duration
}

// Document returns the result as an io.Document.
func (r *Result) Document() io.Document {
	return io.NewDocument(r.Letters, r.Anagrams, r.Total)
}
