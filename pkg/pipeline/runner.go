package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/anagram/pkg/anagram"
	"github.com/matzehuels/anagram/pkg/cache"
	"github.com/matzehuels/anagram/pkg/errors"
	"github.com/matzehuels/anagram/pkg/io"
	"github.com/matzehuels/anagram/pkg/observability"
)

// Runner executes anagram requests with caching.
// Both CLI and API use it so caching and limits behave the same everywhere.
//
// The Runner holds no per-request state; multiple goroutines can share one.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute validates opts, then returns the cached result or generates,
// encodes and caches a new one.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	total := anagram.Total(opts.Letters)
	if !opts.Bounded() {
		return nil, errors.New(errors.ErrCodeTooLarge,
			"%d letters have %d anagrams; pass a limit or raise the letter maximum (%d)",
			len(anagram.Letters(opts.Letters)), total, opts.MaxLetters)
	}

	key := r.Keyer.AnagramKey(opts.Letters, cache.AnagramKeyOpts{Limit: opts.Limit, Format: opts.Format})
	if !opts.Refresh {
		if result, ok := r.lookup(ctx, key, opts); ok {
			return result, nil
		}
	}

	start := time.Now()
	observability.Generate().OnGenerateStart(ctx, opts.Letters)
	anagrams, err := anagram.GenerateN(opts.Letters, opts.Limit)
	elapsed := time.Since(start)
	observability.Generate().OnGenerateComplete(ctx, opts.Letters, len(anagrams), elapsed, err)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Letters:   opts.Letters,
		Anagrams:  anagrams,
		Total:     total,
		Truncated: len(anagrams) < total,
		Format:    opts.Format,
		Stats:     Stats{Count: len(anagrams), Duration: elapsed},
	}
	result.Artifact, err = io.Encode(opts.Format, result.Document())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", opts.Format)
	}

	r.Logger.Debug("generated anagrams",
		"letters", opts.Letters,
		"count", len(anagrams),
		"total", total,
		"duration", elapsed)

	if len(anagrams) <= cache.MaxCachedEntries {
		if err := r.Cache.Set(ctx, key, result.Artifact, cache.TTLAnagram); err != nil {
			r.Logger.Warn("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, key, len(result.Artifact))
		}
	}
	return result, nil
}

// lookup returns the cached result for key, if any. Unreadable entries are
// treated as misses.
func (r *Runner) lookup(ctx context.Context, key string, opts Options) (*Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, key)
		return nil, false
	}

	doc, err := io.Decode(opts.Format, data)
	if err != nil || doc.Letters != opts.Letters {
		r.Logger.Debug("discarding cache entry", "key", key)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, key)
	r.Logger.Debug("cache hit", "letters", opts.Letters, "count", doc.Count)

	return &Result{
		Letters:   doc.Letters,
		Anagrams:  doc.Anagrams,
		Total:     doc.Total,
		Truncated: doc.Truncated,
		Format:    opts.Format,
		Artifact:  data,
		Stats:     Stats{Count: doc.Count},
		CacheHit:  true,
	}, true
}
