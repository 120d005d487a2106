package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/anagram/internal/api"
	"github.com/matzehuels/anagram/pkg/cache"
	"github.com/matzehuels/anagram/pkg/pipeline"
)

// redisKeyPrefix scopes the server's entries in a shared Redis.
const redisKeyPrefix = appName + ":"

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		redis   string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve anagrams over HTTP",
		Long: `Serve anagrams over HTTP.

  GET /healthz
  GET /v1/anagrams/{letters}?limit=N&format=json|text

Results are cached on disk, or in Redis when --redis is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}
			if !cmd.Flags().Changed("redis") {
				redis = c.Config.Server.Redis
			}
			if !cmd.Flags().Changed("no-cache") {
				noCache = c.Config.NoCache
			}
			return c.runServe(cmd.Context(), addr, redis, noCache, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", api.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&redis, "redis", "", "Redis address for the result cache (host:port)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, redis string, noCache bool, errOut io.Writer) error {
	var (
		store   cache.Cache
		keyer   cache.Keyer
		backend string
		err     error
	)
	switch {
	case noCache:
		store, backend = cache.NewNullCache(), "disabled"
	case redis != "":
		store, err = cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redis})
		if err != nil {
			return err
		}
		keyer, backend = cache.NewScopedKeyer(nil, redisKeyPrefix), "redis "+redis
	default:
		store, err = newCache(false)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		backend = "file"
		if fc, ok := store.(*cache.FileCache); ok {
			backend = "file " + fc.Dir()
		}
	}
	defer store.Close()

	runner := pipeline.NewRunner(store, keyer, c.Logger)
	server := api.New(api.Config{Addr: addr, MaxLetters: c.Config.MaxLetters}, runner, c.Logger)

	printKeyValue(errOut, "Address", addr)
	printKeyValue(errOut, "Cache", backend)
	printKeyValue(errOut, "Max letters", fmt.Sprint(c.Config.MaxLetters))

	return server.ListenAndServe(ctx)
}
