package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	aio "github.com/matzehuels/anagram/pkg/io"
	"github.com/matzehuels/anagram/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	limit   int    // maximum number of anagrams, 0 for all
	format  string // output format: text or json
	output  string // output file, "" or "-" for stdout
	noCache bool   // bypass the result cache entirely
	refresh bool   // regenerate and overwrite the cached result
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:     "generate [letters]",
		Aliases: []string{"gen"},
		Short:   "Print every anagram of the given letters",
		Long: `Print every anagram of the given letters, one per line, in the order
Heap's algorithm produces them. The first anagram is always the input itself.

Without an argument, one line is read from standard input.

Inputs longer than max_letters (default 10) are refused unless --limit caps
the output: n letters have n! anagrams.`,
		Example: `  anagram generate abc
  anagram generate abcdefghijkl --limit 100
  echo stone | anagram gen --format json -o stone.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var letters string
			if len(args) == 1 {
				letters = args[0]
			} else {
				line, err := readLine(ctx, cmd.InOrStdin(), cmd.ErrOrStderr(), msgPrompt)
				if err != nil {
					return err
				}
				letters = line
			}
			c.applyConfig(cmd, &opts)
			return c.runGenerate(ctx, letters, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "stop after this many anagrams (0 for all)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", pipeline.DefaultFormat, "output format: text, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "regenerate even if a cached result exists")

	return cmd
}

// applyConfig fills the flags the user did not set from the config file.
func (c *CLI) applyConfig(cmd *cobra.Command, opts *generateOpts) {
	flags := cmd.Flags()
	if !flags.Changed("limit") {
		opts.limit = c.Config.Limit
	}
	if !flags.Changed("format") {
		opts.format = c.Config.Format
	}
	if !flags.Changed("no-cache") {
		opts.noCache = c.Config.NoCache
	}
}

// runGenerate generates the anagrams of letters and writes them out.
func (c *CLI) runGenerate(ctx context.Context, letters string, opts generateOpts, out, errOut io.Writer) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Letters:    letters,
		Limit:      opts.limit,
		Format:     opts.format,
		MaxLetters: c.Config.MaxLetters,
		Refresh:    opts.refresh,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d anagrams", result.Stats.Count))

	if len(result.Anagrams) == 0 {
		printInfo(errOut, msgNoAnagrams)
		return nil
	}

	if opts.output == "" || opts.output == "-" {
		if _, err := out.Write(result.Artifact); err != nil {
			return fmt.Errorf("write anagrams: %w", err)
		}
		return nil
	}

	if err := aio.ExportFile(result.Artifact, opts.output); err != nil {
		return err
	}
	printSuccess(errOut, "Wrote anagrams of %s", StyleValue.Render(result.Letters))
	printFile(errOut, opts.output)
	printStats(errOut, result.Stats.Count, result.Total, result.CacheHit)
	if result.Truncated {
		printNextStep(errOut, "Count all anagrams", "anagram count "+result.Letters)
	}
	return nil
}
