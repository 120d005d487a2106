package cli

import (
	"context"
	"fmt"
	"io"

	aio "github.com/matzehuels/anagram/pkg/io"
	"github.com/matzehuels/anagram/pkg/pipeline"
)

// Messages of the interactive session.
const (
	msgPrompt     = "Type some different letters to build anagrams:"
	msgHeader     = "Here are the anagrams:"
	msgNoAnagrams = "No anagrams were generated, make sure you typed something valid."
)

// runInteractive asks for one line of letters and prints its anagrams.
// Invalid input is returned as an error and nothing is printed.
func (c *CLI) runInteractive(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	line, err := readLine(ctx, in, out, msgPrompt)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(false)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Letters:    line,
		Limit:      c.Config.Limit,
		Format:     aio.FormatText,
		MaxLetters: c.Config.MaxLetters,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d anagrams", result.Stats.Count))

	if len(result.Anagrams) == 0 {
		printInfo(errOut, msgNoAnagrams)
		return nil
	}

	fmt.Fprintln(out, msgHeader)
	if _, err := out.Write(result.Artifact); err != nil {
		return fmt.Errorf("write anagrams: %w", err)
	}
	return nil
}
