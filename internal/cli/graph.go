package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/anagram/pkg/anagram"
	"github.com/matzehuels/anagram/pkg/errors"
	aio "github.com/matzehuels/anagram/pkg/io"
	"github.com/matzehuels/anagram/pkg/perm"
)

const (
	graphFormatDOT = "dot"
	graphFormatSVG = "svg"

	// maxGraphNodes is the largest graph drawn; 7! nodes is already unreadable.
	maxGraphNodes = 5040

	defaultGraphLimit = 24
)

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		format string
		limit  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "graph [letters]",
		Short: "Draw the order in which anagrams are generated",
		Long: `Draw the generation order as a chain: one node per anagram, each edge
labelled with the two positions swapped to get from one anagram to the next.

The output is Graphviz DOT, or SVG rendered with Graphviz.`,
		Example: `  anagram graph abc
  anagram graph abcd --format svg -o abcd.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			letters := args[0]
			if err := anagram.Validate(letters); err != nil {
				return err
			}
			if err := errors.ValidateFormat(format, graphFormatDOT, graphFormatSVG); err != nil {
				return err
			}
			if err := errors.ValidateLimit(limit); err != nil {
				return err
			}

			n := perm.Count(len(anagram.Letters(letters)))
			if limit > 0 && limit < n {
				n = limit
			}
			if n > maxGraphNodes {
				return errors.New(errors.ErrCodeTooLarge, "graph would have %d nodes; use --limit %d or less", n, maxGraphNodes)
			}

			labels := make([]string, 0, len(letters))
			for _, r := range anagram.Letters(letters) {
				labels = append(labels, string(r))
			}

			var data []byte
			switch format {
			case graphFormatDOT:
				data = []byte(perm.ToDOT(labels, limit))
			case graphFormatSVG:
				errOut := cmd.ErrOrStderr()
				var spinner *Spinner
				if isTerminal(errOut) {
					spinner = newSpinner(cmd.Context(), errOut, "Rendering graph...")
					spinner.Start()
				}
				svg, err := perm.RenderSVG(labels, limit)
				if spinner != nil {
					spinner.Stop()
				}
				if err != nil {
					return fmt.Errorf("render graph: %w", err)
				}
				data = svg
			}

			if output == "" || output == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := aio.ExportFile(data, output); err != nil {
				return err
			}
			printSuccess(cmd.ErrOrStderr(), "Drew %d anagrams of %s", n, StyleValue.Render(letters))
			printFile(cmd.ErrOrStderr(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", graphFormatDOT, "output format: "+strings.Join([]string{graphFormatDOT, graphFormatSVG}, ", "))
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultGraphLimit, "draw at most this many anagrams (0 for all)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
