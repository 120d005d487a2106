package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/anagram/pkg/anagram"
	"github.com/matzehuels/anagram/pkg/errors"
	"github.com/matzehuels/anagram/pkg/perm"
)

// maxCountLetters is the longest length whose factorial fits in an int.
const maxCountLetters = 20

// stringHeaderSize is the size of a Go string header on 64-bit platforms.
const stringHeaderSize = 16

// countRow is one line of the count table.
type countRow struct {
	letters int
	total   int
	memory  float64 // bytes needed to hold every anagram as a string
}

// countCommand creates the count command.
func (c *CLI) countCommand() *cobra.Command {
	var upTo int

	cmd := &cobra.Command{
		Use:   "count [letters]",
		Short: "Show how many anagrams there are and the memory they need",
		Long: `Show how many anagrams letters have (n!) and roughly how much memory
generating all of them takes, without generating them.

Without letters, a table for lengths 1 to --up-to is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []countRow
			highlight := -1
			if len(args) == 1 {
				if err := anagram.Validate(args[0]); err != nil {
					return err
				}
				n := len(anagram.Letters(args[0]))
				if n > maxCountLetters {
					return errors.New(errors.ErrCodeTooLarge, "%d letters: counts are shown for at most %d", n, maxCountLetters)
				}
				rows = countRows(1, n)
				highlight = n - 1
			} else {
				if upTo < 1 || upTo > maxCountLetters {
					return errors.New(errors.ErrCodeInvalidLimit, "--up-to must be between 1 and %d, got %d", maxCountLetters, upTo)
				}
				rows = countRows(1, upTo)
			}
			printCountTable(cmd.OutOrStdout(), rows, highlight, c.Config.MaxLetters)
			return nil
		},
	}

	cmd.Flags().IntVar(&upTo, "up-to", 12, "largest length shown when no letters are given")

	return cmd
}

// countRows returns the rows for lengths from..to inclusive.
func countRows(from, to int) []countRow {
	rows := make([]countRow, 0, to-from+1)
	for n := from; n <= to; n++ {
		total := perm.Count(n)
		rows = append(rows, countRow{
			letters: n,
			total:   total,
			memory:  float64(total) * float64(stringHeaderSize+n),
		})
	}
	return rows
}

// printCountTable renders rows as a table. The row at index highlight is
// emphasized; lengths above maxLetters are dimmed as they need --limit.
func printCountTable(w io.Writer, rows []countRow, highlight, maxLetters int) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)

	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{
			strconv.Itoa(r.letters),
			formatCount(r.total),
			formatBytes(r.memory),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Letters", "Anagrams", "Memory").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case row == highlight:
				return cell.Foreground(colorCyan).Bold(true)
			case rows[row].letters > maxLetters:
				return cell.Foreground(colorDim)
			case col == 1:
				return cell.Foreground(colorWhite)
			default:
				return cell
			}
		})

	fmt.Fprintln(w, t.Render())
	printDetail(w, "Inputs longer than %d letters need --limit", maxLetters)
}

// formatCount formats n with thousands separators.
func formatCount(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	pre := len(s) % 3
	if pre > 0 {
		out = append(out, s[:pre]...)
	}
	for i := pre; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

// formatBytes formats a byte count with binary units.
func formatBytes(b float64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%.0f B", b)
	}
	units := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB"}
	exp := int(math.Log(b) / math.Log(unit))
	if exp > len(units) {
		exp = len(units)
	}
	return fmt.Sprintf("%.1f %s", b/math.Pow(unit, float64(exp)), units[exp-1])
}
