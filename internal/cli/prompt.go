package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/matzehuels/anagram/pkg/anagram"
)

// =============================================================================
// Line Input
// =============================================================================

// readLine shows prompt on out and reads one line from in.
//
// On a terminal the line is edited with a bubbletea prompt; otherwise a
// plain line is read, so piped input works. A missing final newline is fine
// and end of input yields an empty line.
func readLine(ctx context.Context, in io.Reader, out io.Writer, prompt string) (string, error) {
	if isTerminal(in) && isTerminal(out) {
		return readLineTUI(ctx, in, out, prompt)
	}

	fmt.Fprintln(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read input: %w", err)
	}
	return anagram.Normalize(line), nil
}

func readLineTUI(ctx context.Context, in io.Reader, out io.Writer, prompt string) (string, error) {
	p := tea.NewProgram(newPromptModel(prompt),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("prompt: %w", err)
	}
	m := final.(promptModel)
	if m.cancelled {
		return "", context.Canceled
	}
	return m.Value(), nil
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// =============================================================================
// promptModel - single line text input
// =============================================================================

// promptModel is the bubbletea model for reading one line of letters.
type promptModel struct {
	prompt    string
	value     []rune
	done      bool
	cancelled bool
}

func newPromptModel(prompt string) promptModel {
	return promptModel{prompt: prompt}
}

// Value returns the text typed so far.
func (m promptModel) Value() string {
	return string(m.value)
}

func (m promptModel) Init() tea.Cmd {
	return nil
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.value) > 0 {
			m.value = m.value[:len(m.value)-1]
		}
	case tea.KeyCtrlU:
		m.value = nil
	case tea.KeySpace:
		m.value = append(m.value, ' ')
	case tea.KeyRunes:
		m.value = append(m.value, key.Runes...)
	}
	return m, nil
}

func (m promptModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.prompt))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("> "))
	b.WriteString(StyleValue.Render(m.Value()))
	if m.done || m.cancelled {
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(StyleDim.Render("█"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("⏎ build anagrams  esc quit"))
	return b.String()
}
