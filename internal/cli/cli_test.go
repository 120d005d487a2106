package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/anagram/pkg/errors"
	aio "github.com/matzehuels/anagram/pkg/io"
)

const abcAnagrams = "abc\nbac\ncab\nacb\nbca\ncba\n"

// isolate points the cache and config directories at temporary ones.
func isolate(t *testing.T) (cacheHome, configHome string) {
	t.Helper()
	cacheHome, configHome = t.TempDir(), t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	return cacheHome, configHome
}

// runCLI executes the root command with args and stdin.
func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut, logs bytes.Buffer

	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestInteractive(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, "abc\n")
	if err != nil {
		t.Fatalf("interactive error: %v", err)
	}

	want := msgPrompt + "\n" + msgHeader + "\n" + abcAnagrams
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestInteractiveWindowsLineEnding(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, "ab\r\n")
	if err != nil {
		t.Fatalf("interactive error: %v", err)
	}
	if !strings.HasSuffix(out, msgHeader+"\nab\nba\n") {
		t.Errorf("output = %q", out)
	}
}

func TestInteractiveInvalid(t *testing.T) {
	isolate(t)

	tests := []struct {
		name  string
		stdin string
	}{
		{"digit", "a1b\n"},
		{"space", "a b\n"},
		{"empty line", "\n"},
		{"no input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, tt.stdin)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("error = %v, want %s", err, errors.ErrCodeInvalidInput)
			}
			if errors.UserMessage(err) != errors.MsgInvalidLetters {
				t.Errorf("message = %q", errors.UserMessage(err))
			}
			if strings.Contains(out, msgHeader) {
				t.Errorf("invalid input should print no anagrams, got %q", out)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	isolate(t)

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"argument", "", []string{"generate", "abc"}, abcAnagrams},
		{"alias", "", []string{"gen", "abc"}, abcAnagrams},
		{"stdin", "abc\n", []string{"generate"}, abcAnagrams},
		{"single letter", "", []string{"generate", "a"}, "a\n"},
		{"limit", "", []string{"generate", "abcd", "--limit", "3"}, "abcd\nbacd\ncabd\n"},
		{"repeated letters", "", []string{"generate", "aab", "--no-cache"}, "aab\naab\nbaa\naba\naba\nbaa\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("generate error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestGenerateJSON(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, "", "generate", "abcd", "--format", "json", "--limit", "2")
	if err != nil {
		t.Fatal(err)
	}

	var doc aio.Document
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if doc.Letters != "abcd" || doc.Count != 2 || doc.Total != 24 || !doc.Truncated {
		t.Errorf("doc = %+v", doc)
	}
}

func TestGenerateOutputFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "abc.txt")

	out, stderr, err := runCLI(t, "", "generate", "abc", "-o", path)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("stdout should be empty when writing a file, got %q", out)
	}
	if !strings.Contains(stderr, path) {
		t.Errorf("stderr = %q, should name the output file", stderr)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != abcAnagrams {
		t.Errorf("file = %q, want %q", data, abcAnagrams)
	}
}

func TestGenerateErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"invalid letters", []string{"generate", "a1b"}, errors.ErrCodeInvalidInput},
		{"invalid format", []string{"generate", "abc", "--format", "xml"}, errors.ErrCodeInvalidFormat},
		{"negative limit", []string{"generate", "abc", "--limit", "-1"}, errors.ErrCodeInvalidLimit},
		{"too many letters", []string{"generate", "abcdefghijk"}, errors.ErrCodeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, "", tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
			if out != "" {
				t.Errorf("stdout = %q, want nothing", out)
			}
		})
	}
}

func TestGenerateCaches(t *testing.T) {
	cacheHome, _ := isolate(t)

	if _, _, err := runCLI(t, "", "generate", "abc"); err != nil {
		t.Fatal(err)
	}
	entries, _ := filepath.Glob(filepath.Join(cacheHome, appName, "*", "*.json"))
	if len(entries) != 1 {
		t.Fatalf("got %d cache entries, want 1", len(entries))
	}

	out, _, err := runCLI(t, "", "generate", "abc")
	if err != nil {
		t.Fatal(err)
	}
	if out != abcAnagrams {
		t.Errorf("cached output = %q, want %q", out, abcAnagrams)
	}
}

func TestGenerateNoCache(t *testing.T) {
	cacheHome, _ := isolate(t)

	if _, _, err := runCLI(t, "", "generate", "abc", "--no-cache"); err != nil {
		t.Fatal(err)
	}
	entries, _ := filepath.Glob(filepath.Join(cacheHome, appName, "*", "*.json"))
	if len(entries) != 0 {
		t.Errorf("--no-cache wrote %d cache entries", len(entries))
	}
}

func TestCount(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, "", "count", "abcd")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Letters", "Anagrams", "24"} {
		if !strings.Contains(out, want) {
			t.Errorf("count output missing %q:\n%s", want, out)
		}
	}

	if _, _, err := runCLI(t, "", "count", "--up-to", "0"); !errors.Is(err, errors.ErrCodeInvalidLimit) {
		t.Errorf("--up-to 0 error = %v", err)
	}
	if _, _, err := runCLI(t, "", "count", "a1"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("count a1 error = %v", err)
	}
}

func TestGraphDOT(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, "", "graph", "abc")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"digraph Permutations", `label="abc"`, `label="cba"`, "n4 -> n5"} {
		if !strings.Contains(out, want) {
			t.Errorf("graph output missing %q:\n%s", want, out)
		}
	}
}

func TestGraphErrors(t *testing.T) {
	isolate(t)

	if _, _, err := runCLI(t, "", "graph", "abc", "--format", "png"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("png error = %v", err)
	}
	if _, _, err := runCLI(t, "", "graph", "abcdefgh", "--limit", "0"); !errors.Is(err, errors.ErrCodeTooLarge) {
		t.Errorf("unbounded graph error = %v", err)
	}
}

func TestCachePathAndClear(t *testing.T) {
	cacheHome, _ := isolate(t)
	dir := filepath.Join(cacheHome, appName)

	out, _, err := runCLI(t, "", "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != dir {
		t.Errorf("cache path = %q, want %q", out, dir)
	}

	if _, _, err := runCLI(t, "", "generate", "abc"); err != nil {
		t.Fatal(err)
	}
	_, stderr, err := runCLI(t, "", "cache", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "Cleared 1 cached entries") {
		t.Errorf("cache clear output = %q", stderr)
	}
}

func TestCompletion(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, "", "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "anagram") {
		t.Error("bash completion should mention the command name")
	}
}
