// Tests for flag parsing and prompt assembly.
package cli

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wlsidlsi/ask-grok/pkg/grok"
)

func parseArgs(t *testing.T, args []string, stdin string, piped bool) (*Params, error) {
	t.Helper()
	return Parse(Options{
		Args:   args,
		Stdin:  strings.NewReader(stdin),
		Piped:  piped,
		Stderr: io.Discard,
	})
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompt.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestParsePromptFileThenWords(t *testing.T) {
	path := writeTempFile(t, "A\n")
	params, err := parseArgs(t, []string{"-p", path, "B", "C"}, "", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.Prompt != "A\nB C" {
		t.Fatalf("unexpected prompt: %q", params.Prompt)
	}
}

func TestParsePipedOnly(t *testing.T) {
	params, err := parseArgs(t, nil, "hello\n", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.Prompt != "hello" {
		t.Fatalf("unexpected prompt: %q", params.Prompt)
	}
}

func TestParseAppendsPipedAfterWords(t *testing.T) {
	params, err := parseArgs(t, []string{"explain", "this"}, "some log line", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.Prompt != "explain this\nsome log line" {
		t.Fatalf("unexpected prompt: %q", params.Prompt)
	}
}

func TestParseEmptyPrompt(t *testing.T) {
	_, err := parseArgs(t, nil, "", false)
	if !errors.Is(err, grok.ErrEmptyPrompt) {
		t.Fatalf("expected ErrEmptyPrompt, got %v", err)
	}
}

func TestParseMissingPromptFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")
	_, err := parseArgs(t, []string{"-p", missing}, "", false)
	if !errors.Is(err, grok.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestParseUnknownFlag(t *testing.T) {
	_, err := parseArgs(t, []string{"-z"}, "", false)
	if !errors.Is(err, grok.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestParseListModelsShortCircuits(t *testing.T) {
	// -i skips prompt validation entirely, even with a bad -p path.
	missing := filepath.Join(t.TempDir(), "nope.txt")
	params, err := parseArgs(t, []string{"-i", "-p", missing}, "", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !params.ListModels {
		t.Fatal("expected ListModels to be set")
	}
}

func TestParseFlagOverrides(t *testing.T) {
	params, err := parseArgs(t, []string{"-m", "grok-4", "-e", "high", "-g", "-v", "hi"}, "", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.Model != "grok-4" {
		t.Fatalf("unexpected model: %q", params.Model)
	}
	if params.Effort != "high" {
		t.Fatalf("unexpected effort: %q", params.Effort)
	}
	if !params.UseRenderer || !params.Verbose {
		t.Fatalf("expected renderer and verbose flags, got %+v", params)
	}
}

func TestAssemblePromptAllSources(t *testing.T) {
	path := writeTempFile(t, "from file")
	prompt, err := assemblePrompt(path, []string{"from", "args"}, strings.NewReader("from stdin"), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prompt != "from file\nfrom args\nfrom stdin" {
		t.Fatalf("unexpected prompt: %q", prompt)
	}
}
