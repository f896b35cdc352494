// Package cli parses flags and assembles the prompt for one invocation.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/wlsidlsi/ask-grok/pkg/config"
	"github.com/wlsidlsi/ask-grok/pkg/grok"
)

const usageText = `Usage: ask-grok [-p path] [-m model] [-f path] [-e effort] [-g] [-v] [-h] [-i] [prompt words...]

Send a prompt to the xAI chat-completions API and print the answer.
The prompt may also be piped or redirected on standard input.

Flags:
  -p path    read the prompt from a file
  -m model   model name (default resolved from XAI_MODEL, config file, or "grok-3")
  -f path    attach a file's content to the prompt
  -e effort  reasoning effort hint (e.g. low, medium, high)
  -g         render the answer as terminal markdown
  -v         verbose diagnostics on stderr
  -i         list available models and exit
  -h         show this help

Environment:
  XAI_API_KEY   bearer token (required for chat)
  XAI_BASE_URL  API root (default ` + config.DefaultBaseURL + `)
  XAI_MODEL     default model

Config file: ~/.config/ask-grok/config.yaml (model, base_url, effort, render)`

// Params is the canonical parameter record for one run. Built once,
// immutable thereafter.
type Params struct {
	Model        string
	Effort       string
	AttachedFile string
	UseRenderer  bool
	Verbose      bool
	ListModels   bool
	Prompt       string

	APIKey  string
	BaseURL string
}

// Options carries the process inputs, injectable for tests.
type Options struct {
	Args   []string
	Stdin  io.Reader
	Piped  bool
	Stderr io.Writer
}

// Parse reads flags, the optional prompt file, positional words, and
// piped stdin, and returns the resolved parameter record. flag.ErrHelp is
// returned untouched so the caller can exit zero.
func Parse(opts Options) (*Params, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(opts.Stderr, "Warning: %v\n", err)
	}

	flags := flag.NewFlagSet("ask-grok", flag.ContinueOnError)
	flags.SetOutput(opts.Stderr)
	flags.Usage = func() { fmt.Fprintln(opts.Stderr, usageText) }

	promptFile := flags.String("p", "", "read the prompt from a file")
	model := flags.String("m", cfg.Model, "model name")
	attach := flags.String("f", "", "attach a file's content to the prompt")
	effort := flags.String("e", cfg.Effort, "reasoning effort hint")
	render := flags.Bool("g", cfg.Render, "render the answer as terminal markdown")
	verbose := flags.Bool("v", false, "verbose diagnostics on stderr")
	listModels := flags.Bool("i", false, "list available models and exit")

	if err := flags.Parse(opts.Args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", grok.ErrInvalidArgument, err)
	}

	params := &Params{
		Model:        strings.TrimSpace(*model),
		Effort:       strings.TrimSpace(*effort),
		AttachedFile: strings.TrimSpace(*attach),
		UseRenderer:  *render,
		Verbose:      *verbose,
		ListModels:   *listModels,
		APIKey:       cfg.APIKey,
		BaseURL:      cfg.BaseURL,
	}

	// -i short-circuits every other validation, including the prompt.
	if params.ListModels {
		return params, nil
	}

	prompt, err := assemblePrompt(*promptFile, flags.Args(), opts.Stdin, opts.Piped)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(prompt) == "" {
		flags.Usage()
		return nil, grok.ErrEmptyPrompt
	}
	params.Prompt = prompt
	return params, nil
}

// assemblePrompt merges the prompt file, positional words, and piped
// stdin, in that order, separated by newlines.
func assemblePrompt(promptFile string, words []string, stdin io.Reader, piped bool) (string, error) {
	var parts []string

	if promptFile != "" {
		b, err := os.ReadFile(promptFile)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", fmt.Errorf("%w: %s", grok.ErrFileNotFound, promptFile)
			}
			return "", fmt.Errorf("read %s: %w", promptFile, err)
		}
		if s := strings.TrimRight(string(b), "\n"); s != "" {
			parts = append(parts, s)
		}
	}

	if joined := strings.TrimSpace(strings.Join(words, " ")); joined != "" {
		parts = append(parts, joined)
	}

	if piped && stdin != nil {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		if s := strings.TrimSpace(string(b)); s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, "\n"), nil
}

// StdinPiped reports whether stdin is a pipe or redirect rather than a
// terminal.
func StdinPiped() bool {
	st, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return st.Mode()&os.ModeCharDevice == 0
}
