// Package grok is a thin client for the xAI chat-completions API.
package grok

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/tidwall/gjson"

	"github.com/wlsidlsi/ask-grok/pkg/logger"
)

// attachLabel separates the prompt from an attached file's content inside
// the single user message.
const attachLabel = "Attached file content:"

// Options configures a Client.
type Options struct {
	APIKey  string
	BaseURL string
	Logger  logger.Logger
	Verbose bool

	// HTTPClient overrides the default transport, mainly for tests.
	HTTPClient *http.Client
}

// Client talks to the xAI API. Safe for single-invocation use; it holds
// no mutable state after construction.
type Client struct {
	api     openai.Client
	http    *http.Client
	baseURL string
	apiKey  string
	log     logger.Logger
	verbose bool
}

// NewClient builds a Client from resolved configuration.
func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithBaseURL(baseURL + "/"),
		option.WithHTTPClient(hc),
		// Single-shot pipeline: a failed call is reported, not retried.
		option.WithMaxRetries(0),
	}
	return &Client{
		api:     openai.NewClient(reqOpts...),
		http:    hc,
		baseURL: baseURL,
		apiKey:  opts.APIKey,
		log:     log,
		verbose: opts.Verbose,
	}
}

// Request describes a single chat completion.
type Request struct {
	Model        string
	Prompt       string
	AttachedFile string
	Effort       string
}

// Complete sends one user message and returns the assistant's answer.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingCredential
	}

	content := req.Prompt
	if req.AttachedFile != "" {
		b, err := os.ReadFile(req.AttachedFile)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("%w: %s", ErrFileNotFound, req.AttachedFile)
			}
			return "", fmt.Errorf("read %s: %w", req.AttachedFile, err)
		}
		content = content + "\n\n" + attachLabel + "\n\n" + string(b)
	}

	params := buildParams(req.Model, content, req.Effort)

	body, err := json.Marshal(params)
	if err != nil || !json.Valid(body) {
		return "", fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	if c.verbose {
		path, err := stageTemp("ask-grok-request-*.json", body)
		if err == nil {
			defer os.Remove(path)
			c.log.Debugf("request body staged at %s", path)
		}
		c.log.Debugf("request: %s", body)
	}

	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", classifyError(err), err)
	}

	raw := completion.RawJSON()
	if c.verbose {
		// The response file is intentionally retained for inspection.
		if path, err := stageTemp("ask-grok-response-*.json", []byte(raw)); err == nil {
			c.log.Debugf("response body saved at %s", path)
		}
		c.log.Debugf("response: %s", raw)
	}

	field := gjson.Get(raw, "choices.0.message.content")
	if !field.Exists() || field.Type == gjson.Null {
		return "", ErrNoContent
	}
	answer := field.String()
	if answer == "" {
		return "", ErrEmptyResponse
	}
	return answer, nil
}

// classifyError maps an SDK failure onto the error taxonomy: an
// undecodable response body is ErrInvalidResponse; HTTP status errors and
// network-layer failures (DNS, refused connections, timeouts) are
// ErrTransport.
func classifyError(err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || strings.Contains(err.Error(), "parsing response json") {
		return ErrInvalidResponse
	}
	return ErrTransport
}

// buildParams assembles the typed request. Exactly one message, role user.
func buildParams(model, content, effort string) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(content),
		},
	}
	if effort != "" {
		params.ReasoningEffort = shared.ReasoningEffort(effort)
	}
	return params
}

// stageTemp writes body to a fresh temp file and returns its path.
func stageTemp(pattern string, body []byte) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(body); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
