package grok

import "errors"

// Error kinds surfaced by the CLI. All terminate the run with a non-zero
// status except the model-listing path, which degrades to a warning.
var (
	ErrMissingCredential = errors.New("XAI_API_KEY is not set")
	ErrFileNotFound      = errors.New("file not found")
	ErrInvalidRequest    = errors.New("invalid request body")
	ErrTransport         = errors.New("request failed")
	ErrInvalidResponse   = errors.New("invalid response")
	ErrNoContent         = errors.New("response contains no content")
	ErrEmptyResponse     = errors.New("response content is empty")
	ErrEmptyPrompt       = errors.New("empty prompt")
	ErrInvalidArgument   = errors.New("invalid argument")
)
