package grok

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/tidwall/gjson"
)

// FallbackModel is printed when the model listing cannot be retrieved.
const FallbackModel = "grok-3"

// ListModels fetches the provider's model identifiers, sorted and
// deduplicated. The endpoint shape is provisional, so both the
// OpenAI-compatible `data[].id` and the alternate `models[].id` forms are
// probed; the first non-empty wins.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredential
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: %s", ErrTransport, resp.Status, body)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidResponse, body)
	}

	ids := modelIDs(body, "data.#.id")
	if len(ids) == 0 {
		ids = modelIDs(body, "models.#.id")
	}
	if len(ids) == 0 {
		return nil, ErrNoContent
	}

	sort.Strings(ids)
	return dedup(ids), nil
}

// PrintModels writes model identifiers to w, one per line. Failures
// degrade to a warning plus the hardcoded fallback; this path is never
// fatal.
func (c *Client) PrintModels(ctx context.Context, w io.Writer) {
	ids, err := c.ListModels(ctx)
	if err != nil {
		c.log.Warnf("could not list models (%v); falling back to %s", err, FallbackModel)
		fmt.Fprintln(w, FallbackModel)
		return
	}
	for _, id := range ids {
		fmt.Fprintln(w, id)
	}
}

func modelIDs(body []byte, path string) []string {
	var ids []string
	for _, r := range gjson.GetBytes(body, path).Array() {
		if id := r.String(); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// dedup removes adjacent duplicates from a sorted slice.
func dedup(sorted []string) []string {
	out := sorted[:0]
	for i, id := range sorted {
		if i == 0 || id != sorted[i-1] {
			out = append(out, id)
		}
	}
	return out
}
