package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestOutputPlainAddsTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	if err := Output(&buf, "hi", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "hi\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestOutputPlainKeepsExistingNewline(t *testing.T) {
	var buf bytes.Buffer
	if err := Output(&buf, "hi\n", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "hi\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestOutputMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := Output(&buf, "# Title\n\nbody text", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Title") || !strings.Contains(out, "body text") {
		t.Fatalf("rendered output missing content:\n%s", out)
	}
}
