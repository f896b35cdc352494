package logger

import (
	"bytes"
	"testing"
)

func TestDebugSuppressedWhenNotVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestDebugAndWarnFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)
	log.Debugf("sending %s", "request")
	log.Warnf("fallback to %s", "grok-3")

	out := buf.String()
	if out != "[verbose] sending request\nWarning: fallback to grok-3\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestWarnAlwaysWritten(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Warnf("degraded")
	if buf.String() != "Warning: degraded\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
