// Package render prints the assistant answer, optionally as terminal
// markdown.
package render

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

const fallbackWidth = 100

// Output writes text to w. With markdown set, the text is rendered with
// glamour at the terminal width; rendering failures degrade to plain
// output rather than failing the run.
func Output(w io.Writer, text string, markdown bool) error {
	if markdown {
		if rendered, ok := toMarkdown(text, width()); ok {
			_, err := io.WriteString(w, rendered)
			return err
		}
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(w, text)
	return err
}

// toMarkdown renders markdown content using glamour.
func toMarkdown(content string, width int) (string, bool) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", false
	}
	rendered, err := r.Render(content)
	if err != nil || rendered == "" {
		return "", false
	}
	return rendered, true
}

// width returns the terminal width, capped for readability, or a fixed
// fallback when stdout is not a terminal.
func width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	if w > 120 {
		return 120
	}
	return w
}
