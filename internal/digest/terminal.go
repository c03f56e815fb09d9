package digest

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// RenderTerminal styles a markdown report for a terminal of the given width.
// An empty style picks one from the terminal background.
func RenderTerminal(markdown, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("digest: terminal renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("digest: render for terminal: %w", err)
	}
	return out, nil
}
