package tui

import (
	"github.com/charmbracelet/glamour"

	"github.com/aretw0/lineviz/pkg/domain"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// RenderHelp renders the help page of target, or the overview for "".
func RenderHelp(render func(string) (string, error), target domain.Target) (string, error) {
	return render(HelpMarkdown(target))
}
