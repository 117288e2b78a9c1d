package report

import "github.com/charmbracelet/glamour"

// Render formats markdown for the terminal. A width of 0 disables wrapping.
func Render(markdown string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}
