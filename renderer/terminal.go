package renderer

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// AutoStyle picks a dark or light style from the terminal background.
const AutoStyle = "auto"

// Terminal renders markdown for a terminal, using a glamour style name
// ("dark", "light", "notty", ..., or AutoStyle) and wrapping at width columns.
func Terminal(md, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == AutoStyle {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("error creating terminal renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("error rendering markdown: %w", err)
	}
	return out, nil
}
