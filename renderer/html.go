package renderer

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown converts pages to HTML, tables included.
var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// HTML converts a rendered markdown page into an HTML fragment.
func HTML(md string) (string, error) {
	var b bytes.Buffer
	if err := markdown.Convert([]byte(md), &b); err != nil {
		return "", fmt.Errorf("error converting markdown to html: %w", err)
	}
	return b.String(), nil
}
