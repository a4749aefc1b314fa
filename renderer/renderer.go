// Package renderer renders the wallets page as markdown, terminal text or HTML.
//
// Each view has a view struct (List, Detail) holding the data ready to print,
// and a Render function executing the view's markdown templates.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/wallets"
)

//go:embed templates/*.md
var embedded embed.FS

// templates holds the markdown templates, by file name.
var templates, _ = fs.Sub(embedded, "templates")

// PageOptions holds configuration for rendering the current page of a view.
type PageOptions struct {
	QR bool // Render a QR code of the address in the detail page.
}

// RenderList renders the List struct to a markdown string.
func RenderList(l *List) string {
	partials := map[string]string{
		"list_summary": "list_summary.md",
		"list_assets":  "list_assets.md",
	}
	return renderTemplate("list", "list.md", partials, l)
}

// RenderDetail renders the Detail struct to a markdown string.
func RenderDetail(d *Detail) string {
	partials := map[string]string{
		"detail_balance":      "detail_balance.md",
		"detail_address":      "detail_address.md",
		"detail_transactions": "detail_transactions.md",
	}
	return renderTemplate("detail", "detail.md", partials, d)
}

// RenderPage renders whatever v currently shows. The empty page renders as "".
func RenderPage(v *wallets.View, opts PageOptions) string {
	switch v.Page() {
	case wallets.ListPage:
		return RenderList(NewList(v.Holdings()))
	case wallets.DetailPage:
		return RenderDetail(NewDetail(v.Detail(), opts))
	default:
		return ""
	}
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
