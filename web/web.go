// Package web holds the server-rendered landing page.
package web

import (
	"embed"
	"html/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.html
var Templates embed.FS

// ParseTemplates parses every embedded template with the sprig function set.
func ParseTemplates() (*template.Template, error) {
	return template.New("index.html").Funcs(sprig.FuncMap()).ParseFS(Templates, "templates/*.html")
}
