// Package web renders the single-screen calculator page.
package web

import (
	_ "embed"
	"html/template"
	"io"

	"github.com/aretw0/tempera/pkg/form"
)

//go:embed page.html
var pageHTML string

var page = template.Must(template.New("page").Parse(pageHTML))

// Render writes the calculator page for v.
func Render(w io.Writer, v form.View) error {
	return page.Execute(w, v)
}
