// Package view renders the HTML pages of the service.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	resultserv "github.com/chup1x/carmodels/internal/services/results"
	selectorserv "github.com/chup1x/carmodels/internal/services/selector"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	pageSelector = "selector"
	pageResult   = "result"
	pageNotFound = "notfound"
)

type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page against the shared layout.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{pageSelector, pageResult, pageNotFound} {
		t, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("to parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) Selector(w io.Writer, page *selectorserv.Page) error {
	return r.execute(w, pageSelector, page)
}

func (r *Renderer) Result(w io.Writer, page *resultserv.Page) error {
	return r.execute(w, pageResult, page)
}

func (r *Renderer) NotFound(w io.Writer) error {
	return r.execute(w, pageNotFound, nil)
}

// ResultBytes renders a results page into memory.
func (r *Renderer) ResultBytes(page *resultserv.Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Result(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	// Render to a buffer first so a failing template never writes half a page.
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("to render %s page: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
