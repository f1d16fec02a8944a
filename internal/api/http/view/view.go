// Package view renders HTML pages from the embedded templates.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dtroode/vanashree/internal/api/http/cookie"
	"github.com/dtroode/vanashree/internal/model"
)

const (
	layoutFile  = "templates/layout.html"
	partialFile = "templates/pages/product_card.html"
	pagesGlob   = "templates/pages/*.html"
)

// Page is the data every template receives.
type Page struct {
	Title    string
	Identity model.Identity
	Flashes  []cookie.Flash
	Data     any
}

var funcs = template.FuncMap{
	"price": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"year":  func() int { return time.Now().Year() },
}

// Renderer holds one template set per page, each sharing the layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the layout and every page in fsys. Page names are the
// file names without extension.
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	files, err := fs.Glob(fsys, pagesGlob)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		if file == partialFile {
			continue
		}

		name := strings.TrimSuffix(path.Base(file), path.Ext(file))
		t, err := template.New(name).Funcs(funcs).ParseFS(fsys, layoutFile, partialFile, file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}

	if len(r.pages) == 0 {
		return nil, fmt.Errorf("no templates found in %s", pagesGlob)
	}

	return r, nil
}

// Render writes the page with the given status. Nothing is written when the
// template fails to execute.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q: %w", name, model.ErrNotFound)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
