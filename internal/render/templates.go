package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

// PageData is the data passed to the index template.
type PageData struct {
	Lang string
	Page any
	Year int
}

// ErrorData is the data passed to the error template.
type ErrorData struct {
	Status  int
	Title   string
	Message string
}

// Templates holds the parsed page templates.
type Templates struct {
	index   *template.Template
	errPage *template.Template
}

// NewTemplates parses index.html and error.html, each together with
// partials.html, from the templates directory of fsys.
func NewTemplates(fsys fs.FS) (*Templates, error) {
	index, err := template.ParseFS(fsys, "templates/partials.html", "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}
	errPage, err := template.ParseFS(fsys, "templates/partials.html", "templates/error.html")
	if err != nil {
		return nil, fmt.Errorf("parse error template: %w", err)
	}
	return &Templates{
		index:   index.Lookup("index.html"),
		errPage: errPage.Lookup("error.html"),
	}, nil
}

// Page renders the index page. Nothing is written to w if rendering fails.
func (t *Templates) Page(w io.Writer, data PageData) error {
	return execute(w, t.index, data)
}

// Error renders the error page.
func (t *Templates) Error(w io.Writer, data ErrorData) error {
	return execute(w, t.errPage, data)
}

func execute(w io.Writer, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute %s: %w", tmpl.Name(), err)
	}
	_, err := buf.WriteTo(w)
	return err
}
