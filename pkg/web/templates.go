// Package web provides infrastructure for serving HTML pages with Go templates.
// Templates are parsed once at startup; page handlers only execute them.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// PageDef defines a page by its template file and title.
type PageDef struct {
	Template string
	Title    string
}

// PageData contains the data passed to page templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type PageData struct {
	Title    string
	BasePath string
	Data     any
}

// DataFunc loads the page-specific data for a request.
type DataFunc func(r *http.Request) (any, error)

// TemplateSet holds pre-parsed templates and a base path for URL generation.
type TemplateSet struct {
	pages    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layouts matched by layoutGlob and clones them for
// each page found under pageDir. Parsing at startup surfaces template errors
// before the first request.
func NewTemplateSet(fsys fs.FS, layoutGlob, pageDir, basePath string, funcs template.FuncMap, pages []PageDef) (*TemplateSet, error) {
	layouts, err := template.New("").Funcs(funcs).ParseFS(fsys, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	pageSub, err := fs.Sub(fsys, pageDir)
	if err != nil {
		return nil, err
	}

	pageTemplates := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", p.Template, err)
		}
		if _, err := t.ParseFS(pageSub, p.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", p.Template, err)
		}
		pageTemplates[p.Template] = t
	}

	return &TemplateSet{
		pages:    pageTemplates,
		basePath: basePath,
	}, nil
}

// PageHandler returns an HTTP handler that renders page with the data returned
// by load. A load error is reported with onError.
func (ts *TemplateSet) PageHandler(layout string, page PageDef, load DataFunc, onError func(http.ResponseWriter, *http.Request, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := PageData{
			Title:    page.Title,
			BasePath: ts.basePath,
		}
		if load != nil {
			d, err := load(r)
			if err != nil {
				onError(w, r, err)
				return
			}
			data.Data = d
		}
		if err := ts.Render(w, layout, page.Template, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// Render executes the named layout template with the given page data. Output is
// buffered so a failed render writes nothing.
func (ts *TemplateSet) Render(w http.ResponseWriter, layoutName, pagePath string, data PageData) error {
	t, ok := ts.pages[pagePath]
	if !ok {
		return fmt.Errorf("template not found: %s", pagePath)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutName, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}
