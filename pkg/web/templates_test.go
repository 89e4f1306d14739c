package web_test

import (
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/JaimeStill/route-docs/pkg/web"
)

var testFS = fstest.MapFS{
	"layouts/base.html": {Data: []byte(`{{ define "layout" }}<title>{{ .Title }}</title><a href="{{ .BasePath }}">home</a>{{ template "content" . }}{{ end }}`)},
	"pages/list.html":   {Data: []byte(`{{ define "content" }}{{ range .Data }}<li>{{ upper . }}</li>{{ end }}{{ end }}`)},
}

var funcs = template.FuncMap{"upper": strings.ToUpper}

func TestTemplateSet_PageHandler(t *testing.T) {
	page := web.PageDef{Template: "list.html", Title: "Items"}
	ts, err := web.NewTemplateSet(testFS, "layouts/*.html", "pages", "/docs/", funcs, []web.PageDef{page})
	if err != nil {
		t.Fatalf("NewTemplateSet() error: %v", err)
	}

	load := func(r *http.Request) (any, error) { return []string{"a", "<b>"}, nil }
	handler := ts.PageHandler("layout", page, load, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/ui/", nil))

	body := rec.Body.String()
	for _, want := range []string{"<title>Items</title>", `href="/docs/"`, "<li>A</li>", "<li>&lt;B&gt;</li>"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q: %s", want, body)
		}
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestTemplateSet_LoadError(t *testing.T) {
	page := web.PageDef{Template: "list.html"}
	ts, err := web.NewTemplateSet(testFS, "layouts/*.html", "pages", "/", funcs, []web.PageDef{page})
	if err != nil {
		t.Fatalf("NewTemplateSet() error: %v", err)
	}

	var got error
	load := func(r *http.Request) (any, error) { return nil, errors.New("boom") }
	onError := func(w http.ResponseWriter, r *http.Request, err error) {
		got = err
		w.WriteHeader(http.StatusTeapot)
	}

	rec := httptest.NewRecorder()
	ts.PageHandler("layout", page, load, onError).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got == nil || rec.Code != http.StatusTeapot {
		t.Errorf("onError not called: err=%v status=%d", got, rec.Code)
	}
}

func TestNewTemplateSet_Errors(t *testing.T) {
	if _, err := web.NewTemplateSet(testFS, "missing/*.html", "pages", "/", funcs, nil); err == nil {
		t.Error("NewTemplateSet() with no layouts succeeded, want error")
	}
	if _, err := web.NewTemplateSet(testFS, "layouts/*.html", "pages", "/", funcs, []web.PageDef{{Template: "absent.html"}}); err == nil {
		t.Error("NewTemplateSet() with missing page succeeded, want error")
	}
}

func TestRender_UnknownPage(t *testing.T) {
	ts, err := web.NewTemplateSet(testFS, "layouts/*.html", "pages", "/", funcs, nil)
	if err != nil {
		t.Fatalf("NewTemplateSet() error: %v", err)
	}
	if err := ts.Render(httptest.NewRecorder(), "layout", "nope.html", web.PageData{}); err == nil {
		t.Error("Render() succeeded, want error")
	}
}
