package routetable_test

import (
	"net/http"
	"slices"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/JaimeStill/route-docs/pkg/endpoints"
	"github.com/JaimeStill/route-docs/pkg/routes"
	"github.com/JaimeStill/route-docs/pkg/routetable"
)

type itemsView struct{}

func (itemsView) ServeHTTP(w http.ResponseWriter, r *http.Request) {}
func (itemsView) Methods() []string                                { return []string{http.MethodGet} }

func noop(w http.ResponseWriter, r *http.Request) {}

func chiRouter() chi.Router {
	api := chi.NewRouter()
	api.Method(http.MethodGet, "/items", itemsView{})
	api.Method(http.MethodPost, "/items", itemsView{})
	api.With(func(next http.Handler) http.Handler { return next }).
		Method(http.MethodGet, "/items/{id:[0-9]+}", itemsView{})
	api.Get("/ping", noop)

	r := chi.NewRouter()
	r.Mount("/api", api)
	r.Handle("/static/*", http.HandlerFunc(noop))
	return r
}

func TestFromChi(t *testing.T) {
	nodes := routetable.FromChi(chiRouter())

	var group routes.Group
	for _, n := range nodes {
		if g, ok := n.(routes.Group); ok {
			group = g
		}
	}
	if group.Prefix != "/api" || group.Namespace != "api" {
		t.Fatalf("group = %q %q, want /api api", group.Prefix, group.Namespace)
	}

	p := endpoints.New(endpoints.Config{}, nil)
	got, err := p.APIs(endpoints.Options{Nodes: nodes})
	if err != nil {
		t.Fatalf("APIs() error: %v", err)
	}

	var keys []string
	for _, d := range got {
		keys = append(keys, d.Method+" "+d.Path)
	}
	slices.Sort(keys)

	want := []string{"GET /api/items", "GET /api/items/{id}", "POST /api/items"}
	if !slices.Equal(keys, want) {
		t.Errorf("APIs() = %v, want %v", keys, want)
	}
}

func TestFromChi_AllMethods(t *testing.T) {
	for _, n := range routetable.FromChi(chiRouter()) {
		r, ok := n.(routes.Route)
		if !ok || r.Pattern != "/static/*" {
			continue
		}
		if r.Method != "" {
			t.Errorf("Method = %q, want empty for an all-method handler", r.Method)
		}
		if r.Handler == nil {
			t.Error("Handler = nil")
		}
		return
	}
	t.Error("FromChi() dropped /static/*")
}
