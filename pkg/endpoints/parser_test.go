package endpoints_test

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/JaimeStill/route-docs/pkg/endpoints"
	"github.com/JaimeStill/route-docs/pkg/routes"
)

func paths(ds []endpoints.Descriptor) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Path
	}
	return out
}

func TestParser_APIs(t *testing.T) {
	p := endpoints.New(endpoints.Config{}, nil)

	got, err := p.APIs(endpoints.Options{Nodes: fixtureTree()})
	if err != nil {
		t.Fatalf("APIs() error: %v", err)
	}

	want := []string{"/api/users/", "/api/users/{pk}/", "/api/v1/echo/", "/admin/stats/"}
	if !slices.Equal(paths(got), want) {
		t.Fatalf("APIs() paths = %v, want %v", paths(got), want)
	}

	detail := got[1]
	if detail.Pattern != `^users/(?P<pk>[0-9]+)/$` {
		t.Errorf("Pattern = %q, want the leaf pattern", detail.Pattern)
	}
	if detail.Name != "user-detail" || detail.Method != "GET" {
		t.Errorf("Name, Method = %q, %q", detail.Name, detail.Method)
	}
	if detail.Namespace != "api" {
		t.Errorf("Namespace = %q, want api", detail.Namespace)
	}
	if !detail.View.IsInstance() {
		t.Error("View.IsInstance() = false, want the bound instance")
	}
	if detail.Handler != "endpoints_test.usersView" {
		t.Errorf("Handler = %q", detail.Handler)
	}

	if got[2].Namespace != "api:v1" {
		t.Errorf("nested Namespace = %q, want api:v1", got[2].Namespace)
	}
}

func TestParser_ExcludeNamespaces(t *testing.T) {
	p := endpoints.New(endpoints.Config{}, nil)

	tests := []struct {
		name    string
		exclude []string
		want    []string
	}{
		{"admin", []string{"admin"}, []string{"/api/users/", "/api/users/{pk}/", "/api/v1/echo/"}},
		{"nested", []string{"v1"}, []string{"/api/users/", "/api/users/{pk}/", "/admin/stats/"}},
		{"ancestor prunes descendants", []string{"api"}, []string{"/admin/stats/"}},
		{"unknown", []string{"missing"}, []string{"/api/users/", "/api/users/{pk}/", "/api/v1/echo/", "/admin/stats/"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.APIs(endpoints.Options{Nodes: fixtureTree(), ExcludeNamespaces: tt.exclude})
			if err != nil {
				t.Fatalf("APIs() error: %v", err)
			}
			if !slices.Equal(paths(got), tt.want) {
				t.Errorf("APIs() = %v, want %v", paths(got), tt.want)
			}
			for _, d := range got {
				for _, ns := range strings.Split(d.Namespace, ":") {
					if slices.Contains(tt.exclude, ns) {
						t.Errorf("%s kept from excluded namespace %s", d.Path, ns)
					}
				}
			}
		})
	}
}

func TestParser_Filter(t *testing.T) {
	p := endpoints.New(endpoints.Config{}, nil)

	all, err := p.APIs(endpoints.Options{Nodes: fixtureTree()})
	if err != nil {
		t.Fatalf("APIs() error: %v", err)
	}

	for _, filter := range []string{"users", "api", "v1/echo", "{pk}", "/admin", "zzz"} {
		t.Run(filter, func(t *testing.T) {
			got, err := p.APIs(endpoints.Options{Nodes: fixtureTree(), Filter: filter})
			if err != nil {
				t.Fatalf("APIs() error: %v", err)
			}

			var want []string
			for _, d := range all {
				if strings.Contains(strings.Trim(d.Path, "/"), filter) {
					want = append(want, d.Path)
				}
			}
			if !slices.Equal(paths(got), want) {
				t.Errorf("APIs(filter=%q) = %v, want %v", filter, paths(got), want)
			}
		})
	}
}

func TestParser_Idempotent(t *testing.T) {
	p := endpoints.New(endpoints.Config{}, nil)
	tree := fixtureTree()
	opts := endpoints.Options{Nodes: tree, Filter: "api", ExcludeNamespaces: []string{"v1"}}

	first, err := p.APIs(opts)
	if err != nil {
		t.Fatalf("APIs() error: %v", err)
	}
	second, err := p.APIs(opts)
	if err != nil {
		t.Fatalf("APIs() error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("second call = %v, want %v", paths(second), paths(first))
	}
}

func TestParser_MalformedPattern(t *testing.T) {
	p := endpoints.New(endpoints.Config{}, nil)

	tree := []routes.Node{
		routes.Group{Prefix: "^api/", Nodes: []routes.Node{
			routes.Route{Pattern: "^users/(?P<pk>[0-9]+/$", View: routes.TypeOf[usersView]()},
		}},
	}

	_, err := p.APIs(endpoints.Options{Nodes: tree})
	if !errors.Is(err, routes.ErrMalformedPattern) {
		t.Fatalf("APIs() error = %v, want ErrMalformedPattern", err)
	}
}

func TestParser_MalformedPatternOnUndocumentedRoute(t *testing.T) {
	p := endpoints.New(endpoints.Config{}, nil)

	tree := []routes.Node{
		routes.Route{Pattern: "^broken/(", Handler: nil},
		routes.Route{Pattern: "^ok/$", View: routes.TypeOf[usersView]()},
	}

	got, err := p.APIs(endpoints.Options{Nodes: tree})
	if err != nil {
		t.Fatalf("APIs() error: %v", err)
	}
	if !slices.Equal(paths(got), []string{"/ok/"}) {
		t.Errorf("APIs() = %v, want [/ok/]", paths(got))
	}
}

func TestParser_PointerNodes(t *testing.T) {
	p := endpoints.New(endpoints.Config{}, nil)

	tree := []routes.Node{
		&routes.Group{Prefix: "/api", Nodes: []routes.Node{
			&routes.Route{Method: "GET", Pattern: "/items/{id}", View: routes.TypeOf[usersView]()},
		}},
	}

	got, err := p.APIs(endpoints.Options{Nodes: tree})
	if err != nil {
		t.Fatalf("APIs() error: %v", err)
	}
	if !slices.Equal(paths(got), []string{"/api/items/{id}"}) {
		t.Errorf("APIs() = %v, want [/api/items/{id}]", paths(got))
	}
}

func TestParser_NilPointerNodes(t *testing.T) {
	p := endpoints.New(endpoints.Config{}, nil)

	var group *routes.Group
	var route *routes.Route
	tree := []routes.Node{
		group,
		route,
		routes.Route{Method: "GET", Pattern: "/items/", View: routes.TypeOf[usersView]()},
	}

	got, err := p.APIs(endpoints.Options{Nodes: tree})
	if err != nil {
		t.Fatalf("APIs() error: %v", err)
	}
	if !slices.Equal(paths(got), []string{"/items/"}) {
		t.Errorf("APIs() = %v, want [/items/]", paths(got))
	}
}

func TestParser_Empty(t *testing.T) {
	p := endpoints.New(endpoints.Config{}, nil)

	got, err := p.APIs(endpoints.Options{Nodes: []routes.Node{}})
	if err != nil {
		t.Fatalf("APIs() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("APIs() = %v, want empty", paths(got))
	}
}

func TestParser_TableSelection(t *testing.T) {
	reg := endpoints.NewRegistry()
	reg.Register("root", endpoints.Nodes{
		routes.Route{Pattern: "^root/$", View: routes.TypeOf[usersView]()},
	})
	reg.Register("alt", endpoints.TableFunc(func() []routes.Node {
		return []routes.Node{routes.Route{Pattern: "^alt/$", View: routes.TypeOf[usersView]()}}
	}))

	explicit := []routes.Node{routes.Route{Pattern: "^explicit/$", View: routes.TypeOf[usersView]()}}
	provider := endpoints.Nodes{routes.Route{Pattern: "^provider/$", View: routes.TypeOf[usersView]()}}

	p := endpoints.New(endpoints.Config{Resolver: reg}, nil)

	tests := []struct {
		name string
		opts endpoints.Options
		want string
	}{
		{"root table by default", endpoints.Options{}, "/root/"},
		{"named table", endpoints.Options{Table: "alt"}, "/alt/"},
		{"provider over table", endpoints.Options{Provider: provider, Table: "alt"}, "/provider/"},
		{"nodes over everything", endpoints.Options{Nodes: explicit, Provider: provider, Table: "alt"}, "/explicit/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.APIs(tt.opts)
			if err != nil {
				t.Fatalf("APIs() error: %v", err)
			}
			if len(got) != 1 || got[0].Path != tt.want {
				t.Errorf("APIs() = %v, want [%s]", paths(got), tt.want)
			}
		})
	}
}

func TestParser_UnknownTable(t *testing.T) {
	p := endpoints.New(endpoints.Config{Resolver: endpoints.NewRegistry(), RootTable: "project.urls"}, nil)

	_, err := p.APIs(endpoints.Options{})
	if !errors.Is(err, endpoints.ErrTableNotFound) {
		t.Fatalf("APIs() error = %v, want ErrTableNotFound", err)
	}
	if !strings.Contains(err.Error(), "project.urls") {
		t.Errorf("error %q does not name the table", err)
	}
}

func TestParser_ExcludedOrigins(t *testing.T) {
	p := endpoints.New(endpoints.Config{ExcludedOrigins: []string{}}, nil)

	got, err := p.APIs(endpoints.Options{Nodes: fixtureTree()})
	if err != nil {
		t.Fatalf("APIs() error: %v", err)
	}
	if len(got) == 0 || got[0].Path != "/" {
		t.Errorf("APIs() = %v, want router root listed first when no origins are excluded", paths(got))
	}
}
