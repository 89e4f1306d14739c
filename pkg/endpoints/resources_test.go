package endpoints_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/JaimeStill/route-docs/pkg/endpoints"
)

func TestTopLevelPaths(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  []string
	}{
		{"distinct roots", []string{"/doc/index", "/api/{version}/echo"}, []string{"api", "doc"}},
		{"single concrete path", []string{"/api/echo"}, []string{"api/echo"}},
		{"placeholder after root", []string{"/api/{version}/echo"}, []string{"api"}},
		{"shared versioned prefix", []string{"/api/v{number}/", "/api/v{number}/echo"}, []string{"api/v{number}"}},
		{"single versioned path", []string{"/api/v{number}/echo"}, []string{"api/v{number}/echo"}},
		{"mixed versions", []string{"/api/{version}/", "/api/{version}/echo", "/api/v{number}/echo"}, []string{"api"}},
		{
			"mixed versions with roots",
			[]string{"/api/{version}/", "/api/{version}/echo", "/api/v{number}/", "/api/v{number}/echo"},
			[]string{"api"},
		},
		{"partial segment overlap", []string{"/api1/x", "/api2/y"}, []string{"api1", "api2"}},
		{"no slash", []string{"top"}, []string{"top"}},
		{"root path", []string{"/"}, []string{""}},
		{"root alongside resource", []string{"/", "/api/x"}, []string{"", "api"}},
		{"sorted by final segment", []string{"/api/v1/zeta", "/api/v1/alpha", "/api/v1/mid/x"}, []string{"api/v1/alpha", "api/v1/mid", "api/v1/zeta"}},
		{"empty", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := endpoints.TopLevelPaths(tt.paths)
			if !slices.Equal(got, tt.want) {
				t.Errorf("TopLevelPaths(%q) = %q, want %q", tt.paths, got, tt.want)
			}
		})
	}
}

func TestTopLevelAPIs(t *testing.T) {
	ds := []endpoints.Descriptor{{Path: "/doc/index"}, {Path: "/api/{version}/echo"}}

	got := endpoints.TopLevelAPIs(ds)
	if !slices.Equal(got, []string{"api", "doc"}) {
		t.Errorf("TopLevelAPIs() = %q, want [api doc]", got)
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/users/{pk}/", "api/users"},
		{"/api/v{number}/echo", "api/v{number}/echo"},
		{"/{id}", "{id}"},
		{"/", ""},
		{"api/echo/", "api/echo"},
	}

	for _, tt := range tests {
		if got := endpoints.BasePath(tt.path); got != tt.want {
			t.Errorf("BasePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

var groupingPaths = []string{
	"/top",
	"/doc/index",
	"/api/v1/echo",
	"/api/{version}/",
	"/api/{version}/echo",
	"/api/v{version}/",
	"/api/v{version}/echo/",
	"/api/v{version}/echo/{x}",
}

// subsets yields every subset of groupingPaths in index order.
func subsets() [][]string {
	n := len(groupingPaths)
	out := make([][]string, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		var s []string
		for i := range n {
			if mask&(1<<i) != 0 {
				s = append(s, groupingPaths[i])
			}
		}
		out = append(out, s)
	}
	return out
}

func covers(resource, base string) bool {
	return base == resource || strings.HasPrefix(base, resource+"/")
}

func TestTopLevelPaths_Properties(t *testing.T) {
	for _, set := range subsets() {
		got := endpoints.TopLevelPaths(set)

		for _, p := range set {
			base := endpoints.BasePath(p)
			matches := 0
			for _, r := range got {
				if covers(r, base) {
					matches++
				}
			}
			if matches != 1 {
				t.Errorf("%q: base %q matched %d resources in %q, want 1", set, base, matches, got)
			}
		}

		for _, a := range got {
			for _, b := range got {
				if a != b && strings.HasPrefix(b, a+"/") {
					t.Errorf("%q: %q is an ancestor of %q", set, a, b)
				}
			}
		}

		reversed := slices.Clone(set)
		slices.Reverse(reversed)
		if r := endpoints.TopLevelPaths(reversed); !slices.Equal(r, got) {
			t.Errorf("%q: reversed input gave %q, want %q", set, r, got)
		}
	}
}

func TestGroup(t *testing.T) {
	ds := []endpoints.Descriptor{
		{Path: "/api/users/", Name: "user-list"},
		{Path: "/doc/index", Name: "doc"},
		{Path: "/api/users/{pk}/", Name: "user-detail"},
		{Path: "/api/{version}/echo", Name: "echo"},
	}

	got := endpoints.Group(ds)

	if len(got) != 2 {
		t.Fatalf("Group() returned %d resources, want 2", len(got))
	}
	if got[0].Path != "api" || got[1].Path != "doc" {
		t.Fatalf("resource paths = %q, %q, want api, doc", got[0].Path, got[1].Path)
	}

	var names []string
	for _, e := range got[0].Endpoints {
		names = append(names, e.Name)
	}
	if !slices.Equal(names, []string{"user-list", "user-detail", "echo"}) {
		t.Errorf("api endpoints = %v, want [user-list user-detail echo]", names)
	}
	if len(got[1].Endpoints) != 1 || got[1].Endpoints[0].Name != "doc" {
		t.Errorf("doc endpoints = %v", got[1].Endpoints)
	}
}

func TestGroup_CoversEveryEndpoint(t *testing.T) {
	for _, set := range subsets() {
		ds := make([]endpoints.Descriptor, len(set))
		for i, p := range set {
			ds[i] = endpoints.Descriptor{Path: p}
		}

		total := 0
		for _, r := range endpoints.Group(ds) {
			total += len(r.Endpoints)
			for _, e := range r.Endpoints {
				if !covers(r.Path, endpoints.BasePath(e.Path)) {
					t.Errorf("%q: %s grouped under %q", set, e.Path, r.Path)
				}
			}
		}
		if total != len(ds) {
			t.Errorf("%q: grouped %d endpoints, want %d", set, total, len(ds))
		}
	}
}
