package routes

import (
	"net/http"
	"reflect"

	"github.com/JaimeStill/route-docs/pkg/handlers"
)

// RootOrigin is the origin of the built-in Root view. Documentation parsers use it
// to recognize router index endpoints.
var RootOrigin = reflect.TypeFor[Root]().PkgPath()

// Root is the router index view. It lists the named routes and namespaced groups
// of a route tree, keyed by name, with their simplified paths.
type Root struct {
	entries map[string]string
}

// NewRoot builds an index of nodes mounted under prefix. Entries whose pattern
// cannot be simplified are left out.
func NewRoot(prefix string, nodes []Node) *Root {
	entries := make(map[string]string)
	for _, n := range nodes {
		switch n := n.(type) {
		case Route:
			if n.Name == "" {
				continue
			}
			if path, err := Simplify(prefix + n.Pattern); err == nil {
				entries[n.Name] = path
			}
		case Group:
			if n.Namespace == "" {
				continue
			}
			if path, err := Simplify(prefix + n.Prefix); err == nil {
				entries[n.Namespace] = path
			}
		}
	}
	return &Root{entries: entries}
}

// Entries returns a copy of the index.
func (rt *Root) Entries() map[string]string {
	out := make(map[string]string, len(rt.entries))
	for k, v := range rt.entries {
		out[k] = v
	}
	return out
}

func (rt *Root) Methods() []string {
	return []string{http.MethodGet}
}

func (rt *Root) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, rt.entries)
}
