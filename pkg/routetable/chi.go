package routetable

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/JaimeStill/route-docs/pkg/routes"
	"github.com/JaimeStill/route-docs/pkg/views"
)

// FromChi converts the routes of a chi router into a route tree. Mounted
// sub-routers become groups namespaced by their mount path. Each method handler
// becomes a leaf, and a handler mounted for every method becomes a single leaf
// without a method. Handlers implementing views.APIView keep their identity as the
// leaf view and all others are plain handlers.
func FromChi(r chi.Routes) []routes.Node {
	var nodes []routes.Node
	for _, route := range r.Routes() {
		if route.SubRoutes != nil {
			prefix := strings.TrimSuffix(route.Pattern, "/*")
			nodes = append(nodes, routes.Group{
				Prefix:    prefix,
				Namespace: strings.Trim(prefix, "/"),
				Nodes:     FromChi(route.SubRoutes),
			})
			continue
		}

		for _, m := range methodsOf(route) {
			h := endpoint(route.Handlers[m])
			leaf := routes.Route{
				Method:  m,
				Pattern: route.Pattern,
				Handler: h,
			}
			if m == "*" {
				leaf.Method = ""
			}
			if v, ok := h.(views.APIView); ok {
				leaf.View = routes.Instance(v)
			}
			nodes = append(nodes, leaf)
		}
	}
	return nodes
}

// methodsOf lists the methods of a chi route in sorted order. A handler
// registered for every method is reported once as "*".
func methodsOf(route chi.Route) []string {
	if _, ok := route.Handlers["*"]; ok {
		return []string{"*"}
	}
	methods := make([]string, 0, len(route.Handlers))
	for m := range route.Handlers {
		methods = append(methods, m)
	}
	slices.Sort(methods)
	return methods
}

// endpoint unwraps inline middleware chains created with chi's With.
func endpoint(h http.Handler) http.Handler {
	for {
		chain, ok := h.(*chi.ChainHandler)
		if !ok {
			return h
		}
		h = chain.Endpoint
	}
}
