// Package routes defines the declarative route tree consumed by the route system
// and by the endpoint documentation parser.
//
// A tree is an ordered slice of Node values. Each Node is either a Route (a leaf
// binding one pattern to one view) or a Group (a prefix that delegates to nested
// nodes, optionally tagged with a namespace).
package routes

import (
	"net/http"

	"github.com/JaimeStill/route-docs/pkg/openapi"
)

// Node is a single entry in a route tree. It is implemented by Route and Group only.
type Node interface {
	node()
}

// Route binds a single URL pattern to the view that serves it.
type Route struct {
	Method  string
	Pattern string
	Name    string
	View    View
	Handler http.Handler
	OpenAPI *openapi.Operation
}

// Group represents a collection of nodes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Namespace   string
	Tags        []string
	Description string
	Nodes       []Node
}

func (Route) node() {}
func (Group) node() {}

// ServeHandler returns the handler registered for the route. An explicit Handler
// takes precedence; otherwise a bound view instance that implements http.Handler is used.
func (r Route) ServeHandler() http.Handler {
	if r.Handler != nil {
		return r.Handler
	}
	if h, ok := r.View.Value().(http.Handler); ok {
		return h
	}
	return nil
}
