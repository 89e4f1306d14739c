// Package routes provides route registration and builds the service's HTTP
// multiplexer from a route tree.
package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	pkgroutes "github.com/JaimeStill/route-docs/pkg/routes"
)

type routes struct {
	nodes  []pkgroutes.Node
	logger *slog.Logger
}

// New creates a route system with the specified logger.
func New(logger *slog.Logger) pkgroutes.System {
	return &routes{
		logger: logger,
		nodes:  []pkgroutes.Node{},
	}
}

// Nodes returns the registered route tree in registration order.
func (r *routes) Nodes() []pkgroutes.Node {
	return r.nodes
}

// RegisterRoute adds a route to the route system.
func (r *routes) RegisterRoute(route pkgroutes.Route) {
	r.nodes = append(r.nodes, route)
}

// RegisterGroup adds a route group to the route system.
func (r *routes) RegisterGroup(group pkgroutes.Group) {
	r.nodes = append(r.nodes, group)
}

// Build constructs an http.Handler serving every registered route. Each route is
// mounted at its simplified path; a path ending in "/" matches exactly rather
// than as a subtree. Leaves without a handler are skipped.
func (r *routes) Build() (http.Handler, error) {
	mux := http.NewServeMux()
	seen := make(map[string]bool)
	if err := r.register(mux, seen, "", r.nodes); err != nil {
		return nil, err
	}
	r.logger.Debug("routes built", "patterns", len(seen))
	return mux, nil
}

func (r *routes) register(mux *http.ServeMux, seen map[string]bool, prefix string, nodes []pkgroutes.Node) error {
	for _, n := range nodes {
		switch v := n.(type) {
		case *pkgroutes.Group:
			if v == nil {
				continue
			}
			n = *v
		case *pkgroutes.Route:
			if v == nil {
				continue
			}
			n = *v
		}

		switch n := n.(type) {
		case pkgroutes.Group:
			if err := r.register(mux, seen, prefix+n.Prefix, n.Nodes); err != nil {
				return err
			}
		case pkgroutes.Route:
			if err := r.route(mux, seen, prefix, n); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *routes) route(mux *http.ServeMux, seen map[string]bool, prefix string, route pkgroutes.Route) error {
	handler := route.ServeHandler()
	if handler == nil {
		r.logger.Warn("route has no handler", "pattern", prefix+route.Pattern, "view", route.View.String())
		return nil
	}

	path, err := pkgroutes.Simplify(prefix + route.Pattern)
	if err != nil {
		return err
	}
	if strings.HasSuffix(path, "/") {
		path += "{$}"
	}

	pattern := path
	if route.Method != "" {
		pattern = route.Method + " " + path
	}
	if seen[pattern] {
		return fmt.Errorf("duplicate route %q", pattern)
	}
	seen[pattern] = true

	return handle(mux, pattern, handler)
}

// handle registers pattern, reporting the mux's registration panics as errors.
func handle(mux *http.ServeMux, pattern string, handler http.Handler) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("register %q: %v", pattern, rec)
		}
	}()
	mux.Handle(pattern, handler)
	return nil
}
