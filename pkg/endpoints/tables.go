package endpoints

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/JaimeStill/route-docs/pkg/routes"
)

// TableProvider supplies an already constructed route tree.
// routes.System satisfies it.
type TableProvider interface {
	Nodes() []routes.Node
}

// TableFunc adapts a function to TableProvider.
type TableFunc func() []routes.Node

func (f TableFunc) Nodes() []routes.Node { return f() }

// Nodes is a fixed route tree usable as a TableProvider.
type Nodes []routes.Node

func (n Nodes) Nodes() []routes.Node { return n }

// TableResolver maps a route table reference to its tree.
type TableResolver interface {
	Resolve(ref string) ([]routes.Node, error)
}

// Registry is a concurrency-safe TableResolver keyed by table name.
type Registry struct {
	tables map[string]TableProvider
	mu     sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]TableProvider)}
}

// Register binds name to provider, replacing any previous binding.
func (r *Registry) Register(name string, provider TableProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[name] = provider
}

// Resolve returns the tree registered under ref.
func (r *Registry) Resolve(ref string) ([]routes.Node, error) {
	r.mu.RLock()
	provider, ok := r.tables[ref]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, ref)
	}
	return provider.Nodes(), nil
}

// Names lists registered table names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var registry = NewRegistry()

// Register binds name to provider in the process-wide registry.
func Register(name string, provider TableProvider) {
	registry.Register(name, provider)
}

// Tables returns the process-wide registry.
func Tables() *Registry {
	return registry
}

// Chain resolves a reference with the first resolver that knows it.
type Chain []TableResolver

func (c Chain) Resolve(ref string) ([]routes.Node, error) {
	for _, r := range c {
		nodes, err := r.Resolve(ref)
		if err == nil {
			return nodes, nil
		}
		if !errors.Is(err, ErrTableNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTableNotFound, ref)
}
