// Package endpoints flattens route trees into documentable endpoint descriptors
// and groups them into top-level resources for API documentation.
package endpoints

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/JaimeStill/route-docs/pkg/openapi"
	"github.com/JaimeStill/route-docs/pkg/routes"
	"github.com/JaimeStill/route-docs/pkg/views"
)

// DefaultRootTable is the table resolved when no tree, provider, or table is given.
const DefaultRootTable = "root"

// formatSuffix marks machine-format variants of an endpoint such as /users.{format}.
const formatSuffix = ".{format}"

// Descriptor is a single documentable endpoint.
type Descriptor struct {
	Path      string             `json:"path" yaml:"path"`
	Pattern   string             `json:"pattern" yaml:"pattern"`
	Method    string             `json:"method,omitempty" yaml:"method,omitempty"`
	Name      string             `json:"name,omitempty" yaml:"name,omitempty"`
	Namespace string             `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Handler   string             `json:"handler" yaml:"handler"`
	View      routes.View        `json:"-" yaml:"-"`
	Operation *openapi.Operation `json:"-" yaml:"-"`
}

// Options selects the tree to flatten and restricts the output.
//
// The tree comes from the first of Nodes, Provider, Table that is set; with none
// set the parser's root table is resolved.
type Options struct {
	Nodes             []routes.Node
	Provider          TableProvider
	Table             string
	Filter            string
	ExcludeNamespaces []string
}

// Config configures a Parser. Zero fields take defaults.
type Config struct {
	// Capability decides which views are documentable. Default: views.Default.
	Capability views.Capability

	// Resolver resolves table references. Default: the process-wide registry.
	Resolver TableResolver

	// RootTable is resolved when Options names no tree. Default: "root".
	RootTable string

	// ExcludedOrigins lists package paths whose views are router internals.
	// Default: routes.RootOrigin.
	ExcludedOrigins []string
}

// Parser flattens route trees. It holds no per-call state and is safe for
// concurrent use.
type Parser struct {
	capability views.Capability
	resolver   TableResolver
	rootTable  string
	origins    []string
	logger     *slog.Logger
}

// New creates a parser. A nil logger discards output.
func New(cfg Config, logger *slog.Logger) *Parser {
	if cfg.Capability == nil {
		cfg.Capability = views.Default
	}
	if cfg.Resolver == nil {
		cfg.Resolver = registry
	}
	if cfg.RootTable == "" {
		cfg.RootTable = DefaultRootTable
	}
	if cfg.ExcludedOrigins == nil {
		cfg.ExcludedOrigins = []string{routes.RootOrigin}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Parser{
		capability: cfg.Capability,
		resolver:   cfg.Resolver,
		rootTable:  cfg.RootTable,
		origins:    slices.Clone(cfg.ExcludedOrigins),
		logger:     logger,
	}
}

// APIs returns every documentable endpoint of the selected tree in depth-first,
// left-to-right order.
func (p *Parser) APIs(opts Options) ([]Descriptor, error) {
	nodes, err := p.tree(opts)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]struct{}, len(opts.ExcludeNamespaces))
	for _, ns := range opts.ExcludeNamespaces {
		excluded[ns] = struct{}{}
	}

	w := walker{
		parser:   p,
		filter:   opts.Filter,
		excluded: excluded,
	}
	if err := w.walk(nodes, "", nil); err != nil {
		return nil, err
	}

	p.logger.Debug(
		"flattened route tree",
		"endpoints", len(w.out),
		"filter", opts.Filter,
		"excluded_namespaces", opts.ExcludeNamespaces,
	)
	return w.out, nil
}

func (p *Parser) tree(opts Options) ([]routes.Node, error) {
	switch {
	case opts.Nodes != nil:
		return opts.Nodes, nil
	case opts.Provider != nil:
		return opts.Provider.Nodes(), nil
	}

	ref := opts.Table
	if ref == "" {
		ref = p.rootTable
	}
	nodes, err := p.resolver.Resolve(ref)
	if err != nil {
		return nil, fmt.Errorf("resolve route table: %w", err)
	}
	return nodes, nil
}

func (p *Parser) internal(v routes.View) bool {
	return slices.Contains(p.origins, v.Origin())
}

type walker struct {
	parser   *Parser
	filter   string
	excluded map[string]struct{}
	out      []Descriptor
}

func (w *walker) walk(nodes []routes.Node, prefix string, namespaces []string) error {
	for _, n := range nodes {
		switch v := n.(type) {
		case *routes.Route:
			if v == nil {
				continue
			}
			n = *v
		case *routes.Group:
			if v == nil {
				continue
			}
			n = *v
		}

		switch n := n.(type) {
		case routes.Route:
			if err := w.leaf(n, prefix, namespaces); err != nil {
				return err
			}
		case routes.Group:
			if _, skip := w.excluded[n.Namespace]; skip && n.Namespace != "" {
				continue
			}
			chain := namespaces
			if n.Namespace != "" {
				chain = append(slices.Clip(namespaces), n.Namespace)
			}
			if err := w.walk(n.Nodes, prefix+n.Prefix, chain); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *walker) leaf(r routes.Route, prefix string, namespaces []string) error {
	view, ok := w.parser.capability(r.View)
	if !ok || w.parser.internal(view) {
		return nil
	}

	path, err := routes.Simplify(prefix + r.Pattern)
	if err != nil {
		return err
	}

	if strings.Contains(path, formatSuffix) {
		return nil
	}
	if w.filter != "" && !strings.Contains(strings.Trim(path, "/"), w.filter) {
		return nil
	}

	w.out = append(w.out, Descriptor{
		Path:      path,
		Pattern:   r.Pattern,
		Method:    r.Method,
		Name:      r.Name,
		Namespace: strings.Join(namespaces, ":"),
		Handler:   handlerName(view),
		View:      view,
		Operation: r.OpenAPI,
	})
	return nil
}

// handlerName labels a view by its instance's String method when it has one and
// by its type otherwise.
func handlerName(v routes.View) string {
	if s, ok := v.Value().(fmt.Stringer); ok {
		return s.String()
	}
	return v.String()
}
