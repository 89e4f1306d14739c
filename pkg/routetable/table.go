// Package routetable loads route trees from YAML route-table files and from chi
// routers so they can be documented without running the service.
package routetable

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/JaimeStill/route-docs/pkg/routes"
)

// Leaf kinds accepted in route-table files.
const (
	KindAPI  = "api"
	KindDocs = "docs"
	KindRoot = "root"
	KindFunc = "func"
)

var (
	// ErrInvalidTable indicates a route-table file that does not describe a tree.
	ErrInvalidTable = errors.New("invalid route table")

	// ErrIncludeCycle indicates route-table files that include each other.
	ErrIncludeCycle = errors.New("route table include cycle")
)

// File is the top-level document of a route-table file.
type File struct {
	Routes []Entry `yaml:"routes"`
}

// Entry is one node of a route-table file. Entries with a routes list or an
// include are groups; all others are leaves.
type Entry struct {
	Pattern     string   `yaml:"pattern"`
	Namespace   string   `yaml:"namespace,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Routes      *[]Entry `yaml:"routes,omitempty"`
	Include     string   `yaml:"include,omitempty"`

	Method  string   `yaml:"method,omitempty"`
	Name    string   `yaml:"name,omitempty"`
	View    string   `yaml:"view,omitempty"`
	Kind    string   `yaml:"kind,omitempty"`
	Methods []string `yaml:"methods,omitempty"`
}

func (e Entry) isGroup() bool {
	return e.Routes != nil || e.Include != ""
}

// Parse decodes a route-table document that has no includes.
func Parse(data []byte) ([]routes.Node, error) {
	l := loader{resolving: map[string]bool{}}
	return l.parse(data, "")
}

// Load reads a route-table file. Includes are resolved relative to the
// including file's directory.
func Load(path string) ([]routes.Node, error) {
	l := loader{resolving: map[string]bool{}}
	return l.load(path)
}

type loader struct {
	resolving map[string]bool
}

func (l *loader) load(path string) ([]routes.Node, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if l.resolving[abs] {
		return nil, fmt.Errorf("%w: %s", ErrIncludeCycle, path)
	}
	l.resolving[abs] = true
	defer delete(l.resolving, abs)

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read route table: %w", err)
	}

	nodes, err := l.parse(data, filepath.Dir(abs))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return nodes, nil
}

func (l *loader) parse(data []byte, dir string) ([]routes.Node, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	return l.entries(f.Routes, dir)
}

func (l *loader) entries(entries []Entry, dir string) ([]routes.Node, error) {
	nodes := make([]routes.Node, 0, len(entries))
	for i, e := range entries {
		n, err := l.entry(e, dir)
		if err != nil {
			return nil, fmt.Errorf("routes[%d]: %w", i, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (l *loader) entry(e Entry, dir string) (routes.Node, error) {
	if !e.isGroup() {
		return leaf(e)
	}

	g := routes.Group{
		Prefix:      e.Pattern,
		Namespace:   e.Namespace,
		Tags:        e.Tags,
		Description: e.Description,
	}

	switch {
	case e.Include != "" && e.Routes != nil:
		return nil, fmt.Errorf("%w: %q sets both routes and include", ErrInvalidTable, e.Pattern)
	case e.Include != "":
		if dir == "" {
			return nil, fmt.Errorf("%w: include %q needs a file location", ErrInvalidTable, e.Include)
		}
		path := e.Include
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		nodes, err := l.load(path)
		if err != nil {
			return nil, err
		}
		g.Nodes = nodes
	default:
		nodes, err := l.entries(*e.Routes, dir)
		if err != nil {
			return nil, err
		}
		g.Nodes = nodes
	}
	return g, nil
}

func leaf(e Entry) (routes.Node, error) {
	r := routes.Route{
		Method:  strings.ToUpper(e.Method),
		Pattern: e.Pattern,
		Name:    e.Name,
	}

	name := e.View
	if name == "" {
		name = e.Name
	}

	methods := e.Methods
	if len(methods) == 0 && r.Method != "" {
		methods = []string{r.Method}
	}

	switch strings.ToLower(e.Kind) {
	case "", KindAPI:
		r.View = routes.Instance(&Declared{Name: name, Verbs: methods})
	case KindDocs:
		r.View = routes.Instance(&DeclaredDocs{Declared{Name: name, Verbs: methods}})
	case KindRoot:
		r.View = routes.Instance(routes.NewRoot("", nil))
	case KindFunc:
		r.Handler = http.NotFoundHandler()
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidTable, e.Kind)
	}
	return r, nil
}
