// Package docs serves API documentation generated from the service route tree:
// a JSON resource listing, per-resource declarations, an OpenAPI document, and
// an HTML reference page.
package docs

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.yaml.in/yaml/v4"

	"github.com/JaimeStill/route-docs/pkg/endpoints"
	"github.com/JaimeStill/route-docs/pkg/handlers"
	"github.com/JaimeStill/route-docs/pkg/openapi"
	"github.com/JaimeStill/route-docs/pkg/routes"
	"github.com/JaimeStill/route-docs/pkg/views"
	"github.com/JaimeStill/route-docs/pkg/web"
)

//go:embed templates
var templateFS embed.FS

// ErrMissingPath indicates a resource declaration request without a path.
var ErrMissingPath = errors.New("missing resource path")

// Config configures the documentation handler.
type Config struct {
	// BasePath is the mount point of the documentation views, with a trailing "/".
	BasePath string

	Version string
	Options endpoints.Options
	OpenAPI openapi.Config

	// Registerer receives the handler's metrics. Nil leaves them unregistered.
	Registerer prometheus.Registerer
}

// Listing is the resource listing document.
type Listing struct {
	APIVersion string        `json:"apiVersion" yaml:"apiVersion"`
	BasePath   string        `json:"basePath" yaml:"basePath"`
	Resources  []ResourceRef `json:"resources" yaml:"resources"`
}

// ResourceRef points to the declaration of one top-level resource.
type ResourceRef struct {
	Path      string `json:"path" yaml:"path"`
	Href      string `json:"href" yaml:"href"`
	Endpoints int    `json:"endpoints" yaml:"endpoints"`
}

// Declaration lists the endpoints of one resource.
type Declaration struct {
	APIVersion   string                 `json:"apiVersion" yaml:"apiVersion"`
	ResourcePath string                 `json:"resourcePath" yaml:"resourcePath"`
	APIs         []endpoints.Descriptor `json:"apis" yaml:"apis"`
}

type uiData struct {
	Description string
	Version     string
	Resources   []endpoints.Resource
}

// Handler is the documentation view. It is itself a views.DocView, so the
// parser leaves it out of the documentation it serves.
type Handler struct {
	parser    *endpoints.Parser
	cfg       Config
	templates *web.TemplateSet
	page      web.PageDef
	metrics   *metrics
	logger    *slog.Logger
}

// New creates the documentation handler. Templates are parsed immediately.
func New(parser *endpoints.Parser, cfg Config, logger *slog.Logger) (*Handler, error) {
	if cfg.BasePath == "" {
		cfg.BasePath = "/docs/"
	}
	if err := cfg.OpenAPI.Finalize(nil); err != nil {
		return nil, err
	}
	page := web.PageDef{Template: "ui.html", Title: cfg.OpenAPI.Title}

	ts, err := web.NewTemplateSet(
		templateFS,
		"templates/layouts/*.html",
		"templates/pages",
		cfg.BasePath,
		template.FuncMap{
			"methods":     describeMethods,
			"resourceURL": resourceURL,
		},
		[]web.PageDef{page},
	)
	if err != nil {
		return nil, err
	}

	return &Handler{
		parser:    parser,
		cfg:       cfg,
		templates: ts,
		page:      page,
		metrics:   newMetrics(cfg.Registerer),
		logger:    logger.With("module", "docs"),
	}, nil
}

// Routes returns the documentation route group mounted at the base path.
func (h *Handler) Routes() routes.Group {
	view := routes.Instance(h)
	return routes.Group{
		Prefix:      h.cfg.BasePath,
		Namespace:   "docs",
		Tags:        []string{"Documentation"},
		Description: "Generated API documentation",
		Nodes: []routes.Node{
			routes.Route{Method: http.MethodGet, Pattern: "", Name: "docs-listing", View: view},
			routes.Route{Method: http.MethodGet, Pattern: "resource/", Name: "docs-resource", View: view},
			routes.Route{Method: http.MethodGet, Pattern: "openapi.json", Name: "docs-openapi", View: view},
			routes.Route{Method: http.MethodGet, Pattern: "openapi.yaml", Name: "docs-openapi-yaml", View: view},
			routes.Route{Method: http.MethodGet, Pattern: "ui/", Name: "docs-ui", View: view},
		},
	}
}

func (h *Handler) Methods() []string {
	return []string{http.MethodGet}
}

func (h *Handler) APIDocs() {}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	view := strings.TrimPrefix(r.URL.Path, h.cfg.BasePath)
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	defer func() {
		h.metrics.requests.WithLabelValues(viewLabel(view), strconv.Itoa(rec.status)).Inc()
	}()

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		handlers.RespondMethodNotAllowed(rec, h.Methods()...)
		return
	}

	switch view {
	case "":
		h.listing(rec, r)
	case "resource/":
		h.declaration(rec, r)
	case "openapi.json":
		h.openAPI(rec, r, false)
	case "openapi.yaml":
		h.openAPI(rec, r, true)
	case "ui/":
		h.templates.PageHandler("docs", h.page, h.uiData, h.fail).ServeHTTP(rec, r)
	default:
		handlers.RespondJSON(rec, http.StatusNotFound, handlers.ErrorResponse{Error: http.StatusText(http.StatusNotFound)})
	}
}

func (h *Handler) listing(w http.ResponseWriter, r *http.Request) {
	apis, err := h.parser.APIs(h.cfg.Options)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.metrics.endpoints.Set(float64(len(apis)))

	resources := endpoints.Group(apis)
	refs := make([]ResourceRef, len(resources))
	for i, res := range resources {
		refs[i] = ResourceRef{
			Path:      res.Path,
			Href:      resourceURL(h.cfg.BasePath, res.Path),
			Endpoints: len(res.Endpoints),
		}
	}

	handlers.RespondJSON(w, http.StatusOK, Listing{
		APIVersion: h.cfg.Version,
		BasePath:   h.cfg.BasePath,
		Resources:  refs,
	})
}

func (h *Handler) declaration(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(r.URL.Query().Get("path"), "/")
	if path == "" {
		h.fail(w, r, ErrMissingPath)
		return
	}

	all, err := h.parser.APIs(h.cfg.Options)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	apis := make([]endpoints.Descriptor, 0, len(all))
	for _, a := range all {
		if strings.Contains(strings.Trim(a.Path, "/"), path) {
			apis = append(apis, a)
		}
	}

	handlers.RespondJSON(w, http.StatusOK, Declaration{
		APIVersion:   h.cfg.Version,
		ResourcePath: "/" + path,
		APIs:         apis,
	})
}

func (h *Handler) openAPI(w http.ResponseWriter, r *http.Request, asYAML bool) {
	apis, err := h.parser.APIs(h.cfg.Options)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	spec := h.cfg.OpenAPI.Spec(h.cfg.Version)
	endpoints.AddToSpec(spec, endpoints.Group(apis))

	var body []byte
	if asYAML {
		body, err = yaml.Marshal(spec)
		w.Header().Set("Content-Type", "application/yaml")
	} else {
		body, err = openapi.MarshalJSON(spec)
		w.Header().Set("Content-Type", "application/json")
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *Handler) uiData(r *http.Request) (any, error) {
	apis, err := h.parser.APIs(h.cfg.Options)
	if err != nil {
		return nil, err
	}
	return uiData{
		Description: h.cfg.OpenAPI.Description,
		Version:     h.cfg.Version,
		Resources:   endpoints.Group(apis),
	}, nil
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := endpoints.MapHTTPStatus(err)
	if errors.Is(err, ErrMissingPath) {
		status = http.StatusBadRequest
	}
	handlers.RespondError(w, r, h.logger, status, err)
}

func resourceURL(base, path string) string {
	return base + "resource/?path=" + url.QueryEscape(path)
}

func describeMethods(d endpoints.Descriptor) string {
	if d.Method != "" {
		return d.Method
	}
	if m := views.Methods(d.View); len(m) > 0 {
		return strings.Join(m, ", ")
	}
	return "ANY"
}

func viewLabel(view string) string {
	switch view {
	case "":
		return "listing"
	case "resource/":
		return "resource"
	case "openapi.json", "openapi.yaml":
		return "openapi"
	case "ui/":
		return "ui"
	default:
		return "unknown"
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
