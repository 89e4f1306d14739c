package catalog

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/route-docs/pkg/handlers"
	"github.com/JaimeStill/route-docs/pkg/pagination"
	"github.com/JaimeStill/route-docs/pkg/routes"
)

// ListView serves the item collection. GET pages through it.
type ListView struct {
	sys    System
	page   pagination.Config
	logger *slog.Logger
}

// DetailView serves a single item addressed by the id path value.
type DetailView struct {
	sys    System
	logger *slog.Logger
}

// Routes returns the catalog route group mounted under prefix.
func Routes(sys System, logger *slog.Logger, prefix string, page pagination.Config) routes.Group {
	list := routes.Instance(&ListView{sys: sys, page: page, logger: logger})
	detail := routes.Instance(&DetailView{sys: sys, logger: logger})

	return routes.Group{
		Prefix:      prefix,
		Tags:        []string{"Items"},
		Description: "Catalog items",
		Nodes: []routes.Node{
			routes.Route{Method: "GET", Pattern: "^$", Name: "item-list", View: list, OpenAPI: Spec.List},
			routes.Route{Method: "POST", Pattern: "^$", Name: "item-create", View: list, OpenAPI: Spec.Create},
			routes.Route{Method: "GET", Pattern: `^(?P<id>[0-9a-f-]+)/$`, Name: "item-detail", View: detail, OpenAPI: Spec.Get},
			routes.Route{Method: "DELETE", Pattern: `^(?P<id>[0-9a-f-]+)/$`, Name: "item-delete", View: detail, OpenAPI: Spec.Delete},
		},
	}
}

func (v *ListView) Methods() []string {
	return []string{http.MethodGet, http.MethodPost}
}

func (v *ListView) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		req := pagination.PageRequestFromQuery(r.URL.Query(), v.page)
		result, err := v.sys.Search(r.Context(), req)
		if err != nil {
			handlers.RespondError(w, r, v.logger, MapHTTPStatus(err), err)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, result)
	case http.MethodPost:
		var cmd CreateCommand
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
			handlers.RespondError(w, r, v.logger, http.StatusBadRequest, err)
			return
		}
		item, err := v.sys.Create(r.Context(), cmd)
		if err != nil {
			handlers.RespondError(w, r, v.logger, MapHTTPStatus(err), err)
			return
		}
		handlers.RespondJSON(w, http.StatusCreated, item)
	default:
		handlers.RespondMethodNotAllowed(w, v.Methods()...)
	}
}

func (v *DetailView) Methods() []string {
	return []string{http.MethodGet, http.MethodDelete}
}

func (v *DetailView) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, r, v.logger, http.StatusBadRequest, err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		item, err := v.sys.Get(r.Context(), id)
		if err != nil {
			handlers.RespondError(w, r, v.logger, MapHTTPStatus(err), err)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, item)
	case http.MethodDelete:
		if err := v.sys.Delete(r.Context(), id); err != nil {
			handlers.RespondError(w, r, v.logger, MapHTTPStatus(err), err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		handlers.RespondMethodNotAllowed(w, v.Methods()...)
	}
}

// StatsView reports catalog totals.
type StatsView struct {
	sys    System
	logger *slog.Logger
}

// NewStatsView creates the catalog statistics view.
func NewStatsView(sys System, logger *slog.Logger) *StatsView {
	return &StatsView{sys: sys, logger: logger}
}

func (v *StatsView) Methods() []string {
	return []string{http.MethodGet}
}

func (v *StatsView) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := v.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, r, v.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]int{"items": len(items)})
}
