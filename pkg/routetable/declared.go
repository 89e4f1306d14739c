package routetable

import (
	"net/http"

	"github.com/JaimeStill/route-docs/pkg/handlers"
)

// Declared stands in for an API view named in a route-table file. It documents
// like the real view but does not serve it.
type Declared struct {
	Name  string
	Verbs []string
}

func (d *Declared) Methods() []string {
	return d.Verbs
}

func (d *Declared) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusNotImplemented, handlers.ErrorResponse{
		Error: "view " + d.Name + " is declared in a route table and not served",
	})
}

func (d *Declared) String() string {
	return d.Name
}

// DeclaredDocs stands in for a documentation view named in a route-table file.
type DeclaredDocs struct {
	Declared
}

func (*DeclaredDocs) APIDocs() {}
