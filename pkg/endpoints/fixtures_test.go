package endpoints_test

import (
	"net/http"

	"github.com/JaimeStill/route-docs/pkg/routes"
)

type usersView struct{}

func (usersView) ServeHTTP(w http.ResponseWriter, r *http.Request) {}
func (usersView) Methods() []string                                { return []string{"GET", "POST"} }

type docView struct{ usersView }

func (docView) APIDocs() {}

func plain(w http.ResponseWriter, r *http.Request) {}

func fixtureTree() []routes.Node {
	return []routes.Node{
		routes.Route{Method: "GET", Pattern: "^$", Name: "index", View: routes.Instance(routes.NewRoot("", nil))},
		routes.Group{
			Prefix:    "^api/",
			Namespace: "api",
			Nodes: []routes.Node{
				routes.Route{Method: "GET", Pattern: "^users/$", Name: "user-list", View: routes.TypeOf[usersView]()},
				routes.Route{Method: "GET", Pattern: `^users/(?P<pk>[0-9]+)/$`, Name: "user-detail", View: routes.Instance(usersView{})},
				routes.Route{Method: "GET", Pattern: `^users\.(?P<format>[a-z0-9]+)/?$`, View: routes.TypeOf[usersView]()},
				routes.Group{
					Prefix:    "^v1/",
					Namespace: "v1",
					Nodes: []routes.Node{
						routes.Route{Method: "GET", Pattern: "^echo/$", Name: "echo", View: routes.TypeOf[usersView]()},
					},
				},
			},
		},
		routes.Route{Method: "GET", Pattern: "^docs/$", View: routes.TypeOf[docView]()},
		routes.Route{Method: "GET", Pattern: "^health/$", Handler: http.HandlerFunc(plain)},
		routes.Group{
			Prefix:    "^admin/",
			Namespace: "admin",
			Nodes: []routes.Node{
				routes.Route{Method: "GET", Pattern: "^stats/$", Name: "stats", View: routes.TypeOf[usersView]()},
			},
		},
	}
}
