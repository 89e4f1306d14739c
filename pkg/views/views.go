// Package views defines the handler capabilities that make a route documentable
// and the predicate the endpoint parser uses to test them.
package views

import (
	"net/http"
	"reflect"

	"github.com/JaimeStill/route-docs/pkg/routes"
)

// APIView is implemented by handlers that expose a documentable API.
type APIView interface {
	http.Handler
	Methods() []string
}

// DocView is implemented by the documentation system's own views. They are API
// views but are never listed in the documentation they serve.
type DocView interface {
	APIView
	APIDocs()
}

// Capability reports whether a route's view is documentable, returning the
// resolved view when it is.
type Capability func(v routes.View) (routes.View, bool)

// Default accepts views implementing APIView that do not implement DocView.
var Default = Implements(reflect.TypeFor[APIView](), reflect.TypeFor[DocView]())

// Implements builds a Capability from interface types. A view qualifies when its
// type, or a pointer to it, implements api and neither implements meta.
// A nil meta disables the exclusion.
func Implements(api, meta reflect.Type) Capability {
	return func(v routes.View) (routes.View, bool) {
		t := v.Type()
		if t == nil {
			return routes.View{}, false
		}
		if !satisfies(t, api) {
			return routes.View{}, false
		}
		if meta != nil && satisfies(t, meta) {
			return routes.View{}, false
		}
		return v, true
	}
}

// Methods returns the HTTP methods a view declares. Type references are probed
// through their zero value.
func Methods(v routes.View) []string {
	if api, ok := v.Value().(APIView); ok {
		return api.Methods()
	}
	t := v.Type()
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		if api, ok := reflect.New(t.Elem()).Interface().(APIView); ok {
			return api.Methods()
		}
		return nil
	}
	if api, ok := reflect.New(t).Elem().Interface().(APIView); ok {
		return api.Methods()
	}
	if api, ok := reflect.New(t).Interface().(APIView); ok {
		return api.Methods()
	}
	return nil
}

func satisfies(t, iface reflect.Type) bool {
	if t.Implements(iface) {
		return true
	}
	return t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(iface)
}
