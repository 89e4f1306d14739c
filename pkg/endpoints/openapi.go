package endpoints

import (
	"net/http"
	"regexp"

	"github.com/JaimeStill/route-docs/pkg/openapi"
	"github.com/JaimeStill/route-docs/pkg/views"
)

var placeholder = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// AddToSpec renders grouped resources into spec. Each resource becomes a tag and
// each endpoint an operation per method. Explicit route operations are copied,
// never mutated; endpoints without one get a summary from the route name.
func AddToSpec(spec *openapi.Spec, resources []Resource) {
	for _, res := range resources {
		spec.AddTag(res.Path, "")
		for _, e := range res.Endpoints {
			for _, method := range methodsOf(e) {
				spec.AddOperation(e.Path, method, operation(e, res.Path))
			}
		}
	}
}

func methodsOf(e Descriptor) []string {
	if e.Method != "" {
		return []string{e.Method}
	}
	if m := views.Methods(e.View); len(m) > 0 {
		return m
	}
	return []string{http.MethodGet}
}

func operation(e Descriptor, resource string) *openapi.Operation {
	op := &openapi.Operation{Summary: e.Name}
	if e.Operation != nil {
		copied := *e.Operation
		op = &copied
	}

	if len(op.Tags) == 0 {
		op.Tags = []string{resource}
	}
	if op.Responses == nil {
		op.Responses = map[int]*openapi.Response{
			http.StatusOK: {Description: http.StatusText(http.StatusOK)},
		}
	}

	declared := make(map[string]bool, len(op.Parameters))
	for _, p := range op.Parameters {
		if p.In == "path" {
			declared[p.Name] = true
		}
	}

	params := op.Parameters[:len(op.Parameters):len(op.Parameters)]
	for _, m := range placeholder.FindAllStringSubmatch(e.Path, -1) {
		if declared[m[1]] {
			continue
		}
		declared[m[1]] = true
		params = append(params, openapi.PathParam(m[1], ""))
	}
	op.Parameters = params
	return op
}
