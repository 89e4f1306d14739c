package catalog

import "github.com/JaimeStill/route-docs/pkg/openapi"

// spec holds OpenAPI operation definitions for the catalog domain.
type spec struct {
	List   *openapi.Operation
	Create *openapi.Operation
	Get    *openapi.Operation
	Delete *openapi.Operation
}

// Spec contains OpenAPI operation definitions for all catalog endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List items",
		OperationID: "listItems",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-based)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Match against name and description", false),
		},
		Responses: map[int]*openapi.Response{
			200: {Description: "Paginated catalog items"},
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create item",
		OperationID: "createItem",
		Responses: map[int]*openapi.Response{
			201: {Description: "Item created"},
			400: {Description: "Invalid item"},
			409: {Description: "Item name already exists"},
		},
	},
	Get: &openapi.Operation{
		Summary:     "Get item by ID",
		OperationID: "getItem",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Item UUID"),
		},
		Responses: map[int]*openapi.Response{
			200: {Description: "Catalog item"},
			400: {Description: "Invalid ID"},
			404: {Description: "Item not found"},
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete item",
		OperationID: "deleteItem",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Item UUID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Item deleted"},
			404: {Description: "Item not found"},
		},
	},
}
