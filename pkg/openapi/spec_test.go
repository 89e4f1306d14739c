package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/JaimeStill/route-docs/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.2.3")
	spec.SetDescription("desc")
	spec.AddServer("")
	spec.AddServer("https://api.example.com")
	spec.AddTag("users", "")
	spec.AddTag("users", "duplicate")

	if spec.OpenAPI != openapi.Version {
		t.Errorf("OpenAPI = %q, want %q", spec.OpenAPI, openapi.Version)
	}
	if spec.Info.Title != "Test API" || spec.Info.Version != "1.2.3" || spec.Info.Description != "desc" {
		t.Errorf("Info = %+v", spec.Info)
	}
	if len(spec.Servers) != 1 {
		t.Errorf("Servers = %d, want 1", len(spec.Servers))
	}
	if len(spec.Tags) != 1 {
		t.Errorf("Tags = %d, want 1", len(spec.Tags))
	}
}

func TestSpec_AddOperation(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	tests := []struct {
		method string
		want   bool
	}{
		{"GET", true},
		{"post", true},
		{"PUT", true},
		{"PATCH", true},
		{"DELETE", true},
		{"TRACE", false},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			if got := spec.AddOperation("/items", tt.method, &openapi.Operation{}); got != tt.want {
				t.Errorf("AddOperation(%s) = %v, want %v", tt.method, got, tt.want)
			}
		})
	}

	item := spec.Paths["/items"]
	if item.Get == nil || item.Post == nil || item.Put == nil || item.Patch == nil || item.Delete == nil {
		t.Errorf("path item = %+v, want every modeled method set", item)
	}

	if spec.AddOperation("/trace-only", "TRACE", &openapi.Operation{}) {
		t.Error("AddOperation(TRACE) = true")
	}
	if _, ok := spec.Paths["/trace-only"]; ok {
		t.Error("unsupported method created a path item")
	}
}

func TestMarshalJSON_ServeSpec(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")
	spec.AddOperation("/items/{id}", "GET", &openapi.Operation{
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "")},
		Responses:  map[int]*openapi.Response{200: {Description: "OK"}},
	})

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("MarshalJSON() error: %v", err)
	}

	rec := httptest.NewRecorder()
	openapi.ServeSpec(data)(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	var decoded map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	paths := decoded["paths"].(map[string]any)
	get := paths["/items/{id}"].(map[string]any)["get"].(map[string]any)
	if _, ok := get["responses"].(map[string]any)["200"]; !ok {
		t.Error("responses missing 200 key")
	}
}

func TestConfig_Finalize(t *testing.T) {
	env := &openapi.ConfigEnv{Title: "TEST_OPENAPI_TITLE", Server: "TEST_OPENAPI_SERVER"}
	os.Setenv("TEST_OPENAPI_TITLE", "From Env")
	defer os.Unsetenv("TEST_OPENAPI_TITLE")

	var cfg openapi.Config
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}

	if cfg.Title != "From Env" {
		t.Errorf("Title = %q, want From Env", cfg.Title)
	}
	if cfg.Description == "" {
		t.Error("Description default not applied")
	}

	cfg.Merge(&openapi.Config{Server: "https://docs.example.com"})
	spec := cfg.Spec("2.0.0")
	if len(spec.Servers) != 1 || spec.Servers[0].URL != "https://docs.example.com" {
		t.Errorf("Servers = %+v", spec.Servers)
	}
	if spec.Info.Version != "2.0.0" {
		t.Errorf("Version = %q, want 2.0.0", spec.Info.Version)
	}
}
