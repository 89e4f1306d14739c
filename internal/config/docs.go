package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/JaimeStill/route-docs/pkg/endpoints"
	"github.com/JaimeStill/route-docs/pkg/openapi"
)

const (
	EnvDocsBasePath          = "DOCS_BASE_PATH"
	EnvDocsRootTable         = "DOCS_ROOT_TABLE"
	EnvDocsFilterPath        = "DOCS_FILTER_PATH"
	EnvDocsExcludeNamespaces = "DOCS_EXCLUDE_NAMESPACES"
)

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "DOCS_OPENAPI_TITLE",
	Description: "DOCS_OPENAPI_DESCRIPTION",
	Server:      "DOCS_OPENAPI_SERVER",
}

// DocsConfig controls the API documentation endpoints.
type DocsConfig struct {
	// BasePath is where the documentation views are mounted. Default: "/docs/".
	BasePath string `toml:"base_path"`

	// RootTable names the route table documented when none is requested.
	RootTable string `toml:"root_table"`

	// FilterPath restricts documentation to paths containing it.
	FilterPath string `toml:"filter_path"`

	ExcludeNamespaces []string       `toml:"exclude_namespaces"`
	OpenAPI           openapi.Config `toml:"openapi"`
}

// Finalize applies defaults, loads environment overrides, and validates the docs configuration.
func (c *DocsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if !strings.HasPrefix(c.BasePath, "/") || !strings.HasSuffix(c.BasePath, "/") {
		return fmt.Errorf("base_path must start and end with /: %q", c.BasePath)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *DocsConfig) Merge(overlay *DocsConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.RootTable != "" {
		c.RootTable = overlay.RootTable
	}
	if overlay.FilterPath != "" {
		c.FilterPath = overlay.FilterPath
	}
	if overlay.ExcludeNamespaces != nil {
		c.ExcludeNamespaces = overlay.ExcludeNamespaces
	}
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

// Options returns the flattening options configured for the docs views.
func (c *DocsConfig) Options() endpoints.Options {
	return endpoints.Options{
		Table:             c.RootTable,
		Filter:            c.FilterPath,
		ExcludeNamespaces: c.ExcludeNamespaces,
	}
}

func (c *DocsConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/docs/"
	}
	if c.RootTable == "" {
		c.RootTable = endpoints.DefaultRootTable
	}
}

func (c *DocsConfig) loadEnv() {
	if v := os.Getenv(EnvDocsBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvDocsRootTable); v != "" {
		c.RootTable = v
	}
	if v := os.Getenv(EnvDocsFilterPath); v != "" {
		c.FilterPath = v
	}
	if v := os.Getenv(EnvDocsExcludeNamespaces); v != "" {
		c.ExcludeNamespaces = nil
		for _, ns := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(ns); trimmed != "" {
				c.ExcludeNamespaces = append(c.ExcludeNamespaces, trimmed)
			}
		}
	}
}
