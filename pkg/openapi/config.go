package openapi

import "os"

// Config holds the document metadata rendered into Info.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Server      string `toml:"server"`
}

// ConfigEnv maps environment variable names for OpenAPI configuration.
type ConfigEnv struct {
	Title       string
	Description string
	Server      string
}

// Finalize applies defaults and loads environment overrides.
func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.Server != "" {
		c.Server = overlay.Server
	}
}

// Spec creates an empty specification described by the configuration.
func (c *Config) Spec(version string) *Spec {
	spec := NewSpec(c.Title, version)
	spec.SetDescription(c.Description)
	spec.AddServer(c.Server)
	return spec
}

func (c *Config) loadDefaults() {
	if c.Title == "" {
		c.Title = "API Reference"
	}
	if c.Description == "" {
		c.Description = "Endpoints discovered from the service route table."
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if env.Title != "" {
		if v := os.Getenv(env.Title); v != "" {
			c.Title = v
		}
	}
	if env.Description != "" {
		if v := os.Getenv(env.Description); v != "" {
			c.Description = v
		}
	}
	if env.Server != "" {
		if v := os.Getenv(env.Server); v != "" {
			c.Server = v
		}
	}
}
