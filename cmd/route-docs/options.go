package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v4"

	"github.com/JaimeStill/route-docs/pkg/endpoints"
	"github.com/JaimeStill/route-docs/pkg/logging"
	"github.com/JaimeStill/route-docs/pkg/routetable"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

type options struct {
	dir     string
	filter  string
	exclude []string
	format  string
	verbose bool
}

// outputFormat returns the selected format, or fallback when none is set.
func (o *options) outputFormat(fallback string, allowed ...string) (string, error) {
	format := o.format
	if format == "" {
		format = fallback
	}
	if !slices.Contains(allowed, format) {
		return "", fmt.Errorf("unsupported format %q: want one of %v", format, allowed)
	}
	return format, nil
}

// apis loads the table named by ref and flattens it.
func (o *options) apis(cmd *cobra.Command, ref string) ([]endpoints.Descriptor, error) {
	parser := endpoints.New(endpoints.Config{
		Resolver: routetable.FileResolver{Dir: o.dir},
	}, o.logger(cmd.ErrOrStderr()))

	return parser.APIs(endpoints.Options{
		Table:             ref,
		Filter:            o.filter,
		ExcludeNamespaces: o.exclude,
	})
}

func (o *options) logger(w io.Writer) *slog.Logger {
	cfg := &logging.Config{Level: logging.LevelWarn, Format: logging.FormatText}
	if o.verbose {
		cfg.Level = logging.LevelDebug
	}
	return logging.New(cfg, w)
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	_, err = w.Write(data)
	return err
}
