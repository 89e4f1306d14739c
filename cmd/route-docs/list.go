package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/route-docs/pkg/endpoints"
	"github.com/JaimeStill/route-docs/pkg/views"
)

func listCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list TABLE",
		Short: "List documentable endpoints",
		Long: `List every documentable endpoint of a route table in route order.

Formats: table (default), json, yaml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.outputFormat(formatTable, formatTable, formatJSON, formatYAML)
			if err != nil {
				return err
			}

			apis, err := opts.apis(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case formatJSON:
				return writeJSON(out, apis)
			case formatYAML:
				return writeYAML(out, apis)
			}
			return writeTable(out, apis)
		},
	}
}

func writeTable(w io.Writer, apis []endpoints.Descriptor) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tMETHODS\tNAME\tNAMESPACE\tHANDLER")
	for _, e := range apis {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.Path,
			strings.Join(methods(e), ","),
			dash(e.Name),
			dash(e.Namespace),
			e.Handler,
		)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func methods(e endpoints.Descriptor) []string {
	if e.Method != "" {
		return []string{e.Method}
	}
	if m := views.Methods(e.View); len(m) > 0 {
		return m
	}
	return []string{"*"}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
