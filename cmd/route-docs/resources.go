package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/route-docs/pkg/endpoints"
)

func resourcesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resources TABLE",
		Short: "List top-level resources",
		Long: `List the top-level resources of a route table, one per line, with the
number of endpoints documented under each.

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
			resources := endpoints.Group(apis)

			out := cmd.OutOrStdout()
			switch format {
			case formatJSON:
				return writeJSON(out, resources)
			case formatYAML:
				return writeYAML(out, resources)
			}

			for _, r := range resources {
				if _, err := fmt.Fprintf(out, "%s\t%d\n", r.Path, len(r.Endpoints)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
