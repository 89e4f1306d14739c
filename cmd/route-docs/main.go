// Command route-docs flattens a route-table file into documentable endpoints
// and prints them as a listing, a resource summary, or an OpenAPI document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "route-docs",
		Short: "Inspect route tables for API documentation",
		Long: `route-docs reads a YAML route table and reports the API endpoints it
documents.

Tables are named by file path (urls.yaml) or by dotted reference
(project.urls resolves to project/urls.yaml under --dir).

Examples:
  route-docs list project.urls
  route-docs list urls.yaml --filter users --format json
  route-docs resources project.urls --exclude admin
  route-docs openapi project.urls --format yaml`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.dir, "dir", ".", "Directory dotted table references resolve against")
	flags.StringVar(&opts.filter, "filter", "", "Keep endpoints whose path contains this text")
	flags.StringSliceVar(&opts.exclude, "exclude", nil, "Namespaces to leave out (repeatable)")
	flags.StringVarP(&opts.format, "format", "f", "", "Output format")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log parser activity to stderr")

	cmd.AddCommand(
		listCmd(opts),
		resourcesCmd(opts),
		openAPICmd(opts),
	)

	return cmd
}
