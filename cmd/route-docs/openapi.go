package main

import (
	"github.com/spf13/cobra"

	"github.com/JaimeStill/route-docs/pkg/endpoints"
	"github.com/JaimeStill/route-docs/pkg/openapi"
)

func openAPICmd(opts *options) *cobra.Command {
	var (
		cfg        openapi.Config
		apiVersion string
	)

	cmd := &cobra.Command{
		Use:   "openapi TABLE",
		Short: "Print an OpenAPI document",
		Long: `Render the endpoints of a route table as an OpenAPI 3.1 document. Each
top-level resource becomes a tag.

Formats: json (default), yaml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.outputFormat(formatJSON, formatJSON, formatYAML)
			if err != nil {
				return err
			}

			apis, err := opts.apis(cmd, args[0])
			if err != nil {
				return err
			}

			if err := cfg.Finalize(nil); err != nil {
				return err
			}
			spec := cfg.Spec(apiVersion)
			endpoints.AddToSpec(spec, endpoints.Group(apis))

			if format == formatYAML {
				return writeYAML(cmd.OutOrStdout(), spec)
			}
			data, err := openapi.MarshalJSON(spec)
			if err != nil {
				return err
			}
			data = append(data, '\n')
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&cfg.Title, "title", "", "Document title")
	cmd.Flags().StringVar(&cfg.Description, "description", "", "Document description")
	cmd.Flags().StringVar(&cfg.Server, "server", "", "Server URL")
	cmd.Flags().StringVar(&apiVersion, "api-version", "0.1.0", "API version")

	return cmd
}
