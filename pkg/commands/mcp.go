package commands

import (
	"context"

	"github.com/spf13/cobra"

	"modernride.dev/ride/pkg/commands/options"
	"modernride.dev/ride/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server on stdio",
		Long: `Launch an MCP server on stdin/stdout. Each client opens its own configurator
session and receives the preview updates of every selection it makes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(co.File)
			if err != nil {
				return err
			}
			runner := mcp.Runner{
				Service: svc,
				Name:    "ride",
				Version: version,
			}
			return runner.Do(context.Background())
		},
	}

	options.AddCatalogArg(cmd, co)

	topLevel.AddCommand(cmd)
}
