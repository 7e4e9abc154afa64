package commands

import (
	"context"

	"github.com/spf13/cobra"

	"modernride.dev/ride/pkg/commands/options"
	"modernride.dev/ride/pkg/runner/catalog"
	"modernride.dev/ride/pkg/snake"
)

func addCatalog(topLevel *cobra.Command) {
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the stored catalog of groups and options.",
		Example: `
ride catalog export
ride catalog -i
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !i.Interactive {
				return cmd.Help()
			}
			picker := &snake.Picker{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
			next, err := picker.PickCommand(cmd)
			if err != nil {
				return err
			}
			var nextArgs []string
			if next.Name() == "import" {
				file, err := picker.Ask("Catalog file", "")
				if err != nil {
					return err
				}
				nextArgs = append(nextArgs, file)
			}
			return next.RunE(next, nextArgs)
		},
	}
	options.InteractiveArgs(cmd, i)

	addCatalogImport(cmd)
	addCatalogExport(cmd)
	addCatalogReset(cmd)

	topLevel.AddCommand(cmd)
}

func addCatalogImport(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Validate a catalog file and replace the stored catalog with it.",
		Example: `
ride catalog import showroom.yaml
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := loadService("")
			if err != nil {
				return output.HandleError(err)
			}
			i := catalog.Import{Service: svc, File: args[0], Out: cmd.OutOrStdout()}
			return output.HandleError(i.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addCatalogExport(parent *cobra.Command) {
	co := &options.CatalogOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the catalog the configurator would mount, as JSON.",
		Example: `
ride catalog export > showroom.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := loadService(co.File)
			if err != nil {
				return output.HandleError(err)
			}
			e := catalog.Export{Service: svc, Out: cmd.OutOrStdout()}
			return output.HandleError(e.Do(context.Background()))
		},
	}
	options.AddCatalogArg(cmd, co)
	options.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}

func addCatalogReset(parent *cobra.Command) {
	yes := false
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the stored catalog with the built-in showroom.",
		Example: `
ride catalog reset
ride catalog reset --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := loadService("")
			if err != nil {
				return output.HandleError(err)
			}
			r := catalog.Reset{Service: svc, Out: cmd.OutOrStdout()}
			if !yes {
				picker := &snake.Picker{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
				r.Confirm = func() (bool, error) {
					return picker.Confirm("Replace the stored catalog?", false)
				}
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")
	options.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}
