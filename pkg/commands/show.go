package commands

import (
	"context"

	"github.com/spf13/cobra"

	"modernride.dev/ride/pkg/commands/options"
	"modernride.dev/ride/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}
	po := &options.PriceOptions{}

	cmd := &cobra.Command{
		Use:   "show [group...]",
		Short: "List the groups and options, marking the starting selection.",
		Example: `
ride show
ride show color wheel
ride show --json
`,
		ValidArgsFunction: func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return groupCompletions(co.File, toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, cfg, err := loadService(co.File)
			if err != nil {
				return output.HandleError(err)
			}
			s := show.Show{
				Service:    svc,
				Groups:     args,
				ShowPrices: po.Resolve(cfg.ShowPrices()),
				JSON:       output.JSON,
				Out:        cmd.OutOrStdout(),
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddCatalogArg(cmd, co)
	options.AddPriceArgs(cmd, po)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
