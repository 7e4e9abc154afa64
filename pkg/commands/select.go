package commands

import (
	"context"

	"github.com/spf13/cobra"

	"modernride.dev/ride/pkg/commands/options"
	"modernride.dev/ride/pkg/runner/configure"
)

func addSelect(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}
	po := &options.PriceOptions{}
	do := &options.DefaultsOptions{}
	i := &options.InteractiveOptions{}

	var picks []options.Pick

	cmd := &cobra.Command{
		Use:     "select [group=option...]",
		Aliases: []string{"configure", "pick"},
		Short:   "Select options and print every preview update and the final build.",
		Long: options.Wrap80(`Mount the configurator, apply each group=option pick in order and
print one preview update per pick. Picking the option that is already selected still
prints an update.`),
		Example: `
ride select color=red wheel=sport
ride select -d vehicle=vtol interior=ocean
ride select -i
ride select color=yellow --json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			picks = picks[:0]
			for _, a := range args {
				pk, err := options.ParsePick(a)
				if err != nil {
					return err
				}
				picks = append(picks, pk)
			}
			return nil
		},
		ValidArgsFunction: func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return pickCompletions(co.File, toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, cfg, err := loadService(co.File)
			if err != nil {
				return output.HandleError(err)
			}
			c := configure.Configure{
				Service:     svc,
				Defaults:    do.Map(),
				Interactive: i.Interactive,
				ShowPrices:  po.Resolve(cfg.ShowPrices()),
				JSON:        output.JSON,
				In:          cmd.InOrStdin(),
				Out:         cmd.OutOrStdout(),
			}
			for _, pk := range picks {
				c.Picks = append(c.Picks, configure.Pick{Group: pk.Group, Option: pk.Option})
			}
			return output.HandleError(c.Do(context.Background()))
		},
	}

	options.AddCatalogArg(cmd, co)
	options.AddPriceArgs(cmd, po)
	options.AddDefaultsArg(cmd, do)
	options.InteractiveArgs(cmd, i)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
