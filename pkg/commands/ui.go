package commands

import (
	"context"

	"github.com/spf13/cobra"

	"modernride.dev/ride/pkg/commands/options"
	"modernride.dev/ride/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	co := &options.CatalogOptions{}
	po := &options.PriceOptions{}
	do := &options.DefaultsOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive configurator",
		Example: `
ride ui
ride ui --hide-prices -d color=red
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := loadService(co.File)
			if err != nil {
				return err
			}
			if _, err := svc.Seed(context.Background()); err != nil {
				return err
			}
			i := ui.UI{
				Service:    svc,
				Defaults:   do.Map(),
				ShowPrices: po.Resolve(cfg.ShowPrices()),
			}
			return i.Do(context.Background())
		},
	}

	options.AddCatalogArg(cmd, co)
	options.AddPriceArgs(cmd, po)
	options.AddDefaultsArg(cmd, do)

	topLevel.AddCommand(cmd)
}
