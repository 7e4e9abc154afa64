package commands

import (
	"context"

	"github.com/spf13/cobra"

	"modernride.dev/ride/pkg/runner/info"
	"modernride.dev/ride/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and the stored catalog.",
		Example: `
ride info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			s := info.Info{
				Config:      cfg,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
