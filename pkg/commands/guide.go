package commands

import (
	"context"

	"github.com/spf13/cobra"

	"modernride.dev/ride/pkg/runner/guide"
)

func addGuide(topLevel *cobra.Command) {
	g := &guide.Guide{}

	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Show the showroom guide.",
		Example: `
ride guide
ride guide --style light --width 100
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			g.Out = cmd.OutOrStdout()
			return g.Do(context.Background())
		},
	}

	cmd.Flags().IntVar(&g.Width, "width", 80, "Wrap the guide at this many columns.")
	cmd.Flags().StringVar(&g.Style, "style", "auto", "Glamour style: auto, dark, light, notty or ascii.")

	topLevel.AddCommand(cmd)
}
