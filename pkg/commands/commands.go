package commands

import (
	"github.com/spf13/cobra"

	"modernride.dev/ride/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "ride",
		Short: options.Wrap80("Configure a Universal Modern Ride on the command line."),
		Long: options.Wrap80(`Configure a Universal Modern Ride: pick one option from every
selection group (vehicle, color, wheel, interior) and watch the preview follow each pick.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addShow(topLevel)
	addSelect(topLevel)
	addCatalog(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addGuide(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
	addCompletions(topLevel)
}
