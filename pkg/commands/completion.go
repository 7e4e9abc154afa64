package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(ride completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(ride completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func groupCompletions(catalogFile, toComplete string) []string {
	svc, _, err := loadService(catalogFile)
	if err != nil {
		return nil
	}
	c, err := svc.Catalog(context.Background())
	if err != nil {
		return nil
	}
	var out []string
	for _, g := range c.Groups {
		if strings.HasPrefix(g.Name, toComplete) {
			out = append(out, g.Name)
		}
	}
	return out
}

func pickCompletions(catalogFile, toComplete string) []string {
	svc, _, err := loadService(catalogFile)
	if err != nil {
		return nil
	}
	c, err := svc.Catalog(context.Background())
	if err != nil {
		return nil
	}
	var out []string
	for _, g := range c.Groups {
		for _, o := range g.Options {
			pair := g.Name + "=" + o.ID
			if strings.HasPrefix(pair, toComplete) {
				out = append(out, pair)
			}
		}
	}
	return out
}
