package options

import (
	"github.com/spf13/cobra"
)

// CatalogOptions selects a catalog file that takes precedence over the store.
type CatalogOptions struct {
	File string
}

func AddCatalogArg(cmd *cobra.Command, o *CatalogOptions) {
	cmd.Flags().StringVarP(&o.File, "catalog", "c", "",
		"Read groups and defaults from this YAML, TOML or JSON file instead of the store.")
}
