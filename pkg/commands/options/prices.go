package options

import (
	"github.com/spf13/cobra"
)

// PriceOptions toggles price display.
type PriceOptions struct {
	Hide bool
	Show bool
}

func AddPriceArgs(cmd *cobra.Command, o *PriceOptions) {
	cmd.Flags().BoolVar(&o.Hide, "hide-prices", false,
		"Do not show option prices.")
	cmd.Flags().BoolVar(&o.Show, "show-prices", false,
		"Show option prices even when the config hides them.")
}

// Resolve applies the flags on top of the configured default. Hiding wins.
func (o *PriceOptions) Resolve(def bool) bool {
	switch {
	case o.Hide:
		return false
	case o.Show:
		return true
	}
	return def
}
