package info

import (
	"context"
	"fmt"
	"os"

	"modernride.dev/ride/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
}

func (n *Info) Do(ctx context.Context) error {

	if override := os.Getenv("RIDE_CONFIG_PATH"); override != "" {
		fmt.Println("RIDE_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("RIDE_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Println("Config.path: ", n.Config.BasePath())
	if f := n.Config.CatalogFile(); f != "" {
		fmt.Println("Config.catalog: ", f)
	}
	fmt.Println("Config.prices: ", n.Config.ShowPrices())

	if n.Persistence == nil {
		return fmt.Errorf("Failed to create persistence object.")
	}

	fmt.Printf("Groups:\n")
	records := n.Persistence.Records(ctx)
	for _, r := range records {
		def := r.Default
		if def == "" && len(r.Group.Options) > 0 {
			def = r.Group.Options[0].ID
		}
		fmt.Printf("  %s (%d options, starts on %s)\n", r.Group.Name, len(r.Group.Options), def)
	}

	if len(records) == 0 {
		fmt.Printf("  %s\n", "no stored groups, the built-in showroom is used")
	}

	return nil
}
