package commands

import (
	"modernride.dev/ride/pkg/app"
	"modernride.dev/ride/pkg/store"
)

// loadService wires the app service from config. A non-empty catalogFile
// takes precedence over the configured one.
func loadService(catalogFile string) (*app.Service, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	if catalogFile == "" {
		catalogFile = cfg.CatalogFile()
	}
	return &app.Service{Persistence: p, CatalogFile: catalogFile}, cfg, nil
}
