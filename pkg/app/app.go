package app

import (
	"context"
	"errors"
	"fmt"

	"modernride.dev/ride/pkg/catalog"
	"modernride.dev/ride/pkg/configurator"
	"modernride.dev/ride/pkg/store"
)

// Service mounts configurators from the configured catalog source.
// It wraps persistence and catalog loading so UIs and CLIs can share logic.
type Service struct {
	Persistence store.Persistence
	CatalogFile string
}

var errNoPersistence = errors.New("app: no persistence configured")

// Catalog returns the catalog to mount: the catalog file when one is
// configured, else the stored catalog, else the built-in showroom.
func (s *Service) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	if s.CatalogFile != "" {
		return catalog.LoadFile(s.CatalogFile)
	}
	if s.Persistence == nil {
		return catalog.Default(), nil
	}
	c, err := s.Persistence.Catalog(ctx)
	if errors.Is(err, store.ErrEmpty) {
		return catalog.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Mount builds a configurator reporting to r and initializes it with the
// catalog defaults overlaid by overrides.
func (s *Service) Mount(ctx context.Context, r configurator.Renderer, overrides map[string]string) (*configurator.Configurator, error) {
	c, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	cfg := configurator.New(r)
	if err := cfg.Initialize(c.Groups, catalog.Merge(c.Defaults, overrides)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Remount reloads the catalog and re-initializes cfg. Current selections that
// still exist in the reloaded catalog are kept; the rest fall back to the
// catalog defaults.
func (s *Service) Remount(ctx context.Context, cfg *configurator.Configurator) error {
	c, err := s.Catalog(ctx)
	if err != nil {
		return err
	}
	defaults := catalog.Merge(c.Defaults, nil)
	if current, err := cfg.Snapshot(); err == nil {
		for name, id := range current {
			if g, ok := c.Group(name); ok && g.Find(id) >= 0 {
				defaults[name] = id
			}
		}
	}
	return cfg.Initialize(c.Groups, defaults)
}

// Seed stores the built-in catalog when the store holds nothing yet.
func (s *Service) Seed(ctx context.Context) (bool, error) {
	if s.Persistence == nil {
		return false, errNoPersistence
	}
	if len(s.Persistence.Records(ctx)) > 0 {
		return false, nil
	}
	if err := s.Persistence.Replace(catalog.Default()); err != nil {
		return false, err
	}
	return true, nil
}

// Import replaces the stored catalog.
func (s *Service) Import(c *catalog.Catalog) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	return s.Persistence.Replace(c)
}

// Reset restores the built-in catalog in the store.
func (s *Service) Reset() error {
	return s.Import(catalog.Default())
}

// Watch subscribes to catalog change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// Line is one group of a quote.
type Line struct {
	Group  string              `json:"group"`
	Option configurator.Option `json:"option"`
}

// Quote is the priced summary of the current selections.
type Quote struct {
	Lines []Line `json:"lines"`
	Total int    `json:"total"`
}

// Quote prices the current selections of cfg in group order.
func (s *Service) Quote(cfg *configurator.Configurator) (Quote, error) {
	names, err := cfg.Groups()
	if err != nil {
		return Quote{}, err
	}
	q := Quote{Lines: make([]Line, 0, len(names))}
	for _, name := range names {
		o, err := cfg.Selected(name)
		if err != nil {
			return Quote{}, fmt.Errorf("app: quote %s: %w", name, err)
		}
		q.Lines = append(q.Lines, Line{Group: name, Option: o})
		q.Total += o.Display.Price
	}
	return q, nil
}
