package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"modernride.dev/ride/pkg/catalog"
	"modernride.dev/ride/pkg/configurator"
	"modernride.dev/ride/pkg/preview"
	"modernride.dev/ride/pkg/store"
)

type memoryPersistence struct {
	mu      sync.Mutex
	records map[string]*store.Record
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{records: make(map[string]*store.Record)}
}

func (m *memoryPersistence) Records(_ context.Context) []*store.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*store.Record, 0, len(m.records))
	for _, r := range m.records {
		cp := *r
		out = append(out, &cp)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Order < out[j-1].Order; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func (m *memoryPersistence) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	records := m.Records(ctx)
	if len(records) == 0 {
		return nil, store.ErrEmpty
	}
	c := &catalog.Catalog{Defaults: map[string]string{}}
	for _, r := range records {
		c.Groups = append(c.Groups, r.Group)
		if r.Default != "" {
			c.Defaults[r.Group.Name] = r.Default
		}
	}
	return c, nil
}

func (m *memoryPersistence) Store(r *store.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.records[r.Group.Name] = &cp
	return nil
}

func (m *memoryPersistence) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, name)
	return nil
}

func (m *memoryPersistence) Replace(c *catalog.Catalog) error {
	if err := c.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	m.records = make(map[string]*store.Record)
	m.mu.Unlock()
	for i, g := range c.Groups {
		if err := m.Store(&store.Record{Order: i, Group: g, Default: c.Defaults[g.Name]}); err != nil {
			return err
		}
	}
	return nil
}

func (m *memoryPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	return nil, errors.New("watch not supported")
}

func TestCatalogFallsBackToBuiltin(t *testing.T) {
	svc := &Service{Persistence: newMemoryPersistence()}
	c, err := svc.Catalog(context.Background())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if len(c.Groups) != len(catalog.Default().Groups) {
		t.Fatalf("expected built-in catalog, got %d groups", len(c.Groups))
	}
}

func TestCatalogFileOverridesStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	src := "groups:\n  - name: color\n    options:\n      - id: teal\n      - id: black\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	mp := newMemoryPersistence()
	if err := mp.Replace(catalog.Default()); err != nil {
		t.Fatalf("replace: %v", err)
	}
	svc := &Service{Persistence: mp, CatalogFile: path}
	cfg, err := svc.Mount(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	names, _ := cfg.Groups()
	if len(names) != 1 || names[0] != "color" {
		t.Fatalf("expected file catalog groups, got %v", names)
	}
	if got, _ := cfg.CurrentSelection("color"); got != "teal" {
		t.Fatalf("color = %q, want teal", got)
	}
}

func TestMountAppliesOverrides(t *testing.T) {
	svc := &Service{Persistence: newMemoryPersistence()}
	rec := &preview.Recorder{}
	cfg, err := svc.Mount(context.Background(), rec, map[string]string{"color": "yellow"})
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if got, _ := cfg.CurrentSelection("color"); got != "yellow" {
		t.Fatalf("color = %q, want yellow", got)
	}
	if got, _ := cfg.CurrentSelection("vehicle"); got != "car" {
		t.Fatalf("vehicle = %q, want car", got)
	}
	if rec.Len() != 4 {
		t.Fatalf("expected one update per group, got %d", rec.Len())
	}
}

func TestMountRejectsUnknownOverride(t *testing.T) {
	svc := &Service{Persistence: newMemoryPersistence()}
	_, err := svc.Mount(context.Background(), nil, map[string]string{"vehicle": "boat"})
	if !errors.Is(err, configurator.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestRemountKeepsSurvivingSelections(t *testing.T) {
	ctx := context.Background()
	mp := newMemoryPersistence()
	svc := &Service{Persistence: mp}
	if _, err := svc.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	rec := &preview.Recorder{}
	cfg, err := svc.Mount(ctx, rec, nil)
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	if err := cfg.Select("color", "red"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := cfg.Select("wheel", "aero"); err != nil {
		t.Fatalf("select: %v", err)
	}

	// Drop "aero" from the wheel group.
	c := catalog.Default()
	c.Groups[2].Options = c.Groups[2].Options[:2]
	if err := svc.Import(c); err != nil {
		t.Fatalf("import: %v", err)
	}
	rec.Drain()

	if err := svc.Remount(ctx, cfg); err != nil {
		t.Fatalf("remount: %v", err)
	}
	if got, _ := cfg.CurrentSelection("color"); got != "red" {
		t.Fatalf("color = %q, want red kept", got)
	}
	if got, _ := cfg.CurrentSelection("wheel"); got != "standard" {
		t.Fatalf("wheel = %q, want fallback standard", got)
	}
	if rec.Len() != 4 {
		t.Fatalf("remount should re-emit every group, got %d", rec.Len())
	}
}

func TestSeedOnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	svc := &Service{Persistence: newMemoryPersistence()}
	seeded, err := svc.Seed(ctx)
	if err != nil || !seeded {
		t.Fatalf("first seed = %v, %v", seeded, err)
	}
	seeded, err = svc.Seed(ctx)
	if err != nil || seeded {
		t.Fatalf("second seed = %v, %v", seeded, err)
	}
}

func TestQuoteTotalsSelectedPrices(t *testing.T) {
	svc := &Service{}
	cfg, err := svc.Mount(context.Background(), nil, map[string]string{"wheel": "sport", "color": "red"})
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	q, err := svc.Quote(cfg)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if len(q.Lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(q.Lines))
	}
	if want := 42000 + 800 + 1500; q.Total != want {
		t.Fatalf("total = %d, want %d", q.Total, want)
	}
}

func TestServiceWithoutPersistence(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Seed(context.Background()); err == nil {
		t.Fatalf("expected error without persistence")
	}
	if _, err := svc.Watch(context.Background()); err == nil {
		t.Fatalf("expected error without persistence")
	}
	if err := svc.Reset(); err == nil {
		t.Fatalf("expected error without persistence")
	}
}

func TestQuoteBeforeMount(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Quote(configurator.New(nil)); !errors.Is(err, configurator.ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}
