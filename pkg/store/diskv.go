package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"modernride.dev/ride/pkg/catalog"
	"modernride.dev/ride/pkg/configurator"
)

// CurrentSchema tags records written by this version.
const CurrentSchema = "v1"

const groupsDir = "groups"

// ErrEmpty is returned by Catalog when no groups are stored.
var ErrEmpty = errors.New("store: catalog is empty")

// Record is one stored selection group.
type Record struct {
	Schema  string             `json:"schema"`
	Order   int                `json:"order"`
	Group   configurator.Group `json:"group"`
	Default string             `json:"default,omitempty"`
}

// Persistence defines the storage contract for the catalog.
type Persistence interface {
	Records(ctx context.Context) []*Record
	Catalog(ctx context.Context) (*catalog.Catalog, error)
	Store(r *Record) error
	Delete(name string) error
	Replace(c *catalog.Catalog) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// Other processes edit the store; every read goes to disk.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*Record, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	r := &Record{}
	if err := json.Unmarshal(val, r); err != nil {
		return nil, err
	}
	if r.Schema == "" {
		r.Schema = CurrentSchema
	}
	return r, nil
}

func (p *persistence) Records(ctx context.Context) []*Record {
	all := make([]*Record, 0)
	for key := range p.d.Keys(ctx.Done()) {
		r, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, r)
	}
	sortRecords(all)
	return all
}

func (p *persistence) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	records := p.Records(ctx)
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	return toCatalog(records), nil
}

func (p *persistence) Store(r *Record) error {
	if r == nil {
		return errors.New("store: nil record")
	}
	name := strings.TrimSpace(r.Group.Name)
	if name == "" {
		return errors.New("store: group name required")
	}
	if r.Schema == "" {
		r.Schema = CurrentSchema
	}
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(name), data)
}

func (p *persistence) Delete(name string) error {
	return p.d.Erase(toKey(name))
}

// Replace swaps the whole stored catalog for c.
func (p *persistence) Replace(c *catalog.Catalog) error {
	if err := c.Validate(); err != nil {
		return err
	}
	keep := make(map[string]struct{}, len(c.Groups))
	for i, g := range c.Groups {
		r := &Record{
			Schema:  CurrentSchema,
			Order:   i,
			Group:   g,
			Default: c.Defaults[g.Name],
		}
		if err := p.Store(r); err != nil {
			return fmt.Errorf("store: write group %q: %w", g.Name, err)
		}
		keep[toKey(g.Name)] = struct{}{}
	}

	cancel := make(chan struct{})
	defer close(cancel)
	var stale []string
	for key := range p.d.Keys(cancel) {
		if _, ok := keep[key]; !ok {
			stale = append(stale, key)
		}
	}
	for _, key := range stale {
		if err := p.d.Erase(key); err != nil {
			return fmt.Errorf("store: erase %s: %w", key, err)
		}
	}
	return nil
}

func toCatalog(records []*Record) *catalog.Catalog {
	c := &catalog.Catalog{
		Groups:   make([]configurator.Group, 0, len(records)),
		Defaults: make(map[string]string),
	}
	for _, r := range records {
		c.Groups = append(c.Groups, r.Group)
		if r.Default != "" {
			c.Defaults[r.Group.Name] = r.Default
		}
	}
	return c
}

func sortRecords(records []*Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Order != records[j].Order {
			return records[i].Order < records[j].Order
		}
		return records[i].Group.Name < records[j].Group.Name
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) < 2 {
		return &diskv.PathKey{FileName: s}
	}
	return &diskv.PathKey{
		Path:     parts[:1],
		FileName: parts[1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `groups-<encoded name>`
func toKey(name string) string {
	return fmt.Sprintf("%s-%s", groupsDir, encodeName(name))
}

func encodeName(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func decodeName(s string) string {
	name, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return ""
	}
	return string(name)
}
