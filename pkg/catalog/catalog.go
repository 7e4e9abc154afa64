// Package catalog supplies the selection groups and default selections a
// configurator is mounted with.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"

	"modernride.dev/ride/pkg/configurator"
)

// ErrInvalid is returned when a catalog fails validation.
var ErrInvalid = errors.New("catalog: invalid")

// Catalog is the set of groups offered by the configurator and the option
// each group starts on.
type Catalog struct {
	Groups   []configurator.Group `json:"groups" mapstructure:"groups"`
	Defaults map[string]string    `json:"defaults,omitempty" mapstructure:"defaults"`
}

// Group returns the named group.
func (c *Catalog) Group(name string) (configurator.Group, bool) {
	for _, g := range c.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return configurator.Group{}, false
}

// Validate checks the catalog can be mounted and every swatch is a hex color.
func (c *Catalog) Validate() error {
	if c == nil || len(c.Groups) == 0 {
		return fmt.Errorf("%w: no groups", ErrInvalid)
	}
	// A throwaway configurator applies exactly the mount rules.
	if err := configurator.New(nil).Initialize(c.Groups, c.Defaults); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	for _, g := range c.Groups {
		for _, o := range g.Options {
			if o.Display.Price < 0 {
				return fmt.Errorf("%w: option %s/%s has negative price", ErrInvalid, g.Name, o.ID)
			}
			if o.Display.Swatch == "" {
				continue
			}
			if _, err := colorful.Hex(o.Display.Swatch); err != nil {
				return fmt.Errorf("%w: option %s/%s swatch %q: %v", ErrInvalid, g.Name, o.ID, o.Display.Swatch, err)
			}
		}
	}
	return nil
}

// Decode reads a catalog in the given format (yaml, json, toml).
func Decode(r io.Reader, format string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigType(strings.TrimPrefix(strings.ToLower(format), "."))
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}
	c := &Catalog{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	c.fixDefaultKeys()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads a catalog from disk; the format follows the file extension.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open: %w", err)
	}
	defer f.Close()

	format := filepath.Ext(path)
	if format == "" {
		format = "yaml"
	}
	return Decode(f, format)
}

// Encode writes the catalog as indented JSON.
func (c *Catalog) Encode(w io.Writer) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// fixDefaultKeys restores group name casing in defaults; viper lowercases map
// keys on read.
func (c *Catalog) fixDefaultKeys() {
	if len(c.Defaults) == 0 {
		return
	}
	fixed := make(map[string]string, len(c.Defaults))
	for k, v := range c.Defaults {
		name := k
		for _, g := range c.Groups {
			if strings.EqualFold(g.Name, k) {
				name = g.Name
				break
			}
		}
		fixed[name] = v
	}
	c.Defaults = fixed
}

// Merge overlays overrides on top of defaults without modifying either.
func Merge(defaults, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(defaults)+len(overrides))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Contrast returns a label color readable on top of the given swatch.
func Contrast(swatch string) string {
	c, err := colorful.Hex(swatch)
	if err != nil {
		return "#ffffff"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
