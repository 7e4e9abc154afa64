package configurator

import (
	"fmt"
	"strings"
	"sync"
)

type group struct {
	def      Group
	selected int
}

// Configurator owns the selection state for one mounted view.
type Configurator struct {
	mu       sync.Mutex
	renderer Renderer

	order  []string
	groups map[string]*group
}

// New returns an uninitialized configurator that reports to r. A nil r
// discards updates.
func New(r Renderer) *Configurator {
	if r == nil {
		r = Discard
	}
	return &Configurator{renderer: r}
}

// Initialized reports whether Initialize has succeeded.
func (c *Configurator) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.groups != nil
}

// Initialize replaces the whole state with the given groups. Each group starts
// on its default option, or on its first option when no default is given. One
// preview update per group is emitted, in group order. On error the previous
// state is kept untouched.
func (c *Configurator) Initialize(groups []Group, defaults map[string]string) error {
	order, built, err := build(groups, defaults)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = order
	c.groups = built
	for _, name := range c.order {
		c.emit(c.groups[name])
	}
	return nil
}

func build(groups []Group, defaults map[string]string) ([]string, map[string]*group, error) {
	if len(groups) == 0 {
		return nil, nil, fmt.Errorf("%w: no groups", ErrConfiguration)
	}
	order := make([]string, 0, len(groups))
	built := make(map[string]*group, len(groups))
	for _, g := range groups {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			return nil, nil, fmt.Errorf("%w: group name required", ErrConfiguration)
		}
		if name != g.Name {
			return nil, nil, fmt.Errorf("%w: group %q has surrounding whitespace", ErrConfiguration, g.Name)
		}
		if _, dup := built[name]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate group %q", ErrConfiguration, name)
		}
		if len(g.Options) == 0 {
			return nil, nil, fmt.Errorf("%w: group %q has no options", ErrConfiguration, name)
		}
		seen := make(map[string]struct{}, len(g.Options))
		for _, o := range g.Options {
			if o.ID == "" {
				return nil, nil, fmt.Errorf("%w: group %q has an option without id", ErrConfiguration, name)
			}
			if _, dup := seen[o.ID]; dup {
				return nil, nil, fmt.Errorf("%w: group %q has duplicate option %q", ErrConfiguration, name, o.ID)
			}
			seen[o.ID] = struct{}{}
		}

		// Copy options so callers cannot mutate loaded options afterwards.
		def := Group{Name: name, Options: append([]Option(nil), g.Options...)}
		built[name] = &group{def: def, selected: 0}
		order = append(order, name)
	}

	for name, id := range defaults {
		g, ok := built[name]
		if !ok {
			return nil, nil, fmt.Errorf("%w: default for unknown group %q", ErrConfiguration, name)
		}
		idx := g.def.Find(id)
		if idx < 0 {
			return nil, nil, fmt.Errorf("%w: default %q not in group %q", ErrConfiguration, id, name)
		}
		g.selected = idx
	}
	return order, built, nil
}

// Select makes option the active choice of the named group and emits exactly
// one preview update, also when option is already selected. Failed calls
// change nothing and emit nothing.
func (c *Configurator) Select(groupName, option string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	g, err := c.lookup(groupName)
	if err != nil {
		return err
	}
	idx := g.def.Find(option)
	if idx < 0 {
		return fmt.Errorf("%w: %q in group %q", ErrUnknownOption, option, groupName)
	}
	g.selected = idx
	c.emit(g)
	return nil
}

// CurrentSelection returns the id of the active option of the named group.
func (c *Configurator) CurrentSelection(groupName string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	g, err := c.lookup(groupName)
	if err != nil {
		return "", err
	}
	return g.def.Options[g.selected].ID, nil
}

// Selected returns the active option of the named group.
func (c *Configurator) Selected(groupName string) (Option, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	g, err := c.lookup(groupName)
	if err != nil {
		return Option{}, err
	}
	return g.def.Options[g.selected], nil
}

// Snapshot returns a copy of the group to option id mapping.
func (c *Configurator) Snapshot() (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.groups == nil {
		return nil, ErrNotInitialized
	}
	out := make(map[string]string, len(c.groups))
	for name, g := range c.groups {
		out[name] = g.def.Options[g.selected].ID
	}
	return out, nil
}

// Groups returns the group names in the order they were initialized.
func (c *Configurator) Groups() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.groups == nil {
		return nil, ErrNotInitialized
	}
	return append([]string(nil), c.order...), nil
}

// Choices lists the options of a group with exactly one marked selected.
func (c *Configurator) Choices(groupName string) ([]Choice, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	g, err := c.lookup(groupName)
	if err != nil {
		return nil, err
	}
	out := make([]Choice, len(g.def.Options))
	for i, o := range g.def.Options {
		out[i] = Choice{Option: o, Selected: i == g.selected}
	}
	return out, nil
}

// lookup must be called with c.mu held.
func (c *Configurator) lookup(groupName string) (*group, error) {
	if c.groups == nil {
		return nil, ErrNotInitialized
	}
	g, ok := c.groups[groupName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, groupName)
	}
	return g, nil
}

// emit must be called with c.mu held.
func (c *Configurator) emit(g *group) {
	o := g.def.Options[g.selected]
	c.renderer.Render(PreviewUpdate{
		Group:   g.def.Name,
		Option:  o.ID,
		Display: o.Display,
	})
}
