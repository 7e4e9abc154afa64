// Package configurator keeps one active option per selection group and
// reports every selection to a preview renderer.
package configurator

// Display is the presentation payload carried by an option. The configurator
// never inspects it; renderers decide what to do with it.
type Display struct {
	Label  string `json:"label"`
	Swatch string `json:"swatch,omitempty"`
	Image  string `json:"image,omitempty"`
	Price  int    `json:"price,omitempty"`
}

// Option is one selectable value within a group.
type Option struct {
	ID      string  `json:"id"`
	Display Display `json:"display"`
}

// Group defines a category of mutually exclusive options, e.g. paint color.
type Group struct {
	Name    string   `json:"name"`
	Options []Option `json:"options"`
}

// Find returns the index of the option with the given id, or -1.
func (g Group) Find(id string) int {
	for i, o := range g.Options {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// Choice pairs an option with its selection mark.
type Choice struct {
	Option
	Selected bool `json:"selected"`
}

// PreviewUpdate tells a renderer which option is now active for a group.
type PreviewUpdate struct {
	Group   string  `json:"group"`
	Option  string  `json:"option"`
	Display Display `json:"display"`
}

// Renderer makes preview updates visible. Render is called synchronously, in
// selection order, while the configurator holds its lock; implementations
// must not call back into the configurator that invoked them.
type Renderer interface {
	Render(u PreviewUpdate)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(u PreviewUpdate)

// Render calls f(u).
func (f RendererFunc) Render(u PreviewUpdate) { f(u) }

// Discard drops every update.
var Discard Renderer = RendererFunc(func(PreviewUpdate) {})
