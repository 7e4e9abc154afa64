// Package preview holds the renderers that make configurator updates visible.
package preview

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/fatih/color"

	"modernride.dev/ride/pkg/catalog"
	"modernride.dev/ride/pkg/configurator"
)

// Recorder keeps every update it receives.
type Recorder struct {
	mu      sync.Mutex
	updates []configurator.PreviewUpdate
}

// Render implements configurator.Renderer.
func (r *Recorder) Render(u configurator.PreviewUpdate) {
	r.mu.Lock()
	r.updates = append(r.updates, u)
	r.mu.Unlock()
}

// Updates returns a copy of the recorded updates.
func (r *Recorder) Updates() []configurator.PreviewUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]configurator.PreviewUpdate(nil), r.updates...)
}

// Drain returns the recorded updates and forgets them.
func (r *Recorder) Drain() []configurator.PreviewUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.updates
	r.updates = nil
	return out
}

// Len returns the number of recorded updates.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.updates)
}

// Printer writes one line per update.
type Printer struct {
	Out        io.Writer
	ShowPrices bool
}

// Render implements configurator.Renderer.
func (p *Printer) Render(u configurator.PreviewUpdate) {
	out := p.Out
	if out == nil {
		out = color.Output
	}
	group := color.New(color.Bold)
	faint := color.New(color.Faint)

	line := fmt.Sprintf("%s %s %s", group.Sprintf("%-10s", u.Group), Chip(u.Display.Swatch), Label(u))
	if p.ShowPrices && u.Display.Price > 0 {
		line += faint.Sprintf("  +%s", FormatPrice(u.Display.Price))
	}
	_, _ = fmt.Fprintln(out, line)
}

// JSONLines writes each update as a JSON object on its own line.
type JSONLines struct {
	Out io.Writer
}

// Render implements configurator.Renderer.
func (j *JSONLines) Render(u configurator.PreviewUpdate) {
	b, err := json.Marshal(u)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintln(j.Out, string(b))
}

// Multi fans an update out to every renderer in order.
func Multi(renderers ...configurator.Renderer) configurator.Renderer {
	return configurator.RendererFunc(func(u configurator.PreviewUpdate) {
		for _, r := range renderers {
			if r != nil {
				r.Render(u)
			}
		}
	})
}

// Chip renders a small color block for a swatch, or padding when there is none.
func Chip(swatch string) string {
	if swatch == "" {
		return "  "
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(swatch)).
		Foreground(lipgloss.Color(catalog.Contrast(swatch))).
		Render("  ")
}

// Label returns the display label, falling back to the option id.
func Label(u configurator.PreviewUpdate) string {
	if u.Display.Label != "" {
		return u.Display.Label
	}
	return u.Option
}

// FormatPrice renders a whole-unit price with thousands separators.
func FormatPrice(price int) string {
	s := fmt.Sprintf("%d", price)
	n := len(s)
	if n <= 3 {
		return "$" + s
	}
	out := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return "$" + string(out)
}
