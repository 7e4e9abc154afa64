// Package guide renders the configurator guide in the terminal.
package guide

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

//go:embed guide.md
var guideMarkdown string

// Guide prints the embedded markdown guide.
type Guide struct {
	Width int
	Style string
	Out   io.Writer
}

// Do renders the guide with glamour.
func (g *Guide) Do(ctx context.Context) error {
	width := g.Width
	if width <= 0 {
		width = 80
	}
	style := resolveStyle(g.Style, termenv.HasDarkBackground)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}
	content, err := renderer.Render(strings.TrimSpace(guideMarkdown))
	if err != nil {
		return err
	}
	out := g.Out
	if out == nil {
		out = color.Output
	}
	_, err = fmt.Fprint(out, content)
	return err
}

// resolveStyle maps "auto" (or nothing) to a light or dark style based on the
// terminal background.
func resolveStyle(style string, dark func() bool) string {
	if style != "" && style != "auto" {
		return style
	}
	if dark() {
		return "dark"
	}
	return "light"
}
