// Package configure runs a sequence of selections against a freshly mounted
// configurator and prints every preview update.
package configure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"modernride.dev/ride/pkg/app"
	"modernride.dev/ride/pkg/configurator"
	"modernride.dev/ride/pkg/preview"
	"modernride.dev/ride/pkg/printers"
	"modernride.dev/ride/pkg/snake"
)

// Pick is one requested selection.
type Pick struct {
	Group  string
	Option string
}

// Configure applies Picks in order. With Interactive set, the user is
// prompted for further picks afterwards.
type Configure struct {
	Service     *app.Service
	Defaults    map[string]string
	Picks       []Pick
	Interactive bool
	ShowPrices  bool
	JSON        bool

	In  io.Reader
	Out io.Writer
}

// Do mounts, applies the picks and prints the resulting build.
func (c *Configure) Do(ctx context.Context) error {
	if c.Service == nil {
		return errors.New("can not configure, no service")
	}
	out := c.Out
	if out == nil {
		out = color.Output
	}

	var r configurator.Renderer
	if c.JSON {
		r = &preview.JSONLines{Out: out}
	} else {
		r = &preview.Printer{Out: out, ShowPrices: c.ShowPrices}
	}

	cfg, err := c.Service.Mount(ctx, r, c.Defaults)
	if err != nil {
		return err
	}

	for _, p := range c.Picks {
		if err := cfg.Select(p.Group, p.Option); err != nil {
			return err
		}
	}

	if c.Interactive {
		if err := c.prompt(cfg); err != nil {
			return err
		}
	}

	q, err := c.Service.Quote(cfg)
	if err != nil {
		return err
	}
	if c.JSON {
		if !c.ShowPrices {
			q.Total = 0
			for i := range q.Lines {
				q.Lines[i].Option.Display.Price = 0
			}
		}
		b, err := json.Marshal(map[string]any{"quote": q})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	pp := printers.PrettyPrint{Out: out, ShowPrices: c.ShowPrices}
	pp.NewLine()
	pp.Quote(q)
	return nil
}

func (c *Configure) prompt(cfg *configurator.Configurator) error {
	picker := &snake.Picker{In: c.In, Out: c.Out, ShowPrices: c.ShowPrices}
	groups, err := cfg.Groups()
	if err != nil {
		return err
	}
	for {
		current, err := cfg.Snapshot()
		if err != nil {
			return err
		}
		group, err := picker.PickGroup(groups, current)
		if errors.Is(err, snake.ErrDone) {
			return nil
		}
		if err != nil {
			return err
		}
		choices, err := cfg.Choices(group)
		if err != nil {
			return err
		}
		option, err := picker.PickOption(group, choices)
		if err != nil {
			return err
		}
		if err := cfg.Select(group, option); err != nil {
			return err
		}
	}
}
