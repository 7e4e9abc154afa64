// Package show prints the catalog with the selections a fresh mount starts on.
package show

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"modernride.dev/ride/pkg/app"
	"modernride.dev/ride/pkg/configurator"
	"modernride.dev/ride/pkg/printers"
)

// Show lists every group and option.
type Show struct {
	Service    *app.Service
	Groups     []string
	ShowPrices bool
	JSON       bool
	Out        io.Writer
}

type groupView struct {
	Name    string                `json:"name"`
	Options []configurator.Choice `json:"options"`
}

// Do mounts a configurator with its defaults and prints it.
func (s *Show) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not show, no service")
	}
	out := s.Out
	if out == nil {
		out = color.Output
	}

	cfg, err := s.Service.Mount(ctx, nil, nil)
	if err != nil {
		return err
	}

	names := s.Groups
	if len(names) == 0 {
		if names, err = cfg.Groups(); err != nil {
			return err
		}
	}

	views := make([]groupView, 0, len(names))
	for _, name := range names {
		choices, err := cfg.Choices(name)
		if err != nil {
			return err
		}
		views = append(views, groupView{Name: name, Options: choices})
	}

	if s.JSON {
		if !s.ShowPrices {
			for _, v := range views {
				for i := range v.Options {
					v.Options[i].Display.Price = 0
				}
			}
		}
		b, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	pp := printers.PrettyPrint{Out: out, ShowPrices: s.ShowPrices}
	pp.NewLine()
	for _, v := range views {
		pp.Group(v.Name, v.Options)
	}
	return nil
}
