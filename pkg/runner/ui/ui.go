package ui

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"modernride.dev/ride/pkg/app"
	"modernride.dev/ride/pkg/tui/configurator"
)

// ErrNoTerminal is returned when the UI is started without an interactive
// terminal.
var ErrNoTerminal = errors.New("the configurator UI needs an interactive terminal; try `ride select` instead")

type UI struct {
	Service    *app.Service
	Defaults   map[string]string
	ShowPrices bool

	// IsTerminal reports whether the process is attached to a tty.
	IsTerminal func() bool
}

func (u *UI) Do(ctx context.Context) error {
	if u.Service == nil {
		return errors.New("ui requires an app service")
	}
	isTerm := u.IsTerminal
	if isTerm == nil {
		isTerm = stdoutIsTerminal
	}
	if !isTerm() {
		return ErrNoTerminal
	}
	return configurator.Run(ctx, u.Service, u.Defaults, u.ShowPrices)
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
