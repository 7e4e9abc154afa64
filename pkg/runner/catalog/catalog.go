// Package catalog contains runners for catalog management commands.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"modernride.dev/ride/pkg/app"
	cat "modernride.dev/ride/pkg/catalog"
)

// Import configures the parameters for `ride catalog import`.
type Import struct {
	Service *app.Service
	File    string
	Out     io.Writer
}

// Do validates the catalog file and replaces the stored catalog with it.
func (i *Import) Do(ctx context.Context) error {
	file := strings.TrimSpace(i.File)
	if file == "" {
		return errors.New("catalog file is required")
	}
	if i.Service == nil {
		return errors.New("can not import, no service")
	}
	c, err := cat.LoadFile(file)
	if err != nil {
		return err
	}
	if err := i.Service.Import(c); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(output(i.Out), "Imported %d groups from %s\n", len(c.Groups), file)
	return nil
}

// Export configures the parameters for `ride catalog export`.
type Export struct {
	Service *app.Service
	Out     io.Writer
}

// Do writes the catalog that would be mounted as JSON.
func (e *Export) Do(ctx context.Context) error {
	if e.Service == nil {
		return errors.New("can not export, no service")
	}
	c, err := e.Service.Catalog(ctx)
	if err != nil {
		return err
	}
	return c.Encode(output(e.Out))
}

// Reset configures the parameters for `ride catalog reset`.
type Reset struct {
	Service *app.Service
	Confirm func() (bool, error)
	Out     io.Writer
}

// Do restores the built-in catalog, after confirmation when Confirm is set.
func (r *Reset) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not reset, no service")
	}
	if r.Confirm != nil {
		ok, err := r.Confirm()
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(output(r.Out), "Reset cancelled")
			return nil
		}
	}
	if err := r.Service.Reset(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(output(r.Out), "Catalog reset to the built-in showroom")
	return nil
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}
