package catalog

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"modernride.dev/ride/pkg/app"
	cat "modernride.dev/ride/pkg/catalog"
	"modernride.dev/ride/pkg/store"
)

func newService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(store.StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return &app.Service{Persistence: p}
}

func TestImportThenExport(t *testing.T) {
	svc := newService(t)
	file := filepath.Join(t.TempDir(), "showroom.yaml")
	src := "groups:\n  - name: color\n    options:\n      - id: teal\n        display:\n          swatch: \"#1b7f79\"\n      - id: black\n"
	if err := os.WriteFile(file, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out bytes.Buffer
	if err := (&Import{Service: svc, File: file, Out: &out}).Do(context.Background()); err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out.String(), "Imported 1 groups") {
		t.Fatalf("unexpected import output %q", out.String())
	}

	out.Reset()
	if err := (&Export{Service: svc, Out: &out}).Do(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}
	c, err := cat.Decode(&out, "json")
	if err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if len(c.Groups) != 1 || c.Groups[0].Options[0].ID != "teal" {
		t.Fatalf("unexpected exported catalog %+v", c)
	}
}

func TestImportRequiresFile(t *testing.T) {
	if err := (&Import{Service: newService(t)}).Do(context.Background()); err == nil {
		t.Fatalf("expected error without file")
	}
}

func TestImportRejectsInvalid(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(file, []byte(`{"groups":[{"name":"color","options":[]}]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	err := (&Import{Service: newService(t), File: file}).Do(context.Background())
	if !errors.Is(err, cat.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestResetHonoursConfirmation(t *testing.T) {
	svc := newService(t)
	var out bytes.Buffer
	r := Reset{Service: svc, Out: &out, Confirm: func() (bool, error) { return false, nil }}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !strings.Contains(out.String(), "cancelled") {
		t.Fatalf("expected cancellation, got %q", out.String())
	}
	if got := svc.Persistence.Records(context.Background()); len(got) != 0 {
		t.Fatalf("cancelled reset wrote %d records", len(got))
	}

	r.Confirm = func() (bool, error) { return true, nil }
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got := svc.Persistence.Records(context.Background()); len(got) != 4 {
		t.Fatalf("expected 4 records after reset, got %d", len(got))
	}
}
