package store

import (
	"context"
	"errors"
	"testing"

	"modernride.dev/ride/pkg/catalog"
)

func TestReplaceAndReadCatalog(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ctx := context.Background()

	if _, err := p.Catalog(ctx); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}

	want := catalog.Default()
	if err := p.Replace(want); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := p.Catalog(ctx)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if len(got.Groups) != len(want.Groups) {
		t.Fatalf("expected %d groups, got %d", len(want.Groups), len(got.Groups))
	}
	for i := range want.Groups {
		if got.Groups[i].Name != want.Groups[i].Name {
			t.Fatalf("group %d = %q, want %q", i, got.Groups[i].Name, want.Groups[i].Name)
		}
	}
	if got.Defaults["vehicle"] != "car" || got.Defaults["color"] != "blue" {
		t.Fatalf("unexpected defaults %v", got.Defaults)
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("stored catalog invalid: %v", err)
	}
}

func TestReplaceDropsStaleGroups(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ctx := context.Background()
	if err := p.Replace(catalog.Default()); err != nil {
		t.Fatalf("replace: %v", err)
	}

	smaller := catalog.Default()
	smaller.Groups = smaller.Groups[:2]
	if err := p.Replace(smaller); err != nil {
		t.Fatalf("replace: %v", err)
	}

	records := p.Records(ctx)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Group.Name != "vehicle" || records[1].Group.Name != "color" {
		t.Fatalf("unexpected order %q, %q", records[0].Group.Name, records[1].Group.Name)
	}
}

func TestReplaceRejectsInvalidCatalog(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	bad := catalog.Default()
	bad.Defaults["color"] = "green"
	if err := p.Replace(bad); !errors.Is(err, catalog.ErrInvalid) {
		t.Fatalf("expected catalog.ErrInvalid, got %v", err)
	}
	if got := p.Records(context.Background()); len(got) != 0 {
		t.Fatalf("invalid replace wrote %d records", len(got))
	}
}

func TestDeleteGroup(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := p.Replace(catalog.Default()); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := p.Delete("wheel"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	c, err := p.Catalog(context.Background())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if _, ok := c.Group("wheel"); ok {
		t.Fatalf("wheel should be deleted")
	}
}

func TestKeyTransformsRoundTrip(t *testing.T) {
	for _, name := range []string{"color", "paint-finish", "Interior Trim", "ä/ö"} {
		key := toKey(name)
		pk := keyToPathTransform(key)
		if len(pk.Path) != 1 || pk.Path[0] != groupsDir {
			t.Fatalf("unexpected path %v for %q", pk.Path, name)
		}
		if back := pathToKeyTransform(pk); back != key {
			t.Fatalf("round trip %q -> %q", key, back)
		}
		if decodeName(pk.FileName) != name {
			t.Fatalf("decode %q, want %q", decodeName(pk.FileName), name)
		}
	}
}

func TestCatalogSeesWritesFromAnotherInstance(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	viewer, err := Load(testConfig{path: dir})
	if err != nil {
		t.Fatalf("load viewer: %v", err)
	}
	writer, err := Load(testConfig{path: dir})
	if err != nil {
		t.Fatalf("load writer: %v", err)
	}

	if err := writer.Replace(catalog.Default()); err != nil {
		t.Fatalf("replace: %v", err)
	}
	before, err := viewer.Catalog(ctx)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if g, _ := before.Group("color"); len(g.Options) != 3 {
		t.Fatalf("expected 3 colors, got %d", len(g.Options))
	}

	smaller := catalog.Default()
	smaller.Groups[1].Options = smaller.Groups[1].Options[:1]
	if err := writer.Replace(smaller); err != nil {
		t.Fatalf("replace: %v", err)
	}

	after, err := viewer.Catalog(ctx)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if g, _ := after.Group("color"); len(g.Options) != 1 {
		t.Fatalf("viewer read a stale color group with %d options", len(g.Options))
	}
}
