package preview

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"modernride.dev/ride/pkg/catalog"
	"modernride.dev/ride/pkg/configurator"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func mount(t *testing.T, r configurator.Renderer) *configurator.Configurator {
	t.Helper()
	c := catalog.Default()
	cfg := configurator.New(r)
	if err := cfg.Initialize(c.Groups, c.Defaults); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return cfg
}

func TestRecorderDrain(t *testing.T) {
	rec := &Recorder{}
	cfg := mount(t, rec)
	if rec.Len() != 4 {
		t.Fatalf("expected 4 mount updates, got %d", rec.Len())
	}
	if got := rec.Drain(); len(got) != 4 || got[0].Group != "vehicle" {
		t.Fatalf("unexpected drained updates %+v", got)
	}
	if rec.Len() != 0 {
		t.Fatalf("drain should empty the recorder")
	}
	if err := cfg.Select("color", "red"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got := rec.Updates(); len(got) != 1 || got[0].Option != "red" {
		t.Fatalf("unexpected updates %+v", got)
	}
}

func TestPrinterShowsPricesWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	cfg := mount(t, &Printer{Out: &buf, ShowPrices: true})
	buf.Reset()

	if err := cfg.Select("wheel", "sport"); err != nil {
		t.Fatalf("select: %v", err)
	}
	out := stripANSI(buf.String())
	if !strings.Contains(out, "wheel") || !strings.Contains(out, "Sport 20\"") {
		t.Fatalf("unexpected output %q", out)
	}
	if !strings.Contains(out, "+$1,500") {
		t.Fatalf("expected price in output %q", out)
	}
}

func TestPrinterHidesPrices(t *testing.T) {
	var buf bytes.Buffer
	cfg := mount(t, &Printer{Out: &buf, ShowPrices: false})
	buf.Reset()

	if err := cfg.Select("wheel", "sport"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if strings.Contains(buf.String(), "$") {
		t.Fatalf("prices should be hidden: %q", buf.String())
	}
}

func TestJSONLinesAndMulti(t *testing.T) {
	var buf bytes.Buffer
	rec := &Recorder{}
	mount(t, Multi(&JSONLines{Out: &buf}, rec, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 || rec.Len() != 4 {
		t.Fatalf("expected 4 lines and 4 recorded, got %d and %d", len(lines), rec.Len())
	}
	var u configurator.PreviewUpdate
	if err := json.Unmarshal([]byte(lines[1]), &u); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if u.Group != "color" || u.Option != "blue" || u.Display.Swatch != "#0c2d57" {
		t.Fatalf("unexpected update %+v", u)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := map[int]string{
		0:       "$0",
		800:     "$800",
		1500:    "$1,500",
		42000:   "$42,000",
		250000:  "$250,000",
		1234567: "$1,234,567",
	}
	for in, want := range tests {
		if got := FormatPrice(in); got != want {
			t.Fatalf("FormatPrice(%d) = %q, want %q", in, got, want)
		}
	}
}
