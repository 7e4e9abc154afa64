package configure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"modernride.dev/ride/pkg/app"
	"modernride.dev/ride/pkg/configurator"
)

func TestConfigureEmitsMountAndPickUpdates(t *testing.T) {
	var buf bytes.Buffer
	c := Configure{
		Service: &app.Service{},
		Picks:   []Pick{{Group: "color", Option: "red"}, {Group: "color", Option: "red"}},
		JSON:    true,
		Out:     &buf,
	}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// 4 mount updates, 2 picks (reselection still emits), 1 quote.
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d: %q", len(lines), buf.String())
	}
	for _, line := range lines[4:6] {
		var u configurator.PreviewUpdate
		if err := json.Unmarshal([]byte(line), &u); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		if u.Group != "color" || u.Option != "red" {
			t.Fatalf("unexpected pick update %+v", u)
		}
	}
	var quote struct {
		Quote app.Quote `json:"quote"`
	}
	if err := json.Unmarshal([]byte(lines[6]), &quote); err != nil {
		t.Fatalf("decode quote: %v", err)
	}
	if quote.Quote.Total != 0 {
		t.Fatalf("prices hidden, total should be 0, got %d", quote.Quote.Total)
	}
}

func TestConfigureUnknownOption(t *testing.T) {
	var buf bytes.Buffer
	c := Configure{
		Service: &app.Service{},
		Picks:   []Pick{{Group: "color", Option: "green"}},
		Out:     &buf,
	}
	if err := c.Do(context.Background()); !errors.Is(err, configurator.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
}

func TestConfigurePrettyQuote(t *testing.T) {
	var buf bytes.Buffer
	c := Configure{
		Service:    &app.Service{},
		Defaults:   map[string]string{"vehicle": "bike"},
		Picks:      []Pick{{Group: "wheel", Option: "sport"}},
		ShowPrices: true,
		Out:        &buf,
	}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Your build") {
		t.Fatalf("expected quote title in %q", out)
	}
	if !strings.Contains(out, "$5,000") {
		t.Fatalf("expected total $5,000 in %q", out)
	}
}
