package store

import (
	"context"
	"testing"
	"time"

	"modernride.dev/ride/pkg/configurator"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string    { return t.path }
func (t testConfig) CatalogFile() string { return "" }
func (t testConfig) ShowPrices() bool    { return true }

func TestPersistenceWatchEmitsGroupChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	r := &Record{Group: configurator.Group{
		Name:    "color",
		Options: []configurator.Option{{ID: "blue"}, {ID: "red"}},
	}}
	if err := p.Store(r); err != nil {
		t.Fatalf("store record: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventCatalogInvalidated {
				return
			}
			if evt.Type == EventGroupChanged {
				if evt.Group != "color" {
					t.Fatalf("expected group 'color', got %q", evt.Group)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for group change event")
		}
	}
}

func TestGroupBatchCoalesces(t *testing.T) {
	got := make(chan Event, 8)
	b := newGroupBatch(20*time.Millisecond, func(ev Event) { got <- ev })
	defer b.Stop()

	for i := 0; i < 5; i++ {
		b.Group("color")
	}
	b.Group("wheel")

	var events []Event
	timeout := time.After(time.Second)
	for len(events) < 2 {
		select {
		case ev := <-got:
			events = append(events, ev)
		case <-timeout:
			t.Fatalf("timed out, got %+v", events)
		}
	}
	if events[0].Group != "color" || events[1].Group != "wheel" {
		t.Fatalf("expected color then wheel, got %+v", events)
	}
	select {
	case ev := <-got:
		t.Fatalf("expected one event per group, got extra %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestGroupBatchReloadSubsumesGroups(t *testing.T) {
	got := make(chan Event, 8)
	b := newGroupBatch(20*time.Millisecond, func(ev Event) { got <- ev })
	defer b.Stop()

	b.Group("color")
	b.Reload()
	b.Group("wheel")

	select {
	case ev := <-got:
		if ev.Type != EventCatalogInvalidated {
			t.Fatalf("expected a catalog reload, got %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for flush")
	}
	select {
	case ev := <-got:
		t.Fatalf("reload should replace group events, got extra %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}
