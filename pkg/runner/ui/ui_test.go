package ui

import (
	"context"
	"errors"
	"testing"

	"modernride.dev/ride/pkg/app"
)

func TestUIRefusesWithoutTerminal(t *testing.T) {
	u := &UI{
		Service:    &app.Service{},
		IsTerminal: func() bool { return false },
	}
	if err := u.Do(context.Background()); !errors.Is(err, ErrNoTerminal) {
		t.Fatalf("expected ErrNoTerminal, got %v", err)
	}
}

func TestUIRequiresService(t *testing.T) {
	u := &UI{IsTerminal: func() bool { return true }}
	if err := u.Do(context.Background()); err == nil {
		t.Fatalf("expected error without service")
	}
}
