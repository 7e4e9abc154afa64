package commands

import (
	"testing"
)

func TestCommandTree(t *testing.T) {
	root := New()
	for _, path := range [][]string{
		{"show"},
		{"select"},
		{"configure"},
		{"catalog", "import"},
		{"catalog", "export"},
		{"catalog", "reset"},
		{"ui"},
		{"mcp"},
		{"guide"},
		{"info"},
		{"version"},
		{"upgrade"},
		{"completion"},
	} {
		cmd, _, err := root.Find(path)
		if err != nil || cmd == root {
			t.Fatalf("command %v not found: %v", path, err)
		}
	}
}

func TestSelectFlags(t *testing.T) {
	root := New()
	cmd, _, err := root.Find([]string{"select"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	for _, name := range []string{"catalog", "hide-prices", "show-prices", "default", "interactive", "json"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Fatalf("select is missing --%s", name)
		}
	}
}

func TestSelectRejectsMalformedPick(t *testing.T) {
	root := New()
	cmd, _, err := root.Find([]string{"select"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if err := cmd.Args(cmd, []string{"color"}); err == nil {
		t.Fatalf("expected error for a pick without '='")
	}
	if err := cmd.Args(cmd, []string{"color=red", "wheel=sport"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
