package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Pick is one group=option pair given on the command line.
type Pick struct {
	Group  string
	Option string
}

// ParsePick parses "group=option".
func ParsePick(s string) (Pick, error) {
	group, option, ok := strings.Cut(s, "=")
	group = strings.TrimSpace(group)
	option = strings.TrimSpace(option)
	if !ok || group == "" || option == "" {
		return Pick{}, fmt.Errorf("expected group=option, got %q", s)
	}
	return Pick{Group: group, Option: option}, nil
}

type pickList struct {
	picks *[]Pick
}

var _ pflag.Value = (*pickList)(nil)

func (p *pickList) String() string {
	if p.picks == nil {
		return ""
	}
	parts := make([]string, 0, len(*p.picks))
	for _, pk := range *p.picks {
		parts = append(parts, pk.Group+"="+pk.Option)
	}
	return strings.Join(parts, ",")
}

func (p *pickList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		pk, err := ParsePick(part)
		if err != nil {
			return err
		}
		*p.picks = append(*p.picks, pk)
	}
	return nil
}

func (p *pickList) Type() string {
	return "group=option"
}

// DefaultsOptions overrides the catalog's starting selections.
type DefaultsOptions struct {
	Defaults []Pick
}

func AddDefaultsArg(cmd *cobra.Command, o *DefaultsOptions) {
	cmd.Flags().VarP(&pickList{picks: &o.Defaults}, "default", "d",
		"Start a group on an option instead of the catalog default, as group=option. Repeatable.")
}

// Map returns the defaults keyed by group; later flags win.
func (o *DefaultsOptions) Map() map[string]string {
	if len(o.Defaults) == 0 {
		return nil
	}
	out := make(map[string]string, len(o.Defaults))
	for _, pk := range o.Defaults {
		out[pk.Group] = pk.Option
	}
	return out
}
