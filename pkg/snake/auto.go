package snake

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// PickCommand asks which subcommand of parent to run next and walks down
// until it reaches a runnable leaf.
func (p *Picker) PickCommand(parent *cobra.Command) (*cobra.Command, error) {
	var subcommands []*cobra.Command
	for _, c := range parent.Commands() {
		if c.IsAvailableCommand() {
			subcommands = append(subcommands, c)
		}
	}
	if len(subcommands) == 0 {
		return nil, errors.New("snake: no subcommands to pick from")
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Short | green }}",
		Inactive: "   {{ .Name }} {{ .Short | cyan }}",
		Selected: "{{ .Use | bold }}",
		Details: `
--------- Details ----------
{{ .Example }}
`,
	}

	searcher := func(input string, index int) bool {
		subcommand := subcommands[index]
		name := strings.Replace(strings.ToLower(subcommand.Name()+subcommand.Short), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)

		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     parent.Name(),
		Items:     subcommands,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     nopReadCloser(p.in()),
		Stdout:    nopWriteCloser{p.out()},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return nil, err
	}

	next := subcommands[i]
	if next.HasAvailableSubCommands() {
		return p.PickCommand(next)
	}
	return next, nil
}
