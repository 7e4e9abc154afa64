// Package snake walks the user through configurator choices with prompts.
package snake

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"modernride.dev/ride/pkg/configurator"
	"modernride.dev/ride/pkg/preview"
)

// ErrDone is returned by PickGroup when the user chooses to finish.
var ErrDone = errors.New("snake: done")

const doneItem = "Done"

// Picker prompts on the given streams.
type Picker struct {
	In         io.Reader
	Out        io.Writer
	ShowPrices bool
}

type pickItem struct {
	Name     string
	Label    string
	Price    string
	Selected bool
}

// PickGroup asks which group to change next. It returns ErrDone when the user
// picks the final "Done" entry.
func (p *Picker) PickGroup(groups []string, current map[string]string) (string, error) {
	items := make([]pickItem, 0, len(groups)+1)
	for _, g := range groups {
		items = append(items, pickItem{Name: g, Label: current[g]})
	}
	items = append(items, pickItem{Name: doneItem})

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Label | green }}",
		Inactive: "   {{ .Name }} {{ .Label | cyan }}",
		Selected: "{{ .Name | bold }}",
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Customize",
		Items:     items,
		Templates: templates,
		Size:      10,
		Stdin:     nopReadCloser(p.in()),
		Stdout:    nopWriteCloser{p.out()},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	if items[i].Name == doneItem {
		return "", ErrDone
	}
	return items[i].Name, nil
}

// PickOption asks for one option of a group; the cursor starts on the
// currently selected option.
func (p *Picker) PickOption(group string, choices []configurator.Choice) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("snake: group %q has no options", group)
	}
	items := make([]pickItem, 0, len(choices))
	cursor := 0
	for i, ch := range choices {
		item := pickItem{Name: ch.ID, Label: ch.Display.Label, Selected: ch.Selected}
		if item.Label == "" {
			item.Label = ch.ID
		}
		if p.ShowPrices && ch.Display.Price > 0 {
			item.Price = "+" + preview.FormatPrice(ch.Display.Price)
		}
		if ch.Selected {
			cursor = i
		}
		items = append(items, item)
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . | magenta }}?",
		Active:   "➜  {{ .Label | bold }} {{ .Price | green }}{{ if .Selected }} {{ \"(current)\" | faint }}{{ end }}",
		Inactive: "   {{ .Label }} {{ .Price | cyan }}{{ if .Selected }} {{ \"(current)\" | faint }}{{ end }}",
		Selected: "{{ .Label | bold }}",
		Details: `
--------- Option ----------
id: {{ .Name }}
`,
	}

	searcher := func(input string, index int) bool {
		item := items[index]
		name := strings.Replace(strings.ToLower(item.Label+item.Name), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)

		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     group,
		Items:     items,
		Templates: templates,
		Size:      10,
		CursorPos: cursor,
		Searcher:  searcher,
		Stdin:     nopReadCloser(p.in()),
		Stdout:    nopWriteCloser{p.out()},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return items[i].Name, nil
}

func (p *Picker) in() io.Reader {
	if p.In == nil {
		return strings.NewReader("")
	}
	return p.In
}

func (p *Picker) out() io.Writer {
	if p.Out == nil {
		return io.Discard
	}
	return p.Out
}

func nopReadCloser(r io.Reader) io.ReadCloser {
	return io.NopCloser(r)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
