package snake

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// Ask prompts for free text; an empty answer takes def. With no default an
// answer is required.
func (p *Picker) Ask(label, def string) (string, error) {
	validate := func(input string) error {
		if strings.TrimSpace(input) == "" && def == "" {
			return errors.New("empty")
		}
		return nil
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} : ",
		Valid:   "{{ . | green }} : ",
		Invalid: "{{ . | red }} : ",
		Success: "{{ . | bold }} : ",
	}

	l := label
	if def != "" {
		l = fmt.Sprintf("%s [%s]", label, def)
	}

	prompt := promptui.Prompt{
		Label:     l,
		Templates: templates,
		Validate:  validate,
		Stdin:     nopReadCloser(p.in()),
		Stdout:    nopWriteCloser{p.out()},
	}

	result, err := prompt.Run()
	if err != nil {
		return "", err
	}
	result = strings.TrimSpace(result)
	if result == "" {
		result = def
	}
	return result, nil
}
