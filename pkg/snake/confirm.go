package snake

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// Confirm asks a yes/no question; an empty answer takes def.
func (p *Picker) Confirm(label string, def bool) (bool, error) {
	validInput := "y/[n]"
	if def {
		validInput = "[y]/n"
	}

	validate := func(input string) error {
		if input == "" {
			return nil
		}
		_, err := ParseBool(input)
		return err
	}

	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} : ",
		Valid:   "{{ . | green }} : ",
		Invalid: "{{ . | red }} : ",
		Success: "{{ . | bold }} : ",
	}

	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%s %s", label, validInput),
		Templates: templates,
		Validate:  validate,
		Stdin:     nopReadCloser(p.in()),
		Stdout:    nopWriteCloser{p.out()},
	}

	result, err := prompt.Run()
	if err != nil {
		return false, err
	}
	if result == "" {
		return def, nil
	}
	return ParseBool(result)
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "NO", "No", "no":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
