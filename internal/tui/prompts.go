package tui

import (
	"context"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// Confirm shows a yes/no prompt.
func Confirm(title, description string) (bool, error) {
	var confirmed bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(currentThemeOrDefault()).Run()
	return confirmed, err
}

// Input asks for a single line of text. validate may be nil.
func Input(title, description, placeholder string, validate func(string) error) (string, error) {
	var value string
	input := huh.NewInput().
		Title(title).
		Description(description).
		Placeholder(placeholder).
		Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}

	err := huh.NewForm(huh.NewGroup(input)).WithTheme(currentThemeOrDefault()).Run()
	return value, err
}

// MultiSelect shows a multi-select prompt with defaults pre-selected.
func MultiSelect(title, description string, options []huh.Option[string], defaults []string) ([]string, error) {
	selected := append([]string(nil), defaults...)
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(title).
				Description(description).
				Options(options...).
				Value(&selected),
		),
	).WithTheme(currentThemeOrDefault()).Run()
	return selected, err
}

// Spin runs action behind a spinner titled title. Outside an interactive
// terminal the action runs directly.
func Spin(ctx context.Context, title string, action func(context.Context) error) error {
	if !IsInteractive() {
		return action(ctx)
	}

	var actionErr error
	err := spinner.New().
		Title(title).
		Context(ctx).
		Action(func() { actionErr = action(ctx) }).
		Run()
	if err != nil {
		return err
	}
	return actionErr
}
