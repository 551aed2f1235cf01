package cmd

import (
	"github.com/jdelgad/bbcli/internal/ui"
)

// prompts bundles the interactive primitives so command flows can be
// exercised in tests with scripted answers.
type prompts struct {
	selectOption func(title string, options []ui.Option) (int, error)
	input        func(title, defaultValue string) (string, error)
	spin         func(message string, fn func() error) error
}

func defaultPrompts() prompts {
	return prompts{
		selectOption: ui.Select,
		input:        ui.Input,
		spin:         ui.Spin,
	}
}
