package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Input asks for a single line of text. Submitting an empty line returns
// defaultValue. Esc or ctrl+c returns ErrCanceled.
func Input(title, defaultValue string) (string, error) {
	field := textinput.New()
	field.Prompt = "> "
	field.Placeholder = defaultValue
	field.Focus()

	model := inputModel{title: title, defaultValue: defaultValue, field: field}
	prog := tea.NewProgram(model)
	out, err := prog.Run()
	if err != nil {
		return "", err
	}

	final := out.(inputModel)
	if final.err != nil {
		return "", final.err
	}

	value := strings.TrimSpace(final.field.Value())
	if value == "" {
		return final.defaultValue, nil
	}
	return value, nil
}

type inputModel struct {
	title        string
	defaultValue string
	field        textinput.Model
	done         bool
	err          error
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.err = ErrCanceled
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.err != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.field.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: accept • esc: cancel"))
	b.WriteString("\n")
	return b.String()
}
