package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned when the user aborts a prompt.
var ErrCanceled = errors.New("prompt canceled")

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Option is one entry of a single-choice menu.
type Option struct {
	Label  string
	Detail string // optional, rendered muted after the label
}

// Select presents a single-choice menu and returns the index of the picked
// option. Esc or ctrl+c returns ErrCanceled.
func Select(title string, options []Option) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("no options to select from")
	}

	model := selectModel{title: title, options: options}
	prog := tea.NewProgram(model)
	out, err := prog.Run()
	if err != nil {
		return 0, err
	}

	final := out.(selectModel)
	if final.err != nil {
		return 0, final.err
	}
	return final.cursor, nil
}

type selectModel struct {
	title   string
	options []Option
	cursor  int
	done    bool
	err     error
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	case "esc", "q", "ctrl+c":
		m.err = ErrCanceled
		return m, tea.Quit
	}

	return m, nil
}

func (m selectModel) View() string {
	if m.done || m.err != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		line := opt.Label
		if opt.Detail != "" {
			line = fmt.Sprintf("%s %s", opt.Label, detailStyle.Render("("+opt.Detail+")"))
		}

		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "))
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down: move • enter: select • esc: cancel"))
	b.WriteString("\n")
	return b.String()
}
