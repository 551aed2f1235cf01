package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spin shows a spinner with the given message while fn runs, and returns
// fn's error once it finishes.
func Spin(message string, fn func() error) error {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

	model := spinModel{spinner: s, message: message, fn: fn}
	out, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}

	return out.(spinModel).err
}

type spinDoneMsg struct {
	err error
}

type spinModel struct {
	spinner     spinner.Model
	message     string
	fn          func() error
	done        bool
	interrupted bool
	err         error
}

func (m spinModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return spinDoneMsg{err: m.fn()}
	})
}

func (m spinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinDoneMsg:
		m.done = true
		m.err = msg.err
		if m.interrupted {
			m.err = ErrCanceled
		}
		return m, tea.Quit
	case tea.KeyMsg:
		// An interrupt is honored only once the work finishes; quitting
		// earlier would race with fn writing its captured results.
		if msg.String() == "ctrl+c" {
			m.interrupted = true
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinModel) View() string {
	if m.done {
		return ""
	}
	message := m.message
	if m.interrupted {
		message += " (canceling...)"
	}
	return m.spinner.View() + " " + message + "\n"
}
