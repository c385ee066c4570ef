package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// doneMsg is sent when the wrapped operation returns.
type doneMsg struct{ err error }

// spinnerModel is the Bubble Tea model shown while a fetch is in flight.
type spinnerModel struct {
	spinner    spinner.Model
	label      string
	err        error
	cancelling bool
	cancel     func()
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Ctrl+C cancels the operation but keeps the UI up until the
		// wrapped function actually returns.
		if msg.String() == "ctrl+c" && !m.cancelling {
			m.cancelling = true
			if m.cancel != nil {
				m.cancel()
			}
		}
		return m, nil

	case doneMsg:
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m spinnerModel) View() string {
	if m.cancelling {
		return fmt.Sprintf("%s %s (cancelling…)\n", m.spinner.View(), m.label)
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.label)
}

// Spin runs fn while showing an animated spinner with label on stderr.
// Ctrl+C invokes cancel (if non-nil) and waits for fn to return, so fn sees
// its context cancelled rather than being abandoned mid-flight. When stdout
// is not a terminal the spinner is skipped and fn runs directly.
func Spin(label string, cancel func(), fn func() error) error {
	if !IsTTY() {
		return fn()
	}

	m := spinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("205"))),
		),
		label:  label,
		cancel: cancel,
	}

	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	go func() {
		p.Send(doneMsg{err: fn()})
	}()

	final, err := p.Run()
	if err != nil {
		// The terminal UI failed; the operation itself may still have
		// succeeded, but without the done message there is no result to
		// trust. Surface the UI error.
		return err
	}
	return final.(spinnerModel).err
}
