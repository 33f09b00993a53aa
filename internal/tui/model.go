// Package tui is the terminal keypad front-end for the calculator.
package tui

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"romancalc/internal/domain"
)

// Presser is the part of the calculator service the keypad needs.
type Presser interface {
	Press(ctx context.Context, id domain.SessionID, action domain.Action) (domain.Session, error)
	Get(ctx context.Context, id domain.SessionID) (domain.Session, error)
}

// sessionMsg carries the session after a load or a press.
type sessionMsg struct {
	sess domain.Session
}

// errMsg carries a service failure; the keypad keeps running.
type errMsg struct {
	err error
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("179"))
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("137")).
			Padding(0, 1).
			Width(24).
			Align(lipgloss.Right)
	operatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("108"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
)

// Model is the bubbletea model of the keypad.
type Model struct {
	ctx  context.Context
	calc Presser
	id   domain.SessionID

	state domain.State
	err   error

	// busy is set while a load or press is in flight; keys typed meanwhile
	// wait in queue so the service sees them in order.
	busy  bool
	queue []domain.Action

	keys     keyMap
	help     help.Model
	quitting bool
}

// New returns a keypad bound to session id.
func New(ctx context.Context, calc Presser, id domain.SessionID) Model {
	return Model{
		ctx:   ctx,
		calc:  calc,
		id:    id,
		state: domain.NewState(),
		busy:  true,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
}

// Init loads the session's current state.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		sess, err := m.calc.Get(m.ctx, m.id)
		if err != nil {
			return errMsg{err: err}
		}
		return sessionMsg{sess: sess}
	}
}

func (m Model) press(a domain.Action) tea.Cmd {
	return func() tea.Msg {
		sess, err := m.calc.Press(m.ctx, m.id, a)
		if err != nil {
			return errMsg{err: err}
		}
		return sessionMsg{sess: sess}
	}
}

// Update handles key presses and service replies.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if a, ok := m.keys.actionFor(msg); ok {
			if m.busy {
				m.queue = append(m.queue, a)
				return m, nil
			}
			m.busy = true
			return m, m.press(a)
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case sessionMsg:
		m.state = msg.sess.State
		m.err = nil
		return m.next()
	case errMsg:
		m.err = msg.err
		return m.next()
	}
	return m, nil
}

// next sends the oldest queued press, or marks the keypad idle.
func (m Model) next() (tea.Model, tea.Cmd) {
	if len(m.queue) == 0 {
		m.busy = false
		return m, nil
	}
	a := m.queue[0]
	m.queue = m.queue[1:]
	return m, m.press(a)
}

// View renders the display, pending operator and key legend.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("ROMAN CALCULATOR"))
	b.WriteString("\n")

	display := m.state.Display
	if display == "" {
		display = domain.Placeholder
	}
	b.WriteString(displayStyle.Render(display))
	b.WriteString("\n")

	switch m.state.Operator {
	case domain.OpAdd:
		b.WriteString(operatorStyle.Render("pending: +"))
	case domain.OpSubtract:
		b.WriteString(operatorStyle.Render("pending: −"))
	}
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// Display returns the text currently shown.
func (m Model) Display() string { return m.state.Display }

// Run starts the keypad on in/out and blocks until the user quits or ctx ends.
func Run(ctx context.Context, calc Presser, id domain.SessionID, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(ctx, calc, id),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
