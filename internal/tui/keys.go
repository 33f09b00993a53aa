package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"romancalc/internal/domain"
)

type keyMap struct {
	Numeral  key.Binding
	Add      key.Binding
	Subtract key.Binding
	Equals   key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	numerals := make([]string, 0, 2*len(domain.Symbols))
	for _, s := range domain.Symbols {
		numerals = append(numerals, s.String(), string(rune(s)+('a'-'A')))
	}
	return keyMap{
		Numeral:  key.NewBinding(key.WithKeys(numerals...), key.WithHelp("i v x l c d m", "numeral")),
		Add:      key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "add")),
		Subtract: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "subtract")),
		Equals:   key.NewBinding(key.WithKeys("=", "enter"), key.WithHelp("=/enter", "calculate")),
		Clear:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "clear")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Numeral, k.Add, k.Subtract, k.Equals, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// actionFor maps a key press to a calculator action.
func (k keyMap) actionFor(msg tea.KeyMsg) (domain.Action, bool) {
	switch {
	case key.Matches(msg, k.Numeral):
		if r := msg.Runes; len(r) == 1 {
			if s, ok := domain.ParseSymbol(r[0]); ok {
				return domain.Press(s), true
			}
		}
	case key.Matches(msg, k.Add):
		return domain.Add, true
	case key.Matches(msg, k.Subtract):
		return domain.Subtract, true
	case key.Matches(msg, k.Equals):
		return domain.Calculate, true
	case key.Matches(msg, k.Clear):
		return domain.Clear, true
	}
	return domain.Action{}, false
}
