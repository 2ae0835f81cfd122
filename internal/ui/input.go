package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.phase == phaseQuitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.phase = phaseQuitting
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.sel.Move(-1)
		m.phase = phaseNavigating
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.sel.Move(1)
		m.phase = phaseNavigating
		return m, nil

	case key.Matches(msg, m.keys.Execute):
		return m.execute(m.sel.Index())
	}

	if n := directLaunchNumber(msg, m.cfg.Keybinds.NumberModifier); n > 0 {
		if m.cfg.Results.Numbered && m.cfg.Results.OpenThroughNumber {
			return m.execute(n - 1)
		}
		return m, nil
	}

	return m.handleEditKey(msg)
}

// directLaunchNumber reports the 1-based rank for a modifier+digit
// press, or 0 for any other key. Digits only count with the configured
// modifier held, so plain digits stay free for calculator queries.
func directLaunchNumber(msg tea.KeyMsg, modifier string) int {
	prefix := modifier + "+"
	s := msg.String()
	if len(s) == len(prefix)+1 && strings.HasPrefix(s, prefix) {
		if d := s[len(prefix)]; d >= '1' && d <= '9' {
			return int(d - '0')
		}
	}
	return 0
}

// handleEditKey applies text editing to the query buffer. Every edit
// that changes the text reruns the ranking; pure cursor motion does
// not.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return m, nil
		}
		m.insertRunes(msg.Runes)
		m.requery()

	case tea.KeySpace:
		m.insertRunes([]rune{' '})
		m.requery()

	case tea.KeyBackspace:
		if m.cursor > 0 {
			m.query = append(m.query[:m.cursor-1], m.query[m.cursor:]...)
			m.cursor--
			m.requery()
		}

	case tea.KeyDelete:
		if m.cursor < len(m.query) {
			m.query = append(m.query[:m.cursor], m.query[m.cursor+1:]...)
			m.requery()
		}

	case tea.KeyLeft:
		if m.cursor > 0 {
			m.cursor--
		}

	case tea.KeyRight:
		if m.cursor < len(m.query) {
			m.cursor++
		}

	case tea.KeyHome:
		m.cursor = 0

	case tea.KeyEnd:
		m.cursor = len(m.query)
	}
	return m, nil
}

func (m *Model) insertRunes(rs []rune) {
	out := make([]rune, 0, len(m.query)+len(rs))
	out = append(out, m.query[:m.cursor]...)
	out = append(out, rs...)
	out = append(out, m.query[m.cursor:]...)
	m.query = out
	m.cursor += len(rs)
}
