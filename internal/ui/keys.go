package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"lumo/internal/config"
)

// keyMap holds the action bindings resolved from configuration.
type keyMap struct {
	Quit    key.Binding
	Up      key.Binding
	Down    key.Binding
	Execute key.Binding
}

// newKeyMap builds bindings from the configured key names. ctrl+c is
// always bound to quit so a broken keybind table cannot trap the user.
func newKeyMap(kb config.Keybinds) keyMap {
	quitKeys := []string{"ctrl+c"}
	if kb.Quit != "" && kb.Quit != "ctrl+c" {
		quitKeys = append(quitKeys, kb.Quit)
	}
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys(quitKeys...),
			key.WithHelp(kb.Quit, "Quit"),
		),
		Up: key.NewBinding(
			key.WithKeys(orDefault(kb.Up, "up")),
			key.WithHelp(kb.Up, "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys(orDefault(kb.Down, "down")),
			key.WithHelp(kb.Down, "Move down"),
		),
		Execute: key.NewBinding(
			key.WithKeys(orDefault(kb.Execute, "enter")),
			key.WithHelp(kb.Execute, "Launch"),
		),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
