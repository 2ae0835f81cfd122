package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"lumo/internal/config"
)

// Styles holds the pre-built lipgloss styles for one theme snapshot.
type Styles struct {
	Title      lipgloss.Style
	Prompt     lipgloss.Style
	Caret      lipgloss.Style
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	AccentText lipgloss.Style
	Selected   lipgloss.Style
	Status     lipgloss.Style

	SearchBox  lipgloss.Style
	ResultsBox lipgloss.Style
}

// NewStyles builds styles from the configured palette. An empty
// background keeps the terminal's own background color.
func NewStyles(t config.Theme) Styles {
	base := lipgloss.NewStyle()
	if t.Background != "" {
		base = base.Background(lipgloss.Color(t.Background))
	}

	box := base.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Border))

	return Styles{
		Title:      base.Foreground(lipgloss.Color(t.Title)).Bold(true),
		Prompt:     base.Foreground(lipgloss.Color(t.Accent)),
		Caret:      base.Foreground(lipgloss.Color(t.Caret)),
		Text:       base.Foreground(lipgloss.Color(t.Text)),
		MutedText:  base.Foreground(lipgloss.Color(t.TextMuted)),
		AccentText: base.Foreground(lipgloss.Color(t.Accent)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Highlight)).
			Foreground(lipgloss.Color(t.Text)),
		Status: base.Foreground(lipgloss.Color(t.Caret)),

		SearchBox:  box,
		ResultsBox: box,
	}
}

// fadeHex blends fg toward the background by the fade progress: 0 is
// fully faded out, 1 is the plain foreground. Unparseable colors pass
// through unchanged rather than breaking the frame.
func fadeHex(fg, bg string, progress float64) string {
	if progress >= 1 {
		return fg
	}
	if bg == "" {
		bg = "#000000"
	}
	from, err := colorful.Hex(bg)
	if err != nil {
		return fg
	}
	to, err := colorful.Hex(fg)
	if err != nil {
		return fg
	}
	return from.BlendLuv(to, progress).Hex()
}

// rainbowHex maps a hue angle to the border color for the rainbow
// effect.
func rainbowHex(hue float64) string {
	return colorful.Hsv(hue, 0.75, 0.95).Hex()
}

// position converts a config alignment name to a lipgloss position.
func position(align string) lipgloss.Position {
	switch align {
	case "center":
		return lipgloss.Center
	case "right":
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
