package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"lumo/internal/anim"
	"lumo/internal/provider"
)

func (m Model) View() string {
	if !m.ready {
		return ""
	}

	elapsed := m.now.Sub(m.start)
	borderColor := m.cfg.Theme.Border
	if m.cfg.Results.Rainbow {
		borderColor = rainbowHex(m.animCfg().RainbowHue(elapsed))
	}

	var sections []string
	if m.cfg.Layout.Title != "" {
		title := lipgloss.NewStyle().
			Width(m.boxWidth()).
			Align(position(m.cfg.Layout.TitleAlign)).
			Render(m.styles.Title.Render(m.cfg.Layout.Title))
		sections = append(sections, title)
	}
	for _, s := range m.cfg.Layout.Sections {
		switch s {
		case "search":
			sections = append(sections, m.renderSearch(elapsed, borderColor))
		case "results":
			sections = append(sections, m.renderResults(borderColor))
		}
	}
	if m.status != "" && m.now.Before(m.statusUntil) {
		sections = append(sections, m.styles.Status.Render(m.status))
	}

	gap := strings.Repeat("\n", m.cfg.Layout.Gap+1)
	body := strings.Join(sections, gap)
	return lipgloss.NewStyle().Padding(m.cfg.Layout.Padding).Render(body)
}

// boxWidth is the outer width available to each section box.
func (m Model) boxWidth() int {
	w := m.width - 2*m.cfg.Layout.Padding
	if w < 4 {
		w = 4
	}
	return w
}

// resultRows is how many candidate rows fit in the results box with
// the current window size.
func (m Model) resultRows() int {
	searchH := 3 + 2*m.cfg.Search.Padding
	chrome := 2 + 2*m.cfg.Results.Padding // results border and padding
	if m.cfg.Results.ShowCount {
		chrome++
	}
	rows := m.height - 2*m.cfg.Layout.Padding - searchH - m.cfg.Layout.Gap - 1 - chrome
	if m.cfg.Layout.Title != "" {
		rows -= m.cfg.Layout.Gap + 2
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m Model) renderSearch(elapsed time.Duration, borderColor string) string {
	var caret string
	if anim.CaretVisible(elapsed, m.cfg.Search.BlinkRate) {
		caret = m.styles.Caret.Render(m.cfg.Search.Caret)
	} else {
		caret = strings.Repeat(" ", lipgloss.Width(m.cfg.Search.Caret))
	}

	line := m.styles.Prompt.Render(m.cfg.Search.Prompt) + " " +
		m.styles.Text.Render(string(m.query[:m.cursor])) +
		caret +
		m.styles.Text.Render(string(m.query[m.cursor:]))

	inner := lipgloss.NewStyle().
		Width(m.boxWidth() - 2 - 2*m.cfg.Search.Padding).
		Align(position(m.cfg.Search.Align)).
		Render(line)

	return m.styles.SearchBox.
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(m.cfg.Search.Padding).
		Width(m.boxWidth() - 2).
		Render(inner)
}

func (m Model) renderResults(borderColor string) string {
	rows := m.resultRows()
	start := m.sel.Offset()
	end := start + rows
	if end > len(m.ranking.Candidates) {
		end = len(m.ranking.Candidates)
	}

	cfg := m.animCfg()
	sinceFade := m.now.Sub(m.fadeStart)
	contentW := m.boxWidth() - 2 - 2*m.cfg.Results.Padding

	lines := make([]string, 0, rows+1)
	for i := start; i < end; i++ {
		c := m.ranking.Candidates[i]
		progress := cfg.FadeProgress(sinceFade, i-start, end-start)
		lines = append(lines, m.renderRow(c, i, contentW, progress))
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	if m.cfg.Results.ShowCount {
		count := fmt.Sprintf("%d / %d", len(m.ranking.Candidates), m.ranking.Total)
		lines = append(lines, lipgloss.NewStyle().
			Width(contentW).
			Align(position(m.cfg.Results.CountAlign)).
			Render(m.styles.MutedText.Render(count)))
	}

	return m.styles.ResultsBox.
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(m.cfg.Results.Padding).
		Width(m.boxWidth() - 2).
		Render(strings.Join(lines, "\n"))
}

// renderRow draws one candidate line: optional rank number, the label,
// and an optional score column. The fade progress darkens the row
// toward the background while the list is still appearing.
func (m Model) renderRow(c provider.Candidate, i, width int, progress float64) string {
	selected := i == m.sel.Index()

	prefix := ""
	if m.cfg.Results.Numbered {
		if n := m.ranking.DisplayNumber(i); n > 0 {
			prefix = fmt.Sprintf("%d ", n)
		} else {
			prefix = "  "
		}
	}

	suffix := ""
	if m.cfg.Results.ShowScores {
		if c.Source == provider.SourceCalc {
			suffix = " ="
		} else {
			suffix = fmt.Sprintf(" %d", c.Score)
		}
	}

	avail := width - lipgloss.Width(prefix) - lipgloss.Width(suffix)
	label := c.Label
	if lipgloss.Width(label) > avail && avail > 1 {
		label = truncate(label, avail-1) + "…"
	}
	pad := avail - lipgloss.Width(label)
	if pad < 0 {
		pad = 0
	}
	line := prefix + label + strings.Repeat(" ", pad) + suffix

	if selected {
		return m.styles.Selected.Render(line)
	}
	fg := m.cfg.Theme.Text
	if c.Source == provider.SourceCalc {
		fg = m.cfg.Theme.Accent
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fadeHex(fg, m.cfg.Theme.Background, progress)))
	return style.Render(line)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	out := make([]rune, 0, width)
	w := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > width {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out)
}
