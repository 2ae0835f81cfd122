package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lumo/internal/anim"
	"lumo/internal/config"
	"lumo/internal/launch"
	"lumo/internal/provider"
)

// statusTTL is how long a transient launch error stays on screen.
const statusTTL = 4 * time.Second

// phase tracks what the launcher is currently doing. It only changes
// in response to input, never from the render path.
type phase int

const (
	phaseIdle phase = iota
	phaseTyping
	phaseNavigating
	phaseExecuting
	phaseQuitting
)

// Options configures a launcher Model.
type Options struct {
	Config    config.Config
	Providers []provider.Provider

	// Launcher runs a candidate's action. Defaults to launch.Execute;
	// tests substitute a recorder.
	Launcher func(launch.Action) error
}

// Model is the Bubble Tea model for the launcher window.
type Model struct {
	cfg       config.Config
	styles    Styles
	keys      keyMap
	providers []provider.Provider
	launcher  func(launch.Action) error

	query  []rune
	cursor int

	ranking provider.Ranking
	sel     provider.Selection
	phase   phase

	// resultIdentity fingerprints the top candidate; a change here
	// retriggers the fade-in animation.
	resultIdentity string

	start     time.Time
	fadeStart time.Time
	now       time.Time

	status      string
	statusUntil time.Time

	width  int
	height int
	ready  bool
}

// tickMsg carries the wall-clock time driving caret, fade, and rainbow
// animation.
type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// New builds the launcher model. The initial ranking shows every
// provider's listing for the empty query.
func New(opts Options) Model {
	launcher := opts.Launcher
	if launcher == nil {
		launcher = launch.Execute
	}
	now := time.Now()
	m := Model{
		cfg:       opts.Config,
		styles:    NewStyles(opts.Config.Theme),
		keys:      newKeyMap(opts.Config.Keybinds),
		providers: opts.Providers,
		launcher:  launcher,
		sel:       provider.NewSelection(opts.Config.Results.Loopback),
		start:     now,
		fadeStart: now,
		now:       now,
	}
	m.requery()
	m.phase = phaseIdle
	return m
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickInterval())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.sel.SetWindow(m.resultRows())
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		if m.status != "" && m.now.After(m.statusUntil) {
			m.status = ""
		}
		return m, tickCmd(m.tickInterval())
	}
	return m, nil
}

// animCfg snapshots the animation knobs from configuration.
func (m Model) animCfg() anim.Config {
	return anim.Config{
		BlinkRate:    m.cfg.Search.BlinkRate,
		FadeIn:       m.cfg.Results.FadeIn,
		FadeDuration: m.cfg.Results.FadeDuration,
		FadeTopDown:  m.cfg.Results.FadeTopDown,
		Rainbow:      m.cfg.Results.Rainbow,
		RainbowSpeed: m.cfg.Results.RainbowSpeed,
	}
}

func (m Model) tickInterval() time.Duration {
	return m.animCfg().TickInterval(m.now.Sub(m.fadeStart))
}

// requery reruns ranking for the current query and resets the
// selection. The fade animation restarts when the list goes from empty
// to populated or the top candidate changes identity.
func (m *Model) requery() {
	m.ranking = provider.Rank(m.providers, string(m.query), m.cfg.Results.MaxResults)
	m.sel.Reset(len(m.ranking.Candidates))
	m.sel.SetWindow(m.resultRows())

	identity := ""
	if len(m.ranking.Candidates) > 0 {
		top := m.ranking.Candidates[0]
		identity = top.Source.String() + "\x00" + top.Label
	}
	if identity != m.resultIdentity {
		m.resultIdentity = identity
		m.fadeStart = time.Now()
	}

	if len(m.query) == 0 {
		m.phase = phaseIdle
	} else {
		m.phase = phaseTyping
	}
}

// execute launches the candidate at rank index i. On success the
// launcher quits; on failure it stays open and reports the error in
// the status line.
func (m Model) execute(i int) (tea.Model, tea.Cmd) {
	if i < 0 || i >= len(m.ranking.Candidates) {
		return m, nil
	}
	c := m.ranking.Candidates[i]
	if c.Action.IsZero() {
		return m, nil
	}
	m.phase = phaseExecuting
	if err := m.launcher(c.Action); err != nil {
		m.status = fmt.Sprintf("launch failed: %v", err)
		m.statusUntil = time.Now().Add(statusTTL)
		m.phase = phaseNavigating
		return m, nil
	}
	m.phase = phaseQuitting
	return m, tea.Quit
}

// Run starts the launcher in the alternate screen and blocks until it
// exits. Cancelling the context tears the window down cleanly.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
