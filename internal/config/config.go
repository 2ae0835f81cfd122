package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultConfigPath = "~/.config/lumo/config.toml"

// Config is the immutable settings snapshot the launcher reads at
// startup. Every field has a default; missing or empty keys fall back to
// it, unknown keys are ignored.
type Config struct {
	Layout   Layout
	Search   Search
	Results  Results
	Theme    Theme
	Keybinds Keybinds
}

// Layout controls the section stack and outer chrome.
type Layout struct {
	Sections   []string // top-to-bottom order, from {"search", "results"}
	Gap        int      // blank lines between sections
	Padding    int      // outer padding
	Title      string   // shown on the search box border
	TitleAlign string   // left | center | right
}

// Search controls the query box.
type Search struct {
	Prompt    string
	Caret     string
	BlinkRate time.Duration // 0 keeps the caret solid
	Align     string
	Padding   int
}

// Results controls the ranked list.
type Results struct {
	MaxResults        int
	ShowScores        bool
	Numbered          bool
	OpenThroughNumber bool
	Loopback          bool
	Padding           int
	FadeIn            bool
	FadeDuration      time.Duration
	FadeTopDown       bool
	Rainbow           bool
	RainbowSpeed      float64
	ShowCount         bool
	CountAlign        string
}

// Theme holds the color palette as hex strings; Background may be empty
// to keep the terminal's own background.
type Theme struct {
	Background string
	Text       string
	TextMuted  string
	Accent     string
	Highlight  string
	Caret      string
	Border     string
	Title      string
}

// Keybinds maps launcher actions to key names in Bubble Tea notation
// ("esc", "enter", "ctrl+k", ...). ctrl+c always quits regardless.
// NumberModifier is the modifier held with a digit to launch that rank
// directly ("alt" or "ctrl"); plain digits stay free for typing.
type Keybinds struct {
	Quit           string
	Up             string
	Down           string
	Execute        string
	NumberModifier string
}

// Default returns the full default configuration.
func Default() Config {
	return Config{
		Layout: Layout{
			Sections:   []string{"search", "results"},
			Gap:        1,
			Padding:    1,
			Title:      "lumo",
			TitleAlign: "center",
		},
		Search: Search{
			Prompt:    ">>",
			Caret:     "▋",
			BlinkRate: 500 * time.Millisecond,
			Align:     "left",
			Padding:   0,
		},
		Results: Results{
			MaxResults:        20,
			ShowScores:        true,
			Numbered:          true,
			OpenThroughNumber: true,
			Loopback:          true,
			Padding:           1,
			FadeIn:            true,
			FadeDuration:      time.Second,
			FadeTopDown:       true,
			Rainbow:           false,
			RainbowSpeed:      1.0,
			ShowCount:         true,
			CountAlign:        "right",
		},
		Theme: Theme{
			Background: "",
			Text:       "#c8c8c8",
			TextMuted:  "#969696",
			Accent:     "#00ffff",
			Highlight:  "#0000ff",
			Caret:      "#ffff00",
			Border:     "#0000ff",
			Title:      "#ffffff",
		},
		Keybinds: Keybinds{
			Quit:           "esc",
			Up:             "up",
			Down:           "down",
			Execute:        "enter",
			NumberModifier: "alt",
		},
	}
}

// rawConfig mirrors the TOML shape with pointers so an absent key can be
// told apart from a zero value.
type rawConfig struct {
	Layout struct {
		Sections   []string `toml:"sections"`
		Gap        *int     `toml:"gap"`
		Padding    *int     `toml:"padding"`
		Title      *string  `toml:"title"`
		TitleAlign string   `toml:"title_align"`
	} `toml:"layout"`
	Search struct {
		Prompt    *string `toml:"prompt"`
		Caret     *string `toml:"caret"`
		BlinkRate *int    `toml:"caret_blink_rate"` // milliseconds
		Align     string  `toml:"align"`
		Padding   *int    `toml:"padding"`
	} `toml:"search"`
	Results struct {
		MaxResults        *int     `toml:"max_results"`
		ShowScores        *bool    `toml:"show_scores"`
		Numbered          *bool    `toml:"numbered"`
		OpenThroughNumber *bool    `toml:"open_through_number"`
		Loopback          *bool    `toml:"loopback"`
		Padding           *int     `toml:"padding"`
		FadeIn            *bool    `toml:"fade_in"`
		FadeDuration      *int     `toml:"fade_in_duration"` // milliseconds
		FadeTopDown       *bool    `toml:"fade_top_to_bottom"`
		Rainbow           *bool    `toml:"rainbow_border"`
		RainbowSpeed      *float64 `toml:"rainbow_speed"`
		ShowCount         *bool    `toml:"show_count"`
		CountAlign        string   `toml:"count_align"`
	} `toml:"results"`
	Theme struct {
		Background *string `toml:"background"`
		Text       string  `toml:"text"`
		TextMuted  string  `toml:"text_muted"`
		Accent     string  `toml:"accent"`
		Highlight  string  `toml:"highlight"`
		Caret      string  `toml:"caret"`
		Border     string  `toml:"border"`
		Title      string  `toml:"title"`
	} `toml:"theme"`
	Keybinds struct {
		Quit           string `toml:"quit"`
		Up             string `toml:"up"`
		Down           string `toml:"down"`
		Execute        string `toml:"execute"`
		NumberModifier string `toml:"number_modifier"`
	} `toml:"keybinds"`
}

// Load locates and parses the launcher config, falling back to defaults
// when the file is missing. A file that exists but cannot be read or
// parsed is a startup error: silently launching with the wrong theme and
// keybinds would be worse than failing loudly.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	applyRaw(&cfg, raw)
	return cfg, nil
}

func applyRaw(cfg *Config, raw rawConfig) {
	if len(raw.Layout.Sections) > 0 {
		var sections []string
		for _, s := range raw.Layout.Sections {
			switch strings.ToLower(strings.TrimSpace(s)) {
			case "search":
				sections = append(sections, "search")
			case "results":
				sections = append(sections, "results")
			}
		}
		if len(sections) > 0 {
			cfg.Layout.Sections = sections
		}
	}
	setInt(&cfg.Layout.Gap, raw.Layout.Gap, 0)
	setInt(&cfg.Layout.Padding, raw.Layout.Padding, 0)
	setString(&cfg.Layout.Title, raw.Layout.Title)
	setAlign(&cfg.Layout.TitleAlign, raw.Layout.TitleAlign)

	setString(&cfg.Search.Prompt, raw.Search.Prompt)
	setString(&cfg.Search.Caret, raw.Search.Caret)
	setMillis(&cfg.Search.BlinkRate, raw.Search.BlinkRate)
	setAlign(&cfg.Search.Align, raw.Search.Align)
	setInt(&cfg.Search.Padding, raw.Search.Padding, 0)

	setInt(&cfg.Results.MaxResults, raw.Results.MaxResults, 1)
	setBool(&cfg.Results.ShowScores, raw.Results.ShowScores)
	setBool(&cfg.Results.Numbered, raw.Results.Numbered)
	setBool(&cfg.Results.OpenThroughNumber, raw.Results.OpenThroughNumber)
	setBool(&cfg.Results.Loopback, raw.Results.Loopback)
	setInt(&cfg.Results.Padding, raw.Results.Padding, 0)
	setBool(&cfg.Results.FadeIn, raw.Results.FadeIn)
	setMillis(&cfg.Results.FadeDuration, raw.Results.FadeDuration)
	setBool(&cfg.Results.FadeTopDown, raw.Results.FadeTopDown)
	setBool(&cfg.Results.Rainbow, raw.Results.Rainbow)
	if raw.Results.RainbowSpeed != nil && *raw.Results.RainbowSpeed > 0 {
		cfg.Results.RainbowSpeed = *raw.Results.RainbowSpeed
	}
	setBool(&cfg.Results.ShowCount, raw.Results.ShowCount)
	setAlign(&cfg.Results.CountAlign, raw.Results.CountAlign)

	// Background is the one color where empty is meaningful: it keeps
	// the terminal's own background.
	if raw.Theme.Background != nil {
		cfg.Theme.Background = strings.TrimSpace(*raw.Theme.Background)
	}
	setColor(&cfg.Theme.Text, raw.Theme.Text)
	setColor(&cfg.Theme.TextMuted, raw.Theme.TextMuted)
	setColor(&cfg.Theme.Accent, raw.Theme.Accent)
	setColor(&cfg.Theme.Highlight, raw.Theme.Highlight)
	setColor(&cfg.Theme.Caret, raw.Theme.Caret)
	setColor(&cfg.Theme.Border, raw.Theme.Border)
	setColor(&cfg.Theme.Title, raw.Theme.Title)

	setKey(&cfg.Keybinds.Quit, raw.Keybinds.Quit)
	setKey(&cfg.Keybinds.Up, raw.Keybinds.Up)
	setKey(&cfg.Keybinds.Down, raw.Keybinds.Down)
	setKey(&cfg.Keybinds.Execute, raw.Keybinds.Execute)
	setModifier(&cfg.Keybinds.NumberModifier, raw.Keybinds.NumberModifier)
}

func setString(dst *string, v *string) {
	if v == nil {
		return
	}
	if trimmed := strings.TrimSpace(*v); trimmed != "" {
		*dst = trimmed
	}
}

func setColor(dst *string, v string) {
	if trimmed := strings.TrimSpace(v); trimmed != "" {
		*dst = trimmed
	}
}

func setKey(dst *string, v string) {
	if trimmed := strings.TrimSpace(strings.ToLower(v)); trimmed != "" {
		*dst = trimmed
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int, floor int) {
	if v != nil && *v >= floor {
		*dst = *v
	}
}

func setMillis(dst *time.Duration, v *int) {
	if v != nil && *v >= 0 {
		*dst = time.Duration(*v) * time.Millisecond
	}
}

func setModifier(dst *string, v string) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "alt":
		*dst = "alt"
	case "ctrl":
		*dst = "ctrl"
	}
}

func setAlign(dst *string, v string) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "left":
		*dst = "left"
	case "center", "centre":
		*dst = "center"
	case "right":
		*dst = "right"
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
