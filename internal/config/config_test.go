package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Default()
	if cfg.Search.Prompt != want.Search.Prompt {
		t.Fatalf("Prompt = %q, want %q", cfg.Search.Prompt, want.Search.Prompt)
	}
	if cfg.Results.MaxResults != want.Results.MaxResults {
		t.Fatalf("MaxResults = %d, want %d", cfg.Results.MaxResults, want.Results.MaxResults)
	}
	if cfg.Keybinds.Execute != "enter" {
		t.Fatalf("Execute keybind = %q, want %q", cfg.Keybinds.Execute, "enter")
	}
}

func TestLoad_PartialConfigKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[search]
prompt = "λ"
caret_blink_rate = 250

[results]
loopback = false
max_results = 5

[keybinds]
quit = "Q"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Search.Prompt != "λ" {
		t.Fatalf("Prompt = %q, want %q", cfg.Search.Prompt, "λ")
	}
	if cfg.Search.BlinkRate != 250*time.Millisecond {
		t.Fatalf("BlinkRate = %v, want 250ms", cfg.Search.BlinkRate)
	}
	if cfg.Results.Loopback {
		t.Fatalf("Loopback = true, want false")
	}
	if cfg.Results.MaxResults != 5 {
		t.Fatalf("MaxResults = %d, want 5", cfg.Results.MaxResults)
	}
	if cfg.Keybinds.Quit != "q" {
		t.Fatalf("Quit keybind = %q, want lowered %q", cfg.Keybinds.Quit, "q")
	}

	// Untouched sections keep their defaults.
	want := Default()
	if cfg.Results.FadeDuration != want.Results.FadeDuration {
		t.Fatalf("FadeDuration = %v, want default %v", cfg.Results.FadeDuration, want.Results.FadeDuration)
	}
	if cfg.Theme.Text != want.Theme.Text {
		t.Fatalf("Theme.Text = %q, want default %q", cfg.Theme.Text, want.Theme.Text)
	}
}

func TestLoad_ZeroBlinkRateDisablesBlink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[search]
caret_blink_rate = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Search.BlinkRate != 0 {
		t.Fatalf("BlinkRate = %v, want 0 (disabled)", cfg.Search.BlinkRate)
	}
}

func TestLoad_UnknownKeysIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
unknown_top_level = true

[results]
no_such_option = 7
numbered = false
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Results.Numbered {
		t.Fatalf("Numbered = true, want false")
	}
}

func TestLoad_NumberModifier(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[keybinds]
number_modifier = "CTRL"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Keybinds.NumberModifier != "ctrl" {
		t.Fatalf("NumberModifier = %q, want %q", cfg.Keybinds.NumberModifier, "ctrl")
	}

	if err := os.WriteFile(path, []byte(`
[keybinds]
number_modifier = "hyper"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Keybinds.NumberModifier != "alt" {
		t.Fatalf("NumberModifier = %q, want default %q for unknown value", cfg.Keybinds.NumberModifier, "alt")
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`[search`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_BadAlignAndSectionsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[layout]
title_align = "diagonal"
sections = ["sidebar"]
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Default()
	if cfg.Layout.TitleAlign != want.Layout.TitleAlign {
		t.Fatalf("TitleAlign = %q, want default %q", cfg.Layout.TitleAlign, want.Layout.TitleAlign)
	}
	if len(cfg.Layout.Sections) != 2 {
		t.Fatalf("Sections = %v, want default order", cfg.Layout.Sections)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}
