// Package config handles loading and parsing the lumo configuration
// file.
//
// # Overview
//
// This package reads the launcher's TOML configuration covering layout,
// search box behavior, results list behavior, theme colors, and
// keybinds. Every key is optional; the launcher works out of the box
// with no file at all.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/lumo/config.toml (default)
//  3. If the config file doesn't exist, use built-in defaults
//  4. If the file exists but keys are missing, defaults fill the gaps
//
// # TOML Format
//
// Example config.toml:
//
//	[layout]
//	sections = ["search", "results"]
//	title = "lumo"
//	title_align = "center"
//
//	[search]
//	prompt = ">>"
//	caret = "▋"
//	caret_blink_rate = 500  # milliseconds; 0 keeps the caret solid
//
//	[results]
//	max_results = 20
//	open_through_number = true
//	fade_in_duration = 1000
//	rainbow_border = false
//
//	[theme]
//	accent = "#00ffff"
//	highlight = "#005f87"
//
//	[keybinds]
//	quit = "esc"
//	execute = "enter"
//
// Durations are plain integers in milliseconds. Colors are hex strings;
// an empty theme.background keeps the terminal's own background. Key
// names use Bubble Tea notation ("esc", "enter", "ctrl+k") and are
// lowercased on load.
//
// # Validation
//
// Values that would render nonsense fall back to their defaults rather
// than erroring: unknown section names are dropped from layout.sections,
// unknown alignments are ignored, max_results below 1 is ignored, and a
// negative blink rate is ignored. ctrl+c always quits regardless of the
// configured quit key.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g. cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// A file that exists but cannot be parsed is a startup error: silently
// launching with the wrong theme and keybinds would be worse than
// failing loudly.
//
// # Design Philosophy
//
// The config package is read-only and stateless - it loads configuration
// once at startup and returns an immutable Config struct. No global
// state or singleton patterns are used, and nothing is ever written
// back to disk.
package config
