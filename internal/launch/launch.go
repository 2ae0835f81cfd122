// Package launch spawns the process behind a selected candidate.
package launch

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Action describes how to launch a candidate. The zero value is a
// display-only action (calculator results) and launching it is a no-op.
type Action struct {
	Exec     string // command line, empty for display-only candidates
	Terminal bool   // run inside a terminal emulator
}

// IsZero reports whether the action launches nothing.
func (a Action) IsZero() bool {
	return strings.TrimSpace(a.Exec) == ""
}

// Execute spawns the action's process and returns without waiting for it.
// The child is released immediately; the launcher exits right after a
// successful dispatch, so nothing may hold on to the process handle.
func Execute(a Action) error {
	if a.IsZero() {
		return nil
	}

	argv := SplitArgs(a.Exec)
	if len(argv) == 0 {
		return nil
	}
	if a.Terminal {
		term := os.Getenv("TERMINAL")
		if term == "" {
			term = "x-terminal-emulator"
		}
		argv = append([]string{term, "-e"}, argv...)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %q: %w", a.Exec, err)
	}
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("release %q: %w", a.Exec, err)
	}
	return nil
}

// SplitArgs splits a command line into argv. Double-quoted arguments
// stay whole and may contain backslash-escaped characters, as desktop
// Exec lines use for paths with spaces.
func SplitArgs(line string) []string {
	var argv []string
	var cur strings.Builder
	inQuote := false
	escaped := false
	pending := false
	flush := func() {
		if pending || cur.Len() > 0 {
			argv = append(argv, cur.String())
			cur.Reset()
			pending = false
		}
	}
	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case inQuote && r == '\\':
			escaped = true
		case r == '"':
			inQuote = !inQuote
			pending = true
		case !inQuote && (r == ' ' || r == '\t'):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return argv
}
