// Package scan discovers launchable entries on the host: desktop
// applications from XDG data directories and executables on PATH. Scans
// run once before the UI loop starts; failures degrade to empty or
// partial lists, never to a startup error.
package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lumo/internal/launch"
	"lumo/internal/provider"
)

// Applications scans the XDG application directories for .desktop files
// and returns one entry per visible application.
func Applications() []provider.Entry {
	var out []provider.Entry
	seen := make(map[string]bool)

	for _, dir := range applicationDirs() {
		files, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".desktop") {
				continue
			}
			entry, ok := parseDesktopFile(filepath.Join(dir, f.Name()))
			if !ok || seen[entry.Label] {
				continue
			}
			seen[entry.Label] = true
			out = append(out, entry)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// applicationDirs lists the directories that may hold .desktop files,
// following the XDG base directory spec: $XDG_DATA_HOME (default
// ~/.local/share) plus every entry of $XDG_DATA_DIRS (default
// /usr/local/share:/usr/share), each with "applications" appended.
func applicationDirs() []string {
	var roots []string

	if home := os.Getenv("XDG_DATA_HOME"); home != "" {
		roots = append(roots, home)
	} else if userHome, err := os.UserHomeDir(); err == nil {
		roots = append(roots, filepath.Join(userHome, ".local", "share"))
	}

	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	roots = append(roots, filepath.SplitList(dataDirs)...)

	dirs := make([]string, 0, len(roots))
	for _, r := range roots {
		if r != "" {
			dirs = append(dirs, filepath.Join(r, "applications"))
		}
	}
	return dirs
}

// parseDesktopFile extracts the launchable parts of the [Desktop Entry]
// section. Alternate sections like [Desktop Action ...] are ignored, as
// are hidden entries.
func parseDesktopFile(path string) (provider.Entry, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return provider.Entry{}, false
	}

	var name, execLine string
	terminal := false
	inEntry := false
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inEntry = line == "[Desktop Entry]"
			continue
		}
		if !inEntry {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "Name":
			if name == "" {
				name = strings.TrimSpace(value)
			}
		case "Exec":
			execLine = stripFieldCodes(strings.TrimSpace(value))
		case "Terminal":
			terminal = strings.EqualFold(strings.TrimSpace(value), "true")
		case "NoDisplay", "Hidden":
			if strings.EqualFold(strings.TrimSpace(value), "true") {
				return provider.Entry{}, false
			}
		}
	}

	if name == "" || execLine == "" {
		return provider.Entry{}, false
	}
	return provider.Entry{
		Label:  name,
		Action: launch.Action{Exec: execLine, Terminal: terminal},
	}, true
}

// stripFieldCodes removes the %f/%F/%u/%U style placeholders a desktop
// Exec line may carry. The launcher never passes files or URLs. Splitting
// honors double-quoted arguments, and arguments containing whitespace are
// re-quoted so the line splits the same way at launch time.
func stripFieldCodes(execLine string) string {
	var kept []string
	for _, f := range launch.SplitArgs(execLine) {
		if len(f) == 2 && f[0] == '%' {
			continue
		}
		if strings.ContainsAny(f, " \t") {
			f = `"` + f + `"`
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}
