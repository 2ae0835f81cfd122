package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lumo/internal/launch"
	"lumo/internal/provider"
)

// Commands scans every PATH directory for executables and returns one
// entry per command name. Commands whose normalized name collides with a
// desktop application in apps are skipped so the same program is not
// listed twice; commands run inside a terminal when launched.
func Commands(apps []provider.Entry) []provider.Entry {
	appNames := make(map[string]bool, len(apps))
	for _, a := range apps {
		appNames[normalizeName(a.Label)] = true
	}

	seen := make(map[string]bool)
	var out []provider.Entry
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		files, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			info, err := f.Info()
			if err != nil || info.Mode()&0o111 == 0 {
				continue
			}
			name := f.Name()
			if seen[name] || appNames[normalizeName(name)] {
				continue
			}
			seen[name] = true
			out = append(out, provider.Entry{
				Label:  name,
				Action: launch.Action{Exec: filepath.Join(dir, name), Terminal: true},
			})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// normalizeName folds case and drops separators so "Power Manager" and
// "power-manager" collide.
func normalizeName(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, s)
}
