package scan

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"lumo/internal/launch"
	"lumo/internal/provider"
)

func writeDesktopFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestApplications_ParsesDesktopEntries(t *testing.T) {
	dataDir := t.TempDir()
	appsDir := filepath.Join(dataDir, "applications")
	if err := os.MkdirAll(appsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	t.Setenv("XDG_DATA_HOME", dataDir)
	t.Setenv("XDG_DATA_DIRS", dataDir)

	writeDesktopFile(t, appsDir, "firefox.desktop", `
[Desktop Entry]
Name=Firefox
Exec=/usr/lib/firefox %u
Terminal=false
`)
	writeDesktopFile(t, appsDir, "htop.desktop", `
# comment line
[Desktop Entry]
Name=htop
Exec=htop
Terminal=true

[Desktop Action Foo]
Name=Should be ignored
`)
	writeDesktopFile(t, appsDir, "hidden.desktop", `
[Desktop Entry]
Name=Hidden Tool
Exec=hidden
NoDisplay=true
`)
	writeDesktopFile(t, appsDir, "notes.txt", "not a desktop file")

	apps := Applications()
	if len(apps) != 2 {
		t.Fatalf("got %d applications, want 2: %v", len(apps), apps)
	}

	byLabel := make(map[string]provider.Entry)
	for _, a := range apps {
		byLabel[a.Label] = a
	}

	ff, ok := byLabel["Firefox"]
	if !ok {
		t.Fatalf("Firefox missing from %v", apps)
	}
	if ff.Action.Exec != "/usr/lib/firefox" {
		t.Fatalf("Firefox exec = %q, want field codes stripped", ff.Action.Exec)
	}
	if ff.Action.Terminal {
		t.Fatalf("Firefox marked as terminal app")
	}

	ht, ok := byLabel["htop"]
	if !ok {
		t.Fatalf("htop missing from %v", apps)
	}
	if !ht.Action.Terminal {
		t.Fatalf("htop not marked as terminal app")
	}
}

func TestApplications_QuotedExecSurvivesFieldCodeStripping(t *testing.T) {
	dataDir := t.TempDir()
	appsDir := filepath.Join(dataDir, "applications")
	if err := os.MkdirAll(appsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	t.Setenv("XDG_DATA_HOME", dataDir)
	t.Setenv("XDG_DATA_DIRS", dataDir)

	writeDesktopFile(t, appsDir, "myapp.desktop", `
[Desktop Entry]
Name=My App
Exec="/opt/My App/bin" %U --flag
`)

	apps := Applications()
	if len(apps) != 1 {
		t.Fatalf("got %d applications, want 1: %v", len(apps), apps)
	}
	if got, want := apps[0].Action.Exec, `"/opt/My App/bin" --flag`; got != want {
		t.Fatalf("exec = %q, want %q", got, want)
	}

	argv := launch.SplitArgs(apps[0].Action.Exec)
	if len(argv) != 2 || argv[0] != "/opt/My App/bin" || argv[1] != "--flag" {
		t.Fatalf("argv = %q, want the quoted path whole", argv)
	}
}

func TestApplications_MissingDirsYieldEmptyList(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	t.Setenv("XDG_DATA_HOME", missing)
	t.Setenv("XDG_DATA_DIRS", missing)

	if apps := Applications(); len(apps) != 0 {
		t.Fatalf("got %d applications from empty dirs, want 0", len(apps))
	}
}

func TestCommands_ListsExecutablesAndDeduplicates(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}

	binDir := t.TempDir()
	mustWrite := func(name string, mode os.FileMode) {
		if err := os.WriteFile(filepath.Join(binDir, name), []byte("#!/bin/sh\n"), mode); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	mustWrite("zig", 0o755)
	mustWrite("power-manager", 0o755)
	mustWrite("README", 0o644) // not executable

	t.Setenv("PATH", binDir)

	apps := []provider.Entry{{Label: "Power Manager"}}
	cmds := Commands(apps)

	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want just zig: %v", len(cmds), cmds)
	}
	if cmds[0].Label != "zig" {
		t.Fatalf("command label = %q, want %q", cmds[0].Label, "zig")
	}
	if !cmds[0].Action.Terminal {
		t.Fatalf("command not marked to run in a terminal")
	}
	if cmds[0].Action.Exec != filepath.Join(binDir, "zig") {
		t.Fatalf("command exec = %q, want full path", cmds[0].Action.Exec)
	}
}
