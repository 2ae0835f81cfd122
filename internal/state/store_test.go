package state

import (
	"testing"

	"lumo/internal/launch"
	"lumo/internal/provider"
)

func TestStore_ZeroValueSnapshotIsEmpty(t *testing.T) {
	store := &Store{}
	snap := store.Snapshot()

	if len(snap.Applications) != 0 || len(snap.Commands) != 0 {
		t.Fatalf("zero store snapshot = %+v, want empty", snap)
	}
	if !snap.ScannedAt.IsZero() {
		t.Fatalf("ScannedAt = %v, want zero before first publish", snap.ScannedAt)
	}
}

func TestStore_PublishReplacesSnapshot(t *testing.T) {
	store := &Store{}
	apps := []provider.Entry{{Label: "Firefox", Action: launch.Action{Exec: "firefox"}}}
	cmds := []provider.Entry{{Label: "htop", Action: launch.Action{Exec: "/usr/bin/htop", Terminal: true}}}

	store.Publish(apps, cmds)
	snap := store.Snapshot()

	if len(snap.Applications) != 1 || snap.Applications[0].Label != "Firefox" {
		t.Fatalf("Applications = %v, want Firefox", snap.Applications)
	}
	if len(snap.Commands) != 1 || snap.Commands[0].Label != "htop" {
		t.Fatalf("Commands = %v, want htop", snap.Commands)
	}
	if snap.ScannedAt.IsZero() {
		t.Fatalf("ScannedAt not set by Publish")
	}
}

func TestStore_SnapshotIsDefensivelyCopied(t *testing.T) {
	store := &Store{}
	apps := []provider.Entry{{Label: "Firefox"}}
	store.Publish(apps, nil)

	// Mutating either the input slice or a returned snapshot must not
	// leak into later snapshots.
	apps[0].Label = "mutated input"
	first := store.Snapshot()
	first.Applications[0].Label = "mutated snapshot"

	second := store.Snapshot()
	if second.Applications[0].Label != "Firefox" {
		t.Fatalf("stored label = %q, want %q", second.Applications[0].Label, "Firefox")
	}
}
