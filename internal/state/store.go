package state

import (
	"sync"
	"time"

	"lumo/internal/provider"
)

// Snapshot is an immutable view of the provider data available to the
// UI: everything the OS scan found, frozen at publish time.
type Snapshot struct {
	Applications []provider.Entry
	Commands     []provider.Entry
	ScannedAt    time.Time
}

// Store publishes provider-data snapshots atomically. Today the scan
// runs once before the loop starts; if a rescan is ever added it must go
// through Publish so the UI never observes a half-replaced list.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Publish replaces the stored snapshot with copies of the given lists.
func (s *Store) Publish(apps, commands []provider.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = Snapshot{
		Applications: cloneEntries(apps),
		Commands:     cloneEntries(commands),
		ScannedAt:    time.Now(),
	}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Applications = cloneEntries(s.snapshot.Applications)
	snap.Commands = cloneEntries(s.snapshot.Commands)
	return snap
}

func cloneEntries(entries []provider.Entry) []provider.Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]provider.Entry, len(entries))
	copy(dup, entries)
	return dup
}
