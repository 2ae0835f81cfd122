// Package state provides thread-safe storage for scanned provider
// entries.
//
// # Overview
//
// This package implements a simple store for sharing the application
// and command listings between the scanners and the UI. Today the scan
// happens once at startup, but the store keeps the handoff atomic and
// leaves room for a background rescan without touching the UI.
//
// # Core Types
//
// Store:
//   - Thread-safe container for the latest scan results
//   - Uses sync.RWMutex for concurrent access
//   - Single writer (scanner), multiple readers
//
// Snapshot:
//   - Immutable view of the listings at a point in time
//   - Carries the scan timestamp alongside both entry lists
//   - Returned by value with defensive copies
//
// # Concurrency Model
//
//   - Publish(): Acquires write lock (exclusive access)
//   - Snapshot(): Acquires read lock (concurrent reads allowed)
//
// Both methods copy the entry slices so neither side can mutate data
// the other is holding. Entries are small (a label and an exec line),
// so the copies are negligible next to the scan itself.
//
// # Usage Example
//
//	store := &state.Store{}
//	store.Publish(scan.Applications(), scan.Commands(apps))
//
//	snap := store.Snapshot()
//	idx := provider.NewIndex(provider.SourceApp, snap.Applications)
//
// # Testing Considerations
//
// The Store is safe to construct with zero value:
//
//	store := &state.Store{}  // Ready to use immediately
//
// Snapshot() returns a zero Snapshot if nothing was ever published.
package state
