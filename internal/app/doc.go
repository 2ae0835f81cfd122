// Package app provides the orchestration layer for the lumo launcher.
//
// # Overview
//
// This package wires together configuration, the application and
// command scanners, shared provider state, and the UI to create the
// complete launcher experience. It serves as the composition root
// where all dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load launcher configuration from ~/.config/lumo/config.toml
//  2. Scan desktop entries from the XDG data directories
//  3. Scan PATH for executables, deduplicated against the desktop apps
//  4. Publish both listings into a shared state.Store snapshot
//  5. Build the provider list (applications, commands, calculator)
//  6. Start the TUI and block until launch, quit, or context cancel
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read launcher config
//	       ├─────> scan.Applications()  Parse .desktop files
//	       ├─────> scan.Commands()      Walk $PATH
//	       ├─────> store.Publish()      Shared provider snapshot
//	       └─────> ui.Run()             Start TUI (blocks)
//
// Inside the UI, every keystroke reruns the ranking across all
// providers; the scanners are not consulted again after startup.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file present but unreadable or invalid
//   - Terminal setup failure in the UI layer
//
// Non-errors:
//   - Missing config file (defaults apply)
//   - Missing or empty XDG data directories (empty app listing)
//   - Unparseable individual .desktop files (skipped)
//
// A launcher that refuses to start because one desktop file is broken
// would be useless, so scanning is deliberately forgiving while
// configuration parsing is deliberately strict.
//
// # Usage Example
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	if err := app.Run(ctx, app.Options{}); err != nil {
//		log.Fatalf("lumo failed: %v", err)
//	}
package app
