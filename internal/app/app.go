package app

import (
	"context"
	"fmt"

	"lumo/internal/config"
	"lumo/internal/provider"
	"lumo/internal/scan"
	"lumo/internal/state"
	"lumo/internal/ui"
)

// Options configure the launcher.
type Options struct {
	ConfigPath string // empty uses default ~/.config/lumo/config.toml
}

// Run boots the launcher window and blocks until the user quits,
// launches something, or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Scan before the window opens so the idle listing is populated on
	// the first frame. Applications are scanned first: the command scan
	// drops binaries that already appear as desktop entries.
	apps := scan.Applications()
	commands := scan.Commands(apps)

	store := &state.Store{}
	store.Publish(apps, commands)
	snap := store.Snapshot()

	providers := []provider.Provider{
		provider.NewIndex(provider.SourceApp, snap.Applications),
		provider.NewIndex(provider.SourceCommand, snap.Commands),
		provider.Calculator{},
	}

	return ui.Run(ctx, ui.Options{
		Config:    cfg,
		Providers: providers,
	})
}
