package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lumo/internal/app"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (default ~/.config/lumo/config.toml)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, app.Options{ConfigPath: *configPath}); err != nil {
		fmt.Fprintln(os.Stderr, "lumo:", err)
		os.Exit(1)
	}
}
