//go:build ebiten

// Command sand opens a window with the falling-sand simulation.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"mad-sand/internal/app"
	"mad-sand/internal/sims/sand"
	"mad-sand/internal/store"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	slog.SetDefault(logger)

	simCfg := sand.DefaultConfig()
	if cfg.ConfigPath != "" {
		loaded, err := sand.LoadConfig(cfg.ConfigPath)
		if err != nil {
			slog.Error("failed to load tuning", "path", cfg.ConfigPath, "error", err)
			os.Exit(1)
		}
		simCfg = loaded
	}
	simCfg.Width, simCfg.Height, simCfg.Seed = cfg.Width, cfg.Height, cfg.Seed

	kv, err := store.Open(cfg.StorePath)
	if err != nil {
		slog.Error("failed to open store", "path", cfg.StorePath, "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	world, err := app.NewWorld(simCfg, kv, logger)
	if err != nil {
		slog.Error("failed to create world", "error", err)
		os.Exit(1)
	}
	session := app.NewSession(world, kv, cfg.Autosave, logger)
	game := app.New(session, cfg.HUDWidth, cfg.Seed)

	size := world.Size()
	ebiten.SetWindowTitle("mad-sand")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*sand.CellSize+max(cfg.HUDWidth, 0), size.H*sand.CellSize)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(game)
	if err := session.Flush(); err != nil {
		slog.Warn("final save failed", "error", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		slog.Error("game loop", "error", runErr)
		os.Exit(1)
	}
}
