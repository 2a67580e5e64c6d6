//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strings"

	"turing/internal/app"
	"turing/internal/core"
	"turing/internal/render"
	_ "turing/internal/sims/grayscott"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		slog.Error("unknown sim", "sim", cfg.Sim, "available", strings.Join(core.Names(), ","))
		os.Exit(1)
	}

	seed := core.ResolveSeed(cfg.Seed)
	cfg.Seed = seed
	sim, err := factory(cfg.FactoryArgs())
	if err != nil {
		slog.Error("failed to build simulation", "sim", cfg.Sim, "error", err)
		os.Exit(1)
	}

	palette, err := render.PaletteByName(cfg.Palette)
	if err != nil {
		slog.Error("invalid palette", "error", err)
		os.Exit(1)
	}

	game := app.New(sim, cfg.Scale, seed, palette)
	size := sim.Size()

	slog.Info("starting", "sim", cfg.Sim, "size", size.W, "seed", seed, "tps", cfg.TPS)

	ebiten.SetWindowTitle("Turing Pattern — " + cfg.Sim)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}
