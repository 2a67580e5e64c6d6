package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"time"

	"turing/internal/app"
	"turing/internal/core"
	"turing/internal/sims/grayscott"
	"turing/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config (empty = defaults)")
	preset := flag.String("sim", "grayscott", "simulation preset to run")
	steps := flag.Int("steps", 5000, "number of steps to simulate")
	every := flag.Int("every", 250, "record stats every N steps (0 = only at the end)")
	outputDir := flag.String("output-dir", "", "directory for stats.csv and config.yaml")
	pngPath := flag.String("png", "", "write the final frame as a grayscale PNG")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	overrides := app.Overrides{}
	flag.Var(overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(*preset, *configPath, *seed, overrides, *steps, *every, *outputDir, *pngPath); err != nil {
		slog.Error("headless run failed", "error", err)
		os.Exit(1)
	}
}

func run(preset, configPath string, seed int64, overrides app.Overrides, steps, every int, outputDir, pngPath string) error {
	p, ok := grayscott.PresetByName(preset)
	if !ok {
		return fmt.Errorf("unknown sim %q", preset)
	}
	base := p.Apply(grayscott.DefaultConfig())
	if configPath != "" {
		overrides["config"] = configPath
	}
	cfg, err := grayscott.FromMap(base, overrides)
	if err != nil {
		return err
	}
	cfg.Seed = core.ResolveSeed(seed, cfg.Seed)

	sim, err := grayscott.New(cfg)
	if err != nil {
		return err
	}

	om, err := telemetry.NewOutputManager(outputDir)
	if err != nil {
		return err
	}
	defer om.Close()
	if err := om.WriteConfig(cfg); err != nil {
		return err
	}

	slog.Info("starting headless simulation",
		"sim", preset,
		"size", cfg.Size,
		"seed", cfg.Seed,
		"steps", steps,
		"workers", cfg.Workers,
		"feed", cfg.Params.Feed,
		"kill", cfg.Params.Kill,
	)

	start := time.Now()
	record := func() error {
		stats := telemetry.Collect(sim.Steps(), sim)
		for _, st := range stats {
			slog.Info("field stats",
				"step", st.Step,
				"field", st.Field,
				"min", st.Min,
				"max", st.Max,
				"mean", st.Mean,
				"stddev", st.StdDev,
				"diverged", st.Diverged,
			)
		}
		return om.WriteStats(stats)
	}

	for i := 1; i <= steps; i++ {
		sim.Step()
		if every > 0 && i%every == 0 {
			if err := record(); err != nil {
				return err
			}
		}
	}
	if every <= 0 || steps%every != 0 {
		if err := record(); err != nil {
			return err
		}
	}

	elapsed := time.Since(start)
	rate := 0.0
	if elapsed > 0 {
		rate = float64(steps) / elapsed.Seconds()
	}
	slog.Info("finished", "steps", steps, "elapsed", elapsed.Round(time.Millisecond).String(), "steps_per_sec", rate)

	if pngPath != "" {
		if err := writePNG(pngPath, sim); err != nil {
			return err
		}
		slog.Info("wrote frame", "path", pngPath, "field", sim.Display().String())
	}
	return om.Close()
}

func writePNG(path string, sim *grayscott.Simulator) error {
	size := sim.Size()
	img := image.NewGray(image.Rect(0, 0, size.W, size.H))
	copy(img.Pix, sim.Cells())
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
