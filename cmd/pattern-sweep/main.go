package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"turing/internal/app"
	"turing/internal/sims/grayscott"
	"turing/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config (empty = defaults)")
	steps := flag.Int("steps", 2000, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	size := flag.Int("size", 96, "grid size for sweep runs")
	seed := flag.Int64("seed", 1337, "seed shared by every scenario")
	feedMin := flag.Float64("feed-min", 0.01, "lowest feed rate")
	feedMax := flag.Float64("feed-max", 0.09, "highest feed rate")
	killMin := flag.Float64("kill-min", 0.045, "lowest kill rate")
	killMax := flag.Float64("kill-max", 0.07, "highest kill rate")
	count := flag.Int("count", 9, "values per axis")
	top := flag.Int("top", 10, "rows to print")
	outputDir := flag.String("output-dir", "", "directory for sweep.csv and config.yaml")
	overrides := app.Overrides{}
	flag.Var(overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if *configPath != "" {
		overrides["config"] = *configPath
	}
	base, err := grayscott.FromMap(grayscott.DefaultConfig(), overrides)
	if err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}
	base.Size = *size
	base.Seed = *seed

	feeds := grayscott.Span(*feedMin, *feedMax, *count)
	kills := grayscott.Span(*killMin, *killMax, *count)

	slog.Info("sweeping",
		"scenarios", len(feeds)*len(kills),
		"workers", *workers,
		"steps", *steps,
		"size", base.Size,
	)

	start := time.Now()
	results, err := grayscott.Sweep(base, feeds, kills, *steps, *workers)
	if err != nil {
		slog.Error("sweep failed", "error", err)
		os.Exit(1)
	}
	slog.Info("sweep finished", "elapsed", time.Since(start).Round(time.Millisecond).String())

	patterned := 0
	for _, r := range results {
		if r.Patterned {
			patterned++
		}
	}
	fmt.Printf("%d of %d scenarios formed patterns (stddev(B) > %.2f)\n", patterned, len(results), grayscott.PatternThreshold)
	for i, r := range results {
		if i >= *top {
			break
		}
		fmt.Printf("%2d. feed=%.4f kill=%.4f  B mean=%.3f stddev=%.3f range=[%.3f, %.3f] diverged=%v\n",
			i+1, r.Feed, r.Kill, r.MeanB, r.StdDevB, r.MinB, r.MaxB, r.Diverged)
	}

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("output", "error", err)
		os.Exit(1)
	}
	if err := om.WriteConfig(base); err != nil {
		slog.Error("writing config", "error", err)
		os.Exit(1)
	}
	if err := om.WriteSweep(results); err != nil {
		slog.Error("writing sweep", "error", err)
		os.Exit(1)
	}
	if err := om.Close(); err != nil {
		slog.Error("closing output", "error", err)
		os.Exit(1)
	}
}
