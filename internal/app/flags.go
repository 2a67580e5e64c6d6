package app

import (
	"flag"
	"fmt"
	"strings"
)

// Overrides collects repeatable key=value flags for the simulation factory.
type Overrides map[string]string

func (o Overrides) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set parses a single key=value pair.
func (o Overrides) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	o[strings.TrimSpace(key)] = strings.TrimSpace(val)
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	ConfigPath string
	Palette    string
	Overrides  Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "grayscott", Scale: 3, TPS: 60, Palette: "gray", Overrides: Overrides{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation preset to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 = time-based)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to a YAML config (empty = defaults)")
	fs.StringVar(&c.Palette, "palette", c.Palette, "color palette: gray, ocean, ember")
	fs.Var(c.Overrides, "set", "parameter override in key=value form (repeatable)")
}

// FactoryArgs merges the config path, seed and overrides into the map passed
// to the simulation factory.
func (c *Config) FactoryArgs() map[string]string {
	args := make(map[string]string, len(c.Overrides)+2)
	for k, v := range c.Overrides {
		args[k] = v
	}
	if c.ConfigPath != "" {
		args["config"] = c.ConfigPath
	}
	if c.Seed != 0 {
		args["seed"] = fmt.Sprint(c.Seed)
	}
	return args
}
