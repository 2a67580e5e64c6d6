package grayscott

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"turing/internal/core"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Params holds the reaction-diffusion constants. They stay fixed for the
// lifetime of a Simulator.
type Params struct {
	DiffA float64 `yaml:"diff_a"`
	DiffB float64 `yaml:"diff_b"`
	Feed  float64 `yaml:"feed"`
	Kill  float64 `yaml:"kill"`
}

// Range is a half-open interval [Min, Max) used for random seeding.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// InitConfig controls the random initial concentrations.
type InitConfig struct {
	A Range `yaml:"a"`
	B Range `yaml:"b"`
}

// Config controls the Gray-Scott simulation.
type Config struct {
	Size    int    `yaml:"size"`
	Seed    int64  `yaml:"seed"`
	Workers int    `yaml:"workers"`
	Display string `yaml:"display"`

	Params Params     `yaml:"params"`
	Init   InitConfig `yaml:"init"`
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	cfg, err := parseConfig(defaultsYAML, Config{})
	if err != nil {
		panic(fmt.Sprintf("grayscott: embedded defaults: %v", err))
	}
	return cfg
}

// LoadConfig layers the YAML file at path over the embedded defaults. An
// empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	return loadConfigFile(path, cfg)
}

func loadConfigFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := parseConfig(data, base)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// parseConfig only overwrites fields present in data.
func parseConfig(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WriteYAML saves the configuration to path.
func (c Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks the configuration once, before any field is allocated.
func (c Config) Validate() error {
	if c.Size < core.MinFieldSize {
		return fmt.Errorf("%w: grid size %d is below %d", core.ErrInvalidDimensions, c.Size, core.MinFieldSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := ParseSpecies(c.Display); err != nil {
		return err
	}
	if c.Init.A.Min >= c.Init.A.Max {
		return fmt.Errorf("init range for A is empty: [%g, %g)", c.Init.A.Min, c.Init.A.Max)
	}
	if c.Init.B.Min >= c.Init.B.Max {
		return fmt.Errorf("init range for B is empty: [%g, %g)", c.Init.B.Min, c.Init.B.Max)
	}
	return nil
}

// FromMap applies flag-style key/value overrides on top of base. The
// "config" key loads a YAML file before the remaining keys are applied.
func FromMap(base Config, cfg map[string]string) (Config, error) {
	c := base
	if cfg == nil {
		return c, nil
	}
	if path, ok := cfg["config"]; ok && path != "" {
		loaded, err := loadConfigFile(path, c)
		if err != nil {
			return Config{}, err
		}
		c = loaded
	}
	for key, v := range cfg {
		var err error
		switch key {
		case "config":
			continue
		case "size":
			c.Size, err = strconv.Atoi(v)
		case "seed":
			c.Seed, err = strconv.ParseInt(v, 10, 64)
		case "workers":
			c.Workers, err = strconv.Atoi(v)
		case "display":
			c.Display = v
		case "diff_a":
			c.Params.DiffA, err = strconv.ParseFloat(v, 64)
		case "diff_b":
			c.Params.DiffB, err = strconv.ParseFloat(v, 64)
		case "feed":
			c.Params.Feed, err = strconv.ParseFloat(v, 64)
		case "kill":
			c.Params.Kill, err = strconv.ParseFloat(v, 64)
		default:
			return Config{}, fmt.Errorf("unknown parameter %q", key)
		}
		if err != nil {
			return Config{}, fmt.Errorf("parsing %s=%q: %w", key, v, err)
		}
	}
	return c, nil
}
