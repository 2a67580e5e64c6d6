package grayscott

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"turing/internal/core"
)

func TestDefaultConfigMatchesReference(t *testing.T) {
	cfg := DefaultConfig()
	want := Params{DiffA: 0.16, DiffB: 0.04, Feed: 0.070, Kill: 0.062}
	if cfg.Params != want {
		t.Fatalf("params = %+v, want %+v", cfg.Params, want)
	}
	if cfg.Size != 256 || cfg.Workers != 1 || cfg.Display != "b" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Init.A != (Range{Min: 0.5, Max: 1.0}) || cfg.Init.B != (Range{Min: 0, Max: 0.5}) {
		t.Fatalf("unexpected init ranges %+v", cfg.Init)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "size: 64\nparams:\n  feed: 0.0367\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Size != 64 || cfg.Params.Feed != 0.0367 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Params.Kill != 0.062 || cfg.Params.DiffA != 0.16 || cfg.Init.A.Max != 1.0 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
	if _, err := LoadConfig(writeFile(t, "size: [1, 2\n")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestWriteYAMLReloads(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	cfg.Params.Kill = 0.065
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Fatalf("reloaded %+v, want %+v", got, cfg)
	}
}

func TestFromMap(t *testing.T) {
	path := writeFile(t, "params:\n  kill: 0.05\n")
	cfg, err := FromMap(DefaultConfig(), map[string]string{
		"config":  path,
		"size":    "32",
		"workers": "2",
		"feed":    "0.03",
		"display": "a",
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if cfg.Size != 32 || cfg.Workers != 2 || cfg.Params.Feed != 0.03 || cfg.Params.Kill != 0.05 || cfg.Display != "a" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	if _, err := FromMap(DefaultConfig(), map[string]string{"feed": "fast"}); err == nil {
		t.Error("bad float should fail")
	}
	if _, err := FromMap(DefaultConfig(), map[string]string{"colour": "red"}); err == nil {
		t.Error("unknown key should fail")
	}
	same, err := FromMap(DefaultConfig(), nil)
	if err != nil || same != DefaultConfig() {
		t.Errorf("nil map should return base unchanged")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		dims    bool
	}{
		{"defaults", func(*Config) {}, false, false},
		{"minimum size", func(c *Config) { c.Size = 3 }, false, false},
		{"undersized", func(c *Config) { c.Size = 2 }, true, true},
		{"no workers", func(c *Config) { c.Workers = 0 }, true, false},
		{"bad display", func(c *Config) { c.Display = "c" }, true, false},
		{"empty A range", func(c *Config) { c.Init.A = Range{Min: 1, Max: 1} }, true, false},
		{"inverted B range", func(c *Config) { c.Init.B = Range{Min: 0.5, Max: 0} }, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.dims && !errors.Is(err, core.ErrInvalidDimensions) {
				t.Fatalf("expected ErrInvalidDimensions, got %v", err)
			}
		})
	}
}
