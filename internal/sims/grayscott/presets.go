package grayscott

import "turing/internal/core"

// Preset names a feed/kill pair known to settle into a recognizable pattern.
type Preset struct {
	Name string
	Feed float64
	Kill float64
}

// Presets lists the registered parameter sets. The first entry carries the
// reference constants.
var Presets = []Preset{
	{Name: "grayscott", Feed: 0.070, Kill: 0.062},
	{Name: "grayscott-mitosis", Feed: 0.0367, Kill: 0.0649},
	{Name: "grayscott-coral", Feed: 0.0545, Kill: 0.062},
	{Name: "grayscott-maze", Feed: 0.029, Kill: 0.057},
}

// PresetByName looks up a registered preset.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Apply returns base with the preset's feed and kill rates.
func (p Preset) Apply(base Config) Config {
	base.Params.Feed = p.Feed
	base.Params.Kill = p.Kill
	return base
}

func init() {
	for _, p := range Presets {
		p := p
		core.Register(p.Name, func(cfg map[string]string) (core.Sim, error) {
			c, err := FromMap(p.Apply(DefaultConfig()), cfg)
			if err != nil {
				return nil, err
			}
			sim, err := New(c)
			if err != nil {
				return nil, err
			}
			return sim, nil
		})
	}
}
