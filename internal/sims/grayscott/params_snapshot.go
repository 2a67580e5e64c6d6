package grayscott

import (
	"strconv"

	"turing/internal/core"
)

// Parameters reports the run's settings for the HUD. The snapshot is
// informational only; there are no setters.
func (s *Simulator) Parameters() core.ParameterSnapshot {
	p := s.params
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("size", "Size", s.n),
				int64Param("seed", "Seed", s.seed),
				intParam("workers", "Workers", len(s.bands)),
				{Key: "display", Label: "Display", Type: core.ParamTypeString, Value: s.shown.String()},
			},
		},
		{
			Name:    "Reaction",
			Summary: "A + 2B -> 3B, B -> P",
			Params: []core.Parameter{
				floatParam("diff_a", "Diffusion A", p.DiffA),
				floatParam("diff_b", "Diffusion B", p.DiffB),
				floatParam("feed", "Feed", p.Feed),
				floatParam("kill", "Kill", p.Kill),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
