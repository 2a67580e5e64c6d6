// Package telemetry summarizes concentration fields and writes the results
// for headless runs.
package telemetry

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"turing/internal/core"
)

// FieldStats summarizes one field at one step.
type FieldStats struct {
	Step     uint64  `csv:"step"`
	Field    string  `csv:"field"`
	Min      float64 `csv:"min"`
	Max      float64 `csv:"max"`
	Mean     float64 `csv:"mean"`
	StdDev   float64 `csv:"stddev"`
	Diverged bool    `csv:"diverged"`
}

// Summarize computes FieldStats over values. A field holding NaN or ±Inf is
// flagged as diverged; its moments are still reported as computed.
func Summarize(step uint64, name string, values []float64) FieldStats {
	st := FieldStats{Step: step, Field: name}
	if len(values) == 0 {
		return st
	}
	st.Diverged = !finite(values)
	st.Min = floats.Min(values)
	st.Max = floats.Max(values)
	st.Mean, st.StdDev = stat.MeanStdDev(values, nil)
	return st
}

// Collect summarizes every field exposed by src.
func Collect(step uint64, src core.FieldSource) []FieldStats {
	fields := src.Fields()
	out := make([]FieldStats, 0, len(fields))
	for _, f := range fields {
		out = append(out, Summarize(step, f.Name, f.Field.Cells()))
	}
	return out
}

func finite(values []float64) bool {
	if floats.HasNaN(values) {
		return false
	}
	for _, v := range values {
		if math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
