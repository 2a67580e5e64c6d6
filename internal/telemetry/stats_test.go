package telemetry

import (
	"math"
	"testing"

	"turing/internal/core"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		min, max float64
		mean     float64
		stddev   float64
		diverged bool
	}{
		{"empty", nil, 0, 0, 0, 0, false},
		{"uniform", []float64{0.5, 0.5, 0.5}, 0.5, 0.5, 0.5, 0, false},
		{"ramp", []float64{1, 2, 3, 4}, 1, 4, 2.5, math.Sqrt(5.0 / 3.0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(9, "B", tt.values)
			if got.Step != 9 || got.Field != "B" {
				t.Fatalf("unexpected labels %+v", got)
			}
			if got.Min != tt.min || got.Max != tt.max {
				t.Errorf("min/max = %v/%v, want %v/%v", got.Min, got.Max, tt.min, tt.max)
			}
			if math.Abs(got.Mean-tt.mean) > 1e-12 {
				t.Errorf("mean = %v, want %v", got.Mean, tt.mean)
			}
			if math.Abs(got.StdDev-tt.stddev) > 1e-12 {
				t.Errorf("stddev = %v, want %v", got.StdDev, tt.stddev)
			}
			if got.Diverged != tt.diverged {
				t.Errorf("diverged = %v, want %v", got.Diverged, tt.diverged)
			}
		})
	}
}

func TestSummarizeFlagsNonFiniteValues(t *testing.T) {
	if !Summarize(0, "A", []float64{0.1, math.NaN()}).Diverged {
		t.Error("NaN should mark the field as diverged")
	}
	if !Summarize(0, "A", []float64{math.Inf(1), 0.2}).Diverged {
		t.Error("+Inf should mark the field as diverged")
	}
}

type fakeSource struct {
	fields []core.NamedField
}

func (f fakeSource) Fields() []core.NamedField { return f.fields }

func TestCollect(t *testing.T) {
	a, _ := core.NewField(3)
	b, _ := core.NewField(3)
	a.Fill(1)
	b.Set(1, 1, 0.9)
	stats := Collect(4, fakeSource{fields: []core.NamedField{{Name: "A", Field: a}, {Name: "B", Field: b}}})
	if len(stats) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(stats))
	}
	if stats[0].Field != "A" || stats[0].Mean != 1 {
		t.Errorf("unexpected A stats %+v", stats[0])
	}
	if stats[1].Field != "B" || stats[1].Max != 0.9 || stats[1].Min != 0 {
		t.Errorf("unexpected B stats %+v", stats[1])
	}
}
