package grayscott

import (
	"math"
	"testing"
)

func TestSpan(t *testing.T) {
	got := Span(0.01, 0.03, 3)
	want := []float64{0.01, 0.02, 0.03}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-15 {
			t.Fatalf("Span()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if got := Span(0.5, 0.9, 1); len(got) != 1 || got[0] != 0.5 {
		t.Fatalf("Span with one value = %v", got)
	}
}

func TestSweepEvaluatesEveryPair(t *testing.T) {
	base := testConfig(16)
	feeds := []float64{0.03, 0.07}
	kills := []float64{0.055, 0.062}
	results, err := Sweep(base, feeds, kills, 5, 2)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	seen := map[[2]float64]bool{}
	for i, r := range results {
		seen[[2]float64{r.Feed, r.Kill}] = true
		if r.Steps != 5 {
			t.Errorf("result %d ran %d steps", i, r.Steps)
		}
		if i > 0 && r.StdDevB > results[i-1].StdDevB {
			t.Errorf("results not sorted by spread at %d", i)
		}
	}
	if len(seen) != 4 {
		t.Fatalf("duplicate or missing pairs: %v", seen)
	}
}

func TestRunScenarioSettlesUniformField(t *testing.T) {
	// With kill well above any sustainable rate B decays everywhere.
	base := testConfig(16)
	rec, err := RunScenario(base, 0.01, 0.2, 200)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Patterned || rec.Diverged {
		t.Fatalf("expected a settled field, got %+v", rec)
	}
	if rec.MaxB > 1e-3 {
		t.Fatalf("B should have decayed, max %f", rec.MaxB)
	}
}

func TestSweepRejectsInvalidBase(t *testing.T) {
	if _, err := Sweep(testConfig(2), []float64{0.05}, []float64{0.06}, 1, 1); err == nil {
		t.Fatal("undersized base should fail")
	}
}
