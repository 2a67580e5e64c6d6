package grayscott

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"turing/internal/core"
	"turing/internal/telemetry"
)

// PatternThreshold is the spread of B above which a run counts as patterned
// rather than settled into a uniform state.
const PatternThreshold = 0.02

// RunScenario simulates base with the given feed and kill rates for steps
// ticks and summarizes the final B field.
func RunScenario(base Config, feed, kill float64, steps int) (telemetry.SweepRecord, error) {
	cfg := base
	cfg.Params.Feed = feed
	cfg.Params.Kill = kill
	cfg.Workers = 1
	sim, err := New(cfg)
	if err != nil {
		return telemetry.SweepRecord{}, err
	}
	for i := 0; i < steps; i++ {
		sim.Step()
	}
	st := telemetry.Summarize(sim.Steps(), SpeciesB.String(), sim.B().Cells())
	return telemetry.SweepRecord{
		Feed:      feed,
		Kill:      kill,
		Steps:     steps,
		MinB:      st.Min,
		MaxB:      st.Max,
		MeanB:     st.Mean,
		StdDevB:   st.StdDev,
		Diverged:  st.Diverged,
		Patterned: !st.Diverged && st.StdDev > PatternThreshold,
	}, nil
}

// Sweep evaluates every feed×kill pair on a pool of workers. Every scenario
// starts from the same seed. Results are ordered by descending spread of B.
func Sweep(base Config, feeds, kills []float64, steps, workers int) ([]telemetry.SweepRecord, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	base.Seed = core.ResolveSeed(base.Seed)
	if err := base.Validate(); err != nil {
		return nil, err
	}

	type job struct{ feed, kill float64 }
	type result struct {
		rec telemetry.SweepRecord
		err error
	}

	jobs := make(chan job)
	results := make(chan result)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				rec, err := RunScenario(base, j.feed, j.kill, steps)
				results <- result{rec: rec, err: err}
			}
		}()
	}

	go func() {
		for _, f := range feeds {
			for _, k := range kills {
				jobs <- job{feed: f, kill: k}
			}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var (
		out      []telemetry.SweepRecord
		firstErr error
	)
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		out = append(out, res.rec)
	}
	if firstErr != nil {
		return nil, fmt.Errorf("sweep scenario: %w", firstErr)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StdDevB != out[j].StdDevB {
			return out[i].StdDevB > out[j].StdDevB
		}
		if out[i].Feed != out[j].Feed {
			return out[i].Feed < out[j].Feed
		}
		return out[i].Kill < out[j].Kill
	})
	return out, nil
}

// Span returns count evenly spaced values from lo to hi inclusive.
func Span(lo, hi float64, count int) []float64 {
	if count <= 1 {
		return []float64{lo}
	}
	out := make([]float64, count)
	step := (hi - lo) / float64(count-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[count-1] = hi
	return out
}
