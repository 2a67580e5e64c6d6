package grayscott

import (
	"turing/internal/core"

	"golang.org/x/sync/errgroup"
)

// Simulator holds both concentration fields of a Gray-Scott run. Each species
// is double buffered: Step reads the current buffers, writes the next ones and
// swaps them, so no cell ever observes a partially updated neighbour.
type Simulator struct {
	cfg    Config
	params Params

	n     int
	a     *core.Field
	b     *core.Field
	aNext *core.Field
	bNext *core.Field

	display []uint8
	shown   Species
	bands   []rowBand

	seed  int64
	steps uint64
}

type rowBand struct {
	r0, r1 int
}

// New validates cfg and returns a seeded simulator. Dimensions are checked
// here once; Step never re-validates.
func New(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	shown, err := ParseSpecies(cfg.Display)
	if err != nil {
		return nil, err
	}
	fields := make([]*core.Field, 4)
	for i := range fields {
		f, err := core.NewField(cfg.Size)
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	s := &Simulator{
		cfg:     cfg,
		params:  cfg.Params,
		n:       cfg.Size,
		a:       fields[0],
		b:       fields[1],
		aNext:   fields[2],
		bNext:   fields[3],
		display: make([]uint8, cfg.Size*cfg.Size),
		shown:   shown,
		bands:   splitRows(cfg.Size, cfg.Workers),
	}
	s.Reset(cfg.Seed)
	return s, nil
}

// Name returns the simulation identifier.
func (s *Simulator) Name() string { return "grayscott" }

// Size reports the grid dimensions.
func (s *Simulator) Size() core.Size { return core.Size{W: s.n, H: s.n} }

// Config returns the configuration the simulator was built with.
func (s *Simulator) Config() Config { return s.cfg }

// Params returns the fixed reaction-diffusion constants.
func (s *Simulator) Params() Params { return s.params }

// A exposes the current concentration of species A.
func (s *Simulator) A() *core.Field { return s.a }

// B exposes the current concentration of species B.
func (s *Simulator) B() *core.Field { return s.b }

// Fields implements core.FieldSource.
func (s *Simulator) Fields() []core.NamedField {
	return []core.NamedField{
		{Name: SpeciesA.String(), Field: s.a},
		{Name: SpeciesB.String(), Field: s.b},
	}
}

// Seed reports the seed used by the most recent Reset.
func (s *Simulator) Seed() int64 { return s.seed }

// Steps reports how many steps ran since the last Reset.
func (s *Simulator) Steps() uint64 { return s.steps }

// Reset refills both species with uniform noise. A zero seed falls back to the
// configured seed, and to the clock when that is zero as well.
func (s *Simulator) Reset(seed int64) {
	s.seed = core.ResolveSeed(seed, s.cfg.Seed)
	rng := core.NewRNG(s.seed).Source()
	core.FillUniform(rng, s.a.Cells(), s.cfg.Init.A.Min, s.cfg.Init.A.Max)
	core.FillUniform(rng, s.b.Cells(), s.cfg.Init.B.Min, s.cfg.Init.B.Max)
	s.steps = 0
	s.rebuildDisplay()
}

// Step advances both species by one time unit.
func (s *Simulator) Step() {
	if len(s.bands) <= 1 {
		s.stepRows(0, s.n)
	} else {
		var g errgroup.Group
		for _, band := range s.bands {
			g.Go(func() error {
				s.stepRows(band.r0, band.r1)
				return nil
			})
		}
		_ = g.Wait()
	}
	s.a, s.aNext = s.aNext, s.a
	s.b, s.bNext = s.bNext, s.b
	s.steps++
	s.rebuildDisplay()
}

// stepRows computes rows [r0, r1) of the next buffers from the current ones.
// Both Laplacians and the reaction term only read the current buffers.
func (s *Simulator) stepRows(r0, r1 int) {
	n := s.n
	a, b := s.a.Cells(), s.b.Cells()
	nextA, nextB := s.aNext.Cells(), s.bNext.Cells()
	p := s.params
	decay := p.Kill + p.Feed
	for r := r0; r < r1; r++ {
		interior := r > 0 && r < n-1
		row := r * n
		for c := 0; c < n; c++ {
			i := row + c
			var lapA, lapB float64
			if interior && c > 0 && c < n-1 {
				lapA = laplacianAt(a, n, i)
				lapB = laplacianAt(b, n, i)
			}
			av, bv := a[i], b[i]
			reaction := av * bv * bv
			nextA[i] = av + (p.DiffA*lapA - reaction + p.Feed*(1-av))
			nextB[i] = bv + (p.DiffB*lapB + reaction - decay*bv)
		}
	}
}

// splitRows divides n rows into at most workers contiguous bands.
func splitRows(n, workers int) []rowBand {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	bands := make([]rowBand, 0, workers)
	per := n / workers
	extra := n % workers
	start := 0
	for w := 0; w < workers; w++ {
		size := per
		if w < extra {
			size++
		}
		bands = append(bands, rowBand{r0: start, r1: start + size})
		start += size
	}
	return bands
}

var (
	_ core.Sim               = (*Simulator)(nil)
	_ core.FieldSource       = (*Simulator)(nil)
	_ core.ParameterProvider = (*Simulator)(nil)
)
