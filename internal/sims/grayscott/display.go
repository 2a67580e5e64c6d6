package grayscott

import (
	"fmt"
	"math"
	"strings"

	"turing/internal/core"
)

// Species selects one of the two concentration fields.
type Species uint8

const (
	SpeciesA Species = iota
	SpeciesB
)

func (s Species) String() string {
	if s == SpeciesA {
		return "A"
	}
	return "B"
}

// Other returns the opposite species.
func (s Species) Other() Species {
	if s == SpeciesA {
		return SpeciesB
	}
	return SpeciesA
}

// ParseSpecies accepts "a" or "b" in either case.
func ParseSpecies(v string) (Species, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "a":
		return SpeciesA, nil
	case "b":
		return SpeciesB, nil
	}
	return 0, fmt.Errorf("unknown species %q (want a or b)", v)
}

// Intensity maps a concentration to an 8-bit gray level. Values outside
// [0, 1] saturate and NaN maps to black.
func Intensity(v float64) uint8 {
	scaled := math.Round(v * 255)
	if !(scaled > 0) {
		return 0
	}
	if scaled >= 255 {
		return 255
	}
	return uint8(scaled)
}

// FillIntensities converts src into gray levels stored in dst.
func FillIntensities(dst []uint8, src []float64) {
	for i, v := range src {
		dst[i] = Intensity(v)
	}
}

// Intensities returns the gray levels of the requested species, reusing dst
// when it is large enough.
func (s *Simulator) Intensities(sp Species, dst []uint8) []uint8 {
	src := s.field(sp).Cells()
	if cap(dst) < len(src) {
		dst = make([]uint8, len(src))
	}
	dst = dst[:len(src)]
	FillIntensities(dst, src)
	return dst
}

// Cells exposes the display buffer for the selected species.
func (s *Simulator) Cells() []uint8 { return s.display }

// Display reports which species Cells renders.
func (s *Simulator) Display() Species { return s.shown }

// SetDisplay switches the rendered species and refreshes the display buffer.
func (s *Simulator) SetDisplay(sp Species) {
	s.shown = sp
	s.rebuildDisplay()
}

func (s *Simulator) field(sp Species) *core.Field {
	if sp == SpeciesA {
		return s.a
	}
	return s.b
}

func (s *Simulator) rebuildDisplay() {
	FillIntensities(s.display, s.field(s.shown).Cells())
}
