package grayscott

import (
	"errors"
	"testing"

	"turing/internal/core"
)

func newField(t *testing.T, n int, fn func(r, c int) float64) *core.Field {
	t.Helper()
	f, err := core.NewField(n)
	if err != nil {
		t.Fatalf("NewField(%d): %v", n, err)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			f.Set(r, c, fn(r, c))
		}
	}
	return f
}

func isEdge(n, r, c int) bool {
	return r == 0 || c == 0 || r == n-1 || c == n-1
}

func TestLaplacianStencil(t *testing.T) {
	// r² has a constant second difference of 2 along rows; c is linear.
	src := newField(t, 6, func(r, c int) float64 { return float64(r*r + c) })
	lap, err := Laplacian(src)
	if err != nil {
		t.Fatalf("Laplacian: %v", err)
	}
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			want := 2.0
			if isEdge(6, r, c) {
				want = 0
			}
			if got := lap.At(r, c); got != want {
				t.Fatalf("lap(%d,%d) = %f, want %f", r, c, got, want)
			}
		}
	}
}

func TestLaplacianSinglePeak(t *testing.T) {
	src := newField(t, 5, func(r, c int) float64 {
		if r == 2 && c == 2 {
			return 1
		}
		return 0
	})
	lap, err := Laplacian(src)
	if err != nil {
		t.Fatal(err)
	}
	expects := map[[2]int]float64{
		{2, 2}: -4,
		{1, 2}: 1,
		{3, 2}: 1,
		{2, 1}: 1,
		{2, 3}: 1,
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			want := expects[[2]int{r, c}]
			if got := lap.At(r, c); got != want {
				t.Fatalf("lap(%d,%d) = %f, want %f", r, c, got, want)
			}
		}
	}
}

func TestLaplacianLeavesInputUntouched(t *testing.T) {
	src := newField(t, 7, func(r, c int) float64 { return float64(r*7+c) / 49 })
	before := append([]float64(nil), src.Cells()...)
	if _, err := Laplacian(src); err != nil {
		t.Fatal(err)
	}
	for i, v := range src.Cells() {
		if v != before[i] {
			t.Fatalf("input cell %d changed from %f to %f", i, before[i], v)
		}
	}
}

func TestLaplacianUniformFieldIsZero(t *testing.T) {
	src := newField(t, 5, func(int, int) float64 { return 0.5 })
	lap, err := Laplacian(src)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range lap.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %f, want 0", i, v)
		}
	}
}

func TestLaplacianIntoOverwritesDestination(t *testing.T) {
	src := newField(t, 4, func(r, c int) float64 { return float64(r * c) })
	dst := newField(t, 4, func(int, int) float64 { return 99 })
	if err := LaplacianInto(dst, src); err != nil {
		t.Fatal(err)
	}
	want, _ := Laplacian(src)
	for i, v := range dst.Cells() {
		if v != want.Cells()[i] {
			t.Fatalf("cell %d = %f, want %f", i, v, want.Cells()[i])
		}
	}
}

func TestLaplacianRejectsInvalidDimensions(t *testing.T) {
	if _, err := Laplacian(nil); !errors.Is(err, core.ErrInvalidDimensions) {
		t.Fatalf("Laplacian(nil) err = %v", err)
	}
	small := newField(t, 4, func(int, int) float64 { return 0 })
	large := newField(t, 5, func(int, int) float64 { return 0 })
	if err := LaplacianInto(small, large); !errors.Is(err, core.ErrInvalidDimensions) {
		t.Fatalf("mismatched LaplacianInto err = %v", err)
	}
}
