package grayscott

import "turing/internal/core"

// Laplacian returns the 5-point discrete Laplacian of f. The outer ring of the
// result is zero, so edge cells neither gain nor lose anything to diffusion.
func Laplacian(f *core.Field) (*core.Field, error) {
	if err := core.CheckSameShape(f, f); err != nil {
		return nil, err
	}
	dst, err := core.NewField(f.N)
	if err != nil {
		return nil, err
	}
	laplacianRows(dst.Cells(), f.Cells(), f.N, 0, f.N)
	return dst, nil
}

// LaplacianInto writes the Laplacian of src into dst. dst must not alias src.
func LaplacianInto(dst, src *core.Field) error {
	if err := core.CheckSameShape(src, dst); err != nil {
		return err
	}
	laplacianRows(dst.Cells(), src.Cells(), src.N, 0, src.N)
	return nil
}

// laplacianRows fills rows [r0, r1) of dst.
func laplacianRows(dst, src []float64, n, r0, r1 int) {
	for r := r0; r < r1; r++ {
		row := r * n
		if r == 0 || r == n-1 {
			clear(dst[row : row+n])
			continue
		}
		dst[row] = 0
		for c := 1; c < n-1; c++ {
			dst[row+c] = laplacianAt(src, n, row+c)
		}
		dst[row+n-1] = 0
	}
}

// laplacianAt evaluates the stencil at interior index i.
func laplacianAt(src []float64, n, i int) float64 {
	return src[i-n] + src[i+n] + src[i-1] + src[i+1] - 4*src[i]
}
