package fit

import (
	"math"
	"sort"
)

// Nelder-Mead coefficients and stopping tolerances.
const (
	nmReflect  = 1.0
	nmExpand   = 2.0
	nmContract = 0.5
	nmShrink   = 0.5
	nmFTol     = 1e-9
	nmXTol     = 1e-6
)

// #region minimize

// minimizeBounded runs a Nelder-Mead simplex search of f, keeping
// every vertex projected onto the per-parameter box. It returns the
// best vertex found, the iteration count, and whether the stopping
// tolerance was met. With maxIter 0 the search runs until the simplex
// converges; with a cap it returns the best iterate regardless.
func minimizeBounded(f func([]float64) float64, x0 []float64, bounds [][2]float64, maxIter int) ([]float64, int, bool) {
	n := len(x0)

	// Initial simplex: x0 plus one vertex per dimension, stepped by 5%
	// of the coordinate (or a small absolute step at zero).
	simplex := make([][]float64, n+1)
	simplex[0] = clamp(append([]float64(nil), x0...), bounds)
	for i := 0; i < n; i++ {
		v := append([]float64(nil), simplex[0]...)
		step := 0.05 * v[i]
		if step == 0 {
			step = 0.05 * (bounds[i][1] - bounds[i][0]) / 10
			if step == 0 {
				step = 0.00025
			}
		}
		v[i] += step
		simplex[i+1] = clamp(v, bounds)
	}

	fv := make([]float64, n+1)
	for i, v := range simplex {
		fv[i] = f(v)
	}

	iter := 0
	converged := false
	for maxIter == 0 || iter < maxIter {
		iter++
		order(simplex, fv)

		if spread(fv) <= nmFTol && diameter(simplex) <= nmXTol {
			converged = true
			break
		}

		// Centroid of all vertices but the worst.
		centroid := make([]float64, n)
		for _, v := range simplex[:n] {
			for j := range centroid {
				centroid[j] += v[j] / float64(n)
			}
		}

		worst := simplex[n]
		reflected := clamp(affine(centroid, worst, nmReflect), bounds)
		fr := f(reflected)

		switch {
		case fr < fv[0]:
			// Best so far: try expanding further out.
			expanded := clamp(affine(centroid, worst, nmExpand), bounds)
			if fe := f(expanded); fe < fr {
				simplex[n], fv[n] = expanded, fe
			} else {
				simplex[n], fv[n] = reflected, fr
			}
		case fr < fv[n-1]:
			simplex[n], fv[n] = reflected, fr
		default:
			// Contract toward the centroid; on failure shrink the
			// whole simplex toward the best vertex.
			contracted := clamp(affine(centroid, worst, -nmContract), bounds)
			if fc := f(contracted); fc < fv[n] {
				simplex[n], fv[n] = contracted, fc
			} else {
				for i := 1; i <= n; i++ {
					for j := range simplex[i] {
						simplex[i][j] = simplex[0][j] + nmShrink*(simplex[i][j]-simplex[0][j])
					}
					simplex[i] = clamp(simplex[i], bounds)
					fv[i] = f(simplex[i])
				}
			}
		}
	}

	order(simplex, fv)
	return simplex[0], iter, converged
}

// #endregion minimize

// #region simplex-helpers

// affine returns centroid + t*(centroid - worst): t=1 reflects, t=2
// expands, t=-0.5 contracts inside.
func affine(centroid, worst []float64, t float64) []float64 {
	v := make([]float64, len(centroid))
	for i := range v {
		v[i] = centroid[i] + t*(centroid[i]-worst[i])
	}
	return v
}

// clamp projects v onto the box in place and returns it.
func clamp(v []float64, bounds [][2]float64) []float64 {
	for i := range v {
		if v[i] < bounds[i][0] {
			v[i] = bounds[i][0]
		} else if v[i] > bounds[i][1] {
			v[i] = bounds[i][1]
		}
	}
	return v
}

// order sorts vertices by objective value, best first.
func order(simplex [][]float64, fv []float64) {
	idx := make([]int, len(fv))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return fv[idx[a]] < fv[idx[b]] })
	sortedS := make([][]float64, len(simplex))
	sortedF := make([]float64, len(fv))
	for i, j := range idx {
		sortedS[i] = simplex[j]
		sortedF[i] = fv[j]
	}
	copy(simplex, sortedS)
	copy(fv, sortedF)
}

// spread is the objective range across the simplex; Inf values (from
// zero-density regions) keep it above any tolerance.
func spread(fv []float64) float64 {
	lo, hi := fv[0], fv[0]
	for _, v := range fv[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return hi - lo
}

// diameter is the largest coordinate deviation from the best vertex.
func diameter(simplex [][]float64) float64 {
	var d float64
	for _, v := range simplex[1:] {
		for j := range v {
			d = math.Max(d, math.Abs(v[j]-simplex[0][j]))
		}
	}
	return d
}

// #endregion simplex-helpers
