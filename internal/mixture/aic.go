package mixture

import (
	"errors"
	"fmt"
	"math"
)

// #region aic

// AIC computes the Akaike Information Criterion 2k - 2*ln(L), where L
// is the product of densities over the observations and k the number
// of fitted parameters. When non-target columns are supplied the swap
// density is used; each column must match len(x).
//
// The density product over many observations routinely underflows
// float64. When it rounds to exactly zero, the smallest representable
// positive float64 is substituted so the result stays finite; the
// returned bool reports that substitution so callers can warn.
func AIC(p Params, k int, x []float64, nontargets [][]float64) (float64, bool, error) {
	if len(x) == 0 {
		return 0, false, errors.New("mixture: empty sample")
	}
	if k <= 0 {
		return 0, false, fmt.Errorf("mixture: invalid parameter count %d", k)
	}
	for i, col := range nontargets {
		if len(col) != len(x) {
			return 0, false, fmt.Errorf("mixture: non-target column %d has %d values, want %d", i, len(col), len(x))
		}
	}

	likelihood := 1.0
	nt := make([]float64, len(nontargets))
	for i, xi := range x {
		var d float64
		if len(nontargets) > 0 {
			for j, col := range nontargets {
				nt[j] = col[i]
			}
			d = SwapPDF(xi, nt, p)
		} else {
			d = PDF(xi, p)
		}
		likelihood *= d
	}

	underflow := false
	if likelihood == 0 {
		likelihood = math.SmallestNonzeroFloat64
		underflow = true
	}
	return 2*float64(k) - 2*math.Log(likelihood), underflow, nil
}

// #endregion aic
