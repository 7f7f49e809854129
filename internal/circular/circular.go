package circular

import (
	"errors"
	"fmt"
)

// #region distance

// Distance returns the signed rotational difference y - x, corrected
// into (-180, 180]. The correction is applied once: a raw difference
// strictly greater than 180 has 360 subtracted, strictly less than
// -180 has 360 added. +180 stays at +180; the boundary is closed on
// the positive side, which decides the sign of antipodal responses.
func Distance(x, y float64) float64 {
	d := y - x
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return d
}

// Distances applies Distance element-wise over two equal-length
// sequences of angles.
func Distances(x, y []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, errors.New("circular: empty input")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("circular: length mismatch: %d vs %d", len(x), len(y))
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = Distance(x[i], y[i])
	}
	return out, nil
}

// #endregion distance
