package fit

import "github.com/mkoolen/hue-memory/analysis/internal/mixture"

// #region config

// Config holds the optimizer starting point and box bounds for one
// fitting call. Both follow the internal parameter-vector order for
// the requested model shape: precision, guess rate, then swap rate
// when swap is active, then bias when bias is active. A Config is
// passed explicitly per call; there is no shared mutable default.
type Config struct {
	X0      []float64
	Bounds  [][2]float64
	MaxIter int // 0 = iterate until the simplex converges
}

// Default starting point and bounds, matching the reference fitting
// behavior.
const (
	defaultPrecision = 500
	defaultGuessRate = 0.1
	defaultSwapRate  = 0.1
	defaultBias      = 0
)

// DefaultConfig builds the default starting point and bounds for a
// model shape. Precision is bounded to [0, 10000] and bias to
// [-180, 180]. With swap active the guess-rate upper bound tightens
// from 1 to 0.5 so that guess+swap cannot exceed 1 at the individual
// maxima; this is bound tightening only, not a joint constraint.
func DefaultConfig(includeBias, swap bool) Config {
	guessUpper := 1.0
	if swap {
		guessUpper = 0.5
	}
	c := Config{
		X0:     []float64{defaultPrecision, defaultGuessRate},
		Bounds: [][2]float64{{0, 10000}, {0, guessUpper}},
	}
	if swap {
		c.X0 = append(c.X0, defaultSwapRate)
		c.Bounds = append(c.Bounds, [2]float64{0, 0.5})
	}
	if includeBias {
		c.X0 = append(c.X0, defaultBias)
		c.Bounds = append(c.Bounds, [2]float64{-180, 180})
	}
	return c
}

// #endregion config

// #region result

// Result is the outcome of one fitting call. Params holds the fitted
// values; HasBias and HasSwap record the model shape so that unused
// components are unambiguous. Converged reports whether the optimizer
// met its tolerance; a non-converged fit still carries the best
// iterate found.
type Result struct {
	Params     mixture.Params
	HasBias    bool
	HasSwap    bool
	Converged  bool
	Iterations int
}

// K returns the number of fitted parameters (2, 3, or 4).
func (r Result) K() int {
	k := 2
	if r.HasBias {
		k++
	}
	if r.HasSwap {
		k++
	}
	return k
}

// Vector returns the fitted parameters in caller-facing order:
// precision, guess rate, then bias when present, then swap rate when
// present. Note this differs from the internal optimizer order, which
// places swap rate before bias.
func (r Result) Vector() []float64 {
	v := []float64{r.Params.Precision, r.Params.GuessRate}
	if r.HasBias {
		v = append(v, r.Params.Bias)
	}
	if r.HasSwap {
		v = append(v, r.Params.SwapRate)
	}
	return v
}

// #endregion result
