// Package fit recovers mixture model parameters from response bias
// values by maximum likelihood, driving a bounded simplex optimizer
// over the negative log-likelihood.
package fit

import (
	"errors"
	"fmt"
	"math"

	"github.com/mkoolen/hue-memory/analysis/internal/mixture"
)

// #region fit

// FitMixtureModel fits the mixture model to the response bias values
// x (degrees). Supplying non-target bias columns enables the swap
// model; each column must be the same length as x, and a non-nil but
// empty set of columns is an invalid configuration. includeBias adds
// the directional bias component.
//
// The parameter vector composition depends on the flags: (precision,
// guess rate) for the base model, plus swap rate and/or bias. cfg
// overrides the starting point and bounds; nil uses the defaults for
// the requested shape.
//
// Optimizer non-convergence is not an error: the best iterate is
// returned and Result.Converged reports the flag.
func FitMixtureModel(x []float64, nontargets [][]float64, includeBias bool, cfg *Config) (Result, error) {
	if len(x) == 0 {
		return Result{}, errors.New("fit: empty sample")
	}
	swap := nontargets != nil
	if swap && len(nontargets) == 0 {
		return Result{}, errors.New("fit: swap model requested with zero non-target columns")
	}
	for i, col := range nontargets {
		if len(col) != len(x) {
			return Result{}, fmt.Errorf("fit: non-target column %d has %d values, want %d", i, len(col), len(x))
		}
	}

	var c Config
	if cfg != nil {
		c = *cfg
	} else {
		c = DefaultConfig(includeBias, swap)
	}
	nParams := 2
	if swap {
		nParams++
	}
	if includeBias {
		nParams++
	}
	if len(c.X0) != nParams || len(c.Bounds) != nParams {
		return Result{}, fmt.Errorf("fit: config has %d start values and %d bounds, want %d", len(c.X0), len(c.Bounds), nParams)
	}

	objective := negLogLikelihood(x, nontargets, includeBias, swap)
	best, iters, converged := minimizeBounded(objective, c.X0, c.Bounds, c.MaxIter)

	return Result{
		Params:     paramsFromVector(best, includeBias, swap),
		HasBias:    includeBias,
		HasSwap:    swap,
		Converged:  converged,
		Iterations: iters,
	}, nil
}

// #endregion fit

// #region objective

// negLogLikelihood builds the objective over the internal parameter
// order: precision, guess rate, [swap rate], [bias].
func negLogLikelihood(x []float64, nontargets [][]float64, includeBias, swap bool) func([]float64) float64 {
	nt := make([]float64, len(nontargets))
	return func(v []float64) float64 {
		p := paramsFromVector(v, includeBias, swap)
		var nll float64
		for i, xi := range x {
			var d float64
			if swap {
				for j, col := range nontargets {
					nt[j] = col[i]
				}
				d = mixture.SwapPDF(xi, nt, p)
			} else {
				d = mixture.PDF(xi, p)
			}
			if !(d > 0) {
				return math.Inf(1)
			}
			nll -= math.Log(d)
		}
		return nll
	}
}

// paramsFromVector unpacks the internal optimizer vector.
func paramsFromVector(v []float64, includeBias, swap bool) mixture.Params {
	p := mixture.Params{Precision: v[0], GuessRate: v[1]}
	i := 2
	if swap {
		p.SwapRate = v[i]
		i++
	}
	if includeBias {
		p.Bias = v[i]
	}
	return p
}

// #endregion objective
