// Package mixture evaluates the probability density of a working
// memory response error under a von Mises + uniform mixture model,
// with an optional swap extension for errors attracted to non-target
// items.
package mixture

import "math"

// uniformDensity is the guessing component: uniform over (-pi, pi).
const uniformDensity = 1 / (2 * math.Pi)

const degToRad = math.Pi / 180

// #region von-mises

// vonMisesPDF evaluates the von Mises density at x (radians) with
// concentration kappa and mean mu. Written in the exponentially
// scaled form exp(kappa*(cos(x-mu)-1)) / (2*pi*I0e(kappa)) so large
// kappa does not overflow.
func vonMisesPDF(x, kappa, mu float64) float64 {
	return math.Exp(kappa*(math.Cos(x-mu)-1)) / (2 * math.Pi * besselI0e(kappa))
}

// #endregion von-mises

// #region pdf

// PDF evaluates the single-target mixture density at error x, given in
// degrees:
//
//	(1-g) * VonMises(rad(x); kappa=rad(precision), mu=rad(bias)) + g * 1/(2*pi)
//
// Precision passes through the same degree-to-radian conversion as x.
// That scaling is a quirk of the original toolbox and is kept as-is;
// reinterpreting it would change every published precision value.
func PDF(x float64, p Params) float64 {
	kappa := p.Precision * degToRad
	mu := p.Bias * degToRad
	vm := vonMisesPDF(x*degToRad, kappa, mu)
	return (1-p.GuessRate)*vm + p.GuessRate*uniformDensity
}

// SwapPDF evaluates the swap-extension density at target error x with
// the given non-target errors (all in degrees):
//
//	(1-g-s) * VM(x) + s * mean_i VM(nt_i) + g * 1/(2*pi)
//
// The swap mass s is split uniformly over the non-target components,
// each evaluated with the same precision and bias as the target.
// nontargets must be non-empty; callers validate the swap
// configuration before evaluating.
func SwapPDF(x float64, nontargets []float64, p Params) float64 {
	kappa := p.Precision * degToRad
	mu := p.Bias * degToRad
	target := (1 - p.GuessRate - p.SwapRate) * vonMisesPDF(x*degToRad, kappa, mu)
	var swap float64
	for _, nt := range nontargets {
		swap += vonMisesPDF(nt*degToRad, kappa, mu)
	}
	swap *= p.SwapRate / float64(len(nontargets))
	return target + swap + p.GuessRate*uniformDensity
}

// #endregion pdf
