package mixture

import "math"

// #region bessel

// besselI0e returns exp(-|x|)*I0(x), the exponentially scaled modified
// Bessel function of the first kind, order 0. The scaled form keeps
// the von Mises normalizer finite for large concentrations, where
// I0(x) itself overflows past x of about 709. Polynomial approximations from
// Abramowitz & Stegun 9.8.1-9.8.2, accurate to ~1e-7 relative error.
func besselI0e(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		t := x / 3.75
		t *= t
		i0 := 1.0 + t*(3.5156229+t*(3.0899424+t*(1.2067492+
			t*(0.2659732+t*(0.0360768+t*0.0045813)))))
		return i0 * math.Exp(-ax)
	}
	t := 3.75 / ax
	return (0.39894228 + t*(0.01328592+t*(0.00225319+t*(-0.00157565+
		t*(0.00916281+t*(-0.02057706+t*(0.02635537+t*(-0.01647633+
			t*0.00392377)))))))) / math.Sqrt(ax)
}

// #endregion bessel
