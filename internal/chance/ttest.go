package chance

import (
	"fmt"
	"math"
)

// #region t-test

// tTestInd runs an equal-variance two-sample Student's t-test and
// returns the t statistic with its two-sided p-value.
func tTestInd(a, b []float64) (float64, float64, error) {
	n1, n2 := len(a), len(b)
	if n1 < 2 || n2 < 2 {
		return 0, 0, fmt.Errorf("chance: need at least 2 observations per sample, got %d and %d", n1, n2)
	}
	m1, v1 := meanVar(a)
	m2, v2 := meanVar(b)

	df := float64(n1 + n2 - 2)
	pooled := (float64(n1-1)*v1 + float64(n2-1)*v2) / df
	denom := math.Sqrt(pooled * (1/float64(n1) + 1/float64(n2)))
	if denom == 0 {
		// Identical constant samples: no evidence either way.
		return 0, 1, nil
	}
	t := (m1 - m2) / denom

	// Two-sided p-value via the Student-t survival function,
	// p = I_{df/(df+t^2)}(df/2, 1/2).
	p := regIncBeta(df/2, 0.5, df/(df+t*t))
	return t, p, nil
}

// meanVar returns the sample mean and unbiased sample variance.
func meanVar(x []float64) (float64, float64) {
	var mean float64
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))
	var ss float64
	for _, v := range x {
		d := v - mean
		ss += d * d
	}
	return mean, ss / float64(len(x)-1)
}

// #endregion t-test

// #region incomplete-beta

// regIncBeta evaluates the regularized incomplete beta function
// I_x(a, b) by the standard continued fraction, switching tails at
// the symmetry point for convergence.
func regIncBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	lg1, _ := math.Lgamma(a + b)
	lg2, _ := math.Lgamma(a)
	lg3, _ := math.Lgamma(b)
	front := math.Exp(lg1 - lg2 - lg3 + a*math.Log(x) + b*math.Log(1-x))
	if x < (a+1)/(a+b+2) {
		return front * betaCF(a, b, x) / a
	}
	return 1 - front*betaCF(b, a, 1-x)/b
}

// betaCF is the Lentz continued-fraction expansion for regIncBeta.
func betaCF(a, b, x float64) float64 {
	const (
		maxIter = 300
		eps     = 3e-14
		tiny    = 1e-300
	)
	qab := a + b
	qap := a + 1
	qam := a - 1
	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < tiny {
		d = tiny
	}
	d = 1 / d
	h := d
	for m := 1; m <= maxIter; m++ {
		fm := float64(m)
		m2 := 2 * fm
		aa := fm * (b - fm) * x / ((qam + m2) * (a + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		h *= d * c
		aa = -(a + fm) * (qab + fm) * x / ((a + m2) * (qap + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		del := d * c
		h *= del
		if math.Abs(del-1) < eps {
			break
		}
	}
	return h
}

// #endregion incomplete-beta
