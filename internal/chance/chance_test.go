package chance

import (
	"math"
	"math/rand"
	"testing"
)

func TestTTestIndKnownValue(t *testing.T) {
	// Hand-checked: means 3 and 4, pooled variance 2.5, t = -1, df = 8,
	// two-sided p ~ 0.3466 (CDF of Student t at 1 with df 8 is 0.8267).
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 3, 4, 5, 6}
	tStat, p, err := tTestInd(a, b)
	if err != nil {
		t.Fatalf("tTestInd: %v", err)
	}
	if math.Abs(tStat-(-1)) > 1e-12 {
		t.Errorf("t = %v, want -1", tStat)
	}
	if math.Abs(p-0.3466) > 1e-3 {
		t.Errorf("p = %v, want ~0.3466", p)
	}
}

func TestTTestIndIdenticalSamples(t *testing.T) {
	a := []float64{1, 2, 3}
	tStat, p, err := tTestInd(a, a)
	if err != nil {
		t.Fatalf("tTestInd: %v", err)
	}
	if tStat != 0 || p < 0.99 {
		t.Errorf("identical samples: t = %v, p = %v", tStat, p)
	}
}

func TestTTestIndInvalidInput(t *testing.T) {
	if _, _, err := tTestInd([]float64{1}, []float64{1, 2}); err == nil {
		t.Error("expected error for sample of one")
	}
}

func TestRegIncBeta(t *testing.T) {
	tests := []struct {
		a, b, x float64
		want    float64
	}{
		{0.5, 0.5, 0.5, 0.5},   // symmetric arcsine distribution
		{1, 1, 0.3, 0.3},       // I_x(1,1) = x
		{2, 2, 0.5, 0.5},       // symmetric
		{2, 1, 0.5, 0.25},      // I_x(2,1) = x^2
		{0.5, 0.5, 0, 0},       // boundary
		{0.5, 0.5, 1, 1},       // boundary
	}
	for _, tt := range tests {
		got := regIncBeta(tt.a, tt.b, tt.x)
		if math.Abs(got-tt.want) > 1e-10 {
			t.Errorf("regIncBeta(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.x, got, tt.want)
		}
	}
}

func TestChancePerformanceStrongSignal(t *testing.T) {
	// Responses track memoranda closely: real errors are far smaller
	// than shuffled errors, so p must be vanishingly small.
	rng := rand.New(rand.NewSource(42))
	n := 2000
	memoranda := make([]float64, n)
	responses := make([]float64, n)
	for i := range memoranda {
		memoranda[i] = rng.Float64() * 360
		responses[i] = memoranda[i] + rng.NormFloat64()*5
	}
	tStat, p, err := TestChancePerformance(memoranda, responses, rng)
	if err != nil {
		t.Fatalf("TestChancePerformance: %v", err)
	}
	if tStat >= 0 {
		t.Errorf("real errors should undercut shuffled errors, t = %v", tStat)
	}
	if p > 1e-10 {
		t.Errorf("p = %v, want < 1e-10 on strong signal", p)
	}
}

func TestChancePerformanceNullData(t *testing.T) {
	// Independent memoranda and responses: no seed should produce a
	// reliably tiny p-value.
	for _, seed := range []int64{1, 2, 3} {
		rng := rand.New(rand.NewSource(seed))
		n := 1000
		memoranda := make([]float64, n)
		responses := make([]float64, n)
		for i := range memoranda {
			memoranda[i] = rng.Float64() * 360
			responses[i] = rng.Float64() * 360
		}
		_, p, err := TestChancePerformance(memoranda, responses, rng)
		if err != nil {
			t.Fatalf("TestChancePerformance: %v", err)
		}
		if p < 1e-8 {
			t.Errorf("seed %d: p = %v, systematic false positive on null data", seed, p)
		}
	}
}

func TestChancePerformanceSeededIsDeterministic(t *testing.T) {
	memoranda := []float64{0, 45, 90, 135, 180, 225, 270, 315}
	responses := []float64{10, 40, 100, 130, 170, 230, 280, 310}
	t1, p1, err := TestChancePerformance(memoranda, responses, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("TestChancePerformance: %v", err)
	}
	t2, p2, err := TestChancePerformance(memoranda, responses, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("TestChancePerformance: %v", err)
	}
	if t1 != t2 || p1 != p2 {
		t.Errorf("same seed gave different results: (%v, %v) vs (%v, %v)", t1, p1, t2, p2)
	}
}

func TestChancePerformanceInvalidInput(t *testing.T) {
	if _, _, err := TestChancePerformance(nil, nil, nil); err == nil {
		t.Error("expected error for empty input")
	}
	if _, _, err := TestChancePerformance([]float64{1}, []float64{1, 2}, nil); err == nil {
		t.Error("expected error for length mismatch")
	}
}
