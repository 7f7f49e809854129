// Package chance tests whether responses carry any signal about the
// memoranda, by comparing real absolute errors against a
// permutation-shuffled baseline.
package chance

import (
	"math"
	"math/rand"
	"time"

	"github.com/mkoolen/hue-memory/analysis/internal/circular"
)

// #region chance-test

// TestChancePerformance compares the absolute circular errors of the
// real (memorandum, response) pairs against the errors after a uniform
// random shuffle of the responses, via a two-sample t-test. It returns
// the t statistic and p-value.
//
// The shuffle makes the result non-deterministic across calls; pass a
// seeded rng for reproducible output. A nil rng falls back to a
// time-seeded source.
func TestChancePerformance(memoranda, responses []float64, rng *rand.Rand) (float64, float64, error) {
	realErrs, err := circular.Distances(memoranda, responses)
	if err != nil {
		return 0, 0, err
	}
	for i, v := range realErrs {
		realErrs[i] = math.Abs(v)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	shuffled := append([]float64(nil), responses...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	chanceErrs, err := circular.Distances(memoranda, shuffled)
	if err != nil {
		return 0, 0, err
	}
	for i, v := range chanceErrs {
		chanceErrs[i] = math.Abs(v)
	}

	return tTestInd(realErrs, chanceErrs)
}

// #endregion chance-test
