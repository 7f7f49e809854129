package fixture

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/mkoolen/hue-memory/analysis/internal/category"
	"github.com/mkoolen/hue-memory/analysis/internal/circular"
)

// #region synth-spec

// SynthSpec describes one synthetic session: N trials drawn from a
// mixture with the given true parameters. When SwapRate is positive a
// non-target column at target+180 is generated and the swapped trials
// respond to it. Bias shifts each response toward or away from its
// category prototype and requires a category table.
type SynthSpec struct {
	ID        string
	N         int
	Precision float64
	GuessRate float64
	Bias      float64
	SwapRate  float64
	Nontarget bool // force a non-target column even with SwapRate 0
}

// #endregion synth-spec

// #region generate

// Generate builds a synthetic session from the spec. Targets are
// uniform over [0, 359); a guess fraction of responses is replaced by
// uniform draws and a swap fraction redirected to the non-target;
// Gaussian noise with the scale implied by Precision is added to every
// response, then the prototype-directed bias shift is applied.
func Generate(spec SynthSpec, table category.Table, rng *rand.Rand) (Session, error) {
	if spec.N <= 0 {
		return Session{}, fmt.Errorf("fixture: invalid trial count %d", spec.N)
	}
	if spec.Precision <= 0 {
		return Session{}, fmt.Errorf("fixture: invalid precision %v", spec.Precision)
	}
	if spec.GuessRate < 0 || spec.GuessRate > 1 {
		return Session{}, fmt.Errorf("fixture: guess rate %v outside [0, 1]", spec.GuessRate)
	}
	if spec.SwapRate < 0 || spec.SwapRate > 1 {
		return Session{}, fmt.Errorf("fixture: swap rate %v outside [0, 1]", spec.SwapRate)
	}
	if spec.GuessRate+spec.SwapRate > 1 {
		return Session{}, fmt.Errorf("fixture: guess rate %v and swap rate %v sum past 1", spec.GuessRate, spec.SwapRate)
	}
	if spec.Bias != 0 && len(table) == 0 {
		return Session{}, errors.New("fixture: bias generation needs a category table")
	}
	if rng == nil {
		return Session{}, errors.New("fixture: nil random source")
	}

	targets := make([]float64, spec.N)
	for i := range targets {
		targets[i] = float64(rng.Intn(359))
	}

	withNontarget := spec.Nontarget || spec.SwapRate > 0
	var nontarget []float64
	if withNontarget {
		nontarget = make([]float64, spec.N)
		for i := range nontarget {
			nontarget[i] = targets[i] + 180
		}
	}

	responses := append([]float64(nil), targets...)
	nGuess := int(float64(spec.N) * spec.GuessRate)
	nSwap := int(float64(spec.N) * spec.SwapRate)
	for i := 0; i < nGuess; i++ {
		responses[i] = float64(rng.Intn(359))
	}
	for i := nGuess; i < nGuess+nSwap; i++ {
		responses[i] = nontarget[i]
	}

	scale := noiseScale(spec.Precision)
	for i := range responses {
		responses[i] += rng.NormFloat64() * scale
	}

	if spec.Bias != 0 {
		protos := make(map[float64]float64)
		for i, target := range targets {
			proto, ok := protos[target]
			if !ok {
				var err error
				proto, err = table.Prototype(target)
				if err != nil {
					return Session{}, err
				}
				protos[target] = proto
			}
			// Shift each response toward its prototype by the bias.
			if circular.Distance(responses[i], proto) > 0 {
				responses[i] += spec.Bias
			} else {
				responses[i] -= spec.Bias
			}
		}
	}

	s := Session{ID: spec.ID, Memoranda: targets, Responses: responses}
	if withNontarget {
		s.Nontargets = [][]float64{nontarget}
	}
	return s, nil
}

// noiseScale converts a precision (degrees-scaled kappa) to the
// Gaussian response noise in degrees: the circular standard deviation
// of a von Mises with kappa = rad(precision), so recovery lands on the
// generating precision. Precision 500 gives ~19.4 degrees, 2000 gives
// ~9.7, matching the reference recipe's rounded 20 and 10.
func noiseScale(precision float64) float64 {
	kappa := precision * math.Pi / 180
	return (180 / math.Pi) / math.Sqrt(kappa)
}

// #endregion generate
