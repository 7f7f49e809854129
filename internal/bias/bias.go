// Package bias converts raw (memorandum, response) pairs into signed
// bias values relative to the category prototype: positive means the
// response erred toward the prototype, negative away from it.
package bias

import (
	"math"

	"github.com/mkoolen/hue-memory/analysis/internal/category"
	"github.com/mkoolen/hue-memory/analysis/internal/circular"
)

// #region response-bias

// ResponseBias computes the signed response bias per trial. With a nil
// or empty table it returns the raw circular distances. Otherwise each
// error is re-signed against the direction of the memorandum's
// category prototype: when the error and the prototype direction
// disagree in sign, the bias is -|error|, otherwise +|error|.
//
// Prototype lookups are memoized per distinct memorandum value, scoped
// to this call; memoranda repeat across trials sharing a stimulus.
func ResponseBias(memoranda, responses []float64, table category.Table) ([]float64, error) {
	errs, err := circular.Distances(memoranda, responses)
	if err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return errs, nil
	}

	protos := make(map[float64]float64)
	out := make([]float64, len(errs))
	for i, m := range memoranda {
		proto, ok := protos[m]
		if !ok {
			proto, err = table.Prototype(m)
			if err != nil {
				return nil, err
			}
			protos[m] = proto
		}
		e := errs[i]
		protoDist := circular.Distance(m, proto)
		if e*protoDist < 0 {
			out[i] = -math.Abs(e)
		} else {
			out[i] = math.Abs(e)
		}
	}
	return out, nil
}

// #endregion response-bias
