package category

import (
	"errors"
	"fmt"
)

// ErrNoCategory is returned when an angle matches no category under
// any wraparound offset. It signals a malformed table or an
// out-of-domain input.
var ErrNoCategory = errors.New("no category")

// #region lookup

// Lookup resolves an angle to its category. For each category, in
// table order, the offsets x, x-360, x+360 are tried against the
// half-open interval [Min, Max); the first hit wins. The offset order
// handles tables whose first interval crosses the 0/360 boundary
// (Min < 0).
func (t Table) Lookup(x float64) (Category, error) {
	for _, c := range t {
		for _, off := range [3]float64{0, -360, 360} {
			if v := x + off; c.Min <= v && v < c.Max {
				return c, nil
			}
		}
	}
	return Category{}, fmt.Errorf("category: %w for angle %v", ErrNoCategory, x)
}

// Prototype resolves an angle to the prototype of its category.
func (t Table) Prototype(x float64) (float64, error) {
	c, err := t.Lookup(x)
	if err != nil {
		return 0, err
	}
	return c.Prototype, nil
}

// #endregion lookup
