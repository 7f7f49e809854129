package category

// #region category

// Category is a named half-open hue interval [Min, Max) with a
// representative prototype angle. The prototype is the perceptual
// center of the category; numerically it may fall outside [Min, Max).
type Category struct {
	Name      string
	Min       float64
	Max       float64
	Prototype float64
}

// #endregion category

// #region table

// Table is an ordered list of categories. Lookup walks the slice in
// order and returns the first match, so the order is part of the
// contract: when intervals overlap under wraparound, earlier entries
// win.
type Table []Category

// #endregion table

// #region default-tables

// DefaultTable returns the 7-category hue table. The intervals are
// contiguous and cover the full circle: angles in [340, 360) fall into
// red through the -360 wraparound offset.
func DefaultTable() Table {
	return Table{
		{Name: "red", Min: -20, Max: 25, Prototype: 8},
		{Name: "orange", Min: 25, Max: 50, Prototype: 38},
		{Name: "yellow", Min: 50, Max: 80, Prototype: 63},
		{Name: "green", Min: 80, Max: 165, Prototype: 120},
		{Name: "blue", Min: 165, Max: 260, Prototype: 230},
		{Name: "purple", Min: 260, Max: 295, Prototype: 280},
		{Name: "pink", Min: 295, Max: 340, Prototype: 315},
	}
}

// ClassicTable returns the older 5-category table with its original
// boundary constants, in the original iteration order.
func ClassicTable() Table {
	return Table{
		{Name: "red", Min: -26.2058823530101, Max: 33.676470588249, Prototype: 5.999999999993606},
		{Name: "pink", Min: 275.52941176473, Max: 333.79411764698995, Prototype: 281.6806722688825},
		{Name: "blue", Min: 163.50000000003, Max: 275.52941176473, Prototype: 229.89915966385712},
		{Name: "green", Min: 69.88235294115, Max: 163.50000000003, Prototype: 121.86554621849697},
		{Name: "yellow", Min: 33.676470588249, Max: 69.88235294115, Prototype: 57.91596638651193},
	}
}

// #endregion default-tables
