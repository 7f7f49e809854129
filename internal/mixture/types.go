package mixture

// #region params

// Params holds the mixture model parameters. Precision is the
// concentration of the von Mises recall component (inversely related
// to circular standard deviation); GuessRate is the uniform mass;
// Bias shifts the von Mises mean (degrees); SwapRate is the mass
// attracted to non-target references. Unused components stay zero.
type Params struct {
	Precision float64
	GuessRate float64
	Bias      float64
	SwapRate  float64
}

// #endregion params
