package results

import "time"

// #region fit-record

// FitRecord is one persisted fitting run for a session. Bias and
// SwapRate are meaningful only when the matching Has flag is set; the
// store writes NULL otherwise. AICUnderflow records that the AIC
// likelihood product underflowed and was floored.
type FitRecord struct {
	RunID        string
	SessionID    string
	Model        string
	NTrials      int
	Precision    float64
	GuessRate    float64
	HasBias      bool
	Bias         float64
	HasSwap      bool
	SwapRate     float64
	AIC          float64
	AICUnderflow bool
	TChance      float64
	PChance      float64
	CreatedAt    time.Time
}

// #endregion fit-record
