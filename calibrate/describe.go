package calibrate

import (
	"github.com/montanaflynn/stats"

	"transitfit/domain/core"
)

// Summary holds summary statistics over a matched parameter set.
type Summary struct {
	Count int

	AlphaMean float64
	AlphaMin  float64
	AlphaMax  float64

	TauBarMeanDays float64
	TauBarMinDays  float64
	TauBarMaxDays  float64
}

// Describe summarizes a match set per dimension. An empty set cannot be
// summarized and returns ErrInsufficientData.
func Describe(matches []Match) (Summary, error) {
	summary := Summary{Count: len(matches)}

	if len(matches) == 0 {
		return summary, core.NewInsufficientDataError("no matched parameters")
	}

	alphas := make([]float64, len(matches))
	tauBars := make([]float64, len(matches))
	for i, m := range matches {
		alphas[i] = m.Alpha
		tauBars[i] = m.TauBarDays
	}

	var err error
	if summary.AlphaMean, err = stats.Mean(alphas); err != nil {
		return summary, err
	}
	if summary.AlphaMin, err = stats.Min(alphas); err != nil {
		return summary, err
	}
	if summary.AlphaMax, err = stats.Max(alphas); err != nil {
		return summary, err
	}
	if summary.TauBarMeanDays, err = stats.Mean(tauBars); err != nil {
		return summary, err
	}
	if summary.TauBarMinDays, err = stats.Min(tauBars); err != nil {
		return summary, err
	}
	if summary.TauBarMaxDays, err = stats.Max(tauBars); err != nil {
		return summary, err
	}

	return summary, nil
}
