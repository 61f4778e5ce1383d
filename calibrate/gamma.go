// Package calibrate searches gamma-distribution parameter grids for transit-time
// distributions that reproduce a target tail density.
package calibrate

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Default search settings
const (
	DefaultTolerance = 1e-4
	DefaultStepSize  = 0.1

	// DaysPerYear converts mean transit times from years to days.
	DaysPerYear = 365.25
)

// Range bounds one scan dimension. Both ends are intended to be inclusive;
// see scanValues for the endpoint semantics under float stepping.
type Range struct {
	Min float64
	Max float64
}

// Match is one accepted grid cell: a gamma shape parameter and the mean
// transit time in days.
type Match struct {
	Alpha      float64 `json:"alpha"`
	TauBarDays float64 `json:"tau_bar_days"`
}

// Calibrator scans a (shape, mean) grid for gamma distributions whose density
// at a target quantile matches a target value.
type Calibrator struct {
	Tolerance float64 // acceptable |pdf - target| per cell
	StepSize  float64 // grid increment for both dimensions
}

// NewCalibrator creates a calibrator with default tolerance and step size.
func NewCalibrator() *Calibrator {
	return &Calibrator{
		Tolerance: DefaultTolerance,
		StepSize:  DefaultStepSize,
	}
}

// FindGammaParameters finds all (alpha, tauBar) pairs on the scan grid whose
// gamma density, evaluated at the quantile of cumulative probability qTarget,
// lies within Tolerance of pTarget. tauBarRange is in years; returned means
// are in days. Results are ordered alpha-major ascending, matching the scan.
//
// Inverted ranges produce no cells and an empty result. The function raises
// no errors for well-formed numeric input.
func (c *Calibrator) FindGammaParameters(pTarget, qTarget float64, alphaRange, tauBarRange Range) []Match {
	matches := []Match{}

	for _, alpha := range scanValues(alphaRange, c.StepSize) {
		for _, tauBarYears := range scanValues(tauBarRange, c.StepSize) {
			tauBar := tauBarYears * DaysPerYear

			// distuv parameterizes by rate; scale = tauBar/alpha, so rate = alpha/tauBar.
			dist := distuv.Gamma{Alpha: alpha, Beta: alpha / tauBar}

			xq := dist.Quantile(qTarget)
			pdf := dist.Prob(xq)

			if math.Abs(pdf-pTarget) <= c.Tolerance {
				matches = append(matches, Match{Alpha: alpha, TauBarDays: tauBar})
			}
		}
	}

	return matches
}

// FindGammaParameters runs the grid search with default tolerance and step size.
func FindGammaParameters(pTarget, qTarget float64, alphaRange, tauBarRange Range) []Match {
	return NewCalibrator().FindGammaParameters(pTarget, qTarget, alphaRange, tauBarRange)
}

// scanValues generates the grid coordinates for one dimension: half-open
// accumulation from Min against Max extended by one step, so the upper bound
// is included unless accumulated rounding pushes the last value past it.
func scanValues(r Range, step float64) []float64 {
	var values []float64
	for v := r.Min; v < r.Max+step; v += step {
		values = append(values, v)
	}
	return values
}
