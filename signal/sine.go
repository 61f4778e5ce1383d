// Package signal evaluates analytic signal models used for seasonal tracer input.
package signal

import "math"

// SineWave evaluates amplitude*sin(2*pi*frequency*x + phase) + offset at a
// single timestep. Frequency is in cycles per unit of x, phase in radians.
func SineWave(x, amplitude, frequency, phase, offset float64) float64 {
	return amplitude*math.Sin(2*math.Pi*frequency*x+phase) + offset
}

// SineWaveSeries evaluates the wave at each timestep in xs.
func SineWaveSeries(xs []float64, amplitude, frequency, phase, offset float64) []float64 {
	values := make([]float64, len(xs))
	for i, x := range xs {
		values[i] = SineWave(x, amplitude, frequency, phase, offset)
	}
	return values
}
