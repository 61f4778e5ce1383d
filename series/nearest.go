// Package series provides search helpers over float sequences.
package series

import (
	"gonum.org/v1/gonum/floats"

	"transitfit/domain/core"
)

// NearestGreater returns the index of the smallest element of values that is
// strictly greater than value. Ties resolve to the first occurrence in the
// original order. When no element qualifies (including an empty input), the
// error wraps core.ErrNoGreaterElement.
func NearestGreater(values []float64, value float64) (int, error) {
	var greater []float64
	for _, v := range values {
		if v > value {
			greater = append(greater, v)
		}
	}

	if len(greater) == 0 {
		return 0, core.NewNoGreaterElementError(value)
	}

	nearest := floats.Min(greater)
	for i, v := range values {
		if v == nearest {
			return i, nil
		}
	}

	// Unreachable: nearest was drawn from values.
	return 0, core.NewNoGreaterElementError(value)
}
