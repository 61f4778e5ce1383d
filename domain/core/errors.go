package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Search errors
	ErrNoGreaterElement = errors.New("no element greater than the provided value")

	// Analysis errors
	ErrInsufficientData = errors.New("insufficient data for analysis")
)

// Error constructors with context
func NewNoGreaterElementError(value float64) error {
	return fmt.Errorf("%w: %g", ErrNoGreaterElement, value)
}

func NewInsufficientDataError(what string) error {
	return fmt.Errorf("%w: %s", ErrInsufficientData, what)
}

// Error checking helpers
func IsNoGreaterElementError(err error) bool {
	return errors.Is(err, ErrNoGreaterElement)
}

func IsInsufficientDataError(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}
