package md

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState indicates positions, velocities or forces with NaN or Inf.
	ErrInvalidState = errors.New("md: invalid state (NaN or Inf detected)")

	// ErrParameterBounds indicates a run or system parameter outside its valid range.
	ErrParameterBounds = errors.New("md: parameter out of valid bounds")
)

// SimulationError wraps an error with the step at which it occurred.
type SimulationError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}

func boundsErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParameterBounds, fmt.Sprintf(format, args...))
}
