package pair

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration indicates malformed or insufficient coefficients,
	// out-of-range type identifiers or an invalid cutoff.
	ErrConfiguration = errors.New("pair: invalid configuration")

	// ErrNumericDomain indicates a non-finite force, energy or virial.
	ErrNumericDomain = errors.New("pair: numeric domain error")
)

// ConfigError wraps ErrConfiguration with the offending operation and,
// when known, the type pair.
type ConfigError struct {
	Op  string
	I   int
	J   int
	Msg string
}

func (e *ConfigError) Error() string {
	if e.I > 0 || e.J > 0 {
		return fmt.Sprintf("pair %s (%d,%d): %s", e.Op, e.I, e.J, e.Msg)
	}
	return fmt.Sprintf("pair %s: %s", e.Op, e.Msg)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

func configErr(op string, i, j int, format string, args ...any) error {
	return &ConfigError{Op: op, I: i, J: j, Msg: fmt.Sprintf(format, args...)}
}

// NumericError reports the first non-finite quantity found after a pass.
type NumericError struct {
	Quantity string
	Value    float64
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("pair: non-finite %s (%g)", e.Quantity, e.Value)
}

func (e *NumericError) Unwrap() error {
	return ErrNumericDomain
}
