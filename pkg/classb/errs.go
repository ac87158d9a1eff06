package classb

import "errors"

var (
	// ErrCircuitValue indicates a zero or negative quantity in a circuit
	// description. All four constants must be positive for the figures to
	// mean anything.
	ErrCircuitValue = errors.New("classb: non-positive circuit value")
)
