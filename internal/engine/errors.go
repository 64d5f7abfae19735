package engine

import "errors"

var (
	// ErrInfeasible is returned when no door width satisfies the bounds.
	ErrInfeasible = errors.New("no feasible door width")

	// ErrOutOfRange is returned for caller contract violations such as a
	// negative span or a door count below one.
	ErrOutOfRange = errors.New("input out of range")
)
