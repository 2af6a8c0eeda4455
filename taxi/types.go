// Package taxi defines construction errors for the per-vehicle wrapper.
package taxi

import "errors"

// Sentinel errors for taxi construction.
var (
	// ErrNilEnv indicates New received a nil environment.
	ErrNilEnv = errors.New("taxi: nil environment")
	// ErrNilGrid indicates New received a nil grid.
	ErrNilGrid = errors.New("taxi: nil grid")
	// ErrIndexRange indicates the taxi index lies outside the fleet.
	ErrIndexRange = errors.New("taxi: index outside fleet")
)
