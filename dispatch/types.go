// Package dispatch defines option plumbing, strategies and sentinel errors
// for the centralized coordinator.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/taxirelay/taxi"
)

// NoTaxi is the sentinel fleet index meaning "no capable taxi exists".
const NoTaxi = -1

// Sentinel errors for dispatch operations.
var (
	// ErrNilEnv indicates New received a nil environment.
	ErrNilEnv = errors.New("dispatch: nil environment")
	// ErrNilGrid indicates New received a nil grid.
	ErrNilGrid = errors.New("dispatch: nil grid")
	// ErrEmptyFleet indicates the controller was built without any taxi.
	ErrEmptyFleet = errors.New("dispatch: empty fleet")
	// ErrFleetSize indicates a relay delivery was requested on a fleet that
	// is not exactly two taxis.
	ErrFleetSize = errors.New("dispatch: relay delivery needs exactly two taxis")
	// ErrNoTransferPoint indicates the exhaustive scan found no cell the
	// sender can reach within its fuel budget.
	ErrNoTransferPoint = errors.New("dispatch: no reachable transfer point")
)

// Strategy selects how a relay delivery picks its transfer point.
type Strategy int

const (
	// StrategyOptimal scans every cell of the grid and minimizes the
	// passenger's final distance from the destination.
	StrategyOptimal Strategy = iota
	// StrategyMinimalDetour picks the reachable cell closest to the
	// receiver's own shortest route, so the receiver deviates least.
	StrategyMinimalDetour
	// StrategyFurthestReach carries the passenger as far along the sender's
	// own route to the destination as the fuel allows.
	StrategyFurthestReach
)

// String returns the strategy name used in logs and reports.
func (s Strategy) String() string {
	switch s {
	case StrategyOptimal:
		return "optimal"
	case StrategyMinimalDetour:
		return "minimal-detour"
	case StrategyFurthestReach:
		return "furthest-reach"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Delivery is the outcome of a relay delivery attempt.
// Residual is the passenger's remaining distance from the destination,
// zero on success.
type Delivery struct {
	Delivered bool
	Residual  int
}

// Option configures New.
type Option func(*config)

// config accumulates option values until New validates them.
type config struct {
	ctx   context.Context
	taxis []*taxi.Taxi
}

// WithContext sets the context honored by the exhaustive transfer-point
// scan. Defaults to context.Background().
func WithContext(ctx context.Context) Option {
	return func(c *config) { c.ctx = ctx }
}

// WithTaxis hands the controller pre-built wrappers instead of letting it
// wrap every taxi of the environment itself. Useful when the caller shares
// wrappers between coordination layers.
func WithTaxis(taxis ...*taxi.Taxi) Option {
	return func(c *config) { c.taxis = taxis }
}
