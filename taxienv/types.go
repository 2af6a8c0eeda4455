// Package taxienv defines the simulation contract and core types
// for the taxienv subpackage of github.com/katalvlaran/taxirelay.
package taxienv

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/taxirelay/gridmap"
)

// Sentinel errors for taxienv operations.
var (
	// ErrUnknownTaxi indicates a step referenced a taxi index outside the fleet.
	ErrUnknownTaxi = errors.New("taxienv: unknown taxi index")
	// ErrUnknownAction indicates an action id or name outside the catalogue.
	ErrUnknownAction = errors.New("taxienv: unknown action")
	// ErrBadPlacement indicates a taxi or passenger placed outside the grid.
	ErrBadPlacement = errors.New("taxienv: placement outside the grid")
	// ErrOptionViolation indicates an invalid option value or combination.
	ErrOptionViolation = errors.New("taxienv: option violation")
)

// Action is one entry of a simulation's action catalogue.
//
// The first five ids are a fixed contract: south=0, north=1, east=2, west=3,
// pickup=4. Dropoff ids follow, one per passenger, and the remaining controls
// (standby, refuel, engine toggles) close the catalogue. Everything past the
// movement block is catalogue-dependent, so resolve those ids through
// Env.ActionIndex instead of hard-coding them.
type Action int

const (
	// ActionSouth moves the taxi one row down.
	ActionSouth Action = iota
	// ActionNorth moves the taxi one row up.
	ActionNorth
	// ActionEast moves the taxi one column right.
	ActionEast
	// ActionWest moves the taxi one column left.
	ActionWest
	// ActionPickup boards the first waiting passenger on the taxi's cell.
	ActionPickup
)

// MoveAction converts a route move into its action id.
// Moves and movement actions share the same numeric contract.
func MoveAction(m gridmap.Move) Action { return Action(m) }

// Reader exposes the observable simulation state.
//
// Index arguments must be within [0,NumTaxis) and [0,NumPassengers);
// implementations may panic otherwise, exactly like slice indexing.
type Reader interface {
	// NumTaxis returns the fleet size.
	NumTaxis() int
	// NumPassengers returns the passenger count.
	NumPassengers() int
	// TaxiLocation returns the current cell of a taxi.
	TaxiLocation(taxi int) gridmap.Cell
	// TaxiFuel returns the remaining fuel units of a taxi.
	TaxiFuel(taxi int) int
	// PassengerLocation returns the current cell of a passenger; while the
	// passenger rides a taxi this is the taxi's cell.
	PassengerLocation(passenger int) gridmap.Cell
	// PassengerDestination returns the cell the passenger wants to reach.
	PassengerDestination(passenger int) gridmap.Cell
	// PassengerDelivered reports whether the passenger was dropped off at
	// the destination.
	PassengerDelivered(passenger int) bool
}

// Stepper advances the simulation by one joint step.
type Stepper interface {
	// Step applies at most one action per taxi. Taxis absent from the map
	// stand still. Actions are applied in ascending taxi order, so the
	// outcome of a joint step is deterministic.
	Step(actions map[int]Action) error
}

// Env is the full simulation contract the coordinators drive.
type Env interface {
	Reader
	Stepper

	// ActionIndex resolves a catalogue name ("pickup", "dropoff0", ...)
	// to its action id. Returns ErrUnknownAction for names outside the
	// catalogue.
	ActionIndex(name string) (Action, error)
}

// Option configures NewSim.
type Option func(*simConfig)

// simConfig accumulates option values until NewSim validates them.
type simConfig struct {
	taxis          []taxiState
	passengers     []passengerState
	randTaxiFuels  []int
	randPassengers int
	rng            *rand.Rand
}

// WithTaxi places a taxi at the given cell with the given fuel.
// Taxis are numbered in the order the options appear.
func WithTaxi(at gridmap.Cell, fuel int) Option {
	return func(c *simConfig) {
		c.taxis = append(c.taxis, taxiState{loc: at, fuel: fuel})
	}
}

// WithPassenger places a waiting passenger with the given start and
// destination cells. Passengers are numbered in option order.
func WithPassenger(start, dest gridmap.Cell) Option {
	return func(c *simConfig) {
		c.passengers = append(c.passengers, passengerState{loc: start, dest: dest, carrier: noCarrier})
	}
}

// WithRandomTaxis places one taxi per listed fuel value on a random cell.
func WithRandomTaxis(fuels ...int) Option {
	return func(c *simConfig) {
		c.randTaxiFuels = append(c.randTaxiFuels, fuels...)
	}
}

// WithRandomPassengers places n passengers on random cells with random
// destinations distinct from their starts.
func WithRandomPassengers(n int) Option {
	return func(c *simConfig) { c.randPassengers += n }
}

// WithRand sets the random source used for random placements.
// Without it NewSim uses a fixed seed, so runs are reproducible by default.
func WithRand(rng *rand.Rand) Option {
	return func(c *simConfig) { c.rng = rng }
}
