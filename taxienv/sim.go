package taxienv

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/taxirelay/gridmap"
)

// noCarrier marks a passenger standing on the ground.
const noCarrier = -1

// defaultSeed keeps unseeded simulations reproducible.
const defaultSeed = 1

// taxiState is the mutable per-taxi record.
type taxiState struct {
	loc  gridmap.Cell
	fuel int
}

// passengerState is the mutable per-passenger record. loc tracks the ground
// position and is stale while carrier >= 0; PassengerLocation hides that.
type passengerState struct {
	loc       gridmap.Cell
	dest      gridmap.Cell
	carrier   int
	delivered bool
}

// Sim is the reference Env implementation: a deterministic, in-memory
// multi-taxi simulation over a parsed grid map.
//
// Sim is not safe for concurrent use; drive it from one goroutine.
type Sim struct {
	grid       *gridmap.Grid
	desc       []string
	names      []string
	taxis      []taxiState
	passengers []passengerState
	steps      int
}

// NewSim parses the map description and builds a simulation from the options.
//
// At least one taxi must be configured. Explicit placements are validated
// against the grid (ErrBadPlacement); negative fuel values and counts are
// rejected with ErrOptionViolation. Random placements draw from the source
// set by WithRand, or from a fixed seed so that repeated runs agree.
func NewSim(desc []string, opts ...Option) (*Sim, error) {
	// 1) Parse the map.
	grid, err := gridmap.Parse(desc)
	if err != nil {
		return nil, err
	}

	// 2) Collect options.
	var cfg simConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.randPassengers < 0 {
		return nil, fmt.Errorf("%w: negative random passenger count", ErrOptionViolation)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	// 3) Validate explicit placements and fuels.
	for i, t := range cfg.taxis {
		if t.fuel < 0 {
			return nil, fmt.Errorf("%w: taxi %d has negative fuel", ErrOptionViolation, i)
		}
		if !grid.Contains(t.loc) {
			return nil, fmt.Errorf("%w: taxi %d at %v", ErrBadPlacement, i, t.loc)
		}
	}
	for i, p := range cfg.passengers {
		if !grid.Contains(p.loc) {
			return nil, fmt.Errorf("%w: passenger %d start %v", ErrBadPlacement, i, p.loc)
		}
		if !grid.Contains(p.dest) {
			return nil, fmt.Errorf("%w: passenger %d destination %v", ErrBadPlacement, i, p.dest)
		}
	}

	// 4) Materialize random placements after the explicit ones.
	s := &Sim{
		grid:       grid,
		desc:       append([]string(nil), desc...),
		taxis:      cfg.taxis,
		passengers: cfg.passengers,
	}
	for i, fuel := range cfg.randTaxiFuels {
		if fuel < 0 {
			return nil, fmt.Errorf("%w: random taxi %d has negative fuel", ErrOptionViolation, i)
		}
		s.taxis = append(s.taxis, taxiState{loc: s.randomCell(cfg.rng), fuel: fuel})
	}
	for i := 0; i < cfg.randPassengers; i++ {
		start := s.randomCell(cfg.rng)
		dest := s.randomCell(cfg.rng)
		for dest == start {
			dest = s.randomCell(cfg.rng)
		}
		s.passengers = append(s.passengers, passengerState{loc: start, dest: dest, carrier: noCarrier})
	}
	if len(s.taxis) == 0 {
		return nil, fmt.Errorf("%w: at least one taxi required", ErrOptionViolation)
	}

	// 5) Freeze the action catalogue for this passenger count.
	s.names = append(s.names, "south", "north", "east", "west", "pickup")
	for p := range s.passengers {
		s.names = append(s.names, fmt.Sprintf("dropoff%d", p))
	}
	s.names = append(s.names, "standby", "refuel", "turn_engine_on", "turn_engine_off")

	return s, nil
}

// randomCell draws a uniformly random cell of the grid.
func (s *Sim) randomCell(rng *rand.Rand) gridmap.Cell {
	return gridmap.Cell{Row: rng.Intn(s.grid.Rows()), Col: rng.Intn(s.grid.Cols())}
}

// Grid returns the parsed map shared by all planning layers.
func (s *Sim) Grid() *gridmap.Grid { return s.grid }

// Steps returns the number of joint steps applied so far.
func (s *Sim) Steps() int { return s.steps }

// NumTaxis returns the fleet size.
func (s *Sim) NumTaxis() int { return len(s.taxis) }

// NumPassengers returns the passenger count.
func (s *Sim) NumPassengers() int { return len(s.passengers) }

// TaxiLocation returns the current cell of a taxi.
func (s *Sim) TaxiLocation(taxi int) gridmap.Cell { return s.taxis[taxi].loc }

// TaxiFuel returns the remaining fuel units of a taxi.
func (s *Sim) TaxiFuel(taxi int) int { return s.taxis[taxi].fuel }

// PassengerLocation returns the current cell of a passenger, following the
// carrying taxi while the passenger is on board.
func (s *Sim) PassengerLocation(passenger int) gridmap.Cell {
	p := s.passengers[passenger]
	if p.carrier != noCarrier {
		return s.taxis[p.carrier].loc
	}

	return p.loc
}

// PassengerDestination returns the passenger's destination cell.
func (s *Sim) PassengerDestination(passenger int) gridmap.Cell {
	return s.passengers[passenger].dest
}

// PassengerDelivered reports whether the passenger reached the destination.
func (s *Sim) PassengerDelivered(passenger int) bool {
	return s.passengers[passenger].delivered
}

// PassengerCarrier returns the index of the taxi carrying the passenger,
// or -1 while the passenger is on the ground.
func (s *Sim) PassengerCarrier(passenger int) int {
	return s.passengers[passenger].carrier
}

// ActionIndex resolves a catalogue name to its action id.
func (s *Sim) ActionIndex(name string) (Action, error) {
	for i, n := range s.names {
		if n == name {
			return Action(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// ActionName returns the catalogue name of an action id,
// or "Action(n)" for ids outside the catalogue.
func (s *Sim) ActionName(a Action) string {
	if a < 0 || int(a) >= len(s.names) {
		return fmt.Sprintf("Action(%d)", int(a))
	}

	return s.names[a]
}

// Step applies at most one action per taxi, in ascending taxi order.
//
// Illegal moves are absorbed, not reported: a taxi out of fuel or driving
// into a wall stands still, a pickup on an empty cell does nothing, and a
// dropoff of a passenger the taxi does not carry does nothing. Only unknown
// taxi indices and unknown action ids fail the step.
func (s *Sim) Step(actions map[int]Action) error {
	ids := make([]int, 0, len(actions))
	for id := range actions {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		if id < 0 || id >= len(s.taxis) {
			return fmt.Errorf("%w: %d", ErrUnknownTaxi, id)
		}
		act := actions[id]
		if act < 0 || int(act) >= len(s.names) {
			return fmt.Errorf("%w: id %d", ErrUnknownAction, int(act))
		}
		s.apply(id, act)
	}
	s.steps++

	return nil
}

// apply executes a single validated action for one taxi.
func (s *Sim) apply(id int, act Action) {
	switch {
	case act <= ActionWest:
		t := &s.taxis[id]
		if t.fuel <= 0 {
			return
		}
		next := gridmap.Move(act).Apply(t.loc)
		if !s.grid.Adjacent(t.loc, next) {
			return
		}
		t.loc = next
		t.fuel--

	case act == ActionPickup:
		at := s.taxis[id].loc
		for p := range s.passengers {
			ps := &s.passengers[p]
			if !ps.delivered && ps.carrier == noCarrier && ps.loc == at {
				ps.carrier = id
				break
			}
		}

	default:
		p, ok := s.dropoffTarget(act)
		if !ok {
			return // standby, refuel and engine toggles change nothing
		}
		ps := &s.passengers[p]
		if ps.carrier != id {
			return
		}
		ps.carrier = noCarrier
		ps.loc = s.taxis[id].loc
		ps.delivered = ps.loc == ps.dest
	}
}

// dropoffTarget maps a dropoff action id to its passenger index.
func (s *Sim) dropoffTarget(act Action) (int, bool) {
	p := int(act) - int(ActionPickup) - 1

	return p, p >= 0 && p < len(s.passengers)
}
