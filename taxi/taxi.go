package taxi

import (
	"fmt"

	"github.com/katalvlaran/taxirelay/gridmap"
	"github.com/katalvlaran/taxirelay/taxienv"
)

// Taxi wraps one vehicle of a shared environment with route planning, an
// action queue and a passenger assignment list.
//
// The wrapper never steps the environment itself. Coordinators queue work on
// any number of taxis, then drain all queues together with ExecuteAll, so
// every vehicle acts once per joint step. Routes are always planned from the
// taxi's live location: queue one phase, execute it, then queue the next.
//
// Taxi is not safe for concurrent use.
type Taxi struct {
	env      taxienv.Env
	grid     *gridmap.Grid
	index    int
	queue    []taxienv.Action
	assigned []int
}

// New wraps taxi number index of env, routing over grid.
// The grid must describe the same map the environment runs on.
func New(env taxienv.Env, grid *gridmap.Grid, index int) (*Taxi, error) {
	if env == nil {
		return nil, ErrNilEnv
	}
	if grid == nil {
		return nil, ErrNilGrid
	}
	if index < 0 || index >= env.NumTaxis() {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexRange, index, env.NumTaxis())
	}

	return &Taxi{env: env, grid: grid, index: index}, nil
}

// Index returns the taxi's index within the fleet.
func (t *Taxi) Index() int { return t.index }

// Location returns the taxi's current cell.
func (t *Taxi) Location() gridmap.Cell { return t.env.TaxiLocation(t.index) }

// Fuel returns the taxi's remaining fuel units.
func (t *Taxi) Fuel() int { return t.env.TaxiFuel(t.index) }

// PathTo returns the shortest route from the taxi's current cell to dest,
// as the cells after the origin plus the move per hop.
func (t *Taxi) PathTo(dest gridmap.Cell) ([]gridmap.Cell, []gridmap.Move, error) {
	return t.grid.Path(t.Location(), dest)
}

// PathCost returns the move count of the shortest route from the taxi's
// current cell to dest.
func (t *Taxi) PathCost(dest gridmap.Cell) (int, error) {
	return t.grid.PathCost(t.Location(), dest)
}

// PathCostFrom returns the move count of the shortest route between two
// arbitrary cells, independent of where the taxi currently stands.
func (t *Taxi) PathCostFrom(origin, dest gridmap.Cell) (int, error) {
	return t.grid.PathCost(origin, dest)
}

// PickupCost returns the move count to the passenger's current cell. With
// pickups already assigned the route starts at the last assigned passenger's
// cell instead of the taxi's own, pricing the true tail of the pickup tour.
func (t *Taxi) PickupCost(passenger int) (int, error) {
	origin := t.Location()
	if len(t.assigned) > 0 {
		origin = t.env.PassengerLocation(t.assigned[len(t.assigned)-1])
	}

	return t.grid.PathCost(origin, t.env.PassengerLocation(passenger))
}

// Assign appends a passenger to the taxi's assignment list.
// Assignments are served in FIFO order.
func (t *Taxi) Assign(passenger int) {
	t.assigned = append(t.assigned, passenger)
}

// Assignments returns a copy of the pending assignment list, oldest first.
func (t *Taxi) Assignments() []int {
	return append([]int(nil), t.assigned...)
}
