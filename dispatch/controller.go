package dispatch

import (
	"context"
	"math"

	"github.com/katalvlaran/taxirelay/gridmap"
	"github.com/katalvlaran/taxirelay/taxi"
	"github.com/katalvlaran/taxirelay/taxienv"
)

// Controller coordinates a fleet of taxis with full knowledge of the
// environment: it allocates passengers, checks solo feasibility and plans
// relay deliveries through transfer points.
//
// Controller is not safe for concurrent use.
type Controller struct {
	env   taxienv.Env
	grid  *gridmap.Grid
	taxis []*taxi.Taxi
	ctx   context.Context
}

// New builds a controller over env, routing on grid.
// Without WithTaxis it wraps every taxi of the environment itself.
func New(env taxienv.Env, grid *gridmap.Grid, opts ...Option) (*Controller, error) {
	if env == nil {
		return nil, ErrNilEnv
	}
	if grid == nil {
		return nil, ErrNilGrid
	}

	cfg := config{ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.taxis == nil {
		cfg.taxis = make([]*taxi.Taxi, env.NumTaxis())
		for i := range cfg.taxis {
			tx, err := taxi.New(env, grid, i)
			if err != nil {
				return nil, err
			}
			cfg.taxis[i] = tx
		}
	}
	if len(cfg.taxis) == 0 {
		return nil, ErrEmptyFleet
	}

	return &Controller{env: env, grid: grid, taxis: cfg.taxis, ctx: cfg.ctx}, nil
}

// Taxis returns the controller's wrappers, indexed by fleet position.
func (c *Controller) Taxis() []*taxi.Taxi { return c.taxis }

// ExecuteAll drains every taxi's queued actions in lockstep.
func (c *Controller) ExecuteAll() error {
	return taxi.ExecuteAll(c.env, c.taxis...)
}

// FindClosestCapableTaxi returns the index of the taxi nearest to dest that
// can also reach it on its remaining fuel, or NoTaxi when none qualifies.
// Ties keep the lowest index.
func (c *Controller) FindClosestCapableTaxi(dest gridmap.Cell) (int, error) {
	closest, closestDistance := NoTaxi, math.MaxInt
	for _, tx := range c.taxis {
		distance, err := tx.PathCost(dest)
		if err != nil {
			return NoTaxi, err
		}
		if distance < closestDistance && distance < tx.Fuel() {
			closest, closestDistance = tx.Index(), distance
		}
	}

	return closest, nil
}

// AllocatePassengers assigns every passenger to the taxi with the cheapest
// pickup route. Ties keep the lowest taxi index; assignments join the tail
// of each taxi's FIFO list.
func (c *Controller) AllocatePassengers() error {
	for p := 0; p < c.env.NumPassengers(); p++ {
		best, bestCost := 0, math.MaxInt
		for _, tx := range c.taxis {
			cost, err := tx.PickupCost(p)
			if err != nil {
				return err
			}
			if cost < bestCost {
				best, bestCost = tx.Index(), cost
			}
		}
		c.taxis[best].Assign(p)
	}

	return nil
}

// PickupAssigned sends every taxi on its chained pickup tour and drains the
// queues, so all assigned passengers are aboard afterwards.
func (c *Controller) PickupAssigned() error {
	for _, tx := range c.taxis {
		if err := tx.QueueChainedPickups(); err != nil {
			return err
		}
	}

	return c.ExecuteAll()
}

// SoloFeasibility reports which taxis could deliver the passenger alone.
//
// It returns the indices of all taxis whose fuel strictly covers the pickup
// route plus the delivery route, and the least distance from the destination
// any single taxi could leave the passenger at (zero when a capable taxi
// exists). The bound starts at the direct passenger-to-destination cost, so
// it never exceeds leaving the passenger untouched.
func (c *Controller) SoloFeasibility(passenger int) ([]int, int, error) {
	location := c.env.PassengerLocation(passenger)
	directCost, err := c.grid.PathCost(location, c.env.PassengerDestination(passenger))
	if err != nil {
		return nil, 0, err
	}

	capable := make([]int, 0, len(c.taxis))
	minDistance := directCost
	for _, tx := range c.taxis {
		pickupCost, err := tx.PathCost(location)
		if err != nil {
			return nil, 0, err
		}
		totalCost := pickupCost + directCost
		fuel := tx.Fuel()
		if distance := totalCost - (fuel - 1); distance < minDistance {
			if distance < 0 {
				distance = 0
			}
			minDistance = distance
		}
		if totalCost < fuel {
			capable = append(capable, tx.Index())
		}
	}

	return capable, minDistance, nil
}
