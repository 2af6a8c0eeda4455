package dispatch

import (
	"fmt"

	"github.com/katalvlaran/taxirelay/gridmap"
)

// TransferPointMinimalDetour picks the handover cell that pulls the receiver
// least off its own shortest route to the passenger's destination.
//
// The candidates are the receiver's current cell plus its route cells; the
// sender scores them with its fuel-shortfall rule (taxi.BestTransferPoint)
// and the earliest minimal candidate wins. When the sender cannot reach any
// candidate outright, the returned cell is the furthest one it can reach, so
// the receiver has to drive the remaining shortfall off-route.
func (c *Controller) TransferPointMinimalDetour(from, to, passenger int) (gridmap.Cell, error) {
	route, _, err := c.taxis[to].PathTo(c.env.PassengerDestination(passenger))
	if err != nil {
		return gridmap.Cell{}, err
	}
	point, _, err := c.taxis[from].BestTransferPoint(c.taxis[to].Location(), route)

	return point, err
}

// TransferPointFurthestReach picks the furthest cell along the sender's own
// shortest route to the passenger's destination that its fuel still covers,
// keeping one unit in reserve for the dropoff.
func (c *Controller) TransferPointFurthestReach(from, passenger int) (gridmap.Cell, error) {
	route, _, err := c.taxis[from].PathTo(c.env.PassengerDestination(passenger))
	if err != nil {
		return gridmap.Cell{}, err
	}

	walk := append([]gridmap.Cell{c.taxis[from].Location()}, route...)
	idx := c.taxis[from].Fuel() - 1
	if idx > len(walk)-1 {
		idx = len(walk) - 1
	}
	if idx < 0 {
		idx = 0
	}

	return walk[idx], nil
}

// OptimalTransferPoint scans every cell of the grid and returns the one
// minimizing the passenger's final distance from the destination.
//
// Cells the sender cannot reach with a dropoff reserve are skipped. For the
// rest the score is the receiver's remaining shortfall after driving to the
// cell and on to the destination; when the receiver cannot even reach the
// cell, the score falls back to the cell's own distance from the
// destination. The scan is row-major and keeps the first minimum, so equal
// scores resolve deterministically. The controller's context is checked once
// per row, letting callers abort the quadratic scan on large maps.
//
// Returns ErrNoTransferPoint when the sender can reach no cell at all.
func (c *Controller) OptimalTransferPoint(from, to, passenger int) (gridmap.Cell, error) {
	sender, receiver := c.taxis[from], c.taxis[to]
	destination := c.env.PassengerDestination(passenger)

	best := gridmap.Cell{}
	bestScore, found := 0, false
	for row := 0; row < c.grid.Rows(); row++ {
		if err := c.ctx.Err(); err != nil {
			return gridmap.Cell{}, err
		}
		for col := 0; col < c.grid.Cols(); col++ {
			point := gridmap.Cell{Row: row, Col: col}

			senderCost, err := sender.PathCost(point)
			if err != nil {
				return gridmap.Cell{}, err
			}
			if senderCost > sender.Fuel()-1 {
				continue
			}

			receiverCost, err := receiver.PathCost(point)
			if err != nil {
				return gridmap.Cell{}, err
			}
			onwardCost, err := c.grid.PathCost(point, destination)
			if err != nil {
				return gridmap.Cell{}, err
			}

			var score int
			if receiverCost > receiver.Fuel()-1 {
				score = onwardCost
			} else {
				score = receiverCost + onwardCost - (receiver.Fuel() - 1)
				if score < 0 {
					score = 0
				}
			}

			if !found || score < bestScore {
				best, bestScore, found = point, score, true
			}
		}
	}
	if !found {
		return gridmap.Cell{}, fmt.Errorf("%w: sender %d has %d fuel", ErrNoTransferPoint, from, sender.Fuel())
	}

	return best, nil
}

// TransferPassenger routes both taxis to the transfer point, grounds the
// passenger there and boards it onto the receiving taxi.
//
// The sender must hold the passenger as its first assignment. After the
// handover the assignment has moved to the receiver's list and both queues
// are drained.
func (c *Controller) TransferPassenger(passenger, from, to int, point gridmap.Cell) error {
	// 1) Meet at the transfer point; the sender grounds the passenger.
	if err := c.taxis[from].QueueDropoffAt(point); err != nil {
		return err
	}
	if err := c.taxis[to].QueuePath(point); err != nil {
		return err
	}
	if err := c.ExecuteAll(); err != nil {
		return err
	}

	// 2) The receiver takes the assignment and boards the passenger.
	c.taxis[to].Assign(passenger)
	if err := c.taxis[to].QueuePickup(); err != nil {
		return err
	}

	return c.ExecuteAll()
}
