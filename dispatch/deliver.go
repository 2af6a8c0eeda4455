package dispatch

import (
	"fmt"

	"github.com/katalvlaran/taxirelay/gridmap"
)

// Deliver runs one full relay delivery for the passenger under the given
// strategy on a two-taxi fleet.
//
// The closest capable taxi boards the passenger, carries it to the transfer
// point picked by the strategy, and hands it to the other taxi, which
// finishes the trip. When no taxi can even reach the passenger, nothing
// moves and the result reports the passenger's full distance from the
// destination. A non-two-taxi fleet fails with ErrFleetSize.
func (c *Controller) Deliver(passenger int, strategy Strategy) (Delivery, error) {
	if len(c.taxis) != 2 {
		return Delivery{}, fmt.Errorf("%w: got %d", ErrFleetSize, len(c.taxis))
	}

	// 1) Allocate the closest capable taxi as the sender.
	location := c.env.PassengerLocation(passenger)
	sender, err := c.FindClosestCapableTaxi(location)
	if err != nil {
		return Delivery{}, err
	}
	if sender == NoTaxi {
		residual, err := c.grid.PathCost(location, c.env.PassengerDestination(passenger))
		if err != nil {
			return Delivery{}, err
		}
		return Delivery{Delivered: false, Residual: residual}, nil
	}

	// 2) Board the passenger.
	c.taxis[sender].Assign(passenger)
	if err = c.taxis[sender].QueuePickup(); err != nil {
		return Delivery{}, err
	}
	if err = c.ExecuteAll(); err != nil {
		return Delivery{}, err
	}

	// 3) Pick the transfer point and hand the passenger over.
	receiver := 1 - sender
	var point gridmap.Cell
	switch strategy {
	case StrategyMinimalDetour:
		point, err = c.TransferPointMinimalDetour(sender, receiver, passenger)
	case StrategyFurthestReach:
		point, err = c.TransferPointFurthestReach(sender, passenger)
	default:
		point, err = c.OptimalTransferPoint(sender, receiver, passenger)
	}
	if err != nil {
		return Delivery{}, err
	}
	if err = c.TransferPassenger(passenger, sender, receiver, point); err != nil {
		return Delivery{}, err
	}

	// 4) The receiver finishes the trip.
	if err = c.taxis[receiver].QueueDropoff(); err != nil {
		return Delivery{}, err
	}
	if err = c.ExecuteAll(); err != nil {
		return Delivery{}, err
	}
	if c.env.PassengerDelivered(passenger) {
		return Delivery{Delivered: true, Residual: 0}, nil
	}

	residual, err := c.grid.PathCost(c.env.PassengerLocation(passenger), c.env.PassengerDestination(passenger))
	if err != nil {
		return Delivery{}, err
	}

	return Delivery{Delivered: false, Residual: residual}, nil
}
