package taxi

import (
	"fmt"

	"github.com/katalvlaran/taxirelay/gridmap"
	"github.com/katalvlaran/taxirelay/taxienv"
)

// queueMovesFrom plans origin->dest and appends one movement action per hop.
func (t *Taxi) queueMovesFrom(origin, dest gridmap.Cell) error {
	_, moves, err := t.grid.Path(origin, dest)
	if err != nil {
		return err
	}
	for _, m := range moves {
		t.queue = append(t.queue, taxienv.MoveAction(m))
	}

	return nil
}

// queueNamed resolves a catalogue action by name and appends it.
func (t *Taxi) queueNamed(name string) error {
	act, err := t.env.ActionIndex(name)
	if err != nil {
		return err
	}
	t.queue = append(t.queue, act)

	return nil
}

// QueuePath appends the movement actions of the shortest route from the
// taxi's current cell to dest. Queueing a route to the current cell adds
// nothing.
func (t *Taxi) QueuePath(dest gridmap.Cell) error {
	return t.queueMovesFrom(t.Location(), dest)
}

// QueuePickup queues driving to the first assigned passenger's current cell
// plus a pickup. Without assignments it is a no-op; the assignment stays on
// the list until the matching dropoff is queued.
func (t *Taxi) QueuePickup() error {
	if len(t.assigned) == 0 {
		return nil
	}

	return t.QueuePickupPassenger(t.assigned[0])
}

// QueuePickupPassenger queues driving to the given passenger's current cell
// plus a pickup, regardless of the assignment list.
func (t *Taxi) QueuePickupPassenger(passenger int) error {
	if err := t.queueMovesFrom(t.Location(), t.env.PassengerLocation(passenger)); err != nil {
		return err
	}

	return t.queueNamed("pickup")
}

// QueueChainedPickups queues one pickup tour over all assigned passengers in
// assignment order, each leg starting where the previous passenger waits.
func (t *Taxi) QueueChainedPickups() error {
	at := t.Location()
	for _, p := range t.assigned {
		loc := t.env.PassengerLocation(p)
		if err := t.queueMovesFrom(at, loc); err != nil {
			return err
		}
		if err := t.queueNamed("pickup"); err != nil {
			return err
		}
		at = loc
	}

	return nil
}

// QueueDropoff queues driving to the first assigned passenger's destination
// plus the matching dropoff, and retires the assignment. Without assignments
// it is a no-op.
func (t *Taxi) QueueDropoff() error {
	if len(t.assigned) == 0 {
		return nil
	}

	return t.queueDropoffTo(t.env.PassengerDestination(t.assigned[0]))
}

// QueueDropoffAt is QueueDropoff toward an arbitrary cell, used to hand a
// passenger over at a transfer point instead of the final destination.
func (t *Taxi) QueueDropoffAt(point gridmap.Cell) error {
	if len(t.assigned) == 0 {
		return nil
	}

	return t.queueDropoffTo(point)
}

// queueDropoffTo queues the route and dropoff action for the head assignment
// and pops it from the list.
func (t *Taxi) queueDropoffTo(dest gridmap.Cell) error {
	passenger := t.assigned[0]
	if err := t.queueMovesFrom(t.Location(), dest); err != nil {
		return err
	}
	if err := t.queueNamed(fmt.Sprintf("dropoff%d", passenger)); err != nil {
		return err
	}
	t.assigned = t.assigned[1:]

	return nil
}

// NextAction pops the oldest queued action.
// The second result is false when the queue is empty.
func (t *Taxi) NextAction() (taxienv.Action, bool) {
	if len(t.queue) == 0 {
		return 0, false
	}
	act := t.queue[0]
	t.queue = t.queue[1:]

	return act, true
}

// QueueLen returns the number of actions still queued.
func (t *Taxi) QueueLen() int { return len(t.queue) }
