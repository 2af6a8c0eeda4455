package swarm

import (
	"math"

	"github.com/katalvlaran/taxirelay/taxi"
	"github.com/katalvlaran/taxirelay/taxienv"
)

// noWinner marks a bidding round nobody has won yet.
const noWinner = -1

// Peer wraps one taxi with an inbox and the decision handlers of the
// coordination protocol. A peer never reads another taxi's state directly;
// everything it knows about the rest of the fleet arrived as messages.
type Peer struct {
	taxi  *taxi.Taxi
	env   taxienv.Env
	inbox []Message
}

// NewPeer wraps tx for protocol participation.
func NewPeer(tx *taxi.Taxi, env taxienv.Env) (*Peer, error) {
	if tx == nil {
		return nil, ErrNilTaxi
	}
	if env == nil {
		return nil, ErrNilEnv
	}

	return &Peer{taxi: tx, env: env}, nil
}

// Index returns the wrapped taxi's fleet index.
func (p *Peer) Index() int { return p.taxi.Index() }

// Taxi returns the wrapped taxi.
func (p *Peer) Taxi() *taxi.Taxi { return p.taxi }

// Listen appends incoming messages to the peer's inbox.
func (p *Peer) Listen(msgs ...Message) { p.inbox = append(p.inbox, msgs...) }

// Bid prices appending the passenger to this peer's pickup tour.
func (p *Peer) Bid(passenger int) (AllocationBid, error) {
	cost, err := p.taxi.PickupCost(passenger)
	if err != nil {
		return AllocationBid{}, err
	}

	return AllocationBid{Taxi: p.Index(), Passenger: passenger, Cost: cost}, nil
}

// DecideAssignment resolves one bidding round: the peer scans the bids in
// its inbox and assigns itself the winning passenger iff its own bid was the
// cheapest. The first minimum wins, so every peer that saw the same bids
// reaches the same verdict. The inbox is cleared.
func (p *Peer) DecideAssignment() {
	winner, passenger, bestCost := noWinner, 0, math.MaxInt
	for _, msg := range p.inbox {
		bid, ok := msg.(AllocationBid)
		if !ok {
			continue
		}
		if bid.Cost < bestCost {
			winner, passenger, bestCost = bid.Taxi, bid.Passenger, bid.Cost
		}
	}
	p.inbox = p.inbox[:0]

	if winner == p.Index() {
		p.taxi.Assign(passenger)
	}
}

// QueuePickups queues the peer's chained tour over its assigned passengers.
func (p *Peer) QueuePickups() error { return p.taxi.QueueChainedPickups() }

// HelpRequests returns one request per assigned passenger whose trip the
// peer cannot finish on its remaining fuel.
func (p *Peer) HelpRequests() ([]HelpRequest, error) {
	var requests []HelpRequest
	for _, passenger := range p.taxi.Assignments() {
		cost, err := p.taxi.PathCost(p.env.PassengerDestination(passenger))
		if err != nil {
			return nil, err
		}
		if cost >= p.taxi.Fuel() {
			requests = append(requests, HelpRequest{Taxi: p.Index(), Passenger: passenger})
		}
	}

	return requests, nil
}

// PathResponses answers every help request in the inbox with this peer's
// own route to the passenger's destination and its fuel level. Handled
// requests leave the inbox; every other message stays.
func (p *Peer) PathResponses() ([]PathResponse, error) {
	var responses []PathResponse
	kept := p.inbox[:0]
	for _, msg := range p.inbox {
		req, ok := msg.(HelpRequest)
		if !ok {
			kept = append(kept, msg)
			continue
		}
		route, _, err := p.taxi.PathTo(p.env.PassengerDestination(req.Passenger))
		if err != nil {
			return nil, err
		}
		responses = append(responses, PathResponse{
			Taxi:      p.Index(),
			Recipient: req.Taxi,
			Passenger: req.Passenger,
			Fuel:      p.taxi.Fuel(),
			Route:     route,
		})
	}
	p.inbox = kept

	return responses, nil
}

// ChooseTransfer resolves the peer's own help round. The peer scores every
// path response in its inbox, picks the helper whose handover would leave
// the passenger closest to the destination, queues its drive to the chosen
// cell and returns the offer addressed to that helper. Without a qualifying
// helper it returns nil and drives toward the destination instead, carrying
// the passenger as far as the tank allows.
//
// A helper qualifies when its projected leftover distance does not exceed
// the current one, starting from the peer's own solo shortfall; among
// qualifiers the smallest handover shortfall wins, earliest response on
// ties. With an empty inbox or no assignments the peer queues nothing.
func (p *Peer) ChooseTransfer() (*TransferOffer, error) {
	assigned := p.taxi.Assignments()
	if len(p.inbox) == 0 || len(assigned) == 0 {
		return nil, nil
	}

	passenger := assigned[0]
	destination := p.env.PassengerDestination(passenger)
	soloCost, err := p.taxi.PathCost(destination)
	if err != nil {
		return nil, err
	}

	helper, point, chosen := p.Index(), destination, passenger
	remaining, bestShortfall := soloCost-p.taxi.Fuel(), math.MaxInt
	for _, msg := range p.inbox {
		resp, ok := msg.(PathResponse)
		if !ok {
			continue
		}
		candidate, shortfall, err := p.taxi.BestTransferPoint(p.env.TaxiLocation(resp.Taxi), resp.Route)
		if err != nil {
			return nil, err
		}
		// The helper rides the handover detour twice, once out and once
		// back onto its route, before the route itself.
		distance := 2*shortfall + len(resp.Route) - resp.Fuel
		if distance < 0 {
			distance = 0
		}
		if distance <= remaining && shortfall < bestShortfall {
			helper, point, chosen = resp.Taxi, candidate, resp.Passenger
			remaining, bestShortfall = distance, shortfall
		}
	}
	p.inbox = p.inbox[:0]

	if err := p.taxi.QueueDropoffAt(point); err != nil {
		return nil, err
	}
	if helper == p.Index() {
		return nil, nil
	}

	return &TransferOffer{Helper: helper, Taxi: p.Index(), Passenger: chosen, Point: point}, nil
}

// IntermediatePickups drives the peer to every handover cell offered to it
// and takes over the passengers. Only the ride is queued here; boarding
// happens in the finishing round, once the passenger is on the ground.
func (p *Peer) IntermediatePickups() error {
	for _, msg := range p.inbox {
		offer, ok := msg.(TransferOffer)
		if !ok {
			continue
		}
		if err := p.taxi.QueuePath(offer.Point); err != nil {
			return err
		}
		p.taxi.Assign(offer.Passenger)
	}
	p.inbox = p.inbox[:0]

	return nil
}

// FinishDelivery queues boarding the peer's first assigned passenger and
// the final leg to the destination. Without assignments both are no-ops.
func (p *Peer) FinishDelivery() error {
	if err := p.taxi.QueuePickup(); err != nil {
		return err
	}

	return p.taxi.QueueDropoff()
}
