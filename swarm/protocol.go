package swarm

import (
	"github.com/katalvlaran/taxirelay/gridmap"
	"github.com/katalvlaran/taxirelay/taxi"
	"github.com/katalvlaran/taxirelay/taxienv"
)

// Protocol drives the peers through the phases of one decentralized
// delivery round: bidding, pickup tours, transfer negotiation and the
// finishing legs.
//
// The driver only moves messages between inboxes and steps the environment;
// every decision is taken inside a peer. Phases visit peers in index order,
// so a whole round is deterministic.
type Protocol struct {
	env   taxienv.Env
	peers []*Peer
}

// NewProtocol builds one peer per taxi of the environment, routing on grid.
func NewProtocol(env taxienv.Env, grid *gridmap.Grid) (*Protocol, error) {
	if env == nil {
		return nil, ErrNilEnv
	}
	if grid == nil {
		return nil, ErrNilGrid
	}
	if env.NumTaxis() == 0 {
		return nil, ErrEmptyFleet
	}

	peers := make([]*Peer, env.NumTaxis())
	for i := range peers {
		tx, err := taxi.New(env, grid, i)
		if err != nil {
			return nil, err
		}
		if peers[i], err = NewPeer(tx, env); err != nil {
			return nil, err
		}
	}

	return &Protocol{env: env, peers: peers}, nil
}

// Peers returns the protocol's peers, indexed by fleet position.
func (pr *Protocol) Peers() []*Peer { return pr.peers }

// ExecuteAll drains every peer's queued actions in lockstep.
func (pr *Protocol) ExecuteAll() error {
	taxis := make([]*taxi.Taxi, len(pr.peers))
	for i, peer := range pr.peers {
		taxis[i] = peer.Taxi()
	}

	return taxi.ExecuteAll(pr.env, taxis...)
}

// AllocatePassengers runs one bidding round per passenger: every peer
// broadcasts its bid to the whole fleet, itself included, then every peer
// resolves the round alone. All peers saw the same bids, so their verdicts
// agree without any further exchange.
func (pr *Protocol) AllocatePassengers() error {
	for passenger := 0; passenger < pr.env.NumPassengers(); passenger++ {
		for _, bidder := range pr.peers {
			bid, err := bidder.Bid(passenger)
			if err != nil {
				return err
			}
			for _, peer := range pr.peers {
				peer.Listen(bid)
			}
		}
		for _, peer := range pr.peers {
			peer.DecideAssignment()
		}
	}

	return nil
}

// PickupAssigned sends every peer on its pickup tour and drains the queues.
func (pr *Protocol) PickupAssigned() error {
	for _, peer := range pr.peers {
		if err := peer.QueuePickups(); err != nil {
			return err
		}
	}

	return pr.ExecuteAll()
}

// NegotiateTransfers runs the help round: fuel-short peers broadcast their
// requests, the others answer with their routes, the requesters choose
// their helpers and the winning offers are delivered. Both parties queue
// their drives to the handover cells and the round ends with one lockstep
// drain, leaving each handed-over passenger on the ground at its cell.
//
// The accepted offers are returned for reporting; an empty slice means
// every peer finishes, or best-efforts, on its own.
func (pr *Protocol) NegotiateTransfers() ([]TransferOffer, error) {
	// 1) Broadcast help requests to everyone else.
	for _, peer := range pr.peers {
		requests, err := peer.HelpRequests()
		if err != nil {
			return nil, err
		}
		for _, other := range pr.peers {
			if other.Index() == peer.Index() {
				continue
			}
			for _, req := range requests {
				other.Listen(req)
			}
		}
	}

	// 2) Answer them, each response addressed to its requester.
	for _, peer := range pr.peers {
		responses, err := peer.PathResponses()
		if err != nil {
			return nil, err
		}
		for _, resp := range responses {
			pr.peers[resp.Recipient].Listen(resp)
		}
	}

	// 3) Requesters pick helpers and queue their drives to the handovers.
	var offers []TransferOffer
	for _, peer := range pr.peers {
		offer, err := peer.ChooseTransfer()
		if err != nil {
			return nil, err
		}
		if offer != nil {
			pr.peers[offer.Helper].Listen(*offer)
			offers = append(offers, *offer)
		}
	}

	// 4) Helpers accept and head for the handover cells.
	for _, peer := range pr.peers {
		if err := peer.IntermediatePickups(); err != nil {
			return nil, err
		}
	}

	return offers, pr.ExecuteAll()
}

// FinishDeliveries queues every peer's final pickup and dropoff legs and
// drains the queues.
func (pr *Protocol) FinishDeliveries() error {
	for _, peer := range pr.peers {
		if err := peer.FinishDelivery(); err != nil {
			return err
		}
	}

	return pr.ExecuteAll()
}

// Run plays one full decentralized round and returns the accepted transfer
// offers.
func (pr *Protocol) Run() ([]TransferOffer, error) {
	if err := pr.AllocatePassengers(); err != nil {
		return nil, err
	}
	if err := pr.PickupAssigned(); err != nil {
		return nil, err
	}
	offers, err := pr.NegotiateTransfers()
	if err != nil {
		return nil, err
	}

	return offers, pr.FinishDeliveries()
}
