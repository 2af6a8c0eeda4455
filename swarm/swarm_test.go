package swarm_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/taxirelay/dispatch"
	"github.com/katalvlaran/taxirelay/gridmap"
	"github.com/katalvlaran/taxirelay/swarm"
	"github.com/katalvlaran/taxirelay/taxienv"
)

// classicDesc is the well-known 5x5 taxi layout.
var classicDesc = []string{
	"+---------+",
	"|R: | : :G|",
	"| : | : : |",
	"| : : : : |",
	"| | : | : |",
	"|Y| : |B: |",
	"+---------+",
}

func cell(r, c int) gridmap.Cell { return gridmap.Cell{Row: r, Col: c} }

// fleet builds a simulation plus a protocol over its taxis.
func fleet(t *testing.T, opts ...taxienv.Option) (*taxienv.Sim, *swarm.Protocol) {
	t.Helper()
	sim, err := taxienv.NewSim(classicDesc, opts...)
	if err != nil {
		t.Fatalf("NewSim error: %v", err)
	}
	proto, err := swarm.NewProtocol(sim, sim.Grid())
	if err != nil {
		t.Fatalf("NewProtocol error: %v", err)
	}
	return sim, proto
}

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNewProtocol_Errors verifies nil validation.
func TestNewProtocol_Errors(t *testing.T) {
	sim, err := taxienv.NewSim(classicDesc, taxienv.WithTaxi(cell(0, 0), 5))
	if err != nil {
		t.Fatalf("NewSim error: %v", err)
	}

	if _, err := swarm.NewProtocol(nil, sim.Grid()); !errors.Is(err, swarm.ErrNilEnv) {
		t.Errorf("nil env: error = %v; want ErrNilEnv", err)
	}
	if _, err := swarm.NewProtocol(sim, nil); !errors.Is(err, swarm.ErrNilGrid) {
		t.Errorf("nil grid: error = %v; want ErrNilGrid", err)
	}
	if _, err := swarm.NewPeer(nil, sim); !errors.Is(err, swarm.ErrNilTaxi) {
		t.Errorf("nil taxi: error = %v; want ErrNilTaxi", err)
	}
}

//----------------------------------------------------------------------------//
// Peer Tests
//----------------------------------------------------------------------------//

// TestPeer_BidAndDecide runs one bidding round by hand. Both taxis are one
// move from the passenger; every peer must settle the tie the same way,
// on the lower index.
func TestPeer_BidAndDecide(t *testing.T) {
	_, proto := fleet(t,
		taxienv.WithTaxi(cell(0, 0), 10),
		taxienv.WithTaxi(cell(2, 0), 10),
		taxienv.WithPassenger(cell(1, 0), cell(4, 4)),
	)
	peers := proto.Peers()

	for _, bidder := range peers {
		bid, err := bidder.Bid(0)
		if err != nil {
			t.Fatalf("Bid error: %v", err)
		}
		if bid.Cost != 1 {
			t.Fatalf("bid cost = %d; want 1", bid.Cost)
		}
		for _, peer := range peers {
			peer.Listen(bid)
		}
	}
	for _, peer := range peers {
		peer.DecideAssignment()
	}

	if got := peers[0].Taxi().Assignments(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("peer 0 assignments = %v; want [0]", got)
	}
	if got := peers[1].Taxi().Assignments(); len(got) != 0 {
		t.Errorf("peer 1 assignments = %v; want none", got)
	}
}

// TestPeer_HelpRequests checks the fuel threshold: a trip costing exactly
// the remaining fuel is already out of reach.
func TestPeer_HelpRequests(t *testing.T) {
	requestsAt := func(fuel int) []swarm.HelpRequest {
		_, proto := fleet(t,
			taxienv.WithTaxi(cell(4, 0), fuel),
			taxienv.WithPassenger(cell(4, 0), cell(0, 4)),
		)
		peer := proto.Peers()[0]
		peer.Taxi().Assign(0)
		requests, err := peer.HelpRequests()
		if err != nil {
			t.Fatalf("HelpRequests error: %v", err)
		}
		return requests
	}

	// The trip costs 8. With 8 fuel the taxi would arrive dry.
	if got := requestsAt(8); !reflect.DeepEqual(got, []swarm.HelpRequest{{Taxi: 0, Passenger: 0}}) {
		t.Errorf("fuel 8: requests = %v; want one for passenger 0", got)
	}
	if got := requestsAt(9); len(got) != 0 {
		t.Errorf("fuel 9: requests = %v; want none", got)
	}
}

// TestPeer_PathResponses pins the response a helper broadcasts back.
func TestPeer_PathResponses(t *testing.T) {
	_, proto := fleet(t,
		taxienv.WithTaxi(cell(0, 0), 4),
		taxienv.WithTaxi(cell(2, 3), 10),
		taxienv.WithPassenger(cell(0, 0), cell(4, 3)),
	)
	helper := proto.Peers()[1]

	helper.Listen(swarm.HelpRequest{Taxi: 0, Passenger: 0})
	responses, err := helper.PathResponses()
	if err != nil {
		t.Fatalf("PathResponses error: %v", err)
	}

	want := []swarm.PathResponse{{
		Taxi:      1,
		Recipient: 0,
		Passenger: 0,
		Fuel:      10,
		Route:     []gridmap.Cell{cell(3, 3), cell(4, 3)},
	}}
	if !reflect.DeepEqual(responses, want) {
		t.Errorf("responses = %+v; want %+v", responses, want)
	}

	// The request was consumed; a second sweep answers nothing.
	responses, err = helper.PathResponses()
	if err != nil || len(responses) != 0 {
		t.Errorf("second sweep = %v,%v; want empty", responses, err)
	}
}

// TestPeer_ChooseTransfer covers the three outcomes of the help round:
// a qualifying helper, a helper too dry to qualify, and no responses.
func TestPeer_ChooseTransfer(t *testing.T) {
	build := func() *swarm.Peer {
		_, proto := fleet(t,
			taxienv.WithTaxi(cell(4, 0), 6),
			taxienv.WithTaxi(cell(0, 4), 7),
			taxienv.WithPassenger(cell(4, 0), cell(0, 4)),
		)
		peer := proto.Peers()[0]
		peer.Taxi().Assign(0)
		return peer
	}

	t.Run("HelperQualifies", func(t *testing.T) {
		peer := build()
		// The helper idles on the destination, so its route is empty and
		// its projected leftover is zero.
		peer.Listen(swarm.PathResponse{Taxi: 1, Recipient: 0, Passenger: 0, Fuel: 7})

		offer, err := peer.ChooseTransfer()
		if err != nil {
			t.Fatalf("ChooseTransfer error: %v", err)
		}
		want := &swarm.TransferOffer{Helper: 1, Taxi: 0, Passenger: 0, Point: cell(1, 2)}
		if !reflect.DeepEqual(offer, want) {
			t.Errorf("offer = %+v; want %+v", offer, want)
		}
		// Five moves to (1,2) plus the dropoff; the assignment moved on.
		if got := peer.Taxi().QueueLen(); got != 6 {
			t.Errorf("QueueLen = %d; want 6", got)
		}
		if got := peer.Taxi().Assignments(); len(got) != 0 {
			t.Errorf("assignments = %v; want none", got)
		}
	})

	t.Run("HelperTooDry", func(t *testing.T) {
		peer := build()
		// This helper would leave the passenger 5 cells out, worse than
		// the peer's own shortfall of 2, so the peer keeps the trip and
		// best-efforts toward the destination.
		peer.Listen(swarm.PathResponse{Taxi: 1, Recipient: 0, Passenger: 0, Fuel: 1})

		offer, err := peer.ChooseTransfer()
		if err != nil || offer != nil {
			t.Fatalf("ChooseTransfer = %+v,%v; want nil,nil", offer, err)
		}
		if got := peer.Taxi().QueueLen(); got != 9 {
			t.Errorf("QueueLen = %d; want 9", got)
		}
		if got := peer.Taxi().Assignments(); len(got) != 0 {
			t.Errorf("assignments = %v; want none", got)
		}
	})

	t.Run("EmptyInbox", func(t *testing.T) {
		peer := build()
		offer, err := peer.ChooseTransfer()
		if err != nil || offer != nil {
			t.Fatalf("ChooseTransfer = %+v,%v; want nil,nil", offer, err)
		}
		if got := peer.Taxi().QueueLen(); got != 0 {
			t.Errorf("QueueLen = %d; want 0", got)
		}
		if got := peer.Taxi().Assignments(); !reflect.DeepEqual(got, []int{0}) {
			t.Errorf("assignments = %v; want [0] kept", got)
		}
	})
}

//----------------------------------------------------------------------------//
// Protocol Tests
//----------------------------------------------------------------------------//

// TestProtocol_RelayDelivery plays the whole round on a scenario no taxi
// can finish alone: the loaded taxi requests help, hands the passenger over
// at (1,2) and the helper finishes on its last fuel unit.
func TestProtocol_RelayDelivery(t *testing.T) {
	sim, proto := fleet(t,
		taxienv.WithTaxi(cell(2, 0), 8),
		taxienv.WithTaxi(cell(0, 4), 7),
		taxienv.WithPassenger(cell(4, 0), cell(0, 4)),
	)

	offers, err := proto.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	want := []swarm.TransferOffer{{Helper: 1, Taxi: 0, Passenger: 0, Point: cell(1, 2)}}
	if !reflect.DeepEqual(offers, want) {
		t.Errorf("offers = %+v; want %+v", offers, want)
	}
	if !sim.PassengerDelivered(0) {
		t.Error("passenger not delivered")
	}
	if loc, fuel := sim.TaxiLocation(0), sim.TaxiFuel(0); loc != cell(1, 2) || fuel != 1 {
		t.Errorf("sender ended at %v with %d fuel; want (1,2) with 1", loc, fuel)
	}
	if loc, fuel := sim.TaxiLocation(1), sim.TaxiFuel(1); loc != cell(0, 4) || fuel != 1 {
		t.Errorf("helper ended at %v with %d fuel; want (0,4) with 1", loc, fuel)
	}
}

// TestProtocol_SoloDelivery leaves a fuel-rich fleet alone: no help is
// requested, no offers circulate and the idle taxi never moves.
func TestProtocol_SoloDelivery(t *testing.T) {
	sim, proto := fleet(t,
		taxienv.WithTaxi(cell(2, 0), 20),
		taxienv.WithTaxi(cell(4, 4), 5),
		taxienv.WithPassenger(cell(4, 0), cell(0, 4)),
	)

	offers, err := proto.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if len(offers) != 0 {
		t.Errorf("offers = %+v; want none", offers)
	}
	if !sim.PassengerDelivered(0) {
		t.Error("passenger not delivered")
	}
	if loc, fuel := sim.TaxiLocation(0), sim.TaxiFuel(0); loc != cell(0, 4) || fuel != 10 {
		t.Errorf("worker ended at %v with %d fuel; want (0,4) with 10", loc, fuel)
	}
	if loc, fuel := sim.TaxiLocation(1), sim.TaxiFuel(1); loc != cell(4, 4) || fuel != 5 {
		t.Errorf("idle taxi ended at %v with %d fuel; want (4,4) with 5", loc, fuel)
	}
}

// TestProtocol_MatchesCentralizedPlanning runs the message-passing round
// and the centralized minimal-detour planner on identical scenarios. The
// negotiated handover cell and the end state must agree exactly.
func TestProtocol_MatchesCentralizedPlanning(t *testing.T) {
	place := []taxienv.Option{
		taxienv.WithTaxi(cell(2, 0), 8),
		taxienv.WithTaxi(cell(0, 4), 7),
		taxienv.WithPassenger(cell(4, 0), cell(0, 4)),
	}

	decentralized, proto := fleet(t, place...)
	offers, err := proto.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(offers) != 1 {
		t.Fatalf("offers = %+v; want exactly one", offers)
	}

	centralized, err := taxienv.NewSim(classicDesc, place...)
	if err != nil {
		t.Fatalf("NewSim error: %v", err)
	}
	ctrl, err := dispatch.New(centralized, centralized.Grid())
	if err != nil {
		t.Fatalf("dispatch.New error: %v", err)
	}
	result, err := ctrl.Deliver(0, dispatch.StrategyMinimalDetour)
	if err != nil {
		t.Fatalf("Deliver error: %v", err)
	}

	// Both coordinators must pick the same handover cell; the senders stop
	// right on it.
	if senderLoc := centralized.TaxiLocation(0); offers[0].Point != senderLoc {
		t.Errorf("negotiated point %v != centralized handover %v", offers[0].Point, senderLoc)
	}
	if delivered := decentralized.PassengerDelivered(0); delivered != result.Delivered {
		t.Errorf("delivered: decentralized %v, centralized %v", delivered, result.Delivered)
	}
	for i := 0; i < decentralized.NumTaxis(); i++ {
		if a, b := decentralized.TaxiLocation(i), centralized.TaxiLocation(i); a != b {
			t.Errorf("taxi %d location: decentralized %v, centralized %v", i, a, b)
		}
		if a, b := decentralized.TaxiFuel(i), centralized.TaxiFuel(i); a != b {
			t.Errorf("taxi %d fuel: decentralized %d, centralized %d", i, a, b)
		}
	}
}
