package swarm_test

import (
	"fmt"

	"github.com/katalvlaran/taxirelay/gridmap"
	"github.com/katalvlaran/taxirelay/swarm"
	"github.com/katalvlaran/taxirelay/taxienv"
)

////////////////////////////////////////////////////////////////////////////////
// Example: decentralized relay round
////////////////////////////////////////////////////////////////////////////////

// ExampleProtocol_Run plays one message-passing round. Scenario:
//
//   - The taxi at (2,0) wins the passenger with the cheaper bid, but after
//     the pickup its 6 remaining units cannot cover the 8-move trip, so it
//     broadcasts a help request.
//   - The taxi idling at the destination answers with its empty route; the
//     requester offers it the handover at the furthest cell it can still
//     afford, and both drive there.
//   - The helper boards the passenger and finishes the trip.
func ExampleProtocol_Run() {
	desc := []string{
		"+---------+",
		"|R: | : :G|",
		"| : | : : |",
		"| : : : : |",
		"| | : | : |",
		"|Y| : |B: |",
		"+---------+",
	}
	sim, err := taxienv.NewSim(desc,
		taxienv.WithTaxi(gridmap.Cell{Row: 2, Col: 0}, 8),
		taxienv.WithTaxi(gridmap.Cell{Row: 0, Col: 4}, 7),
		taxienv.WithPassenger(gridmap.Cell{Row: 4, Col: 0}, gridmap.Cell{Row: 0, Col: 4}),
	)
	if err != nil {
		fmt.Println("setup:", err)
		return
	}
	proto, err := swarm.NewProtocol(sim, sim.Grid())
	if err != nil {
		fmt.Println("protocol:", err)
		return
	}

	offers, err := proto.Run()
	if err != nil {
		fmt.Println("run:", err)
		return
	}
	for _, offer := range offers {
		fmt.Printf("taxi %d hands over to taxi %d at %v\n", offer.Taxi, offer.Helper, offer.Point)
	}
	fmt.Println("delivered:", sim.PassengerDelivered(0))

	// Output:
	// taxi 0 hands over to taxi 1 at (1,2)
	// delivered: true
}
