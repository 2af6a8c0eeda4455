// Package swarm defines the message vocabulary and core types
// for the swarm subpackage of github.com/katalvlaran/taxirelay.
package swarm

import (
	"errors"

	"github.com/katalvlaran/taxirelay/gridmap"
)

// Sentinel errors for swarm operations.
var (
	// ErrNilTaxi indicates a peer was built without a taxi.
	ErrNilTaxi = errors.New("swarm: nil taxi")
	// ErrNilEnv indicates a nil environment handle.
	ErrNilEnv = errors.New("swarm: nil environment")
	// ErrNilGrid indicates a nil routing grid.
	ErrNilGrid = errors.New("swarm: nil grid")
	// ErrEmptyFleet indicates an environment without taxis.
	ErrEmptyFleet = errors.New("swarm: no taxis to coordinate")
)

// Message is one broadcast unit of the coordination protocol. The concrete
// types below are the whole vocabulary; a peer ignores inbox entries it does
// not expect in the current phase.
type Message interface{ message() }

// AllocationBid advertises how cheaply a taxi could append a passenger to
// its pickup tour.
type AllocationBid struct {
	Taxi      int
	Passenger int
	Cost      int
}

// HelpRequest announces that the sender cannot finish its passenger's trip
// on its remaining fuel.
type HelpRequest struct {
	Taxi      int
	Passenger int
}

// PathResponse answers a help request: the responder shares its shortest
// route to the passenger's destination and its fuel, addressed to the
// requester alone.
type PathResponse struct {
	Taxi      int
	Recipient int
	Passenger int
	Fuel      int
	Route     []gridmap.Cell
}

// TransferOffer tells the chosen helper where the handover will happen.
type TransferOffer struct {
	Helper    int
	Taxi      int
	Passenger int
	Point     gridmap.Cell
}

func (AllocationBid) message() {}
func (HelpRequest) message() {}
func (PathResponse) message() {}
func (TransferOffer) message() {}
