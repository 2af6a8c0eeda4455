// Package dispatch is the centralized coordinator: one controller that sees
// the whole environment, allocates passengers to taxis and plans relay
// deliveries through transfer points.
//
// What:
//   - FindClosestCapableTaxi / AllocatePassengers / PickupAssigned: nearest
//     capable selection and cheapest-pickup allocation, FIFO per taxi.
//   - SoloFeasibility: which taxis could finish a delivery alone, and the
//     best distance-from-destination any of them could achieve.
//   - Transfer-point strategies for a fuel-starved sender:
//     TransferPointMinimalDetour scores candidates on the receiver's route,
//     TransferPointFurthestReach rides the sender's own route to the last
//     affordable cell, OptimalTransferPoint scans the whole grid for the
//     cell minimizing the passenger's final distance from the destination.
//   - TransferPassenger / Deliver: execute the handover choreography and the
//     full two-taxi relay under a chosen Strategy.
//
// Determinism:
//   - Every argmin keeps the first minimum in a fixed order (fleet order,
//     route order or row-major scan), so repeated runs on the same state
//     make identical decisions.
//
// Fuel convention:
//   - All feasibility checks reserve one fuel unit beyond the driving cost;
//     a taxi that arrives on its last unit cannot complete its errand.
//
// Errors:
//   - ErrNilEnv, ErrNilGrid, ErrEmptyFleet - rejected by New.
//   - ErrFleetSize - Deliver on a fleet that is not exactly two taxis.
//   - ErrNoTransferPoint - the exhaustive scan found no reachable cell.
//   - "No capable taxi" is not an error: selection returns NoTaxi and
//     Deliver reports the undelivered distance instead.
//
// See swarm for the decentralized coordinator that reproduces these
// decisions by message passing.
package dispatch
