// Package swarm is the decentralized coordinator: taxis wrapped as peers
// that plan deliveries by message passing, with no component ever reading
// another taxi's state.
//
// What:
//   - A sealed Message vocabulary: AllocationBid, HelpRequest, PathResponse
//     and TransferOffer.
//   - Peer: one taxi plus an inbox. Bid / DecideAssignment settle passenger
//     allocation, HelpRequests / PathResponses / ChooseTransfer negotiate a
//     handover for fuel-short peers, IntermediatePickups and FinishDelivery
//     play the agreed legs.
//   - Protocol: the phase driver. It moves messages between inboxes, steps
//     the environment and nothing else.
//
// Determinism:
//   - Phases visit peers in index order and every peer keeps the first
//     minimum while scanning its inbox, so a round's outcome is a pure
//     function of the starting state. On a shared scenario the negotiated
//     handover cell matches the centralized minimal-detour planner's,
//     decided here from messages alone.
//
// Errors:
//   - ErrNilTaxi, ErrNilEnv, ErrNilGrid, ErrEmptyFleet - constructor
//     validation.
//   - Route failures surface from the gridmap layer unchanged.
//   - A peer that gets no qualifying helper is not an error: it drives
//     toward the destination and grounds the passenger where fuel ends.
package swarm
