// Package taxi wraps a single vehicle of a taxienv environment with route
// planning, an action queue and a FIFO passenger assignment list.
//
// What:
//   - Queue builders: QueuePath, QueuePickup / QueuePickupPassenger /
//     QueueChainedPickups, QueueDropoff / QueueDropoffAt translate route
//     planning into environment actions. Pickups keep the assignment; the
//     matching dropoff retires it.
//   - NextAction / QueueLen: drain interface used by ExecuteAll, which steps
//     any number of taxis in lockstep until every queue is empty.
//   - Cost probes: PathCost, PathCostFrom, PickupCost feed the allocation
//     and feasibility decisions of the coordinators.
//   - BestTransferPoint: the shared fuel-shortfall scoring that both the
//     centralized and the message-passing coordinators use to agree on a
//     handover cell.
//
// Why:
//   - Both coordination styles (dispatch and swarm) need the same vehicle
//     primitives. Keeping them here, on top of taxienv.Env, means a planning
//     decision made by either coordinator compiles down to the exact same
//     queued actions.
//
// Caveat:
//   - Routes are planned from the live location at queueing time. Queue one
//     phase, drain it with ExecuteAll, then queue the next; queueing two
//     driving phases back to back plans the second from a stale cell.
//
// Errors:
//   - ErrNilEnv, ErrNilGrid, ErrIndexRange - rejected by New.
//   - Queue builders with nothing to do (no assignments) are silent no-ops;
//     route and catalogue failures propagate from gridmap and taxienv.
package taxi
