// Package gridmap parses ASCII taxi maps into an undirected grid graph and
// answers shortest-route queries over it.
//
// What:
//   - Parse: turn a bordered ASCII map description into an immutable Grid
//     whose nodes are drivable cells and whose edges are legal unit moves.
//   - Path: breadth-first shortest route between two cells, returned both as
//     the cells visited after the origin and as the Move per hop.
//   - PathCost: length of that route in unit moves.
//
// Why:
//   - Every planning decision in taxirelay (pickup allocation, transfer-point
//     search, fuel feasibility) reduces to unweighted shortest paths on the
//     same small grid, so one shared, deterministic implementation keeps all
//     coordinators in agreement.
//
// Determinism:
//   - Neighbor lists are built by a fixed row-major scan and BFS visits them
//     in insertion order, so equal-length routes always tie-break the same
//     way on the same map.
//
// Complexity:
//   - Parse: O(rows*cols).
//   - Path / PathCost: O(V+E) time, O(V) memory, with V = rows*cols.
//
// Errors:
//   - ErrMapTooSmall, ErrMapRagged, ErrMapWidth - malformed description.
//   - ErrCellOutOfBounds - endpoint outside the grid.
//   - ErrNoRoute - walls separate the endpoints.
//
// See taxienv for the simulation that moves taxis along these routes.
package gridmap
