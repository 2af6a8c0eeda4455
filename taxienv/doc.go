// Package taxienv specifies the simulation contract driven by the taxirelay
// coordinators and provides Sim, a deterministic reference implementation.
//
// What:
//   - Action: the per-simulation action catalogue. Movement ids are fixed
//     (south=0, north=1, east=2, west=3, pickup=4); dropoff ids depend on
//     the passenger count and are resolved by name via Env.ActionIndex.
//   - Reader / Stepper / Env: the read, step and full contracts. Planning
//     code depends on Reader, execution on Stepper, wiring on Env.
//   - Sim: in-memory multi-taxi simulation over a gridmap.Grid. One unit of
//     fuel per move, walls and empty tanks absorb moves silently, passengers
//     may be dropped on any cell and picked up again by another taxi.
//
// Why:
//   - The coordinators in dispatch and swarm never touch simulation state
//     directly. They read through Reader and act through Step, so the same
//     planning code runs against Sim in tests and against any other Env in
//     production.
//
// Determinism:
//   - Step applies actions in ascending taxi order regardless of map
//     iteration order, and random placements default to a fixed seed.
//
// Errors:
//   - ErrUnknownTaxi, ErrUnknownAction - step or lookup outside the
//     catalogue; everything else that fails in traffic (walls, dry tanks,
//     misplaced pickups) is a silent no-op, mirroring how the simulation
//     penalizes rather than aborts.
//   - ErrBadPlacement, ErrOptionViolation - rejected at construction.
//
// See gridmap for the routing layer and taxi for the per-vehicle wrapper.
package taxienv
