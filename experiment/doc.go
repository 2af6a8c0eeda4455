// Package experiment sweeps fuel levels over randomized relay scenarios and
// reports how often two cooperating taxis beat a lone one.
//
// What:
//   - Config / LoadConfig: YAML-backed run parameters with validation.
//   - MapNames / MapByName: the built-in grid catalogue.
//   - Run: for every fuel level in the configured range, play the configured
//     number of random episodes and tally successes and mean residual
//     distance for a solo taxi and for each transfer strategy.
//   - Report / WriteJSON: the per-level results, one row per strategy.
//
// Determinism:
//   - All placements come from a single seeded source, so two runs with the
//     same Config produce byte-identical reports. Episodes where a lone taxi
//     already suffices are counted as successes for every strategy without
//     playing the relay.
//
// Errors:
//   - ErrBadConfig - invalid repetition, fleet or fuel-range settings.
//   - ErrUnknownMap - a map name outside the catalogue.
//   - Run stops early and returns the context's error once it is canceled.
package experiment
