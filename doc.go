// Package taxirelay is an in-memory playground for cooperative taxi
// routing: fuel-limited taxis on walled grid maps that hand passengers
// over to each other when no single vehicle can finish the trip.
//
// 🚕 What is taxirelay?
//
//	A deterministic, batteries-included simulation stack:
//		• Grid maps: textual layouts parsed into BFS-routable graphs
//		• Simulation: a joint-step environment with fuel and passenger state
//		• Taxi wrappers: action queues, route planning, pickup tours
//		• Centralized dispatch: allocation, solo feasibility, three
//		  transfer-point strategies and full relay deliveries
//		• Swarm: the same decisions negotiated peer-to-peer by messages
//		• Experiments: seeded fuel sweeps comparing every strategy
//
// ✨ Why choose taxirelay?
//
//   - Reproducible – every tie-break keeps the first minimum in a fixed
//     order, so a seed fully determines a run
//   - Inspectable – snapshots, rendered frames and a JSON report format
//   - Pure Go libraries – no goroutines inside the coordination layer
//   - Two coordination styles over one engine, easy to diff
//
// The subpackages, bottom to top:
//
//	gridmap/    — map parsing, cells, moves, shortest routes
//	taxienv/    — the joint-step simulation and its option surface
//	taxi/       — per-vehicle wrapper: queues, costs, transfer points
//	dispatch/   — centralized controller and relay strategies
//	swarm/      — decentralized peers, messages and the phase protocol
//	experiment/ — configs, map catalogue, fuel-sweep reports
//	cmd/relaysim — demo episodes, experiments and a websocket monitor
//
// Quick ASCII example:
//
//	+---------+
//	|R: | : :G|
//	| : | : : |
//	| : : : : |
//	| | : | : |
//	|Y| : |B: |
//	+---------+
//
//	the classic 5x5 layout: '|' walls block east-west moves, ':' keeps
//	them open, and every cell borders its row neighbors.
//
//	go get github.com/katalvlaran/taxirelay
package taxirelay
