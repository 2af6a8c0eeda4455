package taxi

import (
	"math"

	"github.com/katalvlaran/taxirelay/gridmap"
)

// BestTransferPoint picks the handover cell this taxi should drive to so a
// receiving taxi can take over a passenger.
//
// Candidates are the receiver's current cell followed by its intended route
// cells, in route order. For each candidate the taxi computes its own route
// cost and the shortfall beyond its fuel budget (fuel minus one unit kept in
// reserve for the dropoff). A candidate the taxi cannot reach is replaced by
// the furthest cell on the way it can reach. The candidate with the smallest
// shortfall wins; on ties the earliest candidate is kept, so the receiver's
// own position beats route cells and earlier route cells beat later ones.
//
// Returns the chosen cell and its shortfall (zero when reachable outright).
// Route errors from the grid propagate unchanged.
func (t *Taxi) BestTransferPoint(receiverLoc gridmap.Cell, receiverRoute []gridmap.Cell) (gridmap.Cell, int, error) {
	candidates := make([]gridmap.Cell, 0, len(receiverRoute)+1)
	candidates = append(candidates, receiverLoc)
	candidates = append(candidates, receiverRoute...)

	origin := t.Location()
	budget := t.Fuel() - 1
	best := math.MaxInt
	var bestPoint gridmap.Cell
	for _, point := range candidates {
		cells, moves, err := t.grid.Path(origin, point)
		if err != nil {
			return gridmap.Cell{}, 0, err
		}

		shortfall := len(moves) - budget
		if shortfall < 0 {
			shortfall = 0
		}
		reach := point
		if shortfall > 0 {
			// Out of range: settle for the furthest cell along the route
			// the budget still covers.
			walk := append([]gridmap.Cell{origin}, cells...)
			idx := budget
			if idx > len(moves) {
				idx = len(moves)
			}
			if idx < 0 {
				idx = 0
			}
			reach = walk[idx]
		}

		if shortfall < best {
			best = shortfall
			bestPoint = reach
		}
	}

	return bestPoint, best, nil
}
