package experiment

import (
	"encoding/json"
	"io"
)

// StrategyStats summarizes one strategy's outcomes over a fuel level.
type StrategyStats struct {
	// Successes counts delivered episodes.
	Successes int `json:"successes"`
	// SuccessRate is Successes over the repetition count, in percent.
	SuccessRate float64 `json:"success_rate"`
	// MeanResidual averages the passenger's remaining distance to the
	// destination over all repetitions, with successes counting as zero.
	MeanResidual float64 `json:"mean_residual"`
}

// FuelLevel holds the four strategy rows for one fuel value. Solo records
// how a single taxi would fare without any handover.
type FuelLevel struct {
	Fuel          int           `json:"fuel"`
	Solo          StrategyStats `json:"solo"`
	MinimalDetour StrategyStats `json:"minimal_detour"`
	FurthestReach StrategyStats `json:"furthest_reach"`
	Optimal       StrategyStats `json:"optimal"`
}

// Report is the full outcome of one experiment run.
type Report struct {
	Map         string      `json:"map"`
	Repetitions int         `json:"repetitions"`
	Taxis       int         `json:"taxis"`
	Seed        int64       `json:"seed"`
	Levels      []FuelLevel `json:"levels"`
}

// WriteJSON renders the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}
