package experiment

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/taxirelay/dispatch"
	"github.com/katalvlaran/taxirelay/gridmap"
	"github.com/katalvlaran/taxirelay/taxienv"
)

// scenario is one randomized episode placement: taxi cells, a passenger and
// its destination. The same scenario seeds one fresh simulation per tested
// strategy, so every strategy faces the identical starting state.
type scenario struct {
	taxis     []gridmap.Cell
	passenger gridmap.Cell
	dest      gridmap.Cell
}

// randomScenario draws taxi and passenger placements uniformly over the
// grid. The destination is redrawn until it differs from the start.
func randomScenario(grid *gridmap.Grid, rng *rand.Rand, taxis int) scenario {
	draw := func() gridmap.Cell {
		return gridmap.Cell{Row: rng.Intn(grid.Rows()), Col: rng.Intn(grid.Cols())}
	}

	sc := scenario{taxis: make([]gridmap.Cell, taxis)}
	for i := range sc.taxis {
		sc.taxis[i] = draw()
	}
	sc.passenger = draw()
	sc.dest = draw()
	for sc.dest == sc.passenger {
		sc.dest = draw()
	}

	return sc
}

// options turns the scenario into simulation placements with the given
// per-taxi fuel.
func (sc scenario) options(fuel int) []taxienv.Option {
	opts := make([]taxienv.Option, 0, len(sc.taxis)+1)
	for _, at := range sc.taxis {
		opts = append(opts, taxienv.WithTaxi(at, fuel))
	}

	return append(opts, taxienv.WithPassenger(sc.passenger, sc.dest))
}

// tally accumulates one strategy's results over a fuel level.
type tally struct {
	successes int
	residuals int
}

// stats converts the tally into rates over the repetition count.
func (t tally) stats(repetitions int) StrategyStats {
	return StrategyStats{
		Successes:    t.successes,
		SuccessRate:  float64(t.successes) / float64(repetitions) * 100,
		MeanResidual: float64(t.residuals) / float64(repetitions),
	}
}

// Run plays the collaboration experiment described by cfg and returns the
// per-fuel-level report.
//
// Each repetition draws one random scenario. When some taxi can finish the
// errand alone, every strategy counts the episode as a success and no relay
// is played. Otherwise the three transfer strategies each run on a fresh
// simulation of the identical scenario, and the solo row records the best
// distance a lone taxi could have achieved. Mean residuals average over all
// repetitions of the level, counting successes as zero.
//
// The context is checked between episodes and also bounds each exhaustive
// transfer-point scan.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	desc, err := MapByName(cfg.Map)
	if err != nil {
		return nil, err
	}
	grid, err := gridmap.Parse(desc)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	report := &Report{
		Map:         cfg.Map,
		Repetitions: cfg.Repetitions,
		Taxis:       cfg.Taxis,
		Seed:        cfg.Seed,
		Levels:      make([]FuelLevel, 0, cfg.FuelMax-cfg.FuelMin+1),
	}
	for fuel := cfg.FuelMin; fuel <= cfg.FuelMax; fuel++ {
		level, err := runLevel(ctx, cfg, desc, grid, rng, fuel)
		if err != nil {
			return nil, err
		}
		report.Levels = append(report.Levels, level)
	}

	return report, nil
}

// runLevel plays all repetitions of one fuel level.
func runLevel(ctx context.Context, cfg Config, desc []string, grid *gridmap.Grid, rng *rand.Rand, fuel int) (FuelLevel, error) {
	var solo, detour, reach, optimal tally
	for rep := 0; rep < cfg.Repetitions; rep++ {
		if err := ctx.Err(); err != nil {
			return FuelLevel{}, err
		}

		sc := randomScenario(grid, rng, cfg.Taxis)
		capable, shortfall, err := soloCheck(ctx, desc, sc, fuel)
		if err != nil {
			return FuelLevel{}, err
		}
		if len(capable) > 0 {
			// A lone taxi finishes the trip; the relay strategies would
			// not even be consulted.
			solo.successes++
			detour.successes++
			reach.successes++
			optimal.successes++
			continue
		}

		solo.residuals += shortfall
		for _, run := range []struct {
			strategy dispatch.Strategy
			into     *tally
		}{
			{dispatch.StrategyMinimalDetour, &detour},
			{dispatch.StrategyFurthestReach, &reach},
			{dispatch.StrategyOptimal, &optimal},
		} {
			result, err := playEpisode(ctx, desc, sc, fuel, run.strategy)
			if err != nil {
				return FuelLevel{}, err
			}
			if result.Delivered {
				run.into.successes++
			}
			run.into.residuals += result.Residual
		}
	}

	return FuelLevel{
		Fuel:          fuel,
		Solo:          solo.stats(cfg.Repetitions),
		MinimalDetour: detour.stats(cfg.Repetitions),
		FurthestReach: reach.stats(cfg.Repetitions),
		Optimal:       optimal.stats(cfg.Repetitions),
	}, nil
}

// soloCheck reports the scenario's solo feasibility on a throwaway sim.
func soloCheck(ctx context.Context, desc []string, sc scenario, fuel int) ([]int, int, error) {
	ctrl, err := buildController(ctx, desc, sc, fuel)
	if err != nil {
		return nil, 0, err
	}

	return ctrl.SoloFeasibility(0)
}

// playEpisode runs one relay delivery on a fresh sim of the scenario.
func playEpisode(ctx context.Context, desc []string, sc scenario, fuel int, strategy dispatch.Strategy) (dispatch.Delivery, error) {
	ctrl, err := buildController(ctx, desc, sc, fuel)
	if err != nil {
		return dispatch.Delivery{}, err
	}

	return ctrl.Deliver(0, strategy)
}

// buildController assembles a fresh simulation and controller pair.
func buildController(ctx context.Context, desc []string, sc scenario, fuel int) (*dispatch.Controller, error) {
	sim, err := taxienv.NewSim(desc, sc.options(fuel)...)
	if err != nil {
		return nil, err
	}

	return dispatch.New(sim, sim.Grid(), dispatch.WithContext(ctx))
}
