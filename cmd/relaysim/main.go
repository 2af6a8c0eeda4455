// Command relaysim plays taxi relay episodes and fuel-sweep experiments.
//
// Modes:
//
//	demo        one centralized two-taxi relay, frames rendered to stdout
//	swarm       one decentralized three-taxi episode driven by message passing
//	experiment  the full fuel sweep, report written to stdout as JSON
//
// With -listen the binary also serves a live monitor: /ws streams every
// frame to websocket subscribers and /healthz answers ok. While serving,
// demo and swarm modes keep playing fresh episodes until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/taxirelay/dispatch"
	"github.com/katalvlaran/taxirelay/experiment"
	"github.com/katalvlaran/taxirelay/swarm"
	"github.com/katalvlaran/taxirelay/taxienv"
)

func main() {
	var (
		mode     = flag.String("mode", "demo", "demo, swarm or experiment")
		config   = flag.String("config", "", "YAML experiment config; defaults replay the classic sweep")
		mapName  = flag.String("map", experiment.DefaultMap, "catalogue map for demo and swarm modes")
		strategy = flag.String("strategy", "optimal", "transfer strategy: minimal-detour, furthest-reach or optimal")
		fuel     = flag.Int("fuel", 8, "per-taxi fuel for demo and swarm modes")
		seed     = flag.Int64("seed", 1, "random placement seed")
		listen   = flag.String("listen", "", "serve the live monitor on this address, e.g. :8080")
		delay    = flag.Duration("delay", 0, "pause between frames, e.g. 250ms")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var mon *monitor
	if *listen != "" {
		mon = newMonitor()
		go func() {
			if err := mon.serve(ctx, *listen); err != nil {
				log.Fatalf("monitor: %v", err)
			}
		}()
	}

	var err error
	switch *mode {
	case "demo", "swarm":
		err = runEpisodes(ctx, *mode, episodeSettings{
			mapName:  *mapName,
			strategy: *strategy,
			fuel:     *fuel,
			seed:     *seed,
			delay:    *delay,
		}, mon)
	case "experiment":
		err = runExperiment(ctx, *config, *mapName, *seed)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

// episodeSettings collects the flags the demo and swarm modes share.
type episodeSettings struct {
	mapName  string
	strategy string
	fuel     int
	seed     int64
	delay    time.Duration
}

// stepObserver wraps the simulation so every joint step publishes a frame.
type stepObserver struct {
	*taxienv.Sim
	after func()
}

func (o *stepObserver) Step(actions map[int]taxienv.Action) error {
	if err := o.Sim.Step(actions); err != nil {
		return err
	}
	o.after()

	return nil
}

// runEpisodes plays one episode, or keeps playing fresh ones while a
// monitor is attached.
func runEpisodes(ctx context.Context, mode string, set episodeSettings, mon *monitor) error {
	desc, err := experiment.MapByName(set.mapName)
	if err != nil {
		return err
	}
	strategy, err := parseStrategy(set.strategy)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(set.seed))

	play := func(id int) error {
		if mode == "swarm" {
			return swarmEpisode(ctx, desc, set, mon, rng, id)
		}
		return demoEpisode(ctx, desc, set, strategy, mon, rng, id)
	}

	if mon == nil {
		return play(1)
	}
	for id := 1; ; id++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := play(id); err != nil {
			return err
		}
	}
}

// demoEpisode runs one centralized two-taxi relay delivery.
func demoEpisode(ctx context.Context, desc []string, set episodeSettings, strategy dispatch.Strategy, mon *monitor, rng *rand.Rand, id int) error {
	sim, err := taxienv.NewSim(desc,
		taxienv.WithRand(rng),
		taxienv.WithRandomTaxis(set.fuel, set.fuel),
		taxienv.WithRandomPassengers(1))
	if err != nil {
		return err
	}
	env := observe(ctx, sim, set, mon, id)

	ctrl, err := dispatch.New(env, sim.Grid(), dispatch.WithContext(ctx))
	if err != nil {
		return err
	}

	env.after()
	capable, shortfall, err := ctrl.SoloFeasibility(0)
	if err != nil {
		return err
	}
	if len(capable) > 0 {
		log.Printf("episode %d: taxis %v could finish alone", id, capable)
	} else {
		log.Printf("episode %d: no lone taxi suffices, best shortfall %d", id, shortfall)
	}

	result, err := ctrl.Deliver(0, strategy)
	if err != nil {
		return err
	}
	log.Printf("episode %d: strategy=%s delivered=%t residual=%d steps=%d",
		id, strategy, result.Delivered, result.Residual, sim.Steps())

	return nil
}

// swarmEpisode runs one decentralized episode: three peers, two passengers,
// every decision made from messages alone.
func swarmEpisode(ctx context.Context, desc []string, set episodeSettings, mon *monitor, rng *rand.Rand, id int) error {
	sim, err := taxienv.NewSim(desc,
		taxienv.WithRand(rng),
		taxienv.WithRandomTaxis(set.fuel, set.fuel, set.fuel),
		taxienv.WithRandomPassengers(2))
	if err != nil {
		return err
	}
	env := observe(ctx, sim, set, mon, id)

	proto, err := swarm.NewProtocol(env, sim.Grid())
	if err != nil {
		return err
	}

	env.after()
	offers, err := proto.Run()
	if err != nil {
		return err
	}
	for _, offer := range offers {
		log.Printf("episode %d: taxi %d hands passenger %d to taxi %d at %v",
			id, offer.Taxi, offer.Passenger, offer.Helper, offer.Point)
	}
	for p := 0; p < sim.NumPassengers(); p++ {
		log.Printf("episode %d: passenger %d delivered=%t", id, p, sim.PassengerDelivered(p))
	}

	return nil
}

// runExperiment plays the fuel sweep and writes the JSON report to stdout.
func runExperiment(ctx context.Context, path, mapName string, seed int64) error {
	cfg := experiment.Config{
		Repetitions: 100,
		Taxis:       2,
		FuelMin:     3,
		FuelMax:     16,
		Map:         mapName,
		Seed:        seed,
	}
	if path != "" {
		var err error
		if cfg, err = experiment.LoadConfig(path); err != nil {
			return err
		}
	}

	report, err := experiment.Run(ctx, cfg)
	if err != nil {
		return err
	}

	return report.WriteJSON(os.Stdout)
}

// observe wires the simulation into stdout frames and the monitor.
func observe(ctx context.Context, sim *taxienv.Sim, set episodeSettings, mon *monitor, id int) *stepObserver {
	env := &stepObserver{Sim: sim}
	env.after = func() {
		f := frame{Episode: id, Snapshot: sim.Snapshot(), Text: sim.Render()}
		fmt.Println(f.Text)
		if mon != nil {
			mon.publish(f)
		}
		if set.delay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(set.delay):
			}
		}
	}

	return env
}

func parseStrategy(name string) (dispatch.Strategy, error) {
	switch name {
	case dispatch.StrategyMinimalDetour.String():
		return dispatch.StrategyMinimalDetour, nil
	case dispatch.StrategyFurthestReach.String():
		return dispatch.StrategyFurthestReach, nil
	case dispatch.StrategyOptimal.String():
		return dispatch.StrategyOptimal, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", name)
	}
}
