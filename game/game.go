// Package game wires the simulation core to the window loop: it paces
// ticks, handles input, forwards events to telemetry, and renders the
// state once per completed tick.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/petri-sim/petri/config"
	"github.com/petri-sim/petri/sim"
	"github.com/petri-sim/petri/telemetry"
)

// Options configures a new Game.
type Options struct {
	Seed           int64
	OutputDir      string
	StepsPerUpdate int
}

// Game holds the complete game state.
type Game struct {
	world     *sim.World
	rng       *rand.Rand
	collector *telemetry.Collector
	output    *telemetry.OutputManager

	tick           int
	paused         bool
	stepsPerUpdate int
}

// NewGame creates a seeded game with its initial population.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	g := &Game{
		rng:            rand.New(rand.NewSource(opts.Seed)),
		collector:      telemetry.NewCollector(cfg.Telemetry.WindowTicks),
		stepsPerUpdate: opts.StepsPerUpdate,
	}
	if g.stepsPerUpdate < 1 {
		g.stepsPerUpdate = 1
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = output
	if err := g.output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	g.world = sim.NewWorld(g.rng)
	g.world.Seed()

	slog.Info("simulation seeded",
		"life_forms", len(g.world.LifeForms),
		"food", len(g.world.Food),
	)

	return g, nil
}

// Update handles input and advances the simulation in graphical mode.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless advances the simulation without input handling.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// step runs a single tick and flushes telemetry at window boundaries.
func (g *Game) step() {
	ev := g.world.Step()
	g.collector.Record(ev)
	g.tick++

	if g.collector.ShouldFlush(g.tick) {
		stats := g.collector.Flush(g.tick, g.world)
		stats.Log()
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("writing telemetry", "error", err)
		}
	}
}

// Tick returns the number of completed ticks.
func (g *Game) Tick() int {
	return g.tick
}

// Close releases output resources.
func (g *Game) Close() error {
	return g.output.Close()
}
