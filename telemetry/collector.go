// Package telemetry aggregates simulation events into windowed statistics
// and writes them as structured logs and CSV files.
package telemetry

import "github.com/petri-sim/petri/sim"

// Collector accumulates per-tick events within stats windows and produces
// WindowStats snapshots.
type Collector struct {
	windowTicks     int
	windowStartTick int

	births        int
	deaths        int
	feedings      int
	respawns      int
	droppedSpawns int
}

// NewCollector creates a stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// Record accumulates one tick's events into the current window.
func (c *Collector) Record(ev sim.Events) {
	c.births += ev.Births
	c.deaths += ev.Deaths
	c.feedings += ev.Feedings
	c.respawns += ev.Respawns
	c.droppedSpawns += ev.DroppedSpawns
}

// ShouldFlush returns true if the current window is complete.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats from the accumulated events and the world
// sampled at window end, then resets counters for the next window.
func (c *Collector) Flush(currentTick int, w *sim.World) WindowStats {
	energies := make([]float64, 0, len(w.LifeForms))
	speedFactors := make([]float64, 0, len(w.LifeForms))
	for i := range w.LifeForms {
		energies = append(energies, w.LifeForms[i].Energy)
		speedFactors = append(speedFactors, w.LifeForms[i].SpeedFactor)
	}

	energy := Summarize(energies)
	speed := Summarize(speedFactors)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Population: len(w.LifeForms),
		FoodCount:  len(w.Food),

		Births:        c.births,
		Deaths:        c.deaths,
		Feedings:      c.feedings,
		Respawns:      c.respawns,
		DroppedSpawns: c.droppedSpawns,

		EnergyMean: energy.Mean,
		EnergyStd:  energy.Std,
		EnergyP10:  energy.P10,
		EnergyP50:  energy.P50,
		EnergyP90:  energy.P90,

		SpeedFactorMean: speed.Mean,
		SpeedFactorStd:  speed.Std,
	}

	c.windowStartTick = currentTick
	c.births = 0
	c.deaths = 0
	c.feedings = 0
	c.respawns = 0
	c.droppedSpawns = 0

	return stats
}
