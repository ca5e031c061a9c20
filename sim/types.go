// Package sim implements the artificial life simulation core: a bounded
// population of life forms that move, seek food, feed, reproduce with
// mutation, and die, advanced one tick at a time by a strictly sequential
// three-phase pipeline.
package sim

// RGB is a presentation color carried by each life form and inherited
// verbatim by its offspring.
type RGB struct {
	R, G, B uint8
}

// LifeForm is a single autonomous agent.
type LifeForm struct {
	X, Y        float64 // Position in simulation units
	VX, VY      float64 // Velocity in simulation units per tick
	Energy      float64 // Clamped to [0, MaxEnergy] at the end of each behavior update
	SpeedFactor float64 // Heritable trait scaling maximum speed
	ID          int     // Informational only, never used for lookup
	Color       RGB
}

// Food is a consumable energy source.
type Food struct {
	X, Y    float64
	Present bool
}

// Events counts what happened during one tick. The telemetry collector
// aggregates these over a stats window.
type Events struct {
	Births        int
	Deaths        int
	Feedings      int
	Respawns      int
	DroppedSpawns int // Spawn requests silently dropped at capacity
}

// add accumulates ev into e.
func (e *Events) add(ev Events) {
	e.Births += ev.Births
	e.Deaths += ev.Deaths
	e.Feedings += ev.Feedings
	e.Respawns += ev.Respawns
	e.DroppedSpawns += ev.DroppedSpawns
}

func distanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
