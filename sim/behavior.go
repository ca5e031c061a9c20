package sim

import (
	"math"

	"github.com/petri-sim/petri/config"
)

// updateLifeForms runs the per-agent behavior phase over the whole
// population: energy drain, Euler position integration, wall reflection,
// food seeking, and the final energy clamp. The food collection is read
// but never mutated here.
func (w *World) updateLifeForms() {
	for i := range w.LifeForms {
		w.updateLifeForm(&w.LifeForms[i])
	}
}

func (w *World) updateLifeForm(lf *LifeForm) {
	cfg := config.Cfg()

	// Metabolic cost of existing
	lf.Energy -= cfg.Entity.EnergyLossPerStep

	// Integrate position
	lf.X += lf.VX
	lf.Y += lf.VY

	// Reflect off the world edges: clamp to the edge and flip the
	// velocity component. A direction flip, not a physical bounce.
	r := cfg.Entity.Radius
	if lf.X-r < 0 {
		lf.X = r
		lf.VX *= -1
	} else if lf.X+r > cfg.Derived.WorldW {
		lf.X = cfg.Derived.WorldW - r
		lf.VX *= -1
	}
	if lf.Y-r < 0 {
		lf.Y = r
		lf.VY *= -1
	} else if lf.Y+r > cfg.Derived.WorldH {
		lf.Y = cfg.Derived.WorldH - r
		lf.VY *= -1
	}

	// Seek the nearest present food. Linear scan; ties go to the first
	// item encountered in collection order.
	nearest := -1
	nearestDistSq := 0.0
	for i := range w.Food {
		if !w.Food[i].Present {
			continue
		}
		dSq := distanceSq(lf.X, lf.Y, w.Food[i].X, w.Food[i].Y)
		if nearest == -1 || dSq < nearestDistSq {
			nearest = i
			nearestDistSq = dSq
		}
	}

	speed := cfg.Entity.MaxSpeed * lf.SpeedFactor
	if nearest >= 0 {
		// Overwrite velocity to point straight at the food. This is a
		// hard retarget every tick, not a steering force.
		angle := math.Atan2(w.Food[nearest].Y-lf.Y, w.Food[nearest].X-lf.X)
		lf.VX = math.Cos(angle) * speed
		lf.VY = math.Sin(angle) * speed
	} else if w.rng.Float64() < cfg.Entity.WanderChance {
		// Nothing to eat: occasionally pick a new random heading,
		// otherwise keep drifting on the current one.
		lf.VX = (w.rng.Float64() - 0.5) * speed
		lf.VY = (w.rng.Float64() - 0.5) * speed
	}

	lf.Energy = clamp(lf.Energy, 0, cfg.Entity.MaxEnergy)
}
