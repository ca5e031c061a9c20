package sim

import "github.com/petri-sim/petri/config"

// resolveFeeding checks every (life form, food) pair for overlap. A hit
// grants the eater energy and marks the food consumed; with configured
// probability a replacement spawns at an independent random position.
// Energy gained here is deliberately not clamped until the next tick's
// behavior phase, so the reproduction check this tick can observe values
// above the cap.
//
// Consumed items are compacted out in a single pass after all pairs have
// been checked, preserving the relative order of the survivors.
func (w *World) resolveFeeding() Events {
	cfg := config.Cfg()
	var ev Events

	combinedRadiusSq := (cfg.Entity.Radius + cfg.Food.Radius) * (cfg.Entity.Radius + cfg.Food.Radius)

	for i := range w.LifeForms {
		lf := &w.LifeForms[i]
		// len(w.Food) is re-read on purpose: food respawned mid-phase
		// joins the pairwise checks of later iterations.
		for j := 0; j < len(w.Food); j++ {
			if !w.Food[j].Present {
				continue
			}
			if distanceSq(lf.X, lf.Y, w.Food[j].X, w.Food[j].Y) >= combinedRadiusSq {
				continue
			}

			lf.Energy += cfg.Entity.EnergyGainFromFood
			w.Food[j].Present = false
			ev.Feedings++

			if w.rng.Float64() < cfg.Food.RespawnChance {
				if w.SpawnFood(w.rng.Float64()*cfg.Derived.WorldW, w.rng.Float64()*cfg.Derived.WorldH) {
					ev.Respawns++
				} else {
					ev.DroppedSpawns++
				}
			}
		}
	}

	// Compact in place, keeping present items in their original order.
	kept := w.Food[:0]
	for _, f := range w.Food {
		if f.Present {
			kept = append(kept, f)
		}
	}
	w.Food = kept

	return ev
}
