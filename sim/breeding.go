package sim

import "github.com/petri-sim/petri/config"

// advanceGeneration builds the next generation in a single ordered pass
// over the current one and swaps it in at the end:
//
//   - agents whose energy dropped to zero or below are removed,
//   - agents at or above the reproduction threshold split: the parent keeps
//     half its energy and the offspring starts with the same half, a
//     mutated speed factor, a nearby position, and the parent's color,
//   - everyone else carries over unchanged.
//
// Offspring go through the spawner's normal capacity check, so the
// population never exceeds its cap no matter how many agents qualify.
func (w *World) advanceGeneration() Events {
	cfg := config.Cfg()
	var ev Events

	prev := w.LifeForms
	w.LifeForms = make([]LifeForm, 0, cfg.Population.Max)

	for _, lf := range prev {
		if lf.Energy <= 0 {
			ev.Deaths++
			continue
		}

		// Reproduce only if there is room for both parent and child.
		if lf.Energy >= cfg.Reproduction.Threshold && len(w.LifeForms)+1 < cfg.Population.Max {
			lf.Energy /= 2

			childSpeed := clamp(
				lf.SpeedFactor+(w.rng.Float64()-0.5)*2*cfg.Reproduction.MutationRange,
				cfg.Reproduction.MinSpeedFactor,
				cfg.Reproduction.MaxSpeedFactor,
			)
			childX := lf.X + (w.rng.Float64()-0.5)*2*cfg.Reproduction.SpawnOffset
			childY := lf.Y + (w.rng.Float64()-0.5)*2*cfg.Reproduction.SpawnOffset

			w.LifeForms = append(w.LifeForms, lf)
			// w.LifeForms is already the next-generation buffer, so the
			// spawner's capacity policy applies to the offspring directly.
			if w.SpawnLifeForm(childX, childY, lf.Energy, childSpeed, lf.Color) {
				ev.Births++
			} else {
				ev.DroppedSpawns++
			}
			continue
		}

		if len(w.LifeForms) < cfg.Population.Max {
			w.LifeForms = append(w.LifeForms, lf)
		}
	}

	return ev
}
