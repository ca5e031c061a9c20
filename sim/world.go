package sim

import (
	"math/rand"

	"github.com/petri-sim/petri/config"
)

// World owns the simulation state: an ordered, capacity-bounded collection
// of life forms and one of food sources. All mutation goes through the
// spawner operations and the tick pipeline; the renderer only reads it
// between completed ticks.
type World struct {
	LifeForms []LifeForm
	Food      []Food

	rng    *rand.Rand
	nextID int
}

// NewWorld creates an empty world using the given random source. All random
// draws in the simulation go through it, so a fixed seed reproduces the same
// trajectory exactly.
func NewWorld(rng *rand.Rand) *World {
	cfg := config.Cfg()
	return &World{
		LifeForms: make([]LifeForm, 0, cfg.Population.Max),
		Food:      make([]Food, 0, cfg.Food.Max),
		rng:       rng,
	}
}

// Seed populates the world with the initial life forms and food sources at
// uniform random positions. Initial life forms start at half the energy cap
// with a neutral speed factor and a random color.
func (w *World) Seed() {
	cfg := config.Cfg()

	for i := 0; i < cfg.Population.Initial; i++ {
		color := RGB{
			R: uint8(w.rng.Intn(256)),
			G: uint8(w.rng.Intn(256)),
			B: uint8(w.rng.Intn(256)),
		}
		w.SpawnLifeForm(
			w.rng.Float64()*cfg.Derived.WorldW,
			w.rng.Float64()*cfg.Derived.WorldH,
			cfg.Entity.MaxEnergy/2,
			1.0,
			color,
		)
	}

	for i := 0; i < cfg.Food.Initial; i++ {
		w.SpawnFood(
			w.rng.Float64()*cfg.Derived.WorldW,
			w.rng.Float64()*cfg.Derived.WorldH,
		)
	}
}

// SpawnLifeForm appends a new life form with a random initial velocity.
// At capacity the request is silently dropped; that is the accepted
// overflow policy, not an error. Reports whether the spawn happened.
func (w *World) SpawnLifeForm(x, y, energy, speedFactor float64, color RGB) bool {
	cfg := config.Cfg()
	if len(w.LifeForms) >= cfg.Population.Max {
		return false
	}

	lf := LifeForm{
		X:           x,
		Y:           y,
		Energy:      energy,
		SpeedFactor: speedFactor,
		ID:          w.nextID,
		Color:       color,
		VX:          (w.rng.Float64() - 0.5) * cfg.Entity.MaxSpeed * speedFactor,
		VY:          (w.rng.Float64() - 0.5) * cfg.Entity.MaxSpeed * speedFactor,
	}
	w.nextID++
	w.LifeForms = append(w.LifeForms, lf)
	return true
}

// SpawnFood appends a food source, silently dropping the request at
// capacity. Reports whether the spawn happened.
func (w *World) SpawnFood(x, y float64) bool {
	cfg := config.Cfg()
	if len(w.Food) >= cfg.Food.Max {
		return false
	}
	w.Food = append(w.Food, Food{X: x, Y: y, Present: true})
	return true
}
