package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/petri-sim/petri/config"
)

var configLoaded bool

// ensureConfig loads the embedded default configuration once for the
// whole test package.
func ensureConfig() {
	if !configLoaded {
		config.MustInit("")
		configLoaded = true
	}
}

// newTestWorld builds a world with a deterministic random source.
func newTestWorld(seed int64) *World {
	ensureConfig()
	return NewWorld(rand.New(rand.NewSource(seed)))
}

func TestSpawnLifeForm_AssignsFields(t *testing.T) {
	w := newTestWorld(1)
	cfg := config.Cfg()

	ok := w.SpawnLifeForm(100, 200, 50, 1.2, RGB{R: 10, G: 20, B: 30})
	if !ok {
		t.Fatal("spawn into empty world should succeed")
	}
	if len(w.LifeForms) != 1 {
		t.Fatalf("expected 1 life form, got %d", len(w.LifeForms))
	}

	lf := w.LifeForms[0]
	if lf.X != 100 || lf.Y != 200 {
		t.Errorf("position (%g, %g), want (100, 200)", lf.X, lf.Y)
	}
	if lf.Energy != 50 {
		t.Errorf("energy %g, want 50", lf.Energy)
	}
	if lf.SpeedFactor != 1.2 {
		t.Errorf("speed factor %g, want 1.2", lf.SpeedFactor)
	}
	if lf.Color != (RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("color %v not preserved", lf.Color)
	}

	// Initial velocity is uniform per axis, scaled by max speed and the
	// speed factor
	limit := cfg.Entity.MaxSpeed * 1.2 / 2
	if math.Abs(lf.VX) > limit || math.Abs(lf.VY) > limit {
		t.Errorf("initial velocity (%g, %g) exceeds ±%g", lf.VX, lf.VY, limit)
	}
}

func TestSpawnLifeForm_IDsIncrease(t *testing.T) {
	w := newTestWorld(1)

	w.SpawnLifeForm(0, 0, 10, 1, RGB{})
	w.SpawnLifeForm(0, 0, 10, 1, RGB{})
	w.SpawnLifeForm(0, 0, 10, 1, RGB{})

	for i := 1; i < len(w.LifeForms); i++ {
		if w.LifeForms[i].ID <= w.LifeForms[i-1].ID {
			t.Errorf("IDs not increasing: %d then %d", w.LifeForms[i-1].ID, w.LifeForms[i].ID)
		}
	}
}

func TestSpawnLifeForm_CapacityNoOp(t *testing.T) {
	w := newTestWorld(1)
	cfg := config.Cfg()
	origMax := cfg.Population.Max
	cfg.Population.Max = 2
	defer func() { cfg.Population.Max = origMax }()

	if !w.SpawnLifeForm(0, 0, 10, 1, RGB{}) {
		t.Error("first spawn should succeed")
	}
	if !w.SpawnLifeForm(0, 0, 10, 1, RGB{}) {
		t.Error("second spawn should succeed")
	}
	if w.SpawnLifeForm(0, 0, 10, 1, RGB{}) {
		t.Error("spawn at capacity should be a silent no-op")
	}
	if len(w.LifeForms) != 2 {
		t.Errorf("population %d, want 2", len(w.LifeForms))
	}
}

func TestSpawnFood_CapacityNoOp(t *testing.T) {
	w := newTestWorld(1)
	cfg := config.Cfg()
	origMax := cfg.Food.Max
	cfg.Food.Max = 1
	defer func() { cfg.Food.Max = origMax }()

	if !w.SpawnFood(5, 5) {
		t.Error("first spawn should succeed")
	}
	if w.SpawnFood(6, 6) {
		t.Error("spawn at capacity should be a silent no-op")
	}
	if len(w.Food) != 1 {
		t.Errorf("food count %d, want 1", len(w.Food))
	}
	if !w.Food[0].Present {
		t.Error("spawned food should be present")
	}
}

func TestSeed_InitialPopulations(t *testing.T) {
	w := newTestWorld(42)
	cfg := config.Cfg()

	w.Seed()

	if len(w.LifeForms) != cfg.Population.Initial {
		t.Errorf("life forms %d, want %d", len(w.LifeForms), cfg.Population.Initial)
	}
	if len(w.Food) != cfg.Food.Initial {
		t.Errorf("food %d, want %d", len(w.Food), cfg.Food.Initial)
	}

	for i, lf := range w.LifeForms {
		if lf.Energy != cfg.Entity.MaxEnergy/2 {
			t.Errorf("life form %d energy %g, want %g", i, lf.Energy, cfg.Entity.MaxEnergy/2)
		}
		if lf.SpeedFactor != 1.0 {
			t.Errorf("life form %d speed factor %g, want 1.0", i, lf.SpeedFactor)
		}
		if lf.X < 0 || lf.X > cfg.Derived.WorldW || lf.Y < 0 || lf.Y > cfg.Derived.WorldH {
			t.Errorf("life form %d spawned outside world: (%g, %g)", i, lf.X, lf.Y)
		}
	}
}
