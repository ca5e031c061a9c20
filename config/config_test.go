package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Population.Max != 200 {
		t.Errorf("population.max %d, want 200", cfg.Population.Max)
	}
	if cfg.Food.Max != 100 {
		t.Errorf("food.max %d, want 100", cfg.Food.Max)
	}
	if cfg.Entity.MaxEnergy != 100 {
		t.Errorf("entity.max_energy %g, want 100", cfg.Entity.MaxEnergy)
	}
	if cfg.Reproduction.Threshold != 80 {
		t.Errorf("reproduction.threshold %g, want 80", cfg.Reproduction.Threshold)
	}
	if cfg.Entity.MaxSpeed != 1.5 {
		t.Errorf("entity.max_speed %g, want 1.5", cfg.Entity.MaxSpeed)
	}
}

func TestLoad_WorldDimensionsDefaultToScreen(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Derived.WorldW != float64(cfg.Screen.Width) {
		t.Errorf("derived world width %g, want %d", cfg.Derived.WorldW, cfg.Screen.Width)
	}
	if cfg.Derived.WorldH != float64(cfg.Screen.Height) {
		t.Errorf("derived world height %g, want %d", cfg.Derived.WorldH, cfg.Screen.Height)
	}
}

func TestLoad_UserFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	override := "population:\n  initial: 5\n  max: 50\n"
	if err := os.WriteFile(path, []byte(override), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading override: %v", err)
	}

	if cfg.Population.Max != 50 {
		t.Errorf("population.max %d, want overridden 50", cfg.Population.Max)
	}
	// Fields absent from the user file keep their defaults
	if cfg.Food.Max != 100 {
		t.Errorf("food.max %d, want default 100", cfg.Food.Max)
	}
}

func TestLoad_RejectsInvalidCapacities(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"negative population cap", "population:\n  max: -1\n", "population.max"},
		{"initial above cap", "population:\n  initial: 300\n", "population.initial"},
		{"zero food cap", "food:\n  max: 0\n", "food.max"},
		{"inverted speed factor range", "reproduction:\n  min_speed_factor: 3.0\n", "speed factor range"},
	}

	for _, tc := range cases {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(tc.yaml), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := Load(path)
		if err == nil {
			t.Errorf("%s: expected validation error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading snapshot: %v", err)
	}
	if loaded.Population.Max != cfg.Population.Max || loaded.Entity.MaxEnergy != cfg.Entity.MaxEnergy {
		t.Error("snapshot round trip changed values")
	}
}
