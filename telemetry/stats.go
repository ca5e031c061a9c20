package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a stats window.
type WindowStats struct {
	WindowStartTick int `csv:"-"`
	WindowEndTick   int `csv:"window_end"`

	// Counts at window end
	Population int `csv:"population"`
	FoodCount  int `csv:"food"`

	// Events during window
	Births        int `csv:"births"`
	Deaths        int `csv:"deaths"`
	Feedings      int `csv:"feedings"`
	Respawns      int `csv:"food_respawns"`
	DroppedSpawns int `csv:"dropped_spawns"`

	// Energy distribution (sampled at window end)
	EnergyMean float64 `csv:"energy_mean"`
	EnergyStd  float64 `csv:"energy_std"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`

	// Speed factor trait distribution
	SpeedFactorMean float64 `csv:"speed_factor_mean"`
	SpeedFactorStd  float64 `csv:"speed_factor_std"`
}

// Distribution summarizes a sample as mean, standard deviation, and
// percentiles. Zero-valued for an empty sample.
type Distribution struct {
	Mean, Std, P10, P50, P90 float64
}

// Summarize computes a Distribution from the given values.
// The slice is sorted in place.
func Summarize(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}

	sort.Float64s(values)

	d := Distribution{
		Mean: stat.Mean(values, nil),
		P10:  stat.Quantile(0.1, stat.Empirical, values, nil),
		P50:  stat.Quantile(0.5, stat.Empirical, values, nil),
		P90:  stat.Quantile(0.9, stat.Empirical, values, nil),
	}
	if len(values) > 1 {
		d.Std = stat.StdDev(values, nil)
	}
	return d
}

// Log emits the window stats via slog.
func (s WindowStats) Log() {
	slog.Info("window stats",
		"tick", s.WindowEndTick,
		"population", s.Population,
		"food", s.FoodCount,
		"births", s.Births,
		"deaths", s.Deaths,
		"feedings", s.Feedings,
		"energy_mean", s.EnergyMean,
		"speed_factor_mean", s.SpeedFactorMean,
	)
}
