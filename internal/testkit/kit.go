package testkit

import (
	"math/rand"

	"github.com/dnafinder/uroccomp/domain/roc"
)

// BinormalConfig controls synthetic diagnostic dataset generation. Healthy
// test values are drawn from N(0, 1) and unhealthy values from
// N(Separation, 1), the classic binormal ROC model.
type BinormalConfig struct {
	Healthy    int
	Unhealthy  int
	Separation float64
	Seed       int64
}

// DefaultConfig returns a moderately discriminative dataset shape.
func DefaultConfig() BinormalConfig {
	return BinormalConfig{
		Healthy:    60,
		Unhealthy:  40,
		Separation: 1.0,
		Seed:       42,
	}
}

// BinormalMatrix generates a raw two-column (value, label) matrix suitable
// for roc.NewLabeledSample. Deterministic for a given config.
func BinormalMatrix(cfg BinormalConfig) [][]float64 {
	rng := rand.New(rand.NewSource(cfg.Seed))
	matrix := make([][]float64, 0, cfg.Healthy+cfg.Unhealthy)
	for i := 0; i < cfg.Healthy; i++ {
		matrix = append(matrix, []float64{rng.NormFloat64(), 0})
	}
	for i := 0; i < cfg.Unhealthy; i++ {
		matrix = append(matrix, []float64{rng.NormFloat64() + cfg.Separation, 1})
	}
	return matrix
}

// BinormalSample generates a validated LabeledSample directly. Panics on a
// config that cannot pass validation; tests should use sane configs.
func BinormalSample(name roc.Dataset, cfg BinormalConfig) roc.LabeledSample {
	sample, err := roc.NewLabeledSample(name, BinormalMatrix(cfg))
	if err != nil {
		panic(err)
	}
	return sample
}

// PerfectMatrix returns a small dataset where every unhealthy value exceeds
// every healthy value, so AUC is exactly 1.
func PerfectMatrix() [][]float64 {
	return [][]float64{
		{1, 0}, {2, 0}, {3, 0},
		{10, 1}, {11, 1}, {12, 1},
	}
}
