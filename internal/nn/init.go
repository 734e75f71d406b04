package nn

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// InitConfig controls deterministic weight initialization.
type InitConfig struct {
	Seed uint64  // Source seed (default: 40)
	Low  float64 // Lower bound of the uniform range (default: -1)
	High float64 // Upper bound of the uniform range (default: 1)
}

// DefaultInitConfig returns the default initialization: U(-1, 1), seed 40.
func DefaultInitConfig() InitConfig {
	return InitConfig{Seed: 40, Low: -1, High: 1}
}

// Initializer draws weights from a seeded uniform distribution. Two
// initializers with the same configuration produce the same sequence.
type Initializer struct {
	dist distuv.Uniform
}

// NewInitializer creates an initializer. A zero range takes the default
// bounds; a zero seed is kept as given.
func NewInitializer(cfg InitConfig) *Initializer {
	if cfg.Low == 0 && cfg.High == 0 {
		def := DefaultInitConfig()
		cfg.Low, cfg.High = def.Low, def.High
	}
	if cfg.Low > cfg.High {
		panic("nn: init range low > high")
	}

	return &Initializer{
		dist: distuv.Uniform{
			Min: cfg.Low,
			Max: cfg.High,
			Src: rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15),
		},
	}
}

// Next returns the next weight.
func (in *Initializer) Next() float64 {
	return in.dist.Rand()
}
