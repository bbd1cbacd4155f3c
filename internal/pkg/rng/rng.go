// Package rng provides dice.Roller sources for generation. Everything random in level
// generation and the room runtime is drawn through a dice.Roller so runs can be reproduced.
package rng

import (
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/descent/internal/errors"
)

// Seeded is a deterministic dice.Roller
type Seeded struct {
	r *rand.Rand
}

// NewSeeded creates a roller whose sequence is fixed by seed
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Roll returns a value in [1, size]
func (s *Seeded) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive: %d", size)
	}
	return s.r.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count cannot be negative: %d", count)
	}
	results := make([]int, count)
	for i := range results {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// Func adapts a function returning a value in [1, size] to dice.Roller. Tests use it to script
// exact draws.
type Func func(size int) int

// Roll calls f
func (f Func) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive: %d", size)
	}
	return f(size), nil
}

// RollN calls f count times
func (f Func) RollN(count, size int) ([]int, error) {
	results := make([]int, count)
	for i := range results {
		v, err := f.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// Intn draws a value in [0, n) from roller. Out of range rolls are clamped.
func Intn(roller dice.Roller, n int) (int, error) {
	v, err := roller.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll")
	}
	v--
	if v < 0 {
		v = 0
	}
	if v >= n {
		v = n - 1
	}
	return v, nil
}

var (
	_ dice.Roller = (*Seeded)(nil)
	_ dice.Roller = Func(nil)
)
