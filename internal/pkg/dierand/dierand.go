// Package dierand provides dice.Roller implementations used by the game
// service: a seeded roller for reproducible games and a fixed roller for
// tests.
package dierand

import (
	"math/rand"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Seeded implements dice.Roller on top of a seeded math/rand source, so a
// game started from a seed replays identically.
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded creates a roller from the given seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a uniform value in [1, size]
func (s *Seeded) Roll(size int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(size) + 1, nil
}

// RollN returns n uniform values in [1, size]
func (s *Seeded) RollN(n, size int) ([]int, error) {
	out := make([]int, n)
	for i := range out {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Fixed implements dice.Roller with a repeating script of values, for tests
type Fixed struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewFixed creates a roller that cycles through the given values
func NewFixed(values ...int) *Fixed {
	return &Fixed{values: values}
}

// Roll returns the next scripted value, ignoring size
func (f *Fixed) Roll(_ int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := f.values[f.next%len(f.values)]
	f.next++
	return v, nil
}

// RollN returns the next n scripted values
func (f *Fixed) RollN(n, size int) ([]int, error) {
	out := make([]int, n)
	for i := range out {
		v, err := f.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Compile-time checks that both rollers satisfy dice.Roller
var (
	_ dice.Roller = (*Seeded)(nil)
	_ dice.Roller = (*Fixed)(nil)
)
