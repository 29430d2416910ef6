package dice

import (
	"math/rand/v2"
	"sync"
)

// Roller draws a single uniform integer in [1, sides]. It is the only
// shared mutable state in the roll engine, so implementations must be
// safe for concurrent use by the chat shell.
type Roller interface {
	Roll(sides int) int
}

type pcgRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRoller creates a randomly seeded production roller
func NewRoller() Roller {
	return &pcgRoller{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewSeededRoller creates a roller with a fixed seed for reproducible
// results. The evaluator's draw order is part of the contract golden
// tests rely on.
func NewSeededRoller(seed uint64) Roller {
	return &pcgRoller{
		rng: rand.New(rand.NewPCG(seed, seed)),
	}
}

func (r *pcgRoller) Roll(sides int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(sides) + 1
}
