package randgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/aalvaropc/seek/internal/domain"
	"github.com/aalvaropc/seek/internal/ports"
)

// Generator draws uniformly distributed integers in [min, max].
type Generator struct {
	min, max int
	rng      *rand.Rand
}

type Option func(*Generator)

// WithSeed makes the output reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Generator) { g.rng = rand.New(rand.NewPCG(seed, seed)) }
}

func New(cfg domain.GeneratorConfig, opts ...Option) (*Generator, error) {
	if cfg.Min > cfg.Max {
		return nil, &domain.OpError{
			Op:   "randgen.new",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("min %d is greater than max %d: %w", cfg.Min, cfg.Max, domain.ErrInvalidConfig),
		}
	}

	g := &Generator{
		min: cfg.Min,
		max: cfg.Max,
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

var _ ports.SequenceGenerator = (*Generator)(nil)

// Generate returns n values. The result is never nil.
func (g *Generator) Generate(n int) ([]int, error) {
	if n < 0 {
		return nil, domain.InvalidInput("randgen.generate", "length %d is negative", n)
	}

	span := uint64(g.max-g.min) + 1
	out := make([]int, n)
	for i := range out {
		// span == 0 only when the range covers every int64; Uint64 is then already uniform.
		if span == 0 {
			out[i] = int(g.rng.Uint64())
			continue
		}
		out[i] = g.min + int(g.rng.Uint64N(span))
	}
	return out, nil
}
