package colour

import (
	"fmt"
	"math/rand/v2"

	"github.com/hashicorp/go-hclog"
)

const (
	// DefaultColours is the default palette size.
	DefaultColours = 8

	// DefaultMaxIterations caps the k-means optimisation loop.
	DefaultMaxIterations = 10

	// maxPoolSize bounds the number of pixels used inside the optimisation loop.
	maxPoolSize = 20000
)

// Config holds the parameters of a single generation cycle.
type Config struct {
	// Colours is the requested palette size (k).
	Colours int

	// Mode selects the ranking strategy of the final palette.
	Mode RankMode

	// IgnoreNeutrals excludes near-grey pixels from centroid seeding and updates.
	IgnoreNeutrals bool

	// MergeThreshold is the RGB distance under which swatches are merged. 0 disables merging.
	MergeThreshold int

	// Locked holds the hex codes pinned by the caller, usually the locked
	// swatches of the previous palette. Order matters when there are more
	// locks than Colours: only the first Colours entries are honoured.
	Locked []string
}

// DefaultConfig returns the default generation configuration.
func DefaultConfig() Config {
	return Config{
		Colours: DefaultColours,
		Mode:    RankDominant,
	}
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if c.Colours < 1 {
		return fmt.Errorf("%w: colour count must be at least 1, got %d", ErrInvalidConfig, c.Colours)
	}
	if c.MergeThreshold < 0 {
		return fmt.Errorf("%w: merge threshold must not be negative, got %d", ErrInvalidConfig, c.MergeThreshold)
	}
	if !c.Mode.valid() {
		return fmt.Errorf("%w: unknown rank mode %d", ErrInvalidConfig, c.Mode)
	}
	if _, err := parseLocks(c.Locked); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Rand is the random source used for centroid seeding and empty-cluster repair.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// globalRand draws from the math/rand/v2 top-level generator, which is seeded
// from system entropy and safe for concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

type options struct {
	rng           Rand
	logger        hclog.Logger
	maxIterations int
}

// Option configures a call to Generate.
type Option func(*options)

// WithRand sets the random source. Use a seeded source for reproducible palettes.
func WithRand(r Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithSeed uses a PCG source seeded with seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewPCG(uint64(seed), uint64(seed)))) // #nosec G115 G404 -- seed bits are reinterpreted, not security sensitive
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxIterations overrides the iteration cap of the optimisation loop.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		rng:           globalRand{},
		logger:        hclog.NewNullLogger(),
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
