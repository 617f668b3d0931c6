package ripper

import (
	"io"
	"log"
)

// MaxDLSurplus bounds how many bits worse than the best description length
// seen so far the building stage will tolerate before giving up on a class.
const MaxDLSurplus = 64.0

// Config holds every tunable of a training run. New builds one from
// DefaultConfig and the Options it is given; no function in this package
// takes a Config value directly.
type Config struct {
	// NumOptimizations is how many optimization rounds (Replace/Revise over
	// the whole ruleset) run after the building stage, when UsePruning is
	// true.
	NumOptimizations int
	// Seed drives the learner's owned RNG. The same seed over the same
	// data always yields the same ruleset.
	Seed int64
	// NumFolds is the number of stratified folds grow/prune splitting uses;
	// the last fold becomes the pruning data.
	NumFolds int
	// MinNo is the minimum weighted accurate coverage a candidate
	// antecedent must reach during Grow or it is rejected.
	MinNo float64
	// CheckErr enables the building stage's covered_neg/covered >= 0.5
	// stopping check.
	CheckErr bool
	// UsePruning enables the optimization stage. Building-stage pruning
	// (Rule.Prune with use_whole=false) always runs regardless of this
	// flag.
	UsePruning bool
	// Logger receives coarse progress notices (class started/skipped, rule
	// accepted/rejected, optimization round) during Fit. Defaults to a
	// logger writing to io.Discard.
	Logger *log.Logger
}

// Option mutates a Config during construction. Later options override
// earlier ones.
type Option func(*Config)

// DefaultConfig returns the algorithm's published defaults (Cohen 1995):
// 2 optimization rounds, seed 1, 3 folds, min_no 2.0, check_err and
// use_pruning both enabled.
func DefaultConfig() *Config {
	return &Config{
		NumOptimizations: 2,
		Seed:             1,
		NumFolds:         3,
		MinNo:            2.0,
		CheckErr:         true,
		UsePruning:       true,
		Logger:           log.New(io.Discard, "", 0),
	}
}

// WithNumOptimizations overrides the number of optimization rounds. Values
// below 0 are treated as 0 (no optimization rounds, but UsePruning itself is
// untouched).
func WithNumOptimizations(n int) Option {
	return func(c *Config) {
		if n < 0 {
			n = 0
		}
		c.NumOptimizations = n
	}
}

// WithSeed overrides the RNG seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithNumFolds overrides the fold count used for grow/prune splitting. A
// value below 1 is ignored.
func WithNumFolds(k int) Option {
	return func(c *Config) {
		if k >= 1 {
			c.NumFolds = k
		}
	}
}

// WithMinNo overrides the minimum accurate-coverage threshold Grow requires
// of a candidate antecedent.
func WithMinNo(minNo float64) Option {
	return func(c *Config) { c.MinNo = minNo }
}

// WithCheckErr toggles the building stage's error-rate stopping check.
func WithCheckErr(enabled bool) Option {
	return func(c *Config) { c.CheckErr = enabled }
}

// WithUsePruning toggles the optimization stage.
func WithUsePruning(enabled bool) Option {
	return func(c *Config) { c.UsePruning = enabled }
}

// WithLogger overrides the destination for Fit's coarse progress notices. A
// nil logger is ignored.
func WithLogger(logger *log.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

func newConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
