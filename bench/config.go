package bench

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/maxclique/clique"
)

// Config describes one sweep: the instance grid, the per-instance budget,
// and the execution shape.
type Config struct {
	// Sizes lists the vertex counts to generate, each ≥ 1.
	Sizes []int `yaml:"sizes"`
	// Probabilities lists the extra-edge probabilities, each in [0, 1].
	Probabilities []float64 `yaml:"probabilities"`
	// Algorithms lists solver names ("bb", "bk"); every one runs on every
	// generated graph.
	Algorithms []string `yaml:"algorithms"`
	// Repetitions is how many graphs to generate per (size, probability)
	// pair, each with its own derived seed.
	Repetitions int `yaml:"repetitions"`
	// Timeout bounds one solver run; zero means unlimited.
	Timeout Duration `yaml:"timeout"`
	// Seed is the base of every derived instance seed.
	Seed int64 `yaml:"seed"`
	// Workers bounds concurrent instances; zero or negative means one per
	// logical CPU.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns a small smoke-sweep: three sizes, three
// densities, both solvers, three repetitions each.
func DefaultConfig() Config {
	return Config{
		Sizes:         []int{20, 40, 60},
		Probabilities: []float64{0.3, 0.5, 0.7},
		Algorithms:    []string{"bb", "bk"},
		Repetitions:   3,
		Timeout:       Duration(5 * time.Second),
		Seed:          1,
		Workers:       runtime.NumCPU(),
	}
}

// LoadConfig reads a YAML sweep description, laying it over the defaults
// so absent keys keep their default values, and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("bench: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("bench: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks every field range. Errors wrap ErrNoInstances,
// ErrBadConfig, or clique.ErrUnknownAlgo.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 || len(c.Probabilities) == 0 || len(c.Algorithms) == 0 || c.Repetitions < 1 {
		return ErrNoInstances
	}
	for i, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("bench: sizes[%d]=%d, must be at least 1: %w", i, n, ErrBadConfig)
		}
	}
	for i, p := range c.Probabilities {
		if p < 0 || p > 1 {
			return fmt.Errorf("bench: probabilities[%d]=%v, must lie in [0,1]: %w", i, p, ErrBadConfig)
		}
	}
	for _, name := range c.Algorithms {
		if _, err := clique.ParseAlgo(name); err != nil {
			return fmt.Errorf("bench: algorithm %q: %w", name, err)
		}
	}
	if c.Timeout < 0 {
		return fmt.Errorf("bench: timeout %v is negative: %w", c.Timeout.Std(), ErrBadConfig)
	}

	return nil
}

// Duration lets YAML carry timeouts as Go duration strings ("250ms",
// "5s") instead of raw nanosecond integers.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("bench: duration must be a scalar like \"5s\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("bench: duration %q: %w", s, err)
	}
	*d = Duration(parsed)

	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }
