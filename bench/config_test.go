package bench_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxclique/bench"
	"github.com/katalvlaran/maxclique/clique"
)

// writeConfig drops a YAML body into a temp file and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	t.Parallel()
	require.NoError(t, bench.DefaultConfig().Validate())
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	t.Parallel()

	const body = `
sizes: [5, 8]
probabilities: [0.5]
algorithms: [bb]
repetitions: 2
timeout: 250ms
seed: 9
`
	cfg, err := bench.LoadConfig(writeConfig(t, body))
	require.NoError(t, err)

	assert.Equal(t, []int{5, 8}, cfg.Sizes)
	assert.Equal(t, []float64{0.5}, cfg.Probabilities)
	assert.Equal(t, []string{"bb"}, cfg.Algorithms)
	assert.Equal(t, 2, cfg.Repetitions)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout.Std())
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, bench.DefaultConfig().Workers, cfg.Workers, "absent keys keep their defaults")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := bench.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"broken yaml", "sizes: ["},
		{"duration without unit", "timeout: 5"},
		{"duration gibberish", "timeout: fast"},
		{"duration as mapping", "timeout:\n  value: 5s"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := bench.LoadConfig(writeConfig(t, tc.body))
			require.Error(t, err)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	mutate := func(fn func(*bench.Config)) bench.Config {
		cfg := bench.DefaultConfig()
		fn(&cfg)

		return cfg
	}

	tests := []struct {
		name string
		cfg  bench.Config
		want error
	}{
		{"empty grid", bench.Config{}, bench.ErrNoInstances},
		{"no sizes", mutate(func(c *bench.Config) { c.Sizes = nil }), bench.ErrNoInstances},
		{"no probabilities", mutate(func(c *bench.Config) { c.Probabilities = nil }), bench.ErrNoInstances},
		{"no algorithms", mutate(func(c *bench.Config) { c.Algorithms = nil }), bench.ErrNoInstances},
		{"zero repetitions", mutate(func(c *bench.Config) { c.Repetitions = 0 }), bench.ErrNoInstances},
		{"size below one", mutate(func(c *bench.Config) { c.Sizes = []int{10, 0} }), bench.ErrBadConfig},
		{"probability above one", mutate(func(c *bench.Config) { c.Probabilities = []float64{1.5} }), bench.ErrBadConfig},
		{"probability negative", mutate(func(c *bench.Config) { c.Probabilities = []float64{-0.1} }), bench.ErrBadConfig},
		{"unknown algorithm", mutate(func(c *bench.Config) { c.Algorithms = []string{"dfs"} }), clique.ErrUnknownAlgo},
		{"negative timeout", mutate(func(c *bench.Config) { c.Timeout = bench.Duration(-time.Second) }), bench.ErrBadConfig},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tc.cfg.Validate(), tc.want)
		})
	}
}
