// Internal tests for option plumbing: defaults, ordering, nil handling,
// and the node index mapping.
package builder

import (
	"math/rand"
	"testing"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Error("default rng must be nil (deterministic shapes need no randomness)")
	}
	if cfg.base != 0 {
		t.Errorf("default base: got %d, want 0", cfg.base)
	}
	if got := cfg.node(3); got != 3 {
		t.Errorf("node(3) with zero base: got %d, want 3", got)
	}
}

func TestWithSeed_Reproducible(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	if a.rng == nil || b.rng == nil {
		t.Fatal("WithSeed must install an RNG")
	}
	for i := 0; i < 16; i++ {
		if x, y := a.rng.Int63(), b.rng.Int63(); x != y {
			t.Fatalf("draw %d diverged: %d vs %d", i, x, y)
		}
	}
}

func TestWithRand_InstallsGivenSource(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(7))
	cfg := newBuilderConfig(WithRand(r))
	if cfg.rng != r {
		t.Error("WithRand must install the caller's *rand.Rand unchanged")
	}
}

func TestWithRand_NilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithRand(nil) must panic")
		}
	}()
	_ = WithRand(nil)
}

func TestWithBase_ShiftsNodeMapping(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithBase(100))
	if cfg.base != 100 {
		t.Errorf("base: got %d, want 100", cfg.base)
	}
	if got := cfg.node(7); got != 107 {
		t.Errorf("node(7): got %d, want 107", got)
	}
}

func TestOptions_OrderAndNil(t *testing.T) {
	t.Parallel()

	// Later options win; nil entries are ignored.
	cfg := newBuilderConfig(nil, WithBase(1), nil, WithBase(2))
	if cfg.base != 2 {
		t.Errorf("last option must win: got base %d, want 2", cfg.base)
	}
}
