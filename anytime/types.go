package anytime

import (
	"context"
	"time"

	"github.com/katalvlaran/maxclique/core"
)

// defaultEventBuffer is the Events() channel capacity when no
// WithEventBuffer option is given.
const defaultEventBuffer = 16

// CliqueFound is one immutable progress event: a clique strictly larger
// than any reported before it on the same stream (the closing event may
// repeat the last size).
type CliqueFound struct {
	// Nodes is the clique in ascending order; the slice is owned by the
	// receiver of the event.
	Nodes []core.Node

	// Elapsed is the time between solver start and this discovery.
	Elapsed time.Duration

	// MemDeltaKB is the change in heap allocation since solver start,
	// in KiB. Best-effort: garbage collection runs concurrently, so the
	// value is noisy and may be negative.
	MemDeltaKB int64
}

// Size returns the number of nodes in the event's clique.
func (e CliqueFound) Size() int { return len(e.Nodes) }

// Option configures a Solve call. Use with Solve(g, algo, opts...).
type Option func(*Options)

// Options holds configurable parameters for an anytime search.
type Options struct {
	// Ctx is the parent context; cancelling it completes the stream with
	// the best-so-far, exactly like an expired Timeout. Defaults to
	// context.Background().
	Ctx context.Context

	// Timeout bounds the search wall-clock. Zero or negative means no
	// deadline: the stream completes when the solver does.
	Timeout time.Duration

	// EventBuffer is the Events() channel capacity. Events beyond a full
	// buffer are dropped (the stream stays live; Wait is unaffected).
	EventBuffer int
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No deadline
//   - Event buffer of 16
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Timeout:     0,
		EventBuffer: defaultEventBuffer,
	}
}

// WithContext returns an Option that sets the parent context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeout returns an Option that bounds the search wall-clock.
// Non-positive d disables the deadline.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}

// WithEventBuffer returns an Option that sets the Events() channel
// capacity. Non-positive n falls back to the default.
func WithEventBuffer(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.EventBuffer = n
		}
	}
}
