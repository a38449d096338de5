package anytime

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/katalvlaran/maxclique/clique"
	"github.com/katalvlaran/maxclique/core"
)

// Stream is a live anytime computation. Obtain one from Solve, consume
// improvements via Events, and collect the outcome via Wait. All methods
// are safe for concurrent use.
type Stream struct {
	events chan CliqueFound
	done   chan struct{}
	cancel context.CancelFunc

	// mu serializes event sends against the one-time channel close.
	mu       sync.Mutex
	closed   bool
	last     CliqueFound // newest improvement relayed
	haveLast bool

	final       CliqueFound // set before done is closed
	err         error
	interrupted bool
}

// completionCause distinguishes how a stream ended.
type completionCause int

const (
	// causeNatural: the solver exhausted the search space.
	causeNatural completionCause = iota
	// causeInterrupted: the deadline or Cancel stopped the search.
	causeInterrupted
	// causeFailed: the solver rejected its input.
	causeFailed
)

// solverOutcome carries the solver's return values to the watcher.
type solverOutcome struct {
	res clique.Result
	err error
}

// Solve starts an anytime search and returns its Stream immediately.
//
// The solver runs clique.Solve(g, algo) on one background goroutine with
// a context derived from the options (parent + optional timeout); every
// improvement callback is relayed as a CliqueFound event. A watcher
// completes the stream when the solver returns or the deadline expires,
// whichever happens first. On a non-empty graph the final result is
// never smaller than a singleton, however short the deadline.
//
// Invalid inputs (nil graph, unknown algorithm) do not panic and do not
// block: the returned stream fails promptly and Wait surfaces the error.
//
// Complexity: O(1) — all work happens on the background goroutines.
func Solve(g *core.Graph, algo clique.Algo, opts ...Option) *Stream {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	ctx, cancel := deriveContext(o)
	s := &Stream{
		events: make(chan CliqueFound, o.EventBuffer),
		done:   make(chan struct{}),
		cancel: cancel,
	}

	var (
		start      = time.Now()
		baselineKB = heapAllocKB()
		solverDone = make(chan solverOutcome, 1)
	)

	// Floor the best-so-far with the smallest vertex before the solver is
	// scheduled: a deadline that fires first still hands back a valid
	// singleton, never an empty result on a non-empty graph.
	if g != nil {
		if nodes := g.Nodes(); len(nodes) > 0 {
			s.last = CliqueFound{Nodes: []core.Node{nodes[0]}}
			s.haveLast = true
		}
	}

	// Solver goroutine: runs to completion (or cooperative cancellation)
	// and reports exactly once; the buffered channel means it never blocks
	// on a stream that already completed by timeout.
	go func() {
		res, err := clique.Solve(g, algo,
			clique.WithContext(ctx),
			clique.WithOnImprovement(func(nodes []core.Node) {
				s.relay(CliqueFound{
					Nodes:      nodes,
					Elapsed:    time.Since(start),
					MemDeltaKB: heapAllocKB() - baselineKB,
				})
			}))
		solverDone <- solverOutcome{res: res, err: err}
	}()

	// Watcher goroutine: whichever side fires first completes the stream.
	go func() {
		defer cancel()

		select {
		case out := <-solverDone:
			s.completeFromSolver(out, start, baselineKB)
		case <-ctx.Done():
			// Deadline or Cancel: the best improvement seen so far is the
			// result; no closing event. The solver exits on its own poll.
			s.complete(s.bestSoFar(), nil, causeInterrupted)
		}
	}()

	return s
}

// Events returns the live event feed: one CliqueFound per strict
// improvement, plus a closing event on natural completion. The channel
// closes when the stream completes. Slow receivers lose events once the
// buffer fills; Wait is unaffected.
func (s *Stream) Events() <-chan CliqueFound {
	return s.events
}

// Wait blocks until the stream completes and returns the final event and
// the terminal error, if any. Expired deadlines and Cancel are clean
// completions (nil error); genuine solver failures are not.
func (s *Stream) Wait() (CliqueFound, error) {
	<-s.done

	return s.final, s.err
}

// Done returns a channel closed when the stream has completed.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Cancel completes the stream with the best clique found so far. Safe to
// call at any time, from any goroutine, more than once.
func (s *Stream) Cancel() {
	s.cancel()
}

// Interrupted reports whether the stream was completed by the deadline or
// Cancel instead of the solver finishing. False while the stream is live
// and false after a terminal failure.
func (s *Stream) Interrupted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.interrupted
}

// relay publishes one improvement event. Called from the solver goroutine
// via the improvement hook.
func (s *Stream) relay(ev CliqueFound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.last, s.haveLast = ev, true

	// Lossy send: a full buffer drops this event, never stalls the search.
	select {
	case s.events <- ev:
	default:
	}
}

// bestSoFar returns the newest improvement seen (the pre-scheduled
// singleton floor at minimum), or an empty event on an empty graph.
func (s *Stream) bestSoFar() CliqueFound {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.haveLast {
		return s.last
	}

	return CliqueFound{Nodes: []core.Node{}}
}

// completeFromSolver maps the solver outcome to stream completion:
// cancellation errors mean the deadline (or Cancel) won the race and the
// best-so-far stands; any other error is terminal. Only an uncancelled
// run counts as natural completion and emits the closing event.
func (s *Stream) completeFromSolver(out solverOutcome, start time.Time, baselineKB int64) {
	if out.err != nil {
		if errors.Is(out.err, context.Canceled) || errors.Is(out.err, context.DeadlineExceeded) {
			s.complete(CliqueFound{
				Nodes:      out.res.Nodes,
				Elapsed:    time.Since(start),
				MemDeltaKB: heapAllocKB() - baselineKB,
			}, nil, causeInterrupted)

			return
		}
		// Terminal failure: the solver never searched, so no clique
		// accompanies the error.
		s.complete(CliqueFound{Nodes: []core.Node{}}, out.err, causeFailed)

		return
	}

	// Natural completion: one closing event carrying the solver's result,
	// emitted even when it repeats the last improvement's size.
	s.complete(CliqueFound{
		Nodes:      out.res.Nodes,
		Elapsed:    time.Since(start),
		MemDeltaKB: heapAllocKB() - baselineKB,
	}, nil, causeNatural)
}

// complete records the outcome and its cause, publishes the closing event
// on natural completion, closes the feed, and releases Wait. First caller
// wins; later calls are no-ops.
func (s *Stream) complete(final CliqueFound, err error, cause completionCause) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	s.final, s.err = final, err
	s.interrupted = cause == causeInterrupted
	if cause == causeNatural {
		select {
		case s.events <- final:
		default:
		}
	}
	close(s.events)
	close(s.done)
}

// deriveContext builds the solver context from parent + optional timeout.
func deriveContext(o Options) (context.Context, context.CancelFunc) {
	if o.Timeout > 0 {
		return context.WithTimeout(o.Ctx, o.Timeout)
	}

	return context.WithCancel(o.Ctx)
}

// heapAllocKB samples the current heap allocation in KiB.
func heapAllocKB() int64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return int64(ms.HeapAlloc / 1024)
}
