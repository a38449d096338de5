// Package anytime turns a clique search into an anytime computation: a
// live stream of improving results that completes at a deadline whether or
// not the underlying search has finished.
//
// What & why:
//
//   - Maximum clique is NP-hard, so on hostile inputs an exact search may
//     run far longer than a caller can wait. The anytime pattern trades
//     completeness for responsiveness: consume the best clique known so
//     far whenever the budget expires.
//   - Solve(g, algo, opts...) returns a *Stream immediately. One
//     background goroutine runs the solver to completion; a watcher races
//     solver completion against the configured timeout, and whichever
//     fires first completes the stream.
//
// Events:
//
//   - Every strict improvement becomes one CliqueFound event carrying the
//     clique, the elapsed time since the solver started, and a
//     best-effort heap-allocation delta (may be negative; the runtime
//     reclaims memory concurrently).
//   - Natural completion emits one final event with the solver's result,
//     even when it equals the last improvement. Event sizes never
//     decrease, and the last event equals the stream's Wait result.
//   - Events() is a buffered live feed: slow receivers lose intermediate
//     events (newer improvements supersede older ones), never the Wait
//     result. Stopping to receive is the whole unsubscription protocol.
//
// Completion:
//
//   - Wait() blocks until the stream completes and returns the final
//     event. A timeout is not an error: Wait returns the best clique
//     found within the budget, never less than a singleton on a
//     non-empty graph. Cancel() completes the stream the same way,
//     immediately. Interrupted() reports whether the deadline or Cancel
//     cut the search short.
//   - The solver goroutine is never interrupted forcibly; it observes
//     cancellation cooperatively (one candidate step of latency) and
//     exits on its own after the stream has already completed.
//   - A solver failure other than cancellation (nil graph, unknown
//     algorithm) is terminal: Wait returns it as a non-nil error.
package anytime
