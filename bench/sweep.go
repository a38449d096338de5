package bench

import (
	"context"
	"fmt"
	"hash/fnv"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/maxclique/anytime"
	"github.com/katalvlaran/maxclique/builder"
	"github.com/katalvlaran/maxclique/clique"
	"github.com/katalvlaran/maxclique/core"
)

// Row is the outcome of one solver run on one generated instance.
type Row struct {
	N          int           // vertex count
	P          float64       // extra-edge probability
	Algo       clique.Algo   // solver that produced this row
	Rep        int           // repetition ordinal, 0-based
	CliqueSize int           // size of the clique found within the budget
	Elapsed    time.Duration // wall clock of the whole run
	Events     int           // improvement events observed on the feed
	TimedOut   bool          // true when the budget cut the search short
}

// instance is one (n, p, repetition) grid cell. Every configured
// algorithm solves the same generated graph.
type instance struct {
	n    int
	p    float64
	rep  int
	seed int64
	row  int // index of the cell's first row in the output slice
}

// Run executes the whole sweep and returns rows in grid order: sizes
// outermost, then probabilities, then repetitions, then algorithms.
// Row order does not depend on the worker count.
//
// A cancelled ctx aborts the sweep with the context's error. A solver
// rejecting its input aborts it too; expired per-instance budgets do not
// (they are ordinary TimedOut rows). A nil logger disables logging.
func Run(ctx context.Context, cfg Config, log *zap.Logger) ([]Row, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	algos := make([]clique.Algo, len(cfg.Algorithms))
	for i, name := range cfg.Algorithms {
		a, err := clique.ParseAlgo(name)
		if err != nil {
			return nil, fmt.Errorf("bench: algorithm %q: %w", name, err)
		}
		algos[i] = a
	}

	instances := enumerate(cfg)
	rows := make([]Row, len(instances)*len(algos))

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	log.Info("sweep starting",
		zap.Int("instances", len(instances)),
		zap.Int("algorithms", len(algos)),
		zap.Int("workers", workers),
		zap.Duration("timeout", cfg.Timeout.Std()))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, inst := range instances {
		inst := inst
		g.Go(func() error {
			graph, err := builder.RandomGraph(inst.n, inst.p, builder.WithSeed(inst.seed))
			if err != nil {
				return fmt.Errorf("bench: generate n=%d p=%v rep=%d: %w", inst.n, inst.p, inst.rep, err)
			}
			for i, algo := range algos {
				if err := gctx.Err(); err != nil {
					return err
				}
				row, err := solveOne(gctx, graph, algo, inst, cfg.Timeout.Std())
				if err != nil {
					return err
				}
				rows[inst.row+i] = row

				log.Info("instance solved",
					zap.Int("n", row.N),
					zap.Float64("p", row.P),
					zap.Stringer("algo", row.Algo),
					zap.Int("rep", row.Rep),
					zap.Int("clique", row.CliqueSize),
					zap.Duration("elapsed", row.Elapsed),
					zap.Bool("timed_out", row.TimedOut))
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info("sweep complete", zap.Int("rows", len(rows)))

	return rows, nil
}

// solveOne runs a single algorithm on a prepared graph through the
// anytime stream, draining the feed so the event count is observable.
func solveOne(ctx context.Context, g *core.Graph, algo clique.Algo, inst instance, timeout time.Duration) (Row, error) {
	start := time.Now()
	st := anytime.Solve(g, algo,
		anytime.WithContext(ctx),
		anytime.WithTimeout(timeout))

	events := 0
	for range st.Events() {
		events++
	}
	final, err := st.Wait()
	if err != nil {
		return Row{}, fmt.Errorf("bench: solve n=%d p=%v algo=%s rep=%d: %w", inst.n, inst.p, algo, inst.rep, err)
	}

	return Row{
		N:          inst.n,
		P:          inst.p,
		Algo:       algo,
		Rep:        inst.rep,
		CliqueSize: final.Size(),
		Elapsed:    time.Since(start),
		Events:     events,
		TimedOut:   st.Interrupted(),
	}, nil
}

// enumerate expands the config grid in declaration order and assigns each
// cell its derived seed and output position.
func enumerate(cfg Config) []instance {
	nAlgos := len(cfg.Algorithms)
	out := make([]instance, 0, len(cfg.Sizes)*len(cfg.Probabilities)*cfg.Repetitions)
	for _, n := range cfg.Sizes {
		for _, p := range cfg.Probabilities {
			for rep := 0; rep < cfg.Repetitions; rep++ {
				out = append(out, instance{
					n:    n,
					p:    p,
					rep:  rep,
					seed: instanceSeed(cfg.Seed, n, p, rep),
					row:  len(out) * nAlgos,
				})
			}
		}
	}

	return out
}

// instanceSeed mixes the cell coordinates into a seed that depends only
// on (base, n, p, rep), never on the cell's position in the grid.
func instanceSeed(base int64, n int, p float64, rep int) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%d|%g|%d", base, n, p, rep)

	return int64(h.Sum64())
}
