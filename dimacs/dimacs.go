package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/maxclique/core"
)

// Record type tokens and accepted problem-line formats.
const (
	recComment = "c"
	recProblem = "p"
	recEdge    = "e"

	fmtEdge = "edge"
	fmtCol  = "col"
)

// Read parses a DIMACS document from r into an immutable graph.
//
// The problem line must precede every edge record. Self-loops surface
// core.ErrSelfLoop; endpoints outside 1..n surface ErrNodeRange. Every
// error carries the offending line number.
//
// Complexity: O(L + E) time over L input lines, O(V+E) memory.
func Read(r io.Reader) (*core.Graph, error) {
	var (
		b      = core.NewBuilder()
		sc     = bufio.NewScanner(r)
		n      int
		seenP  bool
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue // blank line
		}
		switch fields[0] {
		case recComment:
			continue
		case recProblem:
			if seenP {
				return nil, fmt.Errorf("dimacs: line %d: duplicate problem line: %w", lineNo, ErrBadHeader)
			}
			declared, err := parseProblem(fields)
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, err)
			}
			n = declared
			seenP = true
			// Materialize all declared vertices up front so isolated ones
			// are not lost.
			for i := 1; i <= n; i++ {
				b.AddNode(core.Node(i))
			}
		case recEdge:
			if !seenP {
				return nil, fmt.Errorf("dimacs: line %d: edge before problem line: %w", lineNo, ErrBadHeader)
			}
			u, v, err := parseEdge(fields, n)
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, err)
			}
			if err := b.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, err)
			}
		default:
			return nil, fmt.Errorf("dimacs: line %d: unknown record type %q: %w", lineNo, fields[0], ErrBadRecord)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read: %w", err)
	}
	if !seenP {
		return nil, fmt.Errorf("dimacs: %w", ErrBadHeader)
	}

	return b.Graph(), nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Write emits g as a deterministic DIMACS document: the problem line,
// then one edge record per edge, sorted ascending. Vertices are
// renumbered 1..n in ascending Node order, so a graph that came from
// Read writes back byte-identically.
//
// Complexity: O(V log V + E log E).
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	nodes := g.Nodes()
	edges := g.Edges()
	if _, err := fmt.Fprintf(w, "p edge %d %d\n", len(nodes), len(edges)); err != nil {
		return fmt.Errorf("dimacs: write problem line: %w", err)
	}

	// Ascending Node order makes the renumbering order-preserving, so
	// canonical U < V endpoints stay ascending after the mapping.
	id := make(map[core.Node]int, len(nodes))
	for i, v := range nodes {
		id[v] = i + 1
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "e %d %d\n", id[e.U], id[e.V]); err != nil {
			return fmt.Errorf("dimacs: write edge: %w", err)
		}
	}

	return nil
}

// WriteFile creates path (truncating any previous content) and delegates
// to Write through a buffered writer.
func WriteFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dimacs: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := Write(bw, g); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("dimacs: flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("dimacs: close %s: %w", path, err)
	}

	return nil
}

// parseProblem validates "p edge <n> <m>" and returns n. The declared
// edge count m must be a non-negative integer but is otherwise ignored.
func parseProblem(fields []string) (int, error) {
	if len(fields) != 4 {
		return 0, fmt.Errorf("problem line needs 4 fields, got %d: %w", len(fields), ErrBadHeader)
	}
	if f := fields[1]; f != fmtEdge && f != fmtCol {
		return 0, fmt.Errorf("format %q (want %q or %q): %w", f, fmtEdge, fmtCol, ErrBadHeader)
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("vertex count %q: %w", fields[2], ErrBadHeader)
	}
	if m, err := strconv.Atoi(fields[3]); err != nil || m < 0 {
		return 0, fmt.Errorf("edge count %q: %w", fields[3], ErrBadHeader)
	}

	return n, nil
}

// parseEdge validates "e <u> <v>" against the declared range 1..n.
func parseEdge(fields []string, n int) (core.Node, core.Node, error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("edge record needs 3 fields, got %d: %w", len(fields), ErrBadRecord)
	}
	u, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("endpoint %q: %w", fields[1], ErrBadRecord)
	}
	v, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("endpoint %q: %w", fields[2], ErrBadRecord)
	}
	if u < 1 || u > n || v < 1 || v > n {
		return 0, 0, fmt.Errorf("e %d %d with n=%d: %w", u, v, n, ErrNodeRange)
	}

	return core.Node(u), core.Node(v), nil
}
