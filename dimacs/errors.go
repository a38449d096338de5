package dimacs

import "errors"

var (
	// ErrBadHeader indicates a missing, duplicated, or malformed problem
	// line ("p edge <n> <m>").
	ErrBadHeader = errors.New("dimacs: malformed or missing problem line")
	// ErrBadRecord indicates an edge record with the wrong shape or an
	// unknown record type.
	ErrBadRecord = errors.New("dimacs: malformed record")
	// ErrNodeRange indicates an edge endpoint outside 1..n.
	ErrNodeRange = errors.New("dimacs: endpoint outside declared vertex range")
	// ErrNilGraph indicates Write was handed a nil graph.
	ErrNilGraph = errors.New("dimacs: nil graph")
)
