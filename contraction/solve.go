// Package contraction — public entry point.
//
// Solve runs the full pipeline described in the package doc: encode the
// network into bitmasks, reject disconnected input, seed a greedy upper
// bound, exhaustively search the contracted-leg lattice under that bound,
// and decode the winning path back into leg labels.
package contraction

// Solve computes the minimum-cost pairwise contraction order for tensors.
//
// Contract: tensors must describe a single tensor network — every leg
// label occurs at most twice across all tensors (shared legs contract,
// unshared legs stay open), and no tensor repeats a label against itself.
//
// Returns: a Result holding the ordered leg groups consumed at each
// contraction step, the total scalar-multiplication cost, and the peak
// memory upper bound; plus any outer-product diagnostics observed while
// searching.
//
// Errors: ErrShapeLegMismatch, ErrInvalidDimension, ErrTrace, ErrHyperEdge,
// ErrDimensionConflict, ErrTooManyLegs, ErrNoTensors (from Encode);
// ErrDisconnected (from CheckConnected); ErrSizeOverflow (from
// NewRootState); ErrUnreachable (from the search, when the greedy walk
// reaches a state whose every pair contraction overflows).
func Solve(tensors []AbstractTensor) (Result, []Warning, error) {
	legLabels, legDims, tensorMasks, contractedCount, err := Encode(tensors)
	if err != nil {
		return Result{}, nil, err
	}

	if err := CheckConnected(tensorMasks); err != nil {
		return Result{}, nil, err
	}

	root, err := NewRootState(legDims, tensorMasks)
	if err != nil {
		return Result{}, nil, err
	}

	best, generationTables, warnings, err := ExhaustiveSearch(root, contractedCount)
	if err != nil {
		return Result{}, nil, err
	}

	steps := Reconstruct(best, generationTables, contractedCount, legLabels)

	return Result{Steps: steps, CPU: best.CPU, Mem: best.Mem}, warnings, nil
}
