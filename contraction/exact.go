// Package contraction — exhaustive searcher.
//
// ExhaustiveSearch is a branch-and-bound dynamic program over the lattice of
// contracted-leg subsets. States are grouped by generation (popcount of
// their ID); generation g holds, for every reachable ID of that popcount,
// the minimum-CPU state found so far. The terminal generation is never
// stored — it lives in a single "current best" slot seeded from Greedy.
//
// Pruning is safe because cost is monotonic non-decreasing along any parent
// chain (every contraction's added cost is >= 0) and the root cost is 0:
// once a parent's CPU already meets or exceeds best.CPU, no descendant can
// beat best either.
package contraction

import "math/bits"

// ExhaustiveSearch runs the branch-and-bound DP described above.
//
// contractedCount is C from Encode; generationTables[g] (for g in
// [0, C-1]) maps a reachable ID of popcount g to its minimum-CPU state.
// generationTables has length contractedCount (0 when contractedCount==0,
// i.e. the network is already fully contracted).
//
// Errors: whatever Greedy returns (ErrUnreachable when the greedy walk
// reaches a non-terminal state whose every pair contraction overflows).
//
// Complexity: worst case O(2^C) state records; in practice the greedy bound
// prunes the overwhelming majority of the lattice.
func ExhaustiveSearch(root State, contractedCount int) (best State, generationTables []map[uint64]State, warnings []Warning, err error) {
	if contractedCount == 0 {
		return root, nil, nil, nil
	}

	greedyBest, _, gw, gerr := Greedy(root, contractedCount)
	if gerr != nil {
		return State{}, nil, nil, gerr
	}
	best = greedyBest
	warnings = append(warnings, gw...)

	generationTables = make([]map[uint64]State, contractedCount)
	for g := 0; g < contractedCount; g++ {
		generationTables[g] = make(map[uint64]State)
	}
	generationTables[0][root.ID] = root

	var (
		g        int
		parent   State
		child    State
		cg       int
		id       uint64
		existing State
		ok       bool
	)
	for g = 0; g < contractedCount; g++ {
		for _, parent = range generationTables[g] {
			if parent.CPU >= best.CPU {
				continue // pruned: no descendant of parent can beat best
			}
			children, genWarn := GenerateChildren(&parent)
			warnings = append(warnings, genWarn...)

			for _, child = range children {
				if child.CPU >= best.CPU {
					continue // pruned
				}
				cg = bits.OnesCount64(child.ID)
				if cg == contractedCount {
					best = child
					continue
				}
				id = child.ID
				existing, ok = generationTables[cg][id]
				if !ok || child.CPU < existing.CPU {
					generationTables[cg][id] = child
				}
			}
		}
	}

	return best, generationTables, warnings, nil
}
