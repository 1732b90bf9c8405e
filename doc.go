// Package tnopt computes optimal pairwise contraction orders for tensor
// networks: given a set of abstract tensors described by labeled legs and
// dimensions, it finds the sequence of binary contractions that minimizes
// the total number of scalar multiplications, along with a peak-memory
// upper bound for executing that sequence.
//
// The search itself lives in the contraction subpackage:
//
//	contraction/ — bit encoding, connectivity check, cost kernel, greedy
//	               upper bound, exhaustive branch-and-bound search, and
//	               path reconstruction
//
// A thin CLI wrapper (JSON in, human-readable summary out) lives in
// cmd/contractorder.
//
// The contraction-ordering problem is NP-hard in general; this module
// keeps the exhaustive search tractable by pruning it with a greedy-derived
// upper bound (pruning never discards a cheaper path), and trades
// completeness for practicality by refusing inputs that would require
// outer products, traces, hyper-edges, or disconnected networks.
//
//	go get tnopt/contraction
package tnopt
