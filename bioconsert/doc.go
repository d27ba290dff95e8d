// Package bioconsert implements the BioConsert local search for consensus
// bucket orders.
//
// 🚀 What does it do?
//
//	Starting from each departure ranking, the engine repeatedly relocates
//	one element — into an existing bucket (change-bucket move) or into a
//	newly inserted singleton bucket (add-bucket move) — whenever the move
//	strictly decreases the total pairwise cost, and stops at a strict
//	local minimum.
//
// The engine works in sweeps over elements 0..n-1. For each candidate
// element it computes, in one O(n) pass over a precomputed pairwise cost
// matrix row, the marginal delta of every legal target position, then
// resolves full deltas with two directed prefix sums around the element's
// current bucket. Selection is first-improvement with upward bias:
// change-bucket targets above the current bucket first, then below, then
// add-bucket targets in the same order.
//
// Design:
//   - Deterministic: fixed sweep and scan order, no RNG.
//   - Strict sentinel errors only; no logging; no panics on user input.
//   - Allocation-conscious: two scratch vectors reused across sweeps; the
//     ranking is mutated in place and its bucket indices stay contiguous
//     after every applied move.
//
// Complexity:
//   - One sweep: O(n²) plus O(n) per applied move.
//   - Termination: the total cost strictly decreases with every applied
//     move and is bounded below, so a sweep without improvement is reached.
//
// Entry points: Solve (positions + scheme), SolveWithMatrix (prebuilt
// cost matrix, many departures), ImproveRanking (single ranking).
package bioconsert
