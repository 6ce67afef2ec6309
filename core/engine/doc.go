// Package engine implements the constraint-aware team allocation core.
//
// Given a roster of members with a skill level, a category attribute and a
// presence flag, plus two pairwise rule sets (exclusion: must never share a
// team; cohesion: must always share a team), the engine partitions the
// present subset into N near-balanced teams.
//
// Pipeline for one Generate call:
//  1. Normalize identities and reject duplicates (core/roster).
//  2. Classify rules; self-referential or dangling rules abort generation.
//  3. Build exclusion and cohesion adjacency, weld cohesion-linked members
//     into atomic groups and lift conflicts to group level (core/constraint).
//  4. Compute the target distribution: per-team size, category and level
//     targets via even split with remainder to the first teams.
//  5. Attempt loop, up to MaxAttempts: randomized greedy construction,
//     best-improvement local search (relocations and pairwise swaps), then
//     quality evaluation. The strictly best feasible allocation is kept and
//     a perfect (zero) quality vector exits early.
//
// Quality is a lexicographically ordered vector: level count gap, level
// deviation, skill range, skill deviation, category deviation. All randomness
// flows from one seedable PRNG per call, so a seeded engine is fully
// deterministic and every attempt remains independent.
//
// Failures are typed *Error values with an error kind and an actionable
// suggestion; the engine never returns a partial allocation.
package engine
