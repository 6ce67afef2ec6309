package engine

import (
	"sort"

	"github.com/avrillon/teamsplit/core/constraint"
)

// defaultRefinerIterations caps the hill-climbing loop.
const defaultRefinerIterations = 120

// move is a candidate neighborhood step: relocate src to the to team, or swap
// src and dst between their teams when dst is non-nil.
type move struct {
	src, dst *constraint.Group
	from, to *teamState
}

func (m move) apply() {
	m.from.remove(m.src)
	m.to.add(m.src)
	if m.dst != nil {
		m.to.remove(m.dst)
		m.from.add(m.dst)
	}
}

func (m move) revert() {
	m.to.remove(m.src)
	m.from.add(m.src)
	if m.dst != nil {
		m.from.remove(m.dst)
		m.to.add(m.dst)
	}
}

// refine improves a feasible allocation in place with best-improvement hill
// climbing over two move types: single-group relocations and pairwise swaps
// between two teams. The neighborhood deliberately stops there; multi-team
// rotations are out of reach and some local optima remain. Deterministic for
// a given starting allocation.
func refine(teams []*teamState, groups []*constraint.Group, conflicts constraint.GroupConflicts, dist Distribution, maxIter int) QualityVector {
	if maxIter <= 0 {
		maxIter = defaultRefinerIterations
	}
	location := make(map[int]*teamState, len(groups))
	for _, t := range teams {
		for id := range t.groupIDs {
			location[id] = t
		}
	}

	current := evaluate(teams, dist)
	for iter := 0; iter < maxIter; iter++ {
		best := current
		var bestMove move
		found := false

		for _, g := range groups {
			from := location[g.ID]
			for _, to := range teams {
				if to == from {
					continue
				}
				if m := (move{src: g, from: from, to: to}); relocationFits(m, conflicts) {
					if q := tryMove(m, teams, dist); q.Less(best) {
						best, bestMove, found = q, m, true
					}
				}
				// Snapshot and sort the swap partners: tryMove mutates the
				// team's group set, and map order would make the search
				// nondeterministic.
				partners := make([]int, 0, len(to.groupIDs))
				for id := range to.groupIDs {
					partners = append(partners, id)
				}
				sort.Ints(partners)
				for _, dst := range partners {
					d := groups[dst]
					m := move{src: g, dst: d, from: from, to: to}
					if !swapFits(m, conflicts) {
						continue
					}
					if q := tryMove(m, teams, dist); q.Less(best) {
						best, bestMove, found = q, m, true
					}
				}
			}
		}
		if !found {
			break
		}
		bestMove.apply()
		location[bestMove.src.ID] = bestMove.to
		if bestMove.dst != nil {
			location[bestMove.dst.ID] = bestMove.from
		}
		current = best
	}
	return current
}

// tryMove applies m, evaluates the resulting allocation and reverts.
func tryMove(m move, teams []*teamState, dist Distribution) QualityVector {
	m.apply()
	q := evaluate(teams, dist)
	m.revert()
	return q
}

// relocationFits checks capacity and conflicts for a single-group move.
func relocationFits(m move, conflicts constraint.GroupConflicts) bool {
	if m.to.remaining() < m.src.Size {
		return false
	}
	return !m.to.conflictsWith(m.src, conflicts)
}

// swapFits checks capacity and conflicts for exchanging src and dst. Each
// group is tested against the destination team with the other group already
// removed.
func swapFits(m move, conflicts constraint.GroupConflicts) bool {
	if m.to.remaining()+m.dst.Size < m.src.Size {
		return false
	}
	if m.from.remaining()+m.src.Size < m.dst.Size {
		return false
	}
	m.to.remove(m.dst)
	okSrc := !m.to.conflictsWith(m.src, conflicts)
	m.to.add(m.dst)
	if !okSrc {
		return false
	}
	m.from.remove(m.src)
	okDst := !m.from.conflictsWith(m.dst, conflicts)
	m.from.add(m.src)
	return okDst
}
