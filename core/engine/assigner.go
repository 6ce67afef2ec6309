package engine

import (
	"math"
	"math/rand"
	"sort"

	"github.com/avrillon/teamsplit/core/constraint"
	"github.com/avrillon/teamsplit/core/model"
)

// Penalty weights for the greedy placement score. Overfilling a target is
// discouraged roughly 20 times harder than underfilling one.
const (
	skillWeight     = 1.3
	overfillWeight  = 2.0
	underfillWeight = 0.1
	// tieEps is the tolerance under which two placement penalties count as
	// tied; ties are broken uniformly at random.
	tieEps = 1e-4
)

// assign performs one randomized construction attempt. Groups are shuffled,
// then stable-sorted so the hardest to place come first: descending conflict
// degree, then size, then skill sum. The shuffle still randomizes ties, which
// is where attempt-to-attempt diversity comes from. Every team is capped at
// the largest size target; teams still under their own target are preferred,
// and exceeding the target up to the cap is the fallback that keeps welded
// groups placeable when no even shape exists. Returns ok=false when some
// group has no eligible team; the caller simply tries again.
func assign(rng *rand.Rand, groups []*constraint.Group, conflicts constraint.GroupConflicts, dist Distribution) ([]*teamState, bool) {
	order := make([]*constraint.Group, len(groups))
	copy(order, groups)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	sort.SliceStable(order, func(i, j int) bool {
		di, dj := conflicts.Degree(order[i].ID), conflicts.Degree(order[j].ID)
		if di != dj {
			return di > dj
		}
		if order[i].Size != order[j].Size {
			return order[i].Size > order[j].Size
		}
		return order[i].SkillSum > order[j].SkillSum
	})

	teams := newTeamStates(dist)
	var tied []*teamState
	for _, g := range order {
		best := math.Inf(1)
		bestOver := true
		tied = tied[:0]
		for _, t := range teams {
			if t.remaining() < g.Size || t.conflictsWith(g, conflicts) {
				continue
			}
			over := t.size+g.Size > t.target
			if over && !bestOver {
				continue
			}
			p := placementPenalty(t, g, dist)
			switch {
			case !over && bestOver, p < best-tieEps:
				best, bestOver = p, over
				tied = append(tied[:0], t)
			case p <= best+tieEps:
				tied = append(tied, t)
			}
		}
		if len(tied) == 0 {
			return nil, false
		}
		tied[rng.Intn(len(tied))].add(g)
	}
	return teams, true
}

// placementPenalty scores putting g into t; lower is better.
func placementPenalty(t *teamState, g *constraint.Group, dist Distribution) float64 {
	newSkill := float64(t.skillSum + g.SkillSum)
	scale := math.Max(dist.IdealSkill, 1)
	penalty := skillWeight * math.Abs(newSkill-dist.IdealSkill) / scale

	penalty += float64(t.size+g.Size) / float64(t.target)
	if over := t.size + g.Size - t.target; over > 0 {
		penalty += overfillWeight * float64(over)
	}

	for c, n := range g.CategoryCount {
		if c == model.CategoryUnknown {
			continue
		}
		target := dist.CategoryTargets[c][t.index]
		newCount := t.categoryCount[c] + n
		if over := newCount - target; over > 0 {
			penalty += overfillWeight * float64(over)
		} else {
			penalty += underfillWeight * float64(target-newCount)
		}
	}
	return penalty
}
