package engine

import (
	"github.com/avrillon/teamsplit/core/constraint"
	"github.com/avrillon/teamsplit/core/model"
)

// teamState is the mutable per-attempt accumulator for one team. Each attempt
// builds a fresh set; nothing is shared across attempts.
type teamState struct {
	index  int
	target int
	// capacity is the hard size cap shared by every team: the largest size
	// target. Teams may exceed their own target up to it when welded groups
	// leave no even shape.
	capacity      int
	groupIDs      map[int]struct{}
	size          int
	skillSum      int
	categoryCount map[model.Category]int
	levelCount    map[model.Level]int
}

func newTeamStates(dist Distribution) []*teamState {
	teams := make([]*teamState, len(dist.TeamSizes))
	for i, target := range dist.TeamSizes {
		teams[i] = &teamState{
			index:         i,
			target:        target,
			capacity:      dist.MaxTeamSize,
			groupIDs:      make(map[int]struct{}),
			categoryCount: make(map[model.Category]int),
			levelCount:    make(map[model.Level]int),
		}
	}
	return teams
}

func (t *teamState) remaining() int { return t.capacity - t.size }

// conflictsWith reports whether placing g in the team would put two excluded
// groups together.
func (t *teamState) conflictsWith(g *constraint.Group, conflicts constraint.GroupConflicts) bool {
	for id := range t.groupIDs {
		if conflicts.Conflict(g.ID, id) {
			return true
		}
	}
	return false
}

func (t *teamState) add(g *constraint.Group) {
	t.groupIDs[g.ID] = struct{}{}
	t.size += g.Size
	t.skillSum += g.SkillSum
	for c, n := range g.CategoryCount {
		t.categoryCount[c] += n
	}
	for l, n := range g.LevelCount {
		t.levelCount[l] += n
	}
}

func (t *teamState) remove(g *constraint.Group) {
	delete(t.groupIDs, g.ID)
	t.size -= g.Size
	t.skillSum -= g.SkillSum
	for c, n := range g.CategoryCount {
		t.categoryCount[c] -= n
	}
	for l, n := range g.LevelCount {
		t.levelCount[l] -= n
	}
}
