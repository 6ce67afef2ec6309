package engine

import (
	"testing"

	"github.com/avrillon/teamsplit/core/constraint"
	"github.com/avrillon/teamsplit/core/model"
)

func TestQualityVector_LexicographicOrder(t *testing.T) {
	a := QualityVector{LevelGap: 0, SkillRange: 10}
	b := QualityVector{LevelGap: 1, SkillRange: 0}
	if !a.Less(b) {
		t.Fatalf("lower first component must win regardless of later ones")
	}
	c := QualityVector{LevelGap: 1, LevelDeviation: 0.5}
	d := QualityVector{LevelGap: 1, LevelDeviation: 0.7}
	if !c.Less(d) || d.Less(c) {
		t.Fatalf("tie on first component must fall through to the second")
	}
	if a.Less(a) {
		t.Fatalf("a vector is never strictly less than itself")
	}
}

func TestQualityVector_IsZero(t *testing.T) {
	if !(QualityVector{}).IsZero() {
		t.Fatalf("zero vector must be zero")
	}
	if (QualityVector{CategoryDeviation: 0.1}).IsZero() {
		t.Fatalf("non-zero component must not be zero")
	}
}

// buildTeams assigns each listed group slice to one team.
func buildTeams(dist Distribution, groups []*constraint.Group, layout [][]int) []*teamState {
	teams := newTeamStates(dist)
	for i, ids := range layout {
		for _, id := range ids {
			teams[i].add(groups[id])
		}
	}
	return teams
}

func TestEvaluate_AllowsRoundingSpread(t *testing.T) {
	// Levels 3,3,3,1,1,1 across two teams: any split carries a spread of one
	// per level, which the targets already allow. The gap must be zero.
	members := []model.Member{
		{Key: "a", Level: model.LevelAdvanced, Category: model.CategoryA, Present: true},
		{Key: "b", Level: model.LevelAdvanced, Category: model.CategoryA, Present: true},
		{Key: "c", Level: model.LevelAdvanced, Category: model.CategoryA, Present: true},
		{Key: "d", Level: model.LevelBeginner, Category: model.CategoryA, Present: true},
		{Key: "e", Level: model.LevelBeginner, Category: model.CategoryA, Present: true},
		{Key: "f", Level: model.LevelBeginner, Category: model.CategoryA, Present: true},
	}
	groups := constraint.FormGroups(members, constraint.Adjacency{})
	dist := ComputeTargets(members, 2)
	teams := buildTeams(dist, groups, [][]int{{0, 1, 3}, {2, 4, 5}})

	q := evaluate(teams, dist)
	if q.LevelGap != 0 {
		t.Fatalf("level gap = %v, want 0", q.LevelGap)
	}
	if q.SkillRange != 2 {
		t.Fatalf("skill range = %v, want 2", q.SkillRange)
	}
}

func TestEvaluate_PenalizesSkew(t *testing.T) {
	members := []model.Member{
		{Key: "a", Level: model.LevelAdvanced, Category: model.CategoryA, Present: true},
		{Key: "b", Level: model.LevelAdvanced, Category: model.CategoryA, Present: true},
		{Key: "c", Level: model.LevelBeginner, Category: model.CategoryB, Present: true},
		{Key: "d", Level: model.LevelBeginner, Category: model.CategoryB, Present: true},
	}
	groups := constraint.FormGroups(members, constraint.Adjacency{})
	dist := ComputeTargets(members, 2)

	balanced := buildTeams(dist, groups, [][]int{{0, 2}, {1, 3}})
	skewed := buildTeams(dist, groups, [][]int{{0, 1}, {2, 3}})

	qb, qs := evaluate(balanced, dist), evaluate(skewed, dist)
	if !qb.Less(qs) {
		t.Fatalf("balanced %v must beat skewed %v", qb, qs)
	}
	if !qb.IsZero() {
		t.Fatalf("perfectly balanced split must be the zero vector, got %v", qb)
	}
}
