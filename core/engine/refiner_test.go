package engine

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/avrillon/teamsplit/core/constraint"
	"github.com/avrillon/teamsplit/core/model"
)

func TestRefine_ImprovesSkewedAllocation(t *testing.T) {
	members := []model.Member{
		{Key: "a", Level: model.LevelAdvanced, Category: model.CategoryA, Present: true},
		{Key: "b", Level: model.LevelAdvanced, Category: model.CategoryA, Present: true},
		{Key: "c", Level: model.LevelBeginner, Category: model.CategoryB, Present: true},
		{Key: "d", Level: model.LevelBeginner, Category: model.CategoryB, Present: true},
	}
	groups := constraint.FormGroups(members, constraint.Adjacency{})
	dist := ComputeTargets(members, 2)
	conflicts := constraint.GroupConflicts{}

	// Start from the worst split: both advanced members on one team.
	teams := buildTeams(dist, groups, [][]int{{0, 1}, {2, 3}})
	before := evaluate(teams, dist)
	after := refine(teams, groups, conflicts, dist, 0)

	if !after.Less(before) {
		t.Fatalf("refiner did not improve: before %v after %v", before, after)
	}
	if !after.IsZero() {
		t.Fatalf("a single swap reaches the zero vector, got %v", after)
	}
}

func TestRefine_RelocationChangesTeamSizes(t *testing.T) {
	// Both advanced members start on the full first team. With seven members
	// across three teams the only gap-closing moves change team sizes, so the
	// refiner must use a relocation, not just equal-size swaps.
	members := []model.Member{
		{Key: "a", Level: model.LevelAdvanced, Category: model.CategoryA, Present: true},
		{Key: "b", Level: model.LevelAdvanced, Category: model.CategoryB, Present: true},
		{Key: "c", Level: model.LevelBeginner, Category: model.CategoryA, Present: true},
		{Key: "d", Level: model.LevelBeginner, Category: model.CategoryB, Present: true},
		{Key: "e", Level: model.LevelBeginner, Category: model.CategoryA, Present: true},
		{Key: "f", Level: model.LevelBeginner, Category: model.CategoryB, Present: true},
		{Key: "g", Level: model.LevelBeginner, Category: model.CategoryA, Present: true},
	}
	groups := constraint.FormGroups(members, constraint.Adjacency{})
	dist := ComputeTargets(members, 3)
	conflicts := constraint.GroupConflicts{}

	teams := buildTeams(dist, groups, [][]int{{0, 1, 2}, {3, 4}, {5, 6}})
	before := evaluate(teams, dist)
	after := refine(teams, groups, conflicts, dist, 0)

	if !after.Less(before) {
		t.Fatalf("refiner did not improve: before %v after %v", before, after)
	}
	if after.LevelGap != 0 {
		t.Fatalf("relocating one advanced member closes the level gap, got %v", after)
	}
	sizes := []int{teams[0].size, teams[1].size, teams[2].size}
	sort.Ints(sizes)
	if !reflect.DeepEqual(sizes, []int{2, 2, 3}) {
		t.Fatalf("expected a size-changing relocation, sizes %v", sizes)
	}
}

func TestRefine_RespectsConflicts(t *testing.T) {
	members := []model.Member{
		{Key: "a", Level: model.LevelAdvanced, Category: model.CategoryA, Present: true},
		{Key: "b", Level: model.LevelAdvanced, Category: model.CategoryA, Present: true},
		{Key: "c", Level: model.LevelBeginner, Category: model.CategoryA, Present: true},
		{Key: "d", Level: model.LevelBeginner, Category: model.CategoryA, Present: true},
	}
	groups := constraint.FormGroups(members, constraint.Adjacency{})
	dist := ComputeTargets(members, 2)
	// a and c must never meet: the balancing swap is forbidden.
	exclusion := constraint.BuildAdjacency([]model.PairRule{{A: "a", B: "c"}})
	conflicts, err := constraint.ProjectConflicts(groups, exclusion)
	if err != nil {
		t.Fatalf("project: %v", err)
	}

	teams := buildTeams(dist, groups, [][]int{{0, 1}, {2, 3}})
	refine(teams, groups, conflicts, dist, 0)

	for _, team := range teams {
		_, hasA := team.groupIDs[0]
		_, hasC := team.groupIDs[2]
		if hasA && hasC {
			t.Fatalf("refiner placed conflicting groups together")
		}
	}
}

func TestAssign_RespectsCapacityAndConflicts(t *testing.T) {
	members := []model.Member{
		{Key: "a", Level: model.LevelAdvanced, Category: model.CategoryA, Present: true},
		{Key: "b", Level: model.LevelIntermediate, Category: model.CategoryB, Present: true},
		{Key: "c", Level: model.LevelIntermediate, Category: model.CategoryA, Present: true},
		{Key: "d", Level: model.LevelBeginner, Category: model.CategoryB, Present: true},
	}
	groups := constraint.FormGroups(members, constraint.Adjacency{})
	exclusion := constraint.BuildAdjacency([]model.PairRule{{A: "a", B: "b"}})
	conflicts, err := constraint.ProjectConflicts(groups, exclusion)
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	dist := ComputeTargets(members, 2)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		teams, ok := assign(rng, groups, conflicts, dist)
		if !ok {
			t.Fatalf("attempt %d infeasible on a trivially feasible input", i)
		}
		for _, team := range teams {
			if team.size > team.capacity {
				t.Fatalf("team over capacity: %d > %d", team.size, team.capacity)
			}
			_, hasA := team.groupIDs[0]
			_, hasB := team.groupIDs[1]
			if hasA && hasB {
				t.Fatalf("attempt %d placed excluded groups together", i)
			}
		}
	}
}

func TestAssign_InfeasibleReturnsFalse(t *testing.T) {
	// Three mutually exclusive members across two teams cannot be placed.
	members := []model.Member{
		{Key: "a", Level: model.LevelIntermediate, Category: model.CategoryA, Present: true},
		{Key: "b", Level: model.LevelIntermediate, Category: model.CategoryA, Present: true},
		{Key: "c", Level: model.LevelIntermediate, Category: model.CategoryA, Present: true},
	}
	groups := constraint.FormGroups(members, constraint.Adjacency{})
	exclusion := constraint.BuildAdjacency([]model.PairRule{
		{A: "a", B: "b"}, {A: "b", B: "c"}, {A: "a", B: "c"},
	})
	conflicts, err := constraint.ProjectConflicts(groups, exclusion)
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	dist := ComputeTargets(members, 2)

	rng := rand.New(rand.NewSource(1))
	if _, ok := assign(rng, groups, conflicts, dist); ok {
		t.Fatalf("expected infeasible attempt")
	}
}
