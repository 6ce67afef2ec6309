package engine

import (
	"testing"

	"github.com/avrillon/teamsplit/core/model"
)

func TestEvenSplit(t *testing.T) {
	cases := []struct {
		total, teams int
		want         []int
	}{
		{10, 2, []int{5, 5}},
		{7, 3, []int{3, 2, 2}},
		{2, 4, []int{1, 1, 0, 0}},
		{0, 2, []int{0, 0}},
	}
	for _, c := range cases {
		got := evenSplit(c.total, c.teams)
		for i := range c.want {
			if got[i] != c.want[i] {
				t.Fatalf("evenSplit(%d,%d) = %v, want %v", c.total, c.teams, got, c.want)
			}
		}
	}
}

func TestComputeTargets(t *testing.T) {
	present := []model.Member{
		{Key: "a", Level: model.LevelAdvanced, Category: model.CategoryA, Present: true},
		{Key: "b", Level: model.LevelAdvanced, Category: model.CategoryA, Present: true},
		{Key: "c", Level: model.LevelBeginner, Category: model.CategoryB, Present: true},
		{Key: "d", Level: model.LevelBeginner, Category: model.CategoryB, Present: true},
		{Key: "e", Level: model.LevelBeginner, Category: model.CategoryB, Present: true},
	}
	dist := ComputeTargets(present, 2)

	if dist.TeamSizes[0] != 3 || dist.TeamSizes[1] != 2 {
		t.Fatalf("team sizes = %v", dist.TeamSizes)
	}
	if dist.MaxTeamSize != 3 {
		t.Fatalf("max team size = %d", dist.MaxTeamSize)
	}
	if got := dist.CategoryTargets[model.CategoryB]; got[0] != 2 || got[1] != 1 {
		t.Fatalf("category B targets = %v", got)
	}
	if got := dist.LevelTargets[model.LevelAdvanced]; got[0] != 1 || got[1] != 1 {
		t.Fatalf("level 3 targets = %v", got)
	}
	// total skill 3+3+1+1+1 = 9 over two teams
	if dist.IdealSkill != 4.5 {
		t.Fatalf("ideal skill = %v", dist.IdealSkill)
	}
}
