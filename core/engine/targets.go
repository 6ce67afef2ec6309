package engine

import (
	"github.com/avrillon/teamsplit/core/model"
)

// Distribution holds the ideal per-team split of every balanced quantity.
// Splits are deterministic: total div teams everywhere, with one extra unit
// for the first total mod teams teams.
type Distribution struct {
	TeamSizes       []int
	CategoryTargets map[model.Category][]int
	LevelTargets    map[model.Level][]int
	// IdealSkill is the total skill divided evenly across teams.
	IdealSkill float64
	// MaxTeamSize is the largest entry of TeamSizes; no atomic group may
	// exceed it.
	MaxTeamSize int
}

// evenSplit distributes total across teams as evenly as possible.
func evenSplit(total, teams int) []int {
	out := make([]int, teams)
	base, extra := total/teams, total%teams
	for i := range out {
		out[i] = base
		if i < extra {
			out[i]++
		}
	}
	return out
}

// ComputeTargets derives the target distribution for the present members.
// Purely arithmetic; constraints play no part here.
func ComputeTargets(present []model.Member, teamCount int) Distribution {
	dist := Distribution{
		TeamSizes:       evenSplit(len(present), teamCount),
		CategoryTargets: make(map[model.Category][]int),
		LevelTargets:    make(map[model.Level][]int),
	}

	categoryTotals := make(map[model.Category]int)
	levelTotals := make(map[model.Level]int)
	skillTotal := 0
	for _, m := range present {
		categoryTotals[m.Category]++
		levelTotals[m.Level]++
		skillTotal += m.Skill()
	}
	for c, total := range categoryTotals {
		dist.CategoryTargets[c] = evenSplit(total, teamCount)
	}
	for l, total := range levelTotals {
		dist.LevelTargets[l] = evenSplit(total, teamCount)
	}
	dist.IdealSkill = float64(skillTotal) / float64(teamCount)
	for _, s := range dist.TeamSizes {
		if s > dist.MaxTeamSize {
			dist.MaxTeamSize = s
		}
	}
	return dist
}
