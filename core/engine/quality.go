package engine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/avrillon/teamsplit/core/model"
)

// qualityEps is the tolerance under which two vector components are
// considered equal.
const qualityEps = 1e-9

// QualityVector summarizes how far an allocation is from perfect balance.
// Components are compared lexicographically in field order; smaller is
// strictly better and the zero vector is the ideal outcome.
type QualityVector struct {
	// LevelGap sums, per level, the spread between the fullest and the
	// emptiest team beyond the rounding spread the targets themselves carry.
	// A level whose total does not divide evenly across teams is allowed a
	// spread of one without penalty.
	LevelGap float64
	// LevelDeviation sums the per-level population standard deviation of
	// team counts.
	LevelDeviation float64
	// SkillRange is the spread between the strongest and weakest team.
	SkillRange float64
	// SkillDeviation is the population standard deviation of team skill sums.
	SkillDeviation float64
	// CategoryDeviation sums the per-category population standard deviation
	// of team counts.
	CategoryDeviation float64
}

func (q QualityVector) components() [5]float64 {
	return [5]float64{q.LevelGap, q.LevelDeviation, q.SkillRange, q.SkillDeviation, q.CategoryDeviation}
}

// Less reports whether q is strictly better than o under lexicographic order.
func (q QualityVector) Less(o QualityVector) bool {
	a, b := q.components(), o.components()
	for i := range a {
		if math.Abs(a[i]-b[i]) <= qualityEps {
			continue
		}
		return a[i] < b[i]
	}
	return false
}

// IsZero reports whether the vector is the perfect outcome.
func (q QualityVector) IsZero() bool {
	for _, c := range q.components() {
		if c > qualityEps {
			return false
		}
	}
	return true
}

func (q QualityVector) String() string {
	return fmt.Sprintf("(gap=%.0f levσ=%.3f range=%.0f skillσ=%.3f catσ=%.3f)",
		q.LevelGap, q.LevelDeviation, q.SkillRange, q.SkillDeviation, q.CategoryDeviation)
}

// evaluate computes the quality vector of a full allocation.
func evaluate(teams []*teamState, dist Distribution) QualityVector {
	var q QualityVector

	counts := make([]float64, len(teams))
	targets := make([]float64, len(teams))
	for level, perTeam := range dist.LevelTargets {
		for i, t := range teams {
			counts[i] = float64(t.levelCount[level])
			targets[i] = float64(perTeam[i])
		}
		spread := floats.Max(counts) - floats.Min(counts)
		allowed := floats.Max(targets) - floats.Min(targets)
		if gap := spread - allowed; gap > 0 {
			q.LevelGap += gap
		}
		q.LevelDeviation += stat.PopStdDev(counts, nil)
	}

	skills := make([]float64, len(teams))
	for i, t := range teams {
		skills[i] = float64(t.skillSum)
	}
	q.SkillRange = floats.Max(skills) - floats.Min(skills)
	q.SkillDeviation = stat.PopStdDev(skills, nil)

	for category := range dist.CategoryTargets {
		if category == model.CategoryUnknown {
			continue
		}
		for i, t := range teams {
			counts[i] = float64(t.categoryCount[category])
		}
		q.CategoryDeviation += stat.PopStdDev(counts, nil)
	}
	return q
}
