package constraint

import (
	"sort"

	"github.com/avrillon/teamsplit/core/model"
)

// Group is an atomic allocation unit: one or more present members welded
// together by cohesion rules. Size-1 groups are the common case and behave
// exactly like individual members downstream. A Group is immutable once
// formed for a generation call.
type Group struct {
	ID            int
	Members       []model.Member
	Size          int
	SkillSum      int
	CategoryCount map[model.Category]int
	LevelCount    map[model.Level]int
}

// FormGroups merges cohesion-linked present members into atomic groups via
// disjoint-set union. Every present member lands in exactly one group. Group
// IDs and member order are deterministic: members are processed in key order
// and groups numbered by their first member.
func FormGroups(present []model.Member, cohesion Adjacency) []*Group {
	ordered := make([]model.Member, len(present))
	copy(ordered, present)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Key < ordered[j].Key })

	keys := make([]string, len(ordered))
	for i, m := range ordered {
		keys[i] = m.Key
	}
	sets := newDSU(keys)
	for u, neighbours := range cohesion {
		for v := range neighbours {
			sets.union(u, v)
		}
	}

	byRoot := make(map[string]*Group)
	var groups []*Group
	for _, m := range ordered {
		root := sets.find(m.Key)
		g, ok := byRoot[root]
		if !ok {
			g = &Group{
				ID:            len(groups),
				CategoryCount: make(map[model.Category]int),
				LevelCount:    make(map[model.Level]int),
			}
			byRoot[root] = g
			groups = append(groups, g)
		}
		g.Members = append(g.Members, m)
		g.Size++
		g.SkillSum += m.Skill()
		g.CategoryCount[m.Category]++
		g.LevelCount[m.Level]++
	}
	return groups
}
