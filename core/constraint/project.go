package constraint

import "fmt"

// ContradictionError names two members tied together by cohesion rules while
// an exclusion rule forbids them from sharing a team.
type ContradictionError struct {
	KeyA string
	KeyB string
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("rules contradict for %q and %q: linked by cohesion but excluded from sharing a team", e.KeyA, e.KeyB)
}

// GroupConflicts is the exclusion adjacency lifted to group level.
type GroupConflicts map[int]map[int]struct{}

// Degree returns the number of groups conflicting with id.
func (c GroupConflicts) Degree(id int) int { return len(c[id]) }

// Conflict reports whether two groups may not share a team.
func (c GroupConflicts) Conflict(a, b int) bool {
	_, ok := c[a][b]
	return ok
}

// ProjectConflicts lifts member-level exclusion adjacency onto atomic groups:
// two groups conflict if any member of one excludes any member of the other.
// If an exclusion edge falls inside a single group the rule sets contradict
// each other and a *ContradictionError naming the pair is returned.
func ProjectConflicts(groups []*Group, exclusion Adjacency) (GroupConflicts, error) {
	owner := make(map[string]int)
	for _, g := range groups {
		for _, m := range g.Members {
			owner[m.Key] = g.ID
		}
	}

	conflicts := make(GroupConflicts, len(groups))
	for u, neighbours := range exclusion {
		gu, ok := owner[u]
		if !ok {
			continue
		}
		for v := range neighbours {
			gv, ok := owner[v]
			if !ok {
				continue
			}
			if gu == gv {
				a, b := u, v
				if b < a {
					a, b = b, a
				}
				return nil, &ContradictionError{KeyA: a, KeyB: b}
			}
			addConflict(conflicts, gu, gv)
			addConflict(conflicts, gv, gu)
		}
	}
	return conflicts, nil
}

func addConflict(c GroupConflicts, a, b int) {
	set, ok := c[a]
	if !ok {
		set = make(map[int]struct{})
		c[a] = set
	}
	set[b] = struct{}{}
}
