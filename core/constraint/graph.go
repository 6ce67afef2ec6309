// Package constraint turns active pair rules into the structures the
// allocator works on: adjacency maps over present members, cohesion-merged
// atomic groups and a group-level conflict graph.
package constraint

import (
	"github.com/avrillon/teamsplit/core/model"
)

// Adjacency is an undirected adjacency map over identity keys.
type Adjacency map[string]map[string]struct{}

// BuildAdjacency builds an adjacency map from active rules. Rules are assumed
// validated: no self-loops, both endpoints present. Duplicate edges collapse.
func BuildAdjacency(rules []model.PairRule) Adjacency {
	adj := make(Adjacency, len(rules))
	for _, r := range rules {
		adj.add(r.A, r.B)
		adj.add(r.B, r.A)
	}
	return adj
}

func (a Adjacency) add(u, v string) {
	set, ok := a[u]
	if !ok {
		set = make(map[string]struct{})
		a[u] = set
	}
	set[v] = struct{}{}
}

// Linked reports whether u and v are adjacent.
func (a Adjacency) Linked(u, v string) bool {
	_, ok := a[u][v]
	return ok
}

// Degree returns the number of neighbours of key.
func (a Adjacency) Degree(key string) int { return len(a[key]) }
