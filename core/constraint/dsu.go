package constraint

// dsu is a disjoint-set over identity keys with union by rank. find is
// iterative with path compression so deep cohesion chains cannot grow the
// stack.
type dsu struct {
	parent map[string]string
	rank   map[string]int
}

func newDSU(keys []string) *dsu {
	d := &dsu{
		parent: make(map[string]string, len(keys)),
		rank:   make(map[string]int, len(keys)),
	}
	for _, k := range keys {
		d.parent[k] = k
	}
	return d
}

func (d *dsu) find(u string) string {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}
	return u
}

func (d *dsu) union(u, v string) {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return
	}
	if d.rank[ru] < d.rank[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	if d.rank[ru] == d.rank[rv] {
		d.rank[ru]++
	}
}
