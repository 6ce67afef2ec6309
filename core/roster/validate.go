package roster

import (
	"github.com/avrillon/teamsplit/core/model"
)

// RuleReport is the outcome of classifying one rule set against a roster.
type RuleReport struct {
	// Active holds deduplicated rules whose members are both in the present
	// subset. Only these participate in allocation.
	Active []model.PairRule
	// SelfReferential holds rules whose two sides normalize to the same
	// identity. Always invalid.
	SelfReferential []model.PairRule
	// Dangling holds rules referencing an identity absent from the full
	// roster. Always invalid.
	Dangling []model.PairRule
}

// Valid reports whether the rule set contains no invalid rules.
func (r RuleReport) Valid() bool {
	return len(r.SelfReferential) == 0 && len(r.Dangling) == 0
}

// ClassifyRules sorts every rule into one of four classes: self-referential,
// dangling, inactive (both rostered but at least one side absent from the
// present subset; silently dropped) or active. Multi-edges collapse on the
// canonical pair key, keeping the first occurrence.
func ClassifyRules(rules []model.PairRule, roster, present map[string]struct{}) RuleReport {
	var report RuleReport
	seen := make(map[string]struct{}, len(rules))
	for _, raw := range rules {
		r := raw.Normalized()
		if r.A == r.B {
			report.SelfReferential = append(report.SelfReferential, raw)
			continue
		}
		if _, ok := roster[r.A]; !ok {
			report.Dangling = append(report.Dangling, raw)
			continue
		}
		if _, ok := roster[r.B]; !ok {
			report.Dangling = append(report.Dangling, raw)
			continue
		}
		if _, ok := present[r.A]; !ok {
			continue
		}
		if _, ok := present[r.B]; !ok {
			continue
		}
		key := r.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		report.Active = append(report.Active, r)
	}
	return report
}

// KeySet builds a set of identity keys from a member list.
func KeySet(members []model.Member) map[string]struct{} {
	set := make(map[string]struct{}, len(members))
	for _, m := range members {
		set[m.Key] = struct{}{}
	}
	return set
}
