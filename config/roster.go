package config

import (
	"fmt"

	"github.com/knadh/koanf/v2"

	"github.com/avrillon/teamsplit/core/model"
)

// RosterFile is the on-disk roster document: the members plus the two pair
// rule sets. This is the roster-loading boundary of the engine; any storage
// backend producing the same shape would do.
type RosterFile struct {
	Members    []MemberSpec `json:"members"`
	Exclusions []PairSpec   `json:"exclusions"`
	Cohesions  []PairSpec   `json:"cohesions"`
}

// MemberSpec is one roster entry.
type MemberSpec struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
	Present  *bool  `json:"present"`
}

// PairSpec names the two members a rule binds.
type PairSpec struct {
	A string `json:"a"`
	B string `json:"b"`
}

// LoadRoster reads a roster document from a JSON or YAML file and converts it
// to model types. Members default to present and category Unknown; levels and
// categories are validated by the engine's precondition pass.
func LoadRoster(path string) (*RosterFile, error) {
	k, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	var roster RosterFile
	if err := k.UnmarshalWithConf("", &roster, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	if len(roster.Members) == 0 {
		return nil, fmt.Errorf("roster %s contains no members", path)
	}
	return &roster, nil
}

// ModelMembers converts the roster entries to model members.
func (r *RosterFile) ModelMembers() []model.Member {
	out := make([]model.Member, 0, len(r.Members))
	for _, m := range r.Members {
		category := model.Category(m.Category)
		if m.Category == "" {
			category = model.CategoryUnknown
		}
		present := true
		if m.Present != nil {
			present = *m.Present
		}
		out = append(out, model.Member{
			DisplayName: m.Name,
			Level:       model.Level(m.Level),
			Category:    category,
			Present:     present,
		})
	}
	return out
}

// Rules converts one pair list to model rules.
func Rules(pairs []PairSpec) []model.PairRule {
	out := make([]model.PairRule, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, model.PairRule{A: p.A, B: p.B})
	}
	return out
}
