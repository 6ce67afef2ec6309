package roster

import (
	"errors"
	"testing"

	"github.com/avrillon/teamsplit/core/model"
)

func member(name string, present bool) model.Member {
	return model.Member{DisplayName: name, Level: model.LevelIntermediate, Category: model.CategoryA, Present: present}
}

func TestNormalize_CanonicalizesKeys(t *testing.T) {
	members, err := Normalize([]model.Member{member("  Alice ", true), member("Bob", true)})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if members[0].Key != "alice" || members[1].Key != "bob" {
		t.Fatalf("unexpected keys %q %q", members[0].Key, members[1].Key)
	}
	if members[0].DisplayName != "  Alice " {
		t.Fatalf("display name must be preserved, got %q", members[0].DisplayName)
	}
}

func TestNormalize_DuplicateIsError(t *testing.T) {
	_, err := Normalize([]model.Member{member("Eva", true), member(" eva", false)})
	if err == nil {
		t.Fatalf("expected duplicate error")
	}
	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("expected *DuplicateKeyError, got %T", err)
	}
	names := dup.Collisions["eva"]
	if len(names) != 2 {
		t.Fatalf("expected both colliding names reported, got %v", names)
	}
}

func TestClassifyRules(t *testing.T) {
	members, err := Normalize([]model.Member{
		member("Ana", true), member("Ben", true), member("Cleo", false),
	})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	rosterKeys := KeySet(members)
	presentKeys := KeySet(Present(members))

	rules := []model.PairRule{
		{A: "Ana", B: "Ben"},   // active
		{A: "Ben", B: "ana"},   // duplicate of the above, collapses
		{A: "Ana", B: "Cleo"},  // inactive: Cleo not present
		{A: "Eva", B: "Eva"},   // self-referential
		{A: "Ana", B: "Ghost"}, // dangling
	}
	report := ClassifyRules(rules, rosterKeys, presentKeys)

	if len(report.Active) != 1 {
		t.Fatalf("expected 1 active rule, got %d", len(report.Active))
	}
	if len(report.SelfReferential) != 1 {
		t.Fatalf("expected 1 self-referential rule, got %d", len(report.SelfReferential))
	}
	if len(report.Dangling) != 1 {
		t.Fatalf("expected 1 dangling rule, got %d", len(report.Dangling))
	}
	if report.Valid() {
		t.Fatalf("report with invalid rules must not be valid")
	}
}

func TestClassifyRules_SelfRuleBeatsDangling(t *testing.T) {
	report := ClassifyRules([]model.PairRule{{A: "Eva", B: " EVA "}}, map[string]struct{}{}, map[string]struct{}{})
	if len(report.SelfReferential) != 1 || len(report.Dangling) != 0 {
		t.Fatalf("self-referential classification must win over dangling: %+v", report)
	}
}
