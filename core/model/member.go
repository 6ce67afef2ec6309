package model

import (
	"fmt"
	"strings"
)

// Level is the skill level of a member, from 1 (beginner) to 3 (advanced).
type Level int

const (
	LevelBeginner     Level = 1
	LevelIntermediate Level = 2
	LevelAdvanced     Level = 3
)

// Levels lists all valid levels in ascending order.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// Category is an attribute used to balance team composition.
type Category string

const (
	CategoryA       Category = "A"
	CategoryB       Category = "B"
	CategoryUnknown Category = "Unknown"
)

// Member represents one rostered individual.
type Member struct {
	Key         string // normalized identity key, unique within a roster
	DisplayName string
	Level       Level
	Category    Category
	Present     bool
}

// NormalizeKey canonicalizes an identity: surrounding whitespace is trimmed
// and the result is case-folded. Two names normalizing to the same key refer
// to the same identity.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Validate checks that the member fields are sound.
func (m Member) Validate() error {
	if strings.TrimSpace(m.DisplayName) == "" {
		return fmt.Errorf("member display name must not be empty")
	}
	if m.Level < LevelBeginner || m.Level > LevelAdvanced {
		return fmt.Errorf("member %q: level %d out of range [1,3]", m.DisplayName, m.Level)
	}
	switch m.Category {
	case CategoryA, CategoryB, CategoryUnknown:
	default:
		return fmt.Errorf("member %q: unknown category %q", m.DisplayName, m.Category)
	}
	return nil
}

// Skill returns the numeric skill contribution of the member.
func (m Member) Skill() int { return int(m.Level) }
