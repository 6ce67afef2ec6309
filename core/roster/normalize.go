// Package roster prepares a raw member list for allocation: identity
// normalization, duplicate detection and pair-rule validation.
package roster

import (
	"fmt"
	"sort"
	"strings"

	"github.com/avrillon/teamsplit/core/model"
)

// DuplicateKeyError reports raw entries whose names collapse to the same
// normalized identity. Duplicates are never merged silently; the caller must
// be told which names collided.
type DuplicateKeyError struct {
	// Collisions maps each duplicated key to the display names that produced it.
	Collisions map[string][]string
}

func (e *DuplicateKeyError) Error() string {
	keys := make([]string, 0, len(e.Collisions))
	for k := range e.Collisions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%q (%s)", k, strings.Join(e.Collisions[k], ", ")))
	}
	return "duplicate identities: " + strings.Join(parts, "; ")
}

// Normalize canonicalizes every member's identity key and verifies uniqueness.
// The returned slice preserves input order. If two entries normalize to the
// same key, a *DuplicateKeyError is returned listing every collision.
func Normalize(members []model.Member) ([]model.Member, error) {
	out := make([]model.Member, 0, len(members))
	seen := make(map[string][]string, len(members))
	for _, m := range members {
		key := model.NormalizeKey(m.DisplayName)
		if m.Key != "" {
			key = model.NormalizeKey(m.Key)
		}
		m.Key = key
		seen[key] = append(seen[key], m.DisplayName)
		out = append(out, m)
	}
	collisions := make(map[string][]string)
	for k, names := range seen {
		if len(names) > 1 {
			collisions[k] = names
		}
	}
	if len(collisions) > 0 {
		return nil, &DuplicateKeyError{Collisions: collisions}
	}
	return out, nil
}

// Present returns the members flagged as present, preserving order.
func Present(members []model.Member) []model.Member {
	var out []model.Member
	for _, m := range members {
		if m.Present {
			out = append(out, m)
		}
	}
	return out
}
