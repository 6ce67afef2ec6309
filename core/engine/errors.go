package engine

import "fmt"

// ErrorKind identifies a generation failure class.
type ErrorKind string

const (
	// Input errors.
	KindDuplicateIdentity ErrorKind = "duplicate_identity"
	KindInvalidMember     ErrorKind = "invalid_member"
	KindEmptyRoster       ErrorKind = "empty_present_subset"
	KindTeamCountRange    ErrorKind = "team_count_out_of_range"
	KindTeamCountTooLarge ErrorKind = "team_count_exceeds_members"
	// Rule errors.
	KindSelfRule        ErrorKind = "self_referential_rule"
	KindUnknownIdentity ErrorKind = "rule_unknown_identity"
	KindContradiction   ErrorKind = "rule_contradiction"
	// Structural infeasibility.
	KindOversizedGroup ErrorKind = "oversized_group"
	// Search exhaustion.
	KindNoFeasibleAllocation ErrorKind = "no_feasible_allocation"
	// External cancellation via context.
	KindCanceled ErrorKind = "canceled"
)

// suggestions maps each failure kind to a human-actionable hint.
var suggestions = map[ErrorKind]string{
	KindDuplicateIdentity:    "rename one of the colliding members so every identity is unique",
	KindInvalidMember:        "give the member a level between 1 and 3 and a category of A, B or Unknown",
	KindEmptyRoster:          "mark at least one member as present before generating",
	KindTeamCountRange:       "choose a team count between 2 and 10",
	KindTeamCountTooLarge:    "reduce the team count or mark more members as present",
	KindSelfRule:             "remove the rule that pairs a member with themselves",
	KindUnknownIdentity:      "remove or fix the rule referencing a member not on the roster",
	KindContradiction:        "drop either the cohesion or the exclusion rule for the named pair",
	KindOversizedGroup:       "reduce the team count or relax the cohesion rules forming the large group",
	KindNoFeasibleAllocation: "relax exclusion rules, lower the team count or raise the attempt budget",
	KindCanceled:             "retry with a longer deadline or a smaller attempt budget",
}

// Error is the typed failure returned by Generate. No partial allocation ever
// accompanies it.
type Error struct {
	Kind       ErrorKind
	Message    string
	Suggestion string
	// Attempts is the number of allocation attempts consumed before failing.
	// Zero for failures detected before the attempt loop.
	Attempts int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is lets errors.Is match on a bare &Error{Kind: …} target.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{
		Kind:       kind,
		Message:    fmt.Sprintf(format, args...),
		Suggestion: suggestions[kind],
	}
}
