package engine

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/avrillon/teamsplit/core/constraint"
	"github.com/avrillon/teamsplit/core/events"
	"github.com/avrillon/teamsplit/core/logger"
	"github.com/avrillon/teamsplit/core/model"
	"github.com/avrillon/teamsplit/core/roster"
	"github.com/avrillon/teamsplit/internal/eventbus"
)

const (
	// DefaultMaxAttempts bounds the randomized-restart loop.
	DefaultMaxAttempts = 2000
	minTeamCount       = 2
	maxTeamCount       = 10
)

// Engine runs constraint-aware team generation. It holds no state across
// calls; every Generate call works on a fresh snapshot of its inputs.
type Engine struct {
	log        logger.Logger
	bus        eventbus.EventBus
	seed       int64
	refineIter int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l logger.Logger) Option { return func(e *Engine) { e.log = l } }

// WithEventBus sets the bus progress events are published on.
func WithEventBus(b eventbus.EventBus) Option { return func(e *Engine) { e.bus = b } }

// WithSeed fixes the PRNG seed, making Generate deterministic for identical
// inputs. Zero (the default) derives a seed from the clock.
func WithSeed(seed int64) Option { return func(e *Engine) { e.seed = seed } }

// WithRefinerIterations overrides the local-search iteration cap.
func WithRefinerIterations(n int) Option { return func(e *Engine) { e.refineIter = n } }

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{log: logger.Nop{}, refineIter: defaultRefinerIterations}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Request is the input snapshot for one generation call.
type Request struct {
	Members        []model.Member
	ExclusionRules []model.PairRule
	CohesionRules  []model.PairRule
	TeamCount      int
	// MaxAttempts bounds the attempt loop; 0 means DefaultMaxAttempts.
	MaxAttempts int
}

// Result is a successful allocation. Teams has exactly TeamCount entries and
// every present member appears in exactly one of them.
type Result struct {
	RunID string
	Teams [][]model.Member
	// AttemptsUsed is the attempt index at which the returned allocation was
	// found.
	AttemptsUsed int
	Quality      QualityVector
}

// Generate partitions the present members into near-balanced teams honoring
// exclusion and cohesion rules. On failure the returned error is always a
// *Error; no partial allocation is ever returned. The context is checked once
// per attempt so callers can bound the search externally.
func (e *Engine) Generate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()

	res, err := e.generate(ctx, runID, req)
	outcome := "success"
	attempts := 0
	if err != nil {
		genErr := err.(*Error)
		outcome = "failure"
		attempts = genErr.Attempts
		failuresTotal.WithLabelValues(string(genErr.Kind)).Inc()
		e.log.Warnf("generation %s failed: %v", runID, err)
	} else {
		attempts = res.AttemptsUsed
		e.log.Infof("generation %s succeeded after %d attempts, quality %s", runID, res.AttemptsUsed, res.Quality)
	}
	observeGeneration(outcome, time.Since(start).Seconds(), attempts)
	if e.bus != nil {
		e.bus.Publish(events.ResultEvent{RunID: runID, Success: err == nil, AttemptsUsed: attempts})
	}
	return res, err
}

func (e *Engine) generate(ctx context.Context, runID string, req Request) (*Result, error) {
	members, err := roster.Normalize(req.Members)
	if err != nil {
		return nil, newError(KindDuplicateIdentity, "%v", err)
	}
	for _, m := range members {
		if err := m.Validate(); err != nil {
			return nil, newError(KindInvalidMember, "%v", err)
		}
	}
	present := roster.Present(members)

	if len(present) == 0 {
		return nil, newError(KindEmptyRoster, "no members are marked present")
	}
	if req.TeamCount < minTeamCount || req.TeamCount > maxTeamCount {
		return nil, newError(KindTeamCountRange, "team count %d outside [%d,%d]", req.TeamCount, minTeamCount, maxTeamCount)
	}
	if req.TeamCount > len(present) {
		return nil, newError(KindTeamCountTooLarge, "team count %d exceeds %d present members", req.TeamCount, len(present))
	}

	rosterKeys := roster.KeySet(members)
	presentKeys := roster.KeySet(present)
	exclusion := roster.ClassifyRules(req.ExclusionRules, rosterKeys, presentKeys)
	cohesion := roster.ClassifyRules(req.CohesionRules, rosterKeys, presentKeys)
	if err := ruleError(exclusion, cohesion); err != nil {
		return nil, err
	}

	exclusionAdj := constraint.BuildAdjacency(exclusion.Active)
	cohesionAdj := constraint.BuildAdjacency(cohesion.Active)
	groups := constraint.FormGroups(present, cohesionAdj)
	conflicts, projErr := constraint.ProjectConflicts(groups, exclusionAdj)
	if projErr != nil {
		return nil, newError(KindContradiction, "%v", projErr)
	}

	dist := ComputeTargets(present, req.TeamCount)
	for _, g := range groups {
		if g.Size > dist.MaxTeamSize {
			return nil, newError(KindOversizedGroup,
				"cohesion rules weld %d members together but the largest team holds %d", g.Size, dist.MaxTeamSize)
		}
	}

	maxAttempts := req.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	seed := e.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var (
		best        []*teamState
		bestQuality QualityVector
		bestAttempt int
	)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			genErr := newError(KindCanceled, "generation canceled: %v", ctxErr)
			genErr.Attempts = attempt - 1
			return nil, genErr
		}
		teams, ok := assign(rng, groups, conflicts, dist)
		if !ok {
			e.publishAttempt(runID, attempt, false, false)
			continue
		}
		quality := refine(teams, groups, conflicts, dist, e.refineIter)
		improved := best == nil || quality.Less(bestQuality)
		if improved {
			best, bestQuality, bestAttempt = teams, quality, attempt
			e.log.Debugw("better allocation found", map[string]any{
				"run_id":  runID,
				"attempt": attempt,
				"quality": quality.String(),
			})
		}
		e.publishAttempt(runID, attempt, true, improved)
		if bestQuality.IsZero() {
			break
		}
	}
	if best == nil {
		genErr := newError(KindNoFeasibleAllocation, "no feasible allocation within %d attempts", maxAttempts)
		genErr.Attempts = maxAttempts
		return nil, genErr
	}

	return &Result{
		RunID:        runID,
		Teams:        memberTeams(best, groups),
		AttemptsUsed: bestAttempt,
		Quality:      bestQuality,
	}, nil
}

// ruleError converts invalid rule classifications into the typed failure,
// exclusion set first.
func ruleError(exclusion, cohesion roster.RuleReport) error {
	for _, report := range []roster.RuleReport{exclusion, cohesion} {
		if len(report.SelfReferential) > 0 {
			r := report.SelfReferential[0]
			return newError(KindSelfRule, "rule pairs %q with itself", r.A)
		}
		if len(report.Dangling) > 0 {
			r := report.Dangling[0]
			return newError(KindUnknownIdentity, "rule %q / %q references a member not on the roster", r.A, r.B)
		}
	}
	return nil
}

func (e *Engine) publishAttempt(runID string, attempt int, feasible, improved bool) {
	if e.bus == nil {
		return
	}
	e.bus.Publish(events.AttemptEvent{RunID: runID, Attempt: attempt, Feasible: feasible, Improved: improved})
}

// memberTeams materializes the ordered member lists, each sorted by identity
// key for stable output.
func memberTeams(teams []*teamState, groups []*constraint.Group) [][]model.Member {
	out := make([][]model.Member, len(teams))
	for i, t := range teams {
		var members []model.Member
		for id := range t.groupIDs {
			members = append(members, groups[id].Members...)
		}
		sort.Slice(members, func(a, b int) bool { return members[a].Key < members[b].Key })
		out[i] = members
	}
	return out
}
