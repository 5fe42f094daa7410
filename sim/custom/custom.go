// Package custom builds eviction policies from user-supplied score expressions.
//
// A score expression is evaluated once per resident page; the page with the
// highest score is evicted, ties going to the page inserted first. Expressions
// are written in the expr language and compiled against a fixed set of
// numeric variables, so they can read the eviction context and nothing else:
// no functions with file, network or process access are exposed.
//
//	age                       least recently used
//	-position                 first in, first out
//	next_use                  optimal (clairvoyant)
//	reused ? age : 1000000    pages never used again first, then LRU
package custom

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/omgupta74/Efiiecient-Page-Replacement-Algorithm-Simulator/sim"
)

// MaxSourceLength bounds the length of a score expression.
const MaxSourceLength = 4096

// Variables lists the names a score expression may reference.
var Variables = []string{
	"page", "position", "last_use", "age", "next_use", "reused", "now", "incoming", "capacity",
}

// Policy is a sim.Policy whose victim is the resident page with the highest score.
type Policy struct {
	name    string
	source  string
	program *vm.Program
}

// Compile checks source against the score environment and returns a Policy.
// Syntax errors, unknown variables and non-numeric results are ErrCustomPolicy.
func Compile(name, source string) (*Policy, error) {
	source = strings.TrimSpace(source)
	if name == "" {
		name = sim.PolicyCustom
	}
	if source == "" {
		return nil, fmt.Errorf("%w: %s: empty score expression", sim.ErrCustomPolicy, name)
	}
	if len(source) > MaxSourceLength {
		return nil, fmt.Errorf("%w: %s: score expression longer than %d bytes", sim.ErrCustomPolicy, name, MaxSourceLength)
	}
	program, err := expr.Compile(source, expr.Env(scoreEnv(candidate{})), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", sim.ErrCustomPolicy, name, err)
	}
	return &Policy{name: name, source: source, program: program}, nil
}

func (p *Policy) Name() string { return p.name }

// Source returns the score expression.
func (p *Policy) Source() string { return p.source }

// candidate is the per-page input of one score evaluation.
type candidate struct {
	page     int
	position int
	lastUse  int
	nextUse  int
	reused   bool
	now      int
	incoming int
	capacity int
}

func scoreEnv(c candidate) map[string]any {
	return map[string]any{
		"page":     c.page,
		"position": c.position,
		"last_use": c.lastUse,
		"age":      c.now - c.lastUse,
		"next_use": c.nextUse,
		"reused":   c.reused,
		"now":      c.now,
		"incoming": c.incoming,
		"capacity": c.capacity,
	}
}

// FindVictim scores every resident page and returns the highest-scoring one.
// Every failure is reported as sim.ErrCustomPolicy with the cause attached.
func (p *Policy) FindVictim(ec sim.EvictionContext) (victim int, err error) {
	defer func() {
		if r := recover(); r != nil {
			victim, err = 0, fmt.Errorf("%w: %s: panic: %v", sim.ErrCustomPolicy, p.name, r)
		}
	}()

	pages := ec.Frames.Pages()
	if len(pages) == 0 {
		return 0, fmt.Errorf("%w: %s: no resident pages to score", sim.ErrCustomPolicy, p.name)
	}

	best := math.Inf(-1)
	chosen := false
	for pos, page := range pages {
		c := candidate{
			page:     page,
			position: pos,
			lastUse:  ec.Recency[page],
			nextUse:  sim.NextUse(ec.Future, page),
			now:      ec.Time,
			incoming: ec.Incoming,
			capacity: ec.Frames.Cap(),
		}
		c.reused = c.nextUse <= len(ec.Future)

		score, err := p.score(c)
		if err != nil {
			return 0, err
		}
		if !chosen || score > best {
			victim, best, chosen = page, score, true
		}
	}

	if !ec.Frames.Contains(victim) {
		return 0, fmt.Errorf("%w: %s: victim %d is not resident", sim.ErrCustomPolicy, p.name, victim)
	}
	return victim, nil
}

func (p *Policy) score(c candidate) (float64, error) {
	out, err := expr.Run(p.program, scoreEnv(c))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: evaluating page %d: %w", sim.ErrCustomPolicy, p.name, c.page, err)
	}
	var score float64
	switch v := out.(type) {
	case float64:
		score = v
	case int:
		score = float64(v)
	default:
		return 0, fmt.Errorf("%w: %s: score for page %d is %T, want a number", sim.ErrCustomPolicy, p.name, c.page, out)
	}
	if math.IsNaN(score) {
		return 0, fmt.Errorf("%w: %s: score for page %d is NaN", sim.ErrCustomPolicy, p.name, c.page)
	}
	return score, nil
}
