package reduce

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/lambdaman/term"
)

// ErrStepLimit is returned by a Normalizer which gave up on a term before it
// reached normal form.
var ErrStepLimit = errors.New("step limit exceeded")

// Step describes a single reduction step, as reported to step listeners.
type Step struct {
	N          int       // number of this step, starting at 1
	Redex      Redex     // the redex reduced
	Result     term.Path // path to the result of the reduction within After
	Candidates []Redex   // all the redexes found before this step
	Before     term.Term // copy of the term before reduction
	After      term.Term // the term after reduction
}

// StepListener is called after each reduction step. It must not modify the terms
// of a step.
type StepListener func(Step)

// Stats holds the result statistics of a normalization run.
type Stats struct {
	Steps  int  // number of reduction steps performed
	Normal bool // has the term been reduced to normal form?
}

// Normalizer drives reduction of terms to normal form.
type Normalizer struct {
	maxSteps int
	strategy Strategy
	onStep   StepListener
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// MaxSteps limits the number of reduction steps. A value of 0 (the default)
// will not limit normalization, which may then fail to terminate.
func MaxSteps(n int) Option {
	return func(norm *Normalizer) {
		if n < 0 {
			n = 0
		}
		norm.maxSteps = n
	}
}

// WithStrategy sets the strategy to select redexes. Default is Best.
func WithStrategy(s Strategy) Option {
	return func(norm *Normalizer) {
		if s != nil {
			norm.strategy = s
		}
	}
}

// OnStep sets a listener to be called after each reduction step.
func OnStep(l StepListener) Option {
	return func(norm *Normalizer) {
		norm.onStep = l
	}
}

// NewNormalizer creates a normalizer, configured by options.
func NewNormalizer(opts ...Option) *Normalizer {
	norm := &Normalizer{strategy: Best}
	for _, opt := range opts {
		opt(norm)
	}
	return norm
}

// Normalize reduces a term until no redex is left. The term is modified in place
// and the (possibly new) root is returned.
//
// If the step limit is reached, Normalize returns the term reduced so far together
// with an error wrapping ErrStepLimit.
func (norm *Normalizer) Normalize(t term.Term) (term.Term, Stats, error) {
	var stats Stats
	t = term.Simplify(t)
	for {
		redexes := Find(t)
		if len(redexes) == 0 {
			stats.Normal = true
			tracer().Infof("normal form after %d steps: %v", stats.Steps, t)
			return t, stats, nil
		}
		if norm.maxSteps > 0 && stats.Steps >= norm.maxSteps {
			tracer().Infof("giving up after %d steps", stats.Steps)
			return t, stats, fmt.Errorf("%w: no normal form after %d steps", ErrStepLimit, stats.Steps)
		}
		r, ok := norm.strategy(redexes)
		if !ok {
			return t, stats, fmt.Errorf("%w: strategy did not select a redex", ErrNotReducible)
		}
		var before term.Term
		if norm.onStep != nil {
			before = term.Clone(t)
		}
		next, result, err := apply(t, r.Path)
		if err != nil {
			return t, stats, err
		}
		t = next
		stats.Steps++
		tracer().Debugf("step %d at %v: %v", stats.Steps, r, t)
		if norm.onStep != nil {
			norm.onStep(Step{
				N:          stats.Steps,
				Redex:      r,
				Result:     result,
				Candidates: redexes,
				Before:     before,
				After:      t,
			})
		}
	}
}

// Normalize reduces a term to normal form, using the default strategy and
// without a step limit.
func Normalize(t term.Term) (term.Term, error) {
	t, _, err := NewNormalizer().Normalize(t)
	return t, err
}
