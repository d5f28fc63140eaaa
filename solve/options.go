package solve

import (
	"github.com/katalvlaran/banana/dp"
	"github.com/katalvlaran/banana/ilp"
	"github.com/katalvlaran/banana/sattww"
)

// Options configures one RunOCM or RunTWW invocation. Zero value is invalid; start
// from DefaultOptions.
type Options struct {
	IPFormulation ilp.Variant
	IPBackend     ilp.Backend
	// IPPrefixConstraints selects the §4.5 optional prefix/suffix rank
	// cuts; zero value matches the CLI's "--ipprefixconstraints=none".
	IPPrefixConstraints ilp.PrefixMode
	SATBackend          sattww.Backend
	DPBudget            dp.Budget
	// VerifyPath, when non-empty, names an external solution file whose
	// crossing count must match the computed optimum (§6's --verify flag).
	VerifyPath string
}

// DefaultOptions matches the CLI's defaults: the Simple ILP formulation,
// the in-pack branch-and-bound/DPLL reference backends, and the default DP
// budget.
func DefaultOptions() Options {
	return Options{
		IPFormulation: ilp.Simple,
		IPBackend:     ilp.BranchAndBound{},
		SATBackend:    sattww.DPLL{},
		DPBudget:      dp.DefaultBudget(),
	}
}

// Option mutates an Options in place, following the teacher's functional
// option pattern for the handful of knobs worth setting individually.
type Option func(*Options)

// WithIPFormulation overrides the ILP variant.
func WithIPFormulation(v ilp.Variant) Option {
	return func(o *Options) { o.IPFormulation = v }
}

// WithIPPrefixConstraints overrides the prefix/suffix rank-cut mode.
func WithIPPrefixConstraints(m ilp.PrefixMode) Option {
	return func(o *Options) { o.IPPrefixConstraints = m }
}

// WithIPBackend overrides the ILP back-end.
func WithIPBackend(b ilp.Backend) Option {
	return func(o *Options) { o.IPBackend = b }
}

// WithSATBackend overrides the SAT back-end.
func WithSATBackend(b sattww.Backend) Option {
	return func(o *Options) { o.SATBackend = b }
}

// WithDPBudget overrides the DP feasibility budget.
func WithDPBudget(b dp.Budget) Option {
	return func(o *Options) { o.DPBudget = b }
}

// WithVerifyPath sets the external verification file path.
func WithVerifyPath(path string) Option {
	return func(o *Options) { o.VerifyPath = path }
}

// Apply folds opts onto DefaultOptions.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
