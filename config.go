package optim

import (
	"fmt"
	"math"
)

// Method is the tagged variant selecting the direction-oracle strategy
// (spec.md §9 redesign: dynamic dispatch on a method name string becomes a
// sum type, selected once at construction and branched statically per
// iteration — never re-resolved at iteration time).
type Method int

const (
	// GradientDescent takes p = -g every iteration; no method-specific state.
	GradientDescent Method = iota
	// ConjugateGradient uses Polak–Ribière+ with hard restart.
	ConjugateGradient
	// BFGS uses the inverse-Hessian quasi-Newton update.
	BFGS
	// TrustRegion uses the positive-definite dogleg step in place of a line search.
	TrustRegion
)

func (m Method) String() string {
	switch m {
	case GradientDescent:
		return "GradientDescent"
	case ConjugateGradient:
		return "ConjugateGradient"
	case BFGS:
		return "BFGS"
	case TrustRegion:
		return "TrustRegion"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// LineSearchKind selects the line-search strategy. TrustRegion ignores this
// field entirely — it performs a dogleg step instead of a line search.
type LineSearchKind int

const (
	// Armijo is backtracking line search with the sufficient-decrease condition.
	Armijo LineSearchKind = iota
	// StrongWolfe is bracketing/zoom line search satisfying the strong Wolfe conditions.
	StrongWolfe
)

func (k LineSearchKind) String() string {
	if k == StrongWolfe {
		return "StrongWolfe"
	}
	return "Armijo"
}

// Config is the configuration bundle from spec.md §6. NewProblem replaces
// zero-valued fields with DefaultConfig's values for the method, except
// LineSearch and Progress: a zero LineSearch selects Armijo and a zero
// Progress disables progress output.
type Config struct {
	Method     Method
	LineSearch LineSearchKind

	MaxIter int // 0 means unlimited (spec.md default "∞")
	GradTol float64
	FuncTol float64 // disabled under TrustRegion
	StepTol float64 // disabled under TrustRegion

	Lambda    float64 // initial line-search step length
	LambdaMax float64 // line-search step cap
	C1        float64 // Armijo parameter, 0 < c1 < 1/2
	C2        float64 // curvature parameter

	DeltaMax float64    // TR max radius
	DeltaTol float64    // TR radius stop
	Eta      [3]float64 // TR thresholds η1 < η2 < η3
	MaxCond  float64    // TR model Hessian condition-number cap

	Progress int // emit every N iterations; 0 disables
}

// DefaultConfig returns the spec.md §6 defaults for method m. C1/C2 differ
// for ConjugateGradient (spec.md §9 open question 2: the intended c2=0.4
// CG override, not the source's disabled-by-typo version).
func DefaultConfig(m Method) Config {
	c := Config{
		Method:     m,
		LineSearch: Armijo,
		MaxIter:    0,
		GradTol:    1e-8,
		FuncTol:    1e-8,
		StepTol:    1e-8,
		Lambda:     1,
		LambdaMax:  100,
		C1:         1e-4,
		C2:         0.9,
		DeltaMax:   100,
		DeltaTol:   math.Sqrt(machineEpsilon),
		Eta:        [3]float64{0.01, 0.25, 0.75},
		MaxCond:    1000,
		Progress:   1,
	}
	if m == ConjugateGradient {
		c.LineSearch = StrongWolfe
		c.C1, c.C2 = 1e-3, 0.4
	}
	if m == BFGS {
		c.LineSearch = StrongWolfe
	}
	return c
}

// applyDefaults fills zero-valued fields of c with DefaultConfig(c.Method)'s
// values, the way the reference source's DefaultOptions(overrides) merges a
// caller-supplied override struct over the baseline. LineSearch and Progress
// are kept as given, since their zero values (Armijo, no progress output)
// are valid choices.
func applyDefaults(c Config) Config {
	d := DefaultConfig(c.Method)
	if c.MaxIter == 0 {
		c.MaxIter = d.MaxIter
	}
	if c.GradTol == 0 {
		c.GradTol = d.GradTol
	}
	if c.FuncTol == 0 {
		c.FuncTol = d.FuncTol
	}
	if c.StepTol == 0 {
		c.StepTol = d.StepTol
	}
	if c.Lambda == 0 {
		c.Lambda = d.Lambda
	}
	if c.LambdaMax == 0 {
		c.LambdaMax = d.LambdaMax
	}
	if c.C1 == 0 {
		c.C1 = d.C1
	}
	if c.C2 == 0 {
		c.C2 = d.C2
	}
	if c.DeltaMax == 0 {
		c.DeltaMax = d.DeltaMax
	}
	if c.DeltaTol == 0 {
		c.DeltaTol = d.DeltaTol
	}
	if c.Eta == [3]float64{} {
		c.Eta = d.Eta
	}
	if c.MaxCond == 0 {
		c.MaxCond = d.MaxCond
	}
	return c
}

// validate enforces the parameter constraints from spec.md §4.2 and §6.
// Validation happens once, at construction; no iterations run on failure.
func validate(c Config) error {
	if c.Method < GradientDescent || c.Method > TrustRegion {
		return ErrInvalidMethod
	}
	if c.LineSearch != Armijo && c.LineSearch != StrongWolfe {
		return ErrInvalidLineSearch
	}
	if c.Method != TrustRegion {
		if !(c.C1 > 0 && c.C1 < 0.5) {
			return fmt.Errorf("%w: c1 must satisfy 0 < c1 < 1/2, got %v", ErrInvalidParameter, c.C1)
		}
		if c.Method == ConjugateGradient {
			if !(c.C1 < c.C2 && c.C2 < 0.5) {
				return fmt.Errorf("%w: conjugate gradient requires 0 < c1 < c2 < 1/2, got c1=%v c2=%v", ErrInvalidParameter, c.C1, c.C2)
			}
		} else if !(c.C1 < c.C2 && c.C2 < 1) {
			return fmt.Errorf("%w: requires c1 < c2 < 1, got c1=%v c2=%v", ErrInvalidParameter, c.C1, c.C2)
		}
	}
	if c.Method == TrustRegion {
		e1, e2, e3 := c.Eta[0], c.Eta[1], c.Eta[2]
		if !(0 <= e1 && e1 < e2 && e2 < e3 && e3 < 1) {
			return fmt.Errorf("%w: trust region eta thresholds must satisfy 0 <= eta1 < eta2 < eta3 < 1, got %v", ErrInvalidParameter, c.Eta)
		}
		if c.MaxCond <= 1 {
			return fmt.Errorf("%w: maxcond must be > 1, got %v", ErrInvalidParameter, c.MaxCond)
		}
		if c.DeltaMax <= 0 {
			return fmt.Errorf("%w: deltamax must be > 0, got %v", ErrInvalidParameter, c.DeltaMax)
		}
	}
	return nil
}

// Problem bundles the objective, initial guess, and configuration that
// Optimize consumes. It replaces the source's global mutable solver state
// (spec.md §9 redesign) with an explicit value passed by the caller into a
// pure Optimize(problem) → (Result, error) entry point.
type Problem struct {
	Objective Objective
	X0        []float64
	Config    Config
}

// NewProblem validates and normalizes a Problem, applying method-dependent
// defaults to any zero-valued Config fields. It is the only place
// configuration errors (spec.md §7) can occur.
func NewProblem(objective Objective, x0 []float64, cfg Config) (Problem, error) {
	if objective == nil {
		return Problem{}, ErrMissingObjective
	}
	if len(x0) == 0 {
		return Problem{}, ErrMissingX0
	}
	cfg = applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return Problem{}, err
	}
	return Problem{Objective: objective, X0: Clone(x0), Config: cfg}, nil
}
