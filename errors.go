package optim

import "errors"

// Sentinel errors for configuration failures and fatal runtime conditions.
//
// Configuration errors are returned by NewProblem and never start an
// iteration. ErrNonFinite is returned by Optimize when the objective
// adapter produces a NaN or infinite value or gradient component;
// recoverable conditions (degenerate BFGS curvature, a non-descent CG
// direction, a singular trust-region model) are handled locally and are
// not surfaced as errors — see driver.go and the direction oracle.
var (
	// ErrMissingObjective indicates a Problem was constructed with a nil Objective.
	ErrMissingObjective = errors.New("optim: objective is required")

	// ErrMissingX0 indicates a Problem was constructed with an empty initial guess.
	ErrMissingX0 = errors.New("optim: initial guess x0 is required")

	// ErrInvalidMethod indicates Config.Method is not one of the four supported methods.
	ErrInvalidMethod = errors.New("optim: unknown method")

	// ErrInvalidLineSearch indicates Config.LineSearch names an unsupported strategy.
	ErrInvalidLineSearch = errors.New("optim: unknown line search")

	// ErrInvalidParameter indicates a numeric configuration field violates its
	// documented constraint (e.g. 0 < c1 < 1/2, or c1 < c2).
	ErrInvalidParameter = errors.New("optim: invalid parameter")

	// ErrNonFinite indicates the objective or gradient returned NaN or Inf.
	ErrNonFinite = errors.New("optim: non-finite objective or gradient")
)
