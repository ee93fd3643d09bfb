package optim

// Termination causes, ordered as spec.md §4.5 evaluates them (first match
// wins): line-search failure, |g_prev| < gtol, |g| < gtol, |f-f_prev| <
// dftol, |x-x_prev| < dxtol, k >= maxiter, and (TrustRegion only) Δ < Δtol.
const (
	CauseLineSearchFailed = "line search failed"
	CauseGradPrevTol      = "gradient too small"
	CauseGradTol          = "gradient"
	CauseFuncTol          = "function change too small"
	CauseStepTol          = "step too small"
	CauseMaxIter          = "maximum iterations reached"
	CauseDeltaTol         = "trust region radius too small"
)

// IterationRecord is one entry of the append-only history vector (spec.md
// §9 redesign: parallel per-iteration arrays become a single vector of
// records, trimmed to the actual iteration count on return).
type IterationRecord struct {
	K               int
	X               []float64
	F               float64
	G               []float64
	GradNorm        float64
	Alpha           float64
	LineSearchEvals int
	// Restarted is true when this record followed a ConjugateGradient hard
	// restart (spec.md §3's CG state `just_restarted` flag); zero value for
	// every other method.
	Restarted bool
	// Delta is the trust-region radius in effect for this record; zero for
	// every non-TrustRegion method.
	Delta float64
	// Accept is the trust-region ratio-test outcome (spec.md §3's "accept
	// flag") for this record's step; zero value for every non-TrustRegion
	// method, where every recorded step is by construction accepted.
	Accept bool
}

// Result is the bundle returned by Optimize (spec.md §6).
type Result struct {
	Converged     bool
	StatusMessage string
	Cause         string
	History       []IterationRecord

	X        []float64
	F        float64
	G        []float64
	GradNorm float64

	Iterations      int
	FuncEvals       int
	GradEvals       int
	HessEvals       int
	LineSearchEvals int

	Config Config
}
