package optim

import "math"

// lineSearchResult is the outcome of any line search, Armijo or
// Strong-Wolfe. GNew is non-nil when the search already evaluated the
// gradient at the accepted point (always true for Strong-Wolfe, never true
// for Armijo) so the driver can skip a redundant gradient evaluation.
type lineSearchResult struct {
	Alpha   float64
	FNew    float64
	GNew    []float64
	Evals   int // objective evaluations (value + gradient) spent in this search
	Success bool
}

// minAlpha is the machine-precision floor below which Armijo backtracking
// declares failure (spec.md §4.2).
const minAlpha = 1e-16

// armijoLineSearch performs backtracking line search with the Armijo
// sufficient-decrease condition, starting at alpha = lambda and halving
// until f(x+alpha*p) <= f(x) + c1*alpha*(g.p) or alpha underflows.
func armijoLineSearch(obj Objective, x, p []float64, fx float64, gx []float64, c1, lambda float64) lineSearchResult {
	gDotP := Dot(gx, p)
	alpha := lambda
	evals := 0

	for alpha >= minAlpha {
		xNew := AddScaled(x, p, alpha)
		fNew, _ := obj.Evaluate(xNew, ValueOnly)
		evals++

		if finiteScalar(fNew) && fNew <= fx+c1*alpha*gDotP {
			return lineSearchResult{Alpha: alpha, FNew: fNew, Evals: evals, Success: true}
		}
		alpha /= 2
	}

	return lineSearchResult{Alpha: alpha, Evals: evals, Success: false}
}

func finiteScalar(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
