package optim

// directionOracle dispatches to the method-specific sub-state selected at
// construction (spec.md §9 redesign: a tagged Method sum type branched
// statically, never re-resolved at iteration time). TrustRegion is not
// handled here — it delegates its whole step (direction and acceptance) to
// dogleg in trustregion.go, since spec.md treats it as an alternative to
// line search rather than a direction-then-line-search method.
type directionOracle struct {
	method Method
	cg     conjugateGradientState
	bfgs   bfgsState
}

func newDirectionOracle(m Method) directionOracle {
	return directionOracle{method: m, cg: newConjugateGradientState(), bfgs: newBFGSState()}
}

// direction returns the next descent direction for GradientDescent,
// ConjugateGradient, or BFGS. k is the driver's 1-based iteration count;
// xPrev/gPrev/pPrev are only read when the method needs them (BFGS at
// k>1, CG at any k).
func (o *directionOracle) direction(k int, x, xPrev, g, gPrev, pPrev []float64, fx float64) []float64 {
	switch o.method {
	case GradientDescent:
		return Negate(g)
	case ConjugateGradient:
		return o.cg.direction(g, gPrev, pPrev)
	case BFGS:
		return o.bfgs.direction(x, xPrev, g, gPrev, fx, k, len(x))
	default:
		return Negate(g)
	}
}
