package optim

import "math"

// conjugateGradientState is the method-specific sub-state for
// ConjugateGradient (spec.md §3): a CG-local iteration counter distinct
// from the driver's k, the last two beta values, and a flag recording
// whether the most recent direction was a hard restart.
type conjugateGradientState struct {
	Kcg           int
	Beta          float64
	BetaPrev      float64
	JustRestarted bool
}

func newConjugateGradientState() conjugateGradientState {
	return conjugateGradientState{Kcg: 1}
}

// direction computes the next Polak–Ribière+ search direction, mutating
// Kcg/Beta/JustRestarted in place (spec.md §4.3). When Kcg==1 the previous
// direction is ignored and p=-g. Otherwise beta is the PR+ ratio, clamped
// at zero; a zero beta or a non-descent candidate direction both trigger a
// hard restart back to steepest descent.
func (s *conjugateGradientState) direction(g, gPrev, pPrev []float64) []float64 {
	if s.Kcg <= 1 {
		s.BetaPrev, s.Beta = s.Beta, 0
		s.JustRestarted = false
		s.Kcg = 2
		return Negate(g)
	}

	denom := Dot(gPrev, gPrev)
	beta := 0.0
	if denom > 0 {
		beta = math.Max(0, Dot(g, Sub(g, gPrev))/denom)
	}
	s.BetaPrev, s.Beta = s.Beta, beta

	if beta == 0 {
		s.Kcg = 1
		s.JustRestarted = true
		return Negate(g)
	}

	p := AddScaled(Negate(g), pPrev, beta)
	if Dot(p, g) >= 0 {
		s.Kcg = 1
		s.JustRestarted = true
		return Negate(g)
	}

	s.JustRestarted = false
	s.Kcg++
	return p
}
