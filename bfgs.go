package optim

import "log/slog"

// bfgsState is the method-specific sub-state for BFGS (spec.md §3): the
// current and previous inverse-Hessian approximations.
type bfgsState struct {
	H     [][]float64
	HPrev [][]float64
}

func newBFGSState() bfgsState {
	return bfgsState{}
}

// direction computes p = -H*g, updating H in place (spec.md §4.3). At k==1
// H is seeded to f(x0)*I. Thereafter the inverse-Hessian update
// H <- (I - rho*s*y^T) Hprev (I - rho*y*s^T) + rho*s*s^T is applied when the
// curvature condition y.s > 0 holds; otherwise H resets to f*I and a
// warning is logged (spec.md §7, "degenerate curvature"). The result is
// symmetrized every iteration to guard against floating-point drift
// (SPEC_FULL.md §9, open question 3).
func (s *bfgsState) direction(x, xPrev, g, gPrev []float64, fx float64, k, n int) []float64 {
	if k == 1 {
		s.H = scaledIdentity(n, initialScale(fx))
		s.HPrev = s.H
		return Negate(matVec(s.H, g))
	}

	sVec := Sub(x, xPrev)
	yVec := Sub(g, gPrev)
	ys := Dot(yVec, sVec)

	s.HPrev = s.H
	if ys <= 0 || !finiteScalar(ys) {
		slog.Warn("bfgs: curvature condition y.s <= 0, resetting inverse Hessian", "ys", ys)
		s.H = scaledIdentity(n, initialScale(fx))
	} else {
		rho := 1.0 / ys
		left := matSub(identity(n), outerScaled(sVec, yVec, rho))
		right := matSub(identity(n), outerScaled(yVec, sVec, rho))
		hNew := matAdd(matMul(matMul(left, s.HPrev), right), outerScaled(sVec, sVec, rho))
		s.H = symmetrize(hNew)
	}

	return Negate(matVec(s.H, g))
}

// initialScale guards spec.md's H=f(x0)*I seed against a non-positive
// f(x0), which would make the initial inverse Hessian indefinite.
func initialScale(fx float64) float64 {
	if fx > 0 && finiteScalar(fx) {
		return fx
	}
	return 1.0
}
