package optim

import "math"

// alphaTol is the bracket-width tolerance below which zoom gives up and
// reports a tolerance-breach failure (spec.md §3, "interpolation state").
const alphaTol = 1e-12

// strongWolfeLineSearch implements the bracketing/zoom algorithm of spec.md
// §4.2: expand geometrically from lambda until a bracket containing a point
// satisfying the strong Wolfe conditions is found, then zoom in on it.
func strongWolfeLineSearch(obj Objective, x, p []float64, fx float64, gx []float64, c1, c2, lambda, lambdaMax float64, maxIter int) lineSearchResult {
	phi0 := fx
	dphi0 := Dot(gx, p)
	evals := 0

	alphaPrev, phiPrev, dphiPrev := 0.0, phi0, dphi0
	alpha := math.Min(lambda, lambdaMax)

	for i := 0; i < maxIter; i++ {
		xNew := AddScaled(x, p, alpha)
		phi, gNew := obj.Evaluate(xNew, ValueAndGradient)
		evals++
		if !finiteScalar(phi) || !finite(gNew) {
			return lineSearchResult{Alpha: alpha, Evals: evals, Success: false}
		}
		dphi := Dot(gNew, p)

		if phi > phi0+c1*alpha*dphi0 || (i > 0 && phi >= phiPrev) {
			return zoom(obj, x, p, phi0, dphi0, c1, c2,
				zoomEndpoint{alphaPrev, phiPrev, dphiPrev}, zoomEndpoint{alpha, phi, dphi}, &evals)
		}
		if math.Abs(dphi) <= -c2*dphi0 {
			return lineSearchResult{Alpha: alpha, FNew: phi, GNew: gNew, Evals: evals, Success: true}
		}
		if dphi >= 0 {
			return zoom(obj, x, p, phi0, dphi0, c1, c2,
				zoomEndpoint{alpha, phi, dphi}, zoomEndpoint{alphaPrev, phiPrev, dphiPrev}, &evals)
		}

		alphaPrev, phiPrev, dphiPrev = alpha, phi, dphi
		next := math.Min(alpha*2, lambdaMax)
		if next == alpha {
			break // hit the cap without bracketing
		}
		alpha = next
	}

	xNew := AddScaled(x, p, alpha)
	phi, gNew := obj.Evaluate(xNew, ValueAndGradient)
	evals++
	if finiteScalar(phi) && finite(gNew) {
		dphi := Dot(gNew, p)
		if phi <= phi0+c1*alpha*dphi0 && math.Abs(dphi) <= -c2*dphi0 {
			return lineSearchResult{Alpha: alpha, FNew: phi, GNew: gNew, Evals: evals, Success: true}
		}
	}
	return lineSearchResult{Alpha: alpha, Evals: evals, Success: false}
}

// zoomEndpoint is one end of the Strong-Wolfe bracket: a trial step length
// and the objective value and directional derivative already computed
// there.
type zoomEndpoint struct {
	alpha float64
	phi   float64
	dphi  float64
}

// zoom narrows the bracket [lo, hi] by cubic interpolation through both
// endpoints, falling back to bisection when the cubic has no real minimizer
// in range or lands too close to either endpoint (spec.md §4.2). Terminates
// when a point satisfying the curvature condition is found or the bracket
// width drops below alphaTol (tolerance-breached failure).
func zoom(obj Objective, x, p []float64, phi0, dphi0, c1, c2 float64, lo, hi zoomEndpoint, evals *int) lineSearchResult {
	const maxZoomIter = 30

	for i := 0; i < maxZoomIter; i++ {
		width := math.Abs(hi.alpha - lo.alpha)
		if width < alphaTol {
			alpha := (lo.alpha + hi.alpha) / 2
			return lineSearchResult{Alpha: alpha, Evals: *evals, Success: false}
		}

		alpha, ok := cubicMinimizer(lo, hi)
		low, high := math.Min(lo.alpha, hi.alpha), math.Max(lo.alpha, hi.alpha)
		if !ok || alpha <= low+0.1*width || alpha >= high-0.1*width {
			alpha = (lo.alpha + hi.alpha) / 2 // bisection fallback
		}

		xNew := AddScaled(x, p, alpha)
		phi, gNew := obj.Evaluate(xNew, ValueAndGradient)
		*evals++
		if !finiteScalar(phi) || !finite(gNew) {
			return lineSearchResult{Alpha: alpha, Evals: *evals, Success: false}
		}
		dphi := Dot(gNew, p)

		if phi > phi0+c1*alpha*dphi0 || phi >= lo.phi {
			hi = zoomEndpoint{alpha, phi, dphi}
		} else {
			if math.Abs(dphi) <= -c2*dphi0 {
				return lineSearchResult{Alpha: alpha, FNew: phi, GNew: gNew, Evals: *evals, Success: true}
			}
			if dphi*(hi.alpha-lo.alpha) >= 0 {
				hi = lo
			}
			lo = zoomEndpoint{alpha, phi, dphi}
		}
	}

	alpha := (lo.alpha + hi.alpha) / 2
	return lineSearchResult{Alpha: alpha, Evals: *evals, Success: false}
}

// cubicMinimizer computes the minimizer of the cubic Hermite interpolant
// through lo and hi (Nocedal & Wright, Numerical Optimization, eq. 3.59).
// Returns ok=false when the interpolant has no real critical point between
// the endpoints, signaling the caller to bisect instead.
func cubicMinimizer(lo, hi zoomEndpoint) (float64, bool) {
	if lo.alpha == hi.alpha {
		return 0, false
	}
	d1 := lo.dphi + hi.dphi - 3*(lo.phi-hi.phi)/(lo.alpha-hi.alpha)
	disc := d1*d1 - lo.dphi*hi.dphi
	if disc < 0 {
		return 0, false
	}
	d2 := math.Copysign(math.Sqrt(disc), hi.alpha-lo.alpha)
	denom := hi.dphi - lo.dphi + 2*d2
	if denom == 0 {
		return 0, false
	}
	alpha := hi.alpha - (hi.alpha-lo.alpha)*(hi.dphi+d2-d1)/denom
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return 0, false
	}
	return alpha, true
}
