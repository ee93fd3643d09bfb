package optim

import "math"

// trustRegionState is the method-specific sub-state carried across
// iterations for TrustRegion (spec.md §3): the current radius, its bounds,
// and the three ratio thresholds. Per-step accept/reject is reported via
// trustRegionResult.Accept, not stored here.
type trustRegionState struct {
	Delta    float64
	DeltaMin float64
	DeltaMax float64
	Eta      [3]float64
	// B is the model Hessian. spec.md §4.4 permits either an SR1 variant
	// (external, out of scope) or reusing BFGS's machinery; this package
	// tracks B with the direct (non-inverse) BFGS update so the dogleg step
	// sees genuine curvature instead of a fixed identity.
	B [][]float64
}

const (
	trShrinkFactor = 0.25 // δ1
	trExpandFactor = 2.0  // δ2
	trBoundaryTol  = 1e-8 // |p| ≈ Δ tolerance for the expand condition
)

func newTrustRegionState(cfg Config, n int) trustRegionState {
	return trustRegionState{
		Delta:    1.0,
		DeltaMin: 0,
		DeltaMax: cfg.DeltaMax,
		Eta:      cfg.Eta,
		B:        identity(n),
	}
}

// updateHessianBFGS applies the direct (non-inverse) BFGS update
// B <- B - (B s s^T B)/(s^T B s) + (y y^T)/(y^T s). When the curvature
// condition y.s > 0 fails (or s^T B s <= 0), B is returned unchanged and
// nothing is logged.
func updateHessianBFGS(b [][]float64, s, y []float64) [][]float64 {
	ys := Dot(y, s)
	if ys <= 0 || !finiteScalar(ys) {
		return b
	}
	bs := matVec(b, s)
	sBs := Dot(s, bs)
	if sBs <= 0 || !finiteScalar(sBs) {
		return b
	}
	updated := matSub(b, outerScaled(bs, bs, 1/sBs))
	updated = matAdd(updated, outerScaled(y, y, 1/ys))
	return symmetrize(updated)
}

// trustRegionResult is the outcome of one dogleg step plus radius update.
type trustRegionResult struct {
	Accept bool
	XNew   []float64
	FNew   float64
	GNew   []float64
	Step   []float64
	Evals  int
	// SingularModel is true when g^T B g <= 0 forced the scaled-gradient
	// Cauchy fallback (spec.md §7, "Singular TR model").
	SingularModel bool
}

// dogleg computes the positive-definite dogleg step of spec.md §4.4 and
// applies the trust-region ratio test to accept/reject it and resize Delta.
func dogleg(obj Objective, x []float64, fx float64, gx []float64, b [][]float64, st *trustRegionState, cfg Config) trustRegionResult {
	evals := 0

	// Step 1: guard the condition number of the model Hessian.
	b = regularize(b, cfg.MaxCond)

	gNorm := Norm(gx)
	gBg := Dot(gx, matVec(b, gx))

	// Step 2: Cauchy point.
	var pU []float64
	singular := gBg <= 0
	if singular {
		pU = Scale(gx, -st.Delta/gNorm)
	} else {
		pU = Scale(gx, -Dot(gx, gx)/gBg)
	}

	// Step 3: Newton point.
	pB := Negate(solveSymmetric(b, gx))

	// Step 4: dogleg selection.
	var p []float64
	switch {
	case Norm(pB) <= st.Delta:
		p = pB
	case Norm(pU) >= st.Delta:
		p = Scale(gx, -st.Delta/gNorm)
	default:
		tau := doglegTau(pU, pB, st.Delta)
		p = AddScaled(pU, Sub(pB, pU), tau)
	}

	// Step 5: evaluate the trial point.
	xTrial := Add(x, p)
	fTrial, _ := obj.Evaluate(xTrial, ValueOnly)
	evals++

	// Step 6: actual/predicted reduction ratio.
	modelReduction := -(Dot(gx, p) + 0.5*Dot(p, matVec(b, p)))
	var rho float64
	if modelReduction <= 0 {
		rho = math.Inf(-1)
	} else {
		rho = (fx - fTrial) / modelReduction
	}

	// Step 7: accept/reject and resize Delta.
	eta1, eta2, eta3 := st.Eta[0], st.Eta[1], st.Eta[2]
	stepNorm := Norm(p)
	accept := rho >= eta1 && finiteScalar(fTrial)

	switch {
	case !accept:
		st.Delta *= trShrinkFactor
	case rho < eta2:
		st.Delta *= trShrinkFactor
	case rho < eta3:
		// Delta unchanged.
	default:
		if math.Abs(stepNorm-st.Delta) < trBoundaryTol {
			st.Delta = math.Min(st.Delta*trExpandFactor, st.DeltaMax)
		}
	}
	st.Delta = math.Max(st.Delta, st.DeltaMin)

	if !accept {
		return trustRegionResult{Accept: false, Evals: evals, SingularModel: singular}
	}

	_, gTrial := obj.Evaluate(xTrial, ValueAndGradient)
	evals++
	return trustRegionResult{
		Accept:        true,
		XNew:          xTrial,
		FNew:          fTrial,
		GNew:          gTrial,
		Step:          p,
		Evals:         evals,
		SingularModel: singular,
	}
}

// doglegTau solves |pU + tau*(pB-pU)| = Delta for the unique tau in [0,1]
// (spec.md §4.4 step 4), via the quadratic formula applied to
// |pU + tau*d|^2 = Delta^2 where d = pB - pU.
func doglegTau(pU, pB []float64, delta float64) float64 {
	d := Sub(pB, pU)
	a := Dot(d, d)
	if a == 0 {
		return 0
	}
	b := 2 * Dot(pU, d)
	c := Dot(pU, pU) - delta*delta
	disc := b*b - 4*a*c
	if disc < 0 {
		disc = 0
	}
	tau := (-b + math.Sqrt(disc)) / (2 * a)
	if tau < 0 {
		tau = 0
	}
	if tau > 1 {
		tau = 1
	}
	return tau
}

// regularize enforces cond(b) <= maxCond by adding a multiple of the
// identity (spec.md §4.4 step 1): b <- b + ((lambdaMax - maxCond*lambdaMin)
// / (maxCond - 1)) * I, which is exactly the shift that makes the new
// condition number equal maxCond.
func regularize(b [][]float64, maxCond float64) [][]float64 {
	cond, lambdaMax, lambdaMin := conditionNumber(b)
	if cond <= maxCond {
		return b
	}
	shift := (lambdaMax - maxCond*lambdaMin) / (maxCond - 1)
	return matAdd(b, scaledIdentity(len(b), shift))
}
