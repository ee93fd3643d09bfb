package optim

import "math"

const machineEpsilon = 2.220446049250313e-16

// ForwardDiffGradient approximates ∇f(x) with forward differences, used as
// the fallback gradient when a Problem is constructed without an explicit
// one. Grounded on the reference source's finite_diff.go.
func ForwardDiffGradient(f Func, x []float64) []float64 {
	n := len(x)
	grad := make([]float64, n)
	fx := f(x)
	xPerturb := Clone(x)
	sqrtEps := math.Sqrt(machineEpsilon)

	for i := 0; i < n; i++ {
		h := sqrtEps * math.Max(math.Abs(x[i]), 1.0)
		xPerturb[i] = x[i] + h
		grad[i] = (f(xPerturb) - fx) / h
		xPerturb[i] = x[i]
	}
	return grad
}

// CentralDiffGradient approximates ∇f(x) with central differences, more
// accurate than ForwardDiffGradient at twice the evaluation cost.
func CentralDiffGradient(f Func, x []float64) []float64 {
	n := len(x)
	grad := make([]float64, n)
	xPerturb := Clone(x)
	cbrtEps := math.Pow(machineEpsilon, 1.0/3.0)

	for i := 0; i < n; i++ {
		h := cbrtEps * math.Max(math.Abs(x[i]), 1.0)
		xPerturb[i] = x[i] + h
		fPlus := f(xPerturb)
		xPerturb[i] = x[i] - h
		fMinus := f(xPerturb)
		grad[i] = (fPlus - fMinus) / (2.0 * h)
		xPerturb[i] = x[i]
	}
	return grad
}
