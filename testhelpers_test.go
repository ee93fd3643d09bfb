package optim

import "math"

// Shared analytic test objectives, grounded on the reference source's
// test_functions.go but kept package-local to the _test.go files that use
// them rather than promoted to the public API.

func sphereTest(x []float64) float64 {
	sum := 0.0
	for _, xi := range x {
		sum += xi * xi
	}
	return sum
}

func sphereGradTest(x []float64) []float64 {
	g := make([]float64, len(x))
	for i, xi := range x {
		g[i] = 2 * xi
	}
	return g
}

func roughlyRosenbrock(x []float64) float64 {
	return (1-x[0])*(1-x[0]) + 100*(x[1]-x[0]*x[0])*(x[1]-x[0]*x[0])
}

func roughlyRosenbrockGrad(x []float64) []float64 {
	return []float64{
		-2*(1-x[0]) - 400*x[0]*(x[1]-x[0]*x[0]),
		200 * (x[1] - x[0]*x[0]),
	}
}

func boothTest(x []float64) float64 {
	t1 := x[0] + 2*x[1] - 7
	t2 := 2*x[0] + x[1] - 5
	return t1*t1 + t2*t2
}

func boothGradTest(x []float64) []float64 {
	t1 := x[0] + 2*x[1] - 7
	t2 := 2*x[0] + x[1] - 5
	return []float64{2*t1 + 4*t2, 4*t1 + 2*t2}
}

// diagQuadraticTest is the 3-variable f(x) = 1/2 x^T A x - b^T x with
// A = diag(1, 10, 100), b = (1, 1, 1), whose unique minimizer is
// x* = (1, 0.1, 0.01); BFGS on an exact quadratic reaches it in at most
// n+1 iterations (spec.md §8).
var diagQuadraticDiag = [3]float64{1, 10, 100}

func diagQuadraticTest(x []float64) float64 {
	sum := 0.0
	for i, xi := range x {
		sum += 0.5*diagQuadraticDiag[i]*xi*xi - xi
	}
	return sum
}

func diagQuadraticGradTest(x []float64) []float64 {
	g := make([]float64, len(x))
	for i, xi := range x {
		g[i] = diagQuadraticDiag[i]*xi - 1
	}
	return g
}

// rastriginTest is the 2D Rastrigin function with a = 10, a non-convex
// multimodal bowl whose global minimum is at the origin (spec.md §8).
func rastriginTest(x []float64) float64 {
	const a = 10.0
	sum := a * float64(len(x))
	for _, xi := range x {
		sum += xi*xi - a*math.Cos(2*math.Pi*xi)
	}
	return sum
}

func rastriginGradTest(x []float64) []float64 {
	const a = 10.0
	g := make([]float64, len(x))
	for i, xi := range x {
		g[i] = 2*xi + 2*a*math.Pi*math.Sin(2*math.Pi*xi)
	}
	return g
}
