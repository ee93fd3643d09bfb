// Package bench provides smooth analytic test objectives for exercising the
// optim package, adapted from the reference source's test_functions.go into
// optim.Objective-shaped (Func, Grad) pairs rather than bare functions.
package bench

import "math"

// Named returns the (f, grad, x0) triple for one of the built-in objectives,
// or ok=false if name is not recognized. x0 is the starting point that
// cmd/optimize's solve command uses for the named problem.
func Named(name string) (f func([]float64) float64, grad func([]float64) []float64, x0 []float64, ok bool) {
	switch name {
	case "sphere":
		return Sphere, SphereGrad, []float64{5, 5}, true
	case "booth":
		return Booth, BoothGrad, []float64{0, 0}, true
	case "beale":
		return Beale, BealeGrad, []float64{1, 1}, true
	case "rosenbrock":
		return Rosenbrock, RosenbrockGrad, []float64{-1.2, 1.0}, true
	case "himmelblau":
		return Himmelblau, HimmelblauGrad, []float64{0, 0}, true
	case "rastrigin":
		return Rastrigin, RastriginGrad, []float64{3.5, -2.8}, true
	case "quadratic":
		return Quadratic, QuadraticGrad, []float64{4, -3, 2, -1}, true
	}
	return nil, nil, nil, false
}

// Names lists the built-in objectives in the order cmd/optimize prints them.
func Names() []string {
	return []string{"sphere", "booth", "beale", "rosenbrock", "himmelblau", "rastrigin", "quadratic"}
}

// Sphere is f(x) = sum(x_i^2), the convex bowl used for the "round-trip
// property" and diagonal-Hessian sanity scenarios.
func Sphere(x []float64) float64 {
	sum := 0.0
	for _, xi := range x {
		sum += xi * xi
	}
	return sum
}

func SphereGrad(x []float64) []float64 {
	grad := make([]float64, len(x))
	for i, xi := range x {
		grad[i] = 2 * xi
	}
	return grad
}

// Booth is f(x,y) = (x+2y-7)^2 + (2x+y-5)^2, minimized at (1,3).
func Booth(x []float64) float64 {
	t1 := x[0] + 2*x[1] - 7
	t2 := 2*x[0] + x[1] - 5
	return t1*t1 + t2*t2
}

func BoothGrad(x []float64) []float64 {
	t1 := x[0] + 2*x[1] - 7
	t2 := 2*x[0] + x[1] - 5
	return []float64{2*t1 + 4*t2, 4*t1 + 2*t2}
}

// Beale is a non-convex valley minimized at (3, 0.5).
func Beale(x []float64) float64 {
	t1 := 1.5 - x[0] + x[0]*x[1]
	t2 := 2.25 - x[0] + x[0]*x[1]*x[1]
	t3 := 2.625 - x[0] + x[0]*x[1]*x[1]*x[1]
	return t1*t1 + t2*t2 + t3*t3
}

func BealeGrad(x []float64) []float64 {
	t1 := 1.5 - x[0] + x[0]*x[1]
	t2 := 2.25 - x[0] + x[0]*x[1]*x[1]
	t3 := 2.625 - x[0] + x[0]*x[1]*x[1]*x[1]

	dt1dx, dt1dy := -1+x[1], x[0]
	dt2dx, dt2dy := -1+x[1]*x[1], 2*x[0]*x[1]
	dt3dx, dt3dy := -1+x[1]*x[1]*x[1], 3*x[0]*x[1]*x[1]

	return []float64{
		2*t1*dt1dx + 2*t2*dt2dx + 2*t3*dt3dx,
		2*t1*dt1dy + 2*t2*dt2dy + 2*t3*dt3dy,
	}
}

// Rosenbrock is the classic curved-valley function, minimized at (1,1);
// Newton and quasi-Newton methods converge far faster on it than gradient
// descent, making it the standard BFGS-vs-trust-region-vs-CG comparison.
func Rosenbrock(x []float64) float64 {
	return math.Pow(1-x[0], 2) + 100*math.Pow(x[1]-x[0]*x[0], 2)
}

func RosenbrockGrad(x []float64) []float64 {
	return []float64{
		-2*(1-x[0]) - 400*x[0]*(x[1]-x[0]*x[0]),
		200 * (x[1] - x[0]*x[0]),
	}
}

// Himmelblau has four equal global minima, useful for observing which basin
// a method converges into from a given start.
func Himmelblau(x []float64) float64 {
	t1 := x[0]*x[0] + x[1] - 11
	t2 := x[0] + x[1]*x[1] - 7
	return t1*t1 + t2*t2
}

func HimmelblauGrad(x []float64) []float64 {
	t1 := x[0]*x[0] + x[1] - 11
	t2 := x[0] + x[1]*x[1] - 7
	return []float64{4*x[0]*t1 + 2*t2, 2*t1 + 4*x[1]*t2}
}

// Rastrigin is a highly multimodal function with a global minimum at the
// origin; local methods started away from it reliably converge to a nearby
// local minimum instead, which is the point of including it (spec.md's
// Non-goals explicitly exclude global optimization — this objective
// demonstrates the boundary, not a capability).
func Rastrigin(x []float64) float64 {
	const a = 10.0
	sum := a * float64(len(x))
	for _, xi := range x {
		sum += xi*xi - a*math.Cos(2*math.Pi*xi)
	}
	return sum
}

func RastriginGrad(x []float64) []float64 {
	const a = 10.0
	grad := make([]float64, len(x))
	for i, xi := range x {
		grad[i] = 2*xi + 2*a*math.Pi*math.Sin(2*math.Pi*xi)
	}
	return grad
}

// Quadratic is a separable diagonal-Hessian bowl f(x) = sum(i*x_i^2), used
// to exercise n > 2 dimensions. Its Hessian diag(2, 4, ..., 2n) has
// condition number n, well below the trust-region MaxCond default, so it
// does not trigger regularization.
func Quadratic(x []float64) float64 {
	sum := 0.0
	for i, xi := range x {
		sum += float64(i+1) * xi * xi
	}
	return sum
}

func QuadraticGrad(x []float64) []float64 {
	grad := make([]float64, len(x))
	for i, xi := range x {
		grad[i] = 2 * float64(i+1) * xi
	}
	return grad
}
