// Package optim implements unconstrained nonlinear optimization of smooth
// objectives: an iteration driver (Optimize), four direction oracles
// (GradientDescent, ConjugateGradient, BFGS, TrustRegion), and two line
// searches (Armijo backtracking, Strong-Wolfe bracketing/zoom).
//
// A typical caller constructs an Objective, wraps it and an initial guess in
// a Problem, and runs it:
//
//	obj := optim.NewObjective(f, grad)
//	problem, err := optim.NewProblem(obj, x0, optim.DefaultConfig(optim.BFGS))
//	result, err := optim.Optimize(problem, nil)
//
// The package covers only local optimization of a single deterministic
// smooth objective; constrained problems, global search, and stochastic
// objectives are out of scope.
package optim
