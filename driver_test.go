package optim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimizeStationaryStartConvergesImmediately(t *testing.T) {
	obj := NewObjective(sphereTest, sphereGradTest)
	problem, err := NewProblem(obj, []float64{0, 0}, DefaultConfig(GradientDescent))
	require.NoError(t, err)

	result, err := Optimize(problem, nopReporter{})
	require.NoError(t, err)
	require.True(t, result.Converged)
	require.Equal(t, CauseGradPrevTol, result.Cause)
	require.Equal(t, 0, result.Iterations)
}

func TestOptimizeGradientDescentOnSphere(t *testing.T) {
	obj := NewObjective(sphereTest, sphereGradTest)
	problem, err := NewProblem(obj, []float64{5, 5}, DefaultConfig(GradientDescent))
	require.NoError(t, err)

	result, err := Optimize(problem, nopReporter{})
	require.NoError(t, err)
	require.True(t, result.Converged, result.StatusMessage)
	require.Less(t, Norm(result.X), 1e-3)
}

func TestOptimizeBFGSOnRosenbrock(t *testing.T) {
	obj := NewObjective(roughlyRosenbrock, roughlyRosenbrockGrad)
	problem, err := NewProblem(obj, []float64{-1.2, 1.0}, DefaultConfig(BFGS))
	require.NoError(t, err)

	result, err := Optimize(problem, nopReporter{})
	require.NoError(t, err)
	require.True(t, result.Converged, result.StatusMessage)
	require.InDelta(t, 1.0, result.X[0], 1e-3)
	require.InDelta(t, 1.0, result.X[1], 1e-3)
}

func TestOptimizeConjugateGradientOnBooth(t *testing.T) {
	obj := NewObjective(boothTest, boothGradTest)
	problem, err := NewProblem(obj, []float64{0, 0}, DefaultConfig(ConjugateGradient))
	require.NoError(t, err)

	result, err := Optimize(problem, nopReporter{})
	require.NoError(t, err)
	require.True(t, result.Converged, result.StatusMessage)
	require.InDelta(t, 1.0, result.X[0], 1e-3)
	require.InDelta(t, 3.0, result.X[1], 1e-3)
}

// TestOptimizeConjugateGradientOnRosenbrockRestarts exercises spec.md §8's
// Rosenbrock-via-CG scenario, which names an *observed* hard restart as
// part of the scenario: Rosenbrock's curving valley is sharp enough that
// Polak–Ribière+ restarts at least once before convergence, and a
// regression that silently stopped restarting (e.g. a broken beta clamp)
// would otherwise still converge and pass undetected.
func TestOptimizeConjugateGradientOnRosenbrockRestarts(t *testing.T) {
	obj := NewObjective(roughlyRosenbrock, roughlyRosenbrockGrad)
	problem, err := NewProblem(obj, []float64{-1.2, 1.0}, DefaultConfig(ConjugateGradient))
	require.NoError(t, err)

	result, err := Optimize(problem, nopReporter{})
	require.NoError(t, err)
	require.True(t, result.Converged, result.StatusMessage)
	require.InDelta(t, 1.0, result.X[0], 1e-2)
	require.InDelta(t, 1.0, result.X[1], 1e-2)

	restarted := false
	for _, rec := range result.History {
		if rec.Restarted {
			restarted = true
			break
		}
	}
	require.True(t, restarted, "expected at least one recorded Polak–Ribière+ restart")
}

func TestOptimizeTrustRegionOnRosenbrock(t *testing.T) {
	obj := NewObjective(roughlyRosenbrock, roughlyRosenbrockGrad)
	problem, err := NewProblem(obj, []float64{-1.2, 1.0}, DefaultConfig(TrustRegion))
	require.NoError(t, err)

	result, err := Optimize(problem, nopReporter{})
	require.NoError(t, err)
	require.True(t, result.Converged, result.StatusMessage)
	require.InDelta(t, 1.0, result.X[0], 1e-2)
	require.InDelta(t, 1.0, result.X[1], 1e-2)

	// spec.md §8 names both a shrink and a later expand as part of this
	// scenario: Rosenbrock's curvature forces an early rejected/shrunk step
	// near the valley's bend, then the radius grows again once the model
	// tracks the curvature well. A regression that stopped expanding (e.g.
	// a broken boundary-tolerance check) would still converge and pass
	// undetected without this trajectory assertion.
	shrunk, expanded := false, false
	for i := 1; i < len(result.History); i++ {
		prev, cur := result.History[i-1].Delta, result.History[i].Delta
		switch {
		case cur < prev:
			shrunk = true
		case cur > prev:
			expanded = true
		}
	}
	require.True(t, shrunk, "expected at least one trust-region radius shrink")
	require.True(t, expanded, "expected at least one trust-region radius expand")
}

// TestOptimizeBFGSOnDiagonalQuadraticBound exercises spec.md §8's
// diagonal-quadratic scenario: BFGS on an exact quadratic in n variables
// reaches the unique minimizer in at most n+1 iterations, since the
// inverse-Hessian approximation becomes exact after n curvature updates.
func TestOptimizeBFGSOnDiagonalQuadraticBound(t *testing.T) {
	obj := NewObjective(diagQuadraticTest, diagQuadraticGradTest)
	problem, err := NewProblem(obj, []float64{0, 0, 0}, DefaultConfig(BFGS))
	require.NoError(t, err)

	result, err := Optimize(problem, nopReporter{})
	require.NoError(t, err)
	require.True(t, result.Converged, result.StatusMessage)
	require.LessOrEqual(t, result.Iterations, 4)
	require.InDelta(t, 1.0, result.X[0], 1e-6)
	require.InDelta(t, 0.1, result.X[1], 1e-6)
	require.InDelta(t, 0.01, result.X[2], 1e-6)
	require.Less(t, result.GradNorm, 1e-6)
}

// TestOptimizeGradientDescentOnRastrigin exercises spec.md §8's 2D
// Rastrigin scenario: from a start inside the origin's basin of
// attraction, steepest descent converges to the global minimum at (0, 0)
// despite the surrounding multimodal bowl.
func TestOptimizeGradientDescentOnRastrigin(t *testing.T) {
	obj := NewObjective(rastriginTest, rastriginGradTest)
	problem, err := NewProblem(obj, []float64{0.3, 0.3}, DefaultConfig(GradientDescent))
	require.NoError(t, err)

	result, err := Optimize(problem, nopReporter{})
	require.NoError(t, err)
	require.True(t, result.Converged, result.StatusMessage)
	require.InDelta(t, 0.0, result.X[0], 1e-3)
	require.InDelta(t, 0.0, result.X[1], 1e-3)
	require.Less(t, result.GradNorm, 1e-6)
}

func TestOptimizeMaxIterStopsEarly(t *testing.T) {
	obj := NewObjective(roughlyRosenbrock, roughlyRosenbrockGrad)
	cfg := DefaultConfig(GradientDescent)
	cfg.MaxIter = 2
	problem, err := NewProblem(obj, []float64{-1.2, 1.0}, cfg)
	require.NoError(t, err)

	result, err := Optimize(problem, nopReporter{})
	require.NoError(t, err)
	require.False(t, result.Converged)
	require.Equal(t, CauseMaxIter, result.Cause)
	require.Equal(t, 2, result.Iterations)
}

func TestOptimizeHistoryIsMonotonicInK(t *testing.T) {
	obj := NewObjective(sphereTest, sphereGradTest)
	problem, err := NewProblem(obj, []float64{5, 5}, DefaultConfig(BFGS))
	require.NoError(t, err)

	result, err := Optimize(problem, nopReporter{})
	require.NoError(t, err)
	for i, rec := range result.History {
		require.Equal(t, i, rec.K)
	}
}

func TestOptimizeRejectsNilObjectiveAtConstruction(t *testing.T) {
	_, err := NewProblem(nil, []float64{1}, DefaultConfig(GradientDescent))
	require.Error(t, err)
}

// TestOptimizeSameSeedIsDeterministic exercises spec.md §8's round-trip
// property: two runs from the same Problem produce byte-identical
// trajectories, since Optimize has no hidden randomness or wall-clock
// dependence in its arithmetic path.
func TestOptimizeSameSeedIsDeterministic(t *testing.T) {
	newProblem := func() Problem {
		obj := NewObjective(roughlyRosenbrock, roughlyRosenbrockGrad)
		p, err := NewProblem(obj, []float64{-1.2, 1.0}, DefaultConfig(BFGS))
		require.NoError(t, err)
		return p
	}

	r1, err := Optimize(newProblem(), nopReporter{})
	require.NoError(t, err)
	r2, err := Optimize(newProblem(), nopReporter{})
	require.NoError(t, err)

	require.Equal(t, r1.Iterations, r2.Iterations)
	require.Equal(t, r1.X, r2.X)
	require.Equal(t, r1.F, r2.F)
}
