package optim

import (
	"fmt"
	"log/slog"
	"os"
)

// Optimize runs the Iteration Driver of spec.md §4.5 to local-minimize
// problem.Objective from problem.X0, returning a trimmed Result. reporter
// may be nil, in which case a TableReporter writing to os.Stdout is used
// when Config.Progress > 0, or progress is suppressed entirely when
// Config.Progress == 0.
func Optimize(problem Problem, reporter Reporter) (Result, error) {
	cfg := problem.Config
	n := len(problem.X0)
	obj := problem.Objective

	if reporter == nil {
		if cfg.Progress > 0 {
			reporter = NewTableReporter(os.Stdout)
		} else {
			reporter = nopReporter{}
		}
	}

	x := Clone(problem.X0)
	fx, gx := obj.Evaluate(x, ValueAndGradient)
	if !finiteScalar(fx) || !finite(gx) {
		return Result{}, fmt.Errorf("%w: at initial guess", ErrNonFinite)
	}

	oracle := newDirectionOracle(cfg.Method)
	trState := newTrustRegionState(cfg, n)
	recDelta := func() float64 {
		if cfg.Method == TrustRegion {
			return trState.Delta
		}
		return 0
	}

	history := []IterationRecord{{K: 0, X: Clone(x), F: fx, G: Clone(gx), GradNorm: Norm(gx), Delta: recDelta()}}
	reporter.Header()

	// Round-trip property: a stationary initial guess converges at once,
	// before any direction is ever followed (spec.md §8).
	if Norm(gx) < cfg.GradTol {
		reporter.Row(history[0])
		return finish(cfg, history, true, CauseGradPrevTol, 0, obj), nil
	}

	var xPrev, gPrev, pPrev []float64
	var fPrev float64
	var p []float64

	maxIter := cfg.MaxIter
	unlimited := maxIter <= 0

	for k := 1; unlimited || k <= maxIter; k++ {
		var (
			xNew, gNew  []float64
			fNew, alpha float64
			lsEvals     int
			lsOK        = true
			gPrevForTR  = gx
		)

		if cfg.Method == TrustRegion {
			res := dogleg(obj, x, fx, gx, trState.B, &trState, cfg)
			lsEvals = res.Evals
			if res.SingularModel {
				slog.Warn("trust region: g^T B g <= 0, using scaled-gradient Cauchy step", "iter", k)
			}
			if !res.Accept {
				// Rejected step: x, f, g are unchanged; retry next iteration
				// with a smaller radius. Record the attempt and continue,
				// unless the radius has collapsed below tolerance.
				history = append(history, IterationRecord{K: k, X: Clone(x), F: fx, G: Clone(gx), GradNorm: Norm(gx), LineSearchEvals: lsEvals, Delta: trState.Delta, Accept: false})
				if k%maxi(cfg.Progress, 1) == 0 && cfg.Progress > 0 {
					reporter.Row(history[len(history)-1])
				}
				if trState.Delta < cfg.DeltaTol {
					reporter.Row(history[len(history)-1])
					return finish(cfg, history, false, CauseDeltaTol, k, obj), nil
				}
				continue
			}
			xNew, fNew, gNew = res.XNew, res.FNew, res.GNew
			alpha = 1
			p = res.Step
			trState.B = updateHessianBFGS(trState.B, p, Sub(gNew, gPrevForTR))
		} else {
			p = oracle.direction(k, x, xPrev, gx, gPrev, pPrev, fx)
			restartedThisStep := cfg.Method == ConjugateGradient && oracle.cg.JustRestarted
			if restartedThisStep {
				slog.Warn("conjugate gradient: restarting with steepest descent", "iter", k)
			}

			var ls lineSearchResult
			if cfg.LineSearch == StrongWolfe {
				ls = strongWolfeLineSearch(obj, x, p, fx, gx, cfg.C1, cfg.C2, cfg.Lambda, cfg.LambdaMax, 30)
			} else {
				ls = armijoLineSearch(obj, x, p, fx, gx, cfg.C1, cfg.Lambda)
			}
			lsEvals = ls.Evals
			lsOK = ls.Success

			if !lsOK {
				history = append(history, IterationRecord{K: k, X: Clone(x), F: fx, G: Clone(gx), GradNorm: Norm(gx), Alpha: ls.Alpha, LineSearchEvals: lsEvals, Restarted: restartedThisStep})
				reporter.Row(history[len(history)-1])
				return finish(cfg, history, false, CauseLineSearchFailed, k, obj), nil
			}

			alpha = ls.Alpha
			xNew = AddScaled(x, p, alpha)
			if ls.GNew != nil {
				fNew, gNew = ls.FNew, ls.GNew
			} else {
				fNew, gNew = obj.Evaluate(xNew, ValueAndGradient)
			}
		}

		if !finiteScalar(fNew) || !finite(gNew) {
			return Result{}, fmt.Errorf("%w: at iteration %d, x=%v", ErrNonFinite, k, xNew)
		}

		// Shift history (spec.md §4.5 step 4): commit atomically so a
		// mid-iteration interruption never observes a half-updated state.
		xPrev, fPrev, gPrev, pPrev = x, fx, gx, p
		x, fx, gx = xNew, fNew, gNew

		gNormPrev := Norm(gPrev)
		gNorm := Norm(gx)
		funcChange := abs(fx - fPrev)
		stepNorm := Norm(Sub(x, xPrev))
		justRestarted := cfg.Method == ConjugateGradient && oracle.cg.JustRestarted

		rec := IterationRecord{K: k, X: Clone(x), F: fx, G: Clone(gx), GradNorm: gNorm, Alpha: alpha, LineSearchEvals: lsEvals, Restarted: justRestarted, Delta: recDelta(), Accept: cfg.Method == TrustRegion}
		history = append(history, rec)
		slog.Debug("iteration", "iter", k, "f", fx, "gnorm", gNorm, "alpha", alpha)
		if cfg.Progress > 0 && k%cfg.Progress == 0 {
			reporter.Row(rec)
		}

		cause, converged := checkTermination(cfg, gNormPrev, gNorm, funcChange, stepNorm, justRestarted, k, trState.Delta)
		if cause != "" {
			reporter.Row(rec)
			return finish(cfg, history, converged, cause, k, obj), nil
		}
	}

	last := history[len(history)-1]
	reporter.Row(last)
	return finish(cfg, history, false, CauseMaxIter, last.K, obj), nil
}

// checkTermination evaluates the ordered causes of spec.md §4.5: line
// search failure is handled by the caller before this is reached.
// dftol/dxtol are skipped on a CG restart iteration or under TrustRegion
// (SPEC_FULL.md §9, open question 4; spec.md §4.5).
func checkTermination(cfg Config, gNormPrev, gNorm, funcChange, stepNorm float64, justRestarted bool, k int, delta float64) (cause string, converged bool) {
	if gNormPrev < cfg.GradTol {
		return CauseGradPrevTol, true
	}
	if gNorm < cfg.GradTol {
		return CauseGradTol, true
	}
	if cfg.Method != TrustRegion && !justRestarted {
		if funcChange < cfg.FuncTol {
			return CauseFuncTol, true
		}
		if stepNorm < cfg.StepTol {
			return CauseStepTol, true
		}
	}
	if cfg.MaxIter > 0 && k >= cfg.MaxIter {
		return CauseMaxIter, false
	}
	if cfg.Method == TrustRegion && delta < cfg.DeltaTol {
		return CauseDeltaTol, false
	}
	return "", false
}

func finish(cfg Config, history []IterationRecord, converged bool, cause string, iterations int, obj Objective) Result {
	last := history[len(history)-1]
	lsEvals := 0
	for _, r := range history {
		lsEvals += r.LineSearchEvals
	}
	return Result{
		Converged:       converged,
		StatusMessage:   statusMessage(cause, converged),
		Cause:           cause,
		History:         history,
		X:               last.X,
		F:               last.F,
		G:               last.G,
		GradNorm:        last.GradNorm,
		Iterations:      iterations,
		FuncEvals:       obj.FuncEvals(),
		GradEvals:       obj.GradEvals(),
		LineSearchEvals: lsEvals,
		Config:          cfg,
	}
}

func statusMessage(cause string, converged bool) string {
	if converged {
		return "converged: " + cause
	}
	return "stopped: " + cause
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}
