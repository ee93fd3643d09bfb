package optim

import "testing"

func TestStrongWolfeLineSearchSatisfiesCurvatureOnSphere(t *testing.T) {
	obj := NewObjective(sphereTest, sphereGradTest)
	x := []float64{3, 4}
	fx, gx := obj.Evaluate(x, ValueAndGradient)
	p := Negate(gx)

	c1, c2 := 1e-4, 0.9
	res := strongWolfeLineSearch(obj, x, p, fx, gx, c1, c2, 1, 100, 30)
	if !res.Success {
		t.Fatalf("strongWolfeLineSearch failed to find an accepting step")
	}

	dphi0 := Dot(gx, p)
	if res.FNew > fx+c1*res.Alpha*dphi0 {
		t.Errorf("accepted step violates the Armijo condition")
	}
	dphiNew := Dot(res.GNew, p)
	if abs(dphiNew) > -c2*dphi0+1e-8 {
		t.Errorf("accepted step violates the strong curvature condition: |dphi|=%v, bound=%v", abs(dphiNew), -c2*dphi0)
	}
}

func TestCubicMinimizerBetweenEndpointsWhenBracketing(t *testing.T) {
	lo := zoomEndpoint{alpha: 0, phi: 10, dphi: -4}
	hi := zoomEndpoint{alpha: 2, phi: 2, dphi: 1}
	alpha, ok := cubicMinimizer(lo, hi)
	if !ok {
		t.Fatalf("cubicMinimizer reported no minimizer for a bracketing pair")
	}
	if alpha < lo.alpha || alpha > hi.alpha {
		t.Errorf("cubicMinimizer = %v, want in [%v, %v]", alpha, lo.alpha, hi.alpha)
	}
}

func TestCubicMinimizerRejectsDegenerateBracket(t *testing.T) {
	lo := zoomEndpoint{alpha: 1, phi: 5, dphi: 0}
	hi := zoomEndpoint{alpha: 1, phi: 5, dphi: 0}
	if _, ok := cubicMinimizer(lo, hi); ok {
		t.Errorf("cubicMinimizer accepted a zero-width bracket")
	}
}
