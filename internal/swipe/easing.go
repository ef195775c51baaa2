package swipe

import "math"

// Easing maps linear progress in [0,1] to eased progress.
type Easing interface {
	At(t float64) float64
}

// Linear is the identity easing.
type Linear struct{}

func (Linear) At(t float64) float64 { return clamp01(t) }

// CubicBezier is a CSS cubic-bezier() timing function with fixed end points
// (0,0) and (1,1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// SwipeEasing is the ease-out curve shared by every swipe transition.
var SwipeEasing = CubicBezier{X1: 0.25, Y1: 0.46, X2: 0.45, Y2: 0.94}

const bezierEpsilon = 1e-6

// At returns the curve's y for x = t.
func (c CubicBezier) At(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return clamp01(c.sampleY(c.solveX(t)))
}

// Polynomial coefficients for one axis of the curve.
func coefficients(p1, p2 float64) (a, b, c float64) {
	c = 3 * p1
	b = 3*(p2-p1) - c
	a = 1 - c - b
	return a, b, c
}

func (c CubicBezier) sampleX(s float64) float64 {
	a, b, cc := coefficients(c.X1, c.X2)
	return ((a*s+b)*s + cc) * s
}

func (c CubicBezier) sampleY(s float64) float64 {
	a, b, cc := coefficients(c.Y1, c.Y2)
	return ((a*s+b)*s + cc) * s
}

func (c CubicBezier) sampleDX(s float64) float64 {
	a, b, cc := coefficients(c.X1, c.X2)
	return (3*a*s+2*b)*s + cc
}

// solveX finds the curve parameter s with sampleX(s) == x. Newton first,
// bisection when the slope is too flat to trust.
func (c CubicBezier) solveX(x float64) float64 {
	s := x
	for i := 0; i < 8; i++ {
		dx := c.sampleX(s) - x
		if math.Abs(dx) < bezierEpsilon {
			return s
		}
		d := c.sampleDX(s)
		if math.Abs(d) < bezierEpsilon {
			break
		}
		s -= dx / d
	}

	lo, hi := 0.0, 1.0
	s = x
	for i := 0; i < 64 && lo < hi; i++ {
		v := c.sampleX(s)
		if math.Abs(v-x) < bezierEpsilon {
			return s
		}
		if x > v {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return s
}
