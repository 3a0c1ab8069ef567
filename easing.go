package folio

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Named cubic-bezier curves matching the usual CSS keywords.
var (
	EaseLinear    ease.TweenFunc = ease.Linear
	EaseIn                       = CubicBezier(0.42, 0, 1, 1)
	EaseOut                      = CubicBezier(0, 0, 0.58, 1)
	EaseInOut                    = CubicBezier(0.42, 0, 0.58, 1)
	EaseSmoothOut                = CubicBezier(0.25, 0.46, 0.45, 0.94)
)

var namedEasings = map[string]ease.TweenFunc{
	"linear":     EaseLinear,
	"easeIn":     EaseIn,
	"easeOut":    EaseOut,
	"easeInOut":  EaseInOut,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inOutSine":  ease.InOutSine,
	"outBack":    ease.OutBack,
	"outBounce":  ease.OutBounce,
	"outElastic": ease.OutElastic,
}

// EasingByName returns a named easing function.
func EasingByName(name string) (ease.TweenFunc, error) {
	fn, ok := namedEasings[name]
	if !ok {
		return nil, fmt.Errorf("folio: unknown easing %q", name)
	}
	return fn, nil
}

// CubicBezier returns an easing function for the curve through (0,0),
// (x1,y1), (x2,y2), (1,1). x1 and x2 are clamped to [0, 1] so the curve is
// a function of time.
func CubicBezier(x1, y1, x2, y2 float64) ease.TweenFunc {
	x1 = clamp01(x1)
	x2 = clamp01(x2)
	if x1 == y1 && x2 == y2 {
		return ease.Linear
	}
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		p := float64(t / d)
		if p <= 0 {
			return b
		}
		if p >= 1 {
			return b + c
		}
		u := solveBezierX(p, x1, x2)
		return b + c*float32(bezierCoord(u, y1, y2))
	}
}

// bezierCoord evaluates one coordinate of a unit cubic bezier at parameter u.
func bezierCoord(u, p1, p2 float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*p1 + 3*inv*u*u*p2 + u*u*u
}

func bezierSlope(u, p1, p2 float64) float64 {
	inv := 1 - u
	return 3*inv*inv*p1 + 6*inv*u*(p2-p1) + 3*u*u*(1-p2)
}

// solveBezierX finds u with x(u) = x using Newton steps, falling back to
// bisection when the slope is too flat.
func solveBezierX(x, x1, x2 float64) float64 {
	u := x
	for range 8 {
		dx := bezierCoord(u, x1, x2) - x
		if math.Abs(dx) < 1e-6 {
			return u
		}
		slope := bezierSlope(u, x1, x2)
		if math.Abs(slope) < 1e-6 {
			break
		}
		u -= dx / slope
	}
	lo, hi := 0.0, 1.0
	u = x
	for range 40 {
		v := bezierCoord(u, x1, x2)
		if math.Abs(v-x) < 1e-6 {
			break
		}
		if v < x {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return u
}
