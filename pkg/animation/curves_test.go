package animation

import (
	"math"
	"testing"
)

func TestCurves_Endpoints(t *testing.T) {
	curves := map[string]func(float64) float64{
		"linear":           LinearCurve,
		"ease_in_ease_out": EaseInEaseOut,
		"quad_in_out":      QuadInOut,
		"ease_out":         EaseOut,
		"ease_in_out":      EaseInOut,
		"custom_bezier":    CubicBezier(0.4, 0, 1, 1),
	}
	for name, curve := range curves {
		t.Run(name, func(t *testing.T) {
			if got := curve(0); math.Abs(got) > 1e-6 {
				t.Errorf("curve(0) = %v, want 0", got)
			}
			if got := curve(1); math.Abs(got-1) > 1e-6 {
				t.Errorf("curve(1) = %v, want 1", got)
			}
			// Out-of-range input clamps.
			if got := curve(-1); got != 0 {
				t.Errorf("curve(-1) = %v, want 0", got)
			}
			if got := curve(2); got != 1 {
				t.Errorf("curve(2) = %v, want 1", got)
			}
		})
	}
}

func TestCurves_Monotonic(t *testing.T) {
	curves := map[string]func(float64) float64{
		"ease_in_ease_out": EaseInEaseOut,
		"quad_in_out":      QuadInOut,
		"ease_out":         EaseOut,
		"ease_in_out":      EaseInOut,
		"custom_bezier":    CubicBezier(0.4, 0, 1, 1),
	}
	for name, curve := range curves {
		t.Run(name, func(t *testing.T) {
			prev := curve(0)
			for i := 1; i <= 100; i++ {
				v := curve(float64(i) / 100)
				if v < prev-1e-6 {
					t.Fatalf("curve decreased at t=%v: %v < %v", float64(i)/100, v, prev)
				}
				prev = v
			}
		})
	}
}

func TestEaseInEaseOut_Midpoint(t *testing.T) {
	if got := EaseInEaseOut(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("EaseInEaseOut(0.5) = %v, want exactly 0.5", got)
	}
}

func TestCubicBezier_Shape(t *testing.T) {
	// An ease-in shape stays below the diagonal early, ease-out above it.
	easeIn := CubicBezier(0.4, 0, 1, 1)
	if v := easeIn(0.25); v >= 0.25 {
		t.Errorf("ease-in bezier(0.25) = %v, should undershoot linear", v)
	}
	if v := EaseOut(0.25); v <= 0.25 {
		t.Errorf("EaseOut(0.25) = %v, should overshoot linear", v)
	}

	// A bezier with control points on the diagonal is linear.
	linear := CubicBezier(0.25, 0.25, 0.75, 0.75)
	for _, x := range []float64{0.1, 0.33, 0.5, 0.77, 0.9} {
		if got := linear(x); math.Abs(got-x) > 1e-4 {
			t.Errorf("diagonal bezier at %v = %v, want %v", x, got, x)
		}
	}
}
