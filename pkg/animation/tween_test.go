package animation

import (
	"testing"

	"github.com/go-drift/uikit/pkg/geometry"
)

func TestTweenFloat64(t *testing.T) {
	tw := TweenFloat64(10, 20)
	if got := tw.Evaluate(0); got != 10 {
		t.Errorf("Evaluate(0) = %v, want 10", got)
	}
	if got := tw.Evaluate(0.5); got != 15 {
		t.Errorf("Evaluate(0.5) = %v, want 15", got)
	}
	if got := tw.Evaluate(1); got != 20 {
		t.Errorf("Evaluate(1) = %v, want 20", got)
	}
}

func TestTweenOffset(t *testing.T) {
	tw := TweenOffset(geometry.Offset{X: 0, Y: 100}, geometry.Offset{X: 50, Y: 0})
	got := tw.Evaluate(0.5)
	if got.X != 25 || got.Y != 50 {
		t.Errorf("Evaluate(0.5) = %+v, want {25 50}", got)
	}
}

func TestTween_NilLerpReturnsEnd(t *testing.T) {
	tw := &Tween[string]{Begin: "a", End: "b"}
	if got := tw.Evaluate(0); got != "b" {
		t.Errorf("Evaluate(0) = %q, want end value", got)
	}
}
