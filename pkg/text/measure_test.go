package text

import (
	"testing"

	"github.com/go-drift/uikit/pkg/geometry"
)

func TestMeasurer_SingleLine(t *testing.T) {
	m := Default()

	if m.LineHeight() <= 0 {
		t.Fatalf("LineHeight = %v, want positive", m.LineHeight())
	}

	one := m.Measure("a")
	two := m.Measure("ab")
	if one.Width <= 0 {
		t.Errorf("width of %q = %v, want positive", "a", one.Width)
	}
	if !geometry.FloatEqual(two.Width, one.Width*2) {
		t.Errorf("monospace face: width(%q) = %v, want %v", "ab", two.Width, one.Width*2)
	}
	if !geometry.FloatEqual(one.Height, m.LineHeight()) {
		t.Errorf("single line height = %v, want %v", one.Height, m.LineHeight())
	}
}

func TestMeasurer_MultiLine(t *testing.T) {
	m := Default()

	got := m.Measure("short\nmuch longer line\nmid")
	if !geometry.FloatEqual(got.Height, m.LineHeight()*3) {
		t.Errorf("height = %v, want three lines", got.Height)
	}
	longest := m.Measure("much longer line")
	if !geometry.FloatEqual(got.Width, longest.Width) {
		t.Errorf("width = %v, want the longest line's %v", got.Width, longest.Width)
	}
}

func TestMeasurer_Empty(t *testing.T) {
	m := Default()
	got := m.Measure("")
	if got.Width != 0 {
		t.Errorf("empty string width = %v, want 0", got.Width)
	}
	if !geometry.FloatEqual(got.Height, m.LineHeight()) {
		t.Errorf("empty string still occupies a line, height = %v", got.Height)
	}
}

func TestMeasurer_IntrinsicCallback(t *testing.T) {
	m := Default()
	intrinsic := m.Intrinsic("hello")

	got := intrinsic(geometry.Size{Width: 10, Height: 10})
	want := m.Measure("hello")
	if got != want {
		t.Errorf("intrinsic = %+v, want %+v regardless of available space", got, want)
	}
}
