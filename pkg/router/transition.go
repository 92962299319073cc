package router

import (
	"fmt"
	"time"

	"github.com/go-drift/uikit/pkg/animation"
	"github.com/go-drift/uikit/pkg/geometry"
)

// DefaultDuration is the transition length used when neither the
// config nor the router specifies one.
const DefaultDuration = 300 * time.Millisecond

// Transition maps on-stage progress to surface adjustments.
//
// Apply configures the surface for progress t in [0, 1], where t=1 is
// fully on stage and t=0 fully off stage. The router runs entering
// pages from 0 to 1 and exiting pages from 1 to 0.
type Transition interface {
	Apply(surface *Surface, t float64)
}

// SlideTransition translates the page horizontally.
type SlideTransition struct {
	// Amount is the off-stage offset as a fraction of the surface
	// width. 1 parks the page past the right edge; a small negative
	// value like -0.1 nudges it slightly left, the classic stacked-
	// navigation background drift.
	Amount float64
}

// Apply shifts the surface by the off-stage fraction of its width.
func (tr SlideTransition) Apply(surface *Surface, t float64) {
	parked := geometry.Offset{X: tr.Amount * surface.Rect.Width()}
	slide := animation.TweenOffset(parked, geometry.Offset{})
	surface.Offset = surface.Offset.Add(slide.Evaluate(clampUnit(t)))
}

// FadeTransition interpolates the page's opacity.
type FadeTransition struct{}

// Apply scales the surface opacity by the on-stage progress.
func (FadeTransition) Apply(surface *Surface, t float64) {
	surface.Opacity *= animation.TweenFloat64(0, 1).Evaluate(clampUnit(t))
}

// NoTransition leaves the surface untouched; the swap is instant.
type NoTransition struct{}

// Apply does nothing.
func (NoTransition) Apply(*Surface, float64) {}

// TransitionConfig describes how one navigation animates. Forward and
// backward navigation carry independent configs on the router, and any
// single navigation can override them.
type TransitionConfig struct {
	// Duration of the animation. Zero falls back to the router's
	// default duration.
	Duration time.Duration

	// Easing maps normalized time to eased progress. Nil falls back to
	// animation.EaseInEaseOut.
	Easing func(float64) float64

	// In is applied to the page entering the stage.
	In Transition

	// Out is applied to the page leaving the stage.
	Out Transition

	instant bool
}

// Slide returns the default stacked-navigation transition: the new page
// slides in from the right while the old page drifts slightly left.
func Slide() TransitionConfig {
	return TransitionConfig{
		In:  SlideTransition{Amount: 1.0},
		Out: SlideTransition{Amount: -0.1},
	}
}

// Fade returns a cross-fade transition.
func Fade() TransitionConfig {
	return TransitionConfig{
		In:  FadeTransition{},
		Out: FadeTransition{},
	}
}

// None returns an instant swap; the duration is treated as zero.
func None() TransitionConfig {
	return TransitionConfig{
		In:      NoTransition{},
		Out:     NoTransition{},
		instant: true,
	}
}

// WithEasing returns a copy with the easing replaced.
func (c TransitionConfig) WithEasing(easing func(float64) float64) TransitionConfig {
	c.Easing = easing
	return c
}

// WithDuration returns a copy with the duration replaced.
func (c TransitionConfig) WithDuration(d time.Duration) TransitionConfig {
	c.Duration = d
	return c
}

func (c TransitionConfig) duration(fallback time.Duration) time.Duration {
	if c.instant {
		return 0
	}
	if c.Duration > 0 {
		return c.Duration
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultDuration
}

func (c TransitionConfig) easing() func(float64) float64 {
	if c.Easing != nil {
		return c.Easing
	}
	return animation.EaseInEaseOut
}

// TransitionEvent is the per-frame outcome of [Router.Render].
type TransitionEvent int

const (
	// TransitionIdle means no transition is in flight; the current page
	// rendered directly.
	TransitionIdle TransitionEvent = iota
	// TransitionContinue means a transition advanced but has not
	// finished; the host should keep redrawing.
	TransitionContinue
	// TransitionDone means a forward transition completed this frame.
	TransitionDone
	// TransitionDonePop means a backward transition completed and the
	// exited page was removed from history.
	TransitionDonePop
)

// String returns a human-readable representation of the event.
func (e TransitionEvent) String() string {
	switch e {
	case TransitionIdle:
		return "idle"
	case TransitionContinue:
		return "continue"
	case TransitionDone:
		return "done"
	case TransitionDonePop:
		return "done_pop"
	default:
		return fmt.Sprintf("TransitionEvent(%d)", int(e))
	}
}

type transitionDirection int

const (
	directionForward transitionDirection = iota
	directionBackward
)

// activeTransition is the ephemeral state of one in-flight animation.
// At most one exists at a time; a new navigation replaces it outright.
type activeTransition struct {
	config    TransitionConfig
	direction transitionDirection
	start     time.Time
	duration  time.Duration
}

func newActiveTransition(config TransitionConfig, direction transitionDirection, fallback time.Duration) *activeTransition {
	return &activeTransition{
		config:    config,
		direction: direction,
		start:     animation.Now(),
		duration:  config.duration(fallback),
	}
}

// progress returns the current normalized progress in [0, 1].
// A zero duration completes immediately.
func (t *activeTransition) progress(now time.Time) float64 {
	if t.duration <= 0 {
		return 1
	}
	elapsed := now.Sub(t.start)
	return clampUnit(float64(elapsed) / float64(t.duration))
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
