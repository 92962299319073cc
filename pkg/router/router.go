package router

import (
	"fmt"
	"log"
	"time"

	"github.com/go-drift/uikit/pkg/animation"
)

// Router resolves paths against registered patterns, keeps the history
// stack of activated pages, and drives the transition state machine.
//
// All methods must be called from the host's render-loop goroutine; the
// router owns its state exclusively and takes no locks.
type Router[State any] struct {
	// State is the shared application state passed to handlers and
	// pages on every render.
	State State

	routes  []registeredRoute[State]
	history []historyEntry[State]

	forward  TransitionConfig
	backward TransitionConfig

	defaultDuration time.Duration
	current         *activeTransition
}

type registeredRoute[State any] struct {
	pattern *PathPattern
	handler Handler[State]
}

type historyEntry[State any] struct {
	path  string
	route Route[State]
}

// New creates a router owning the given state, with slide transitions
// in both directions.
func New[State any](state State) *Router[State] {
	return &Router[State]{
		State:    state,
		forward:  Slide(),
		backward: Slide(),
	}
}

// WithTransition sets both the forward and backward transition.
func (r *Router[State]) WithTransition(config TransitionConfig) *Router[State] {
	r.forward = config
	r.backward = config
	return r
}

// WithForwardTransition sets the transition used by Navigate.
func (r *Router[State]) WithForwardTransition(config TransitionConfig) *Router[State] {
	r.forward = config
	return r
}

// WithBackwardTransition sets the transition used by Back.
func (r *Router[State]) WithBackwardTransition(config TransitionConfig) *Router[State] {
	r.backward = config
	return r
}

// WithDefaultDuration sets the duration used by configs that don't
// specify one.
func (r *Router[State]) WithDefaultDuration(d time.Duration) *Router[State] {
	r.defaultDuration = d
	return r
}

// Route registers a handler for a path pattern. Malformed patterns and
// patterns matching the same paths as an existing registration fail
// immediately with a *PatternError; nothing is registered.
func (r *Router[State]) Route(pattern string, handler Handler[State]) error {
	compiled, err := ParsePattern(pattern)
	if err != nil {
		return err
	}
	for _, existing := range r.routes {
		if existing.pattern.conflictsWith(compiled) {
			return &PatternError{
				Pattern: pattern,
				Reason:  fmt.Sprintf("conflicts with registered pattern %q", existing.pattern.String()),
			}
		}
	}
	r.routes = append(r.routes, registeredRoute[State]{pattern: compiled, handler: handler})
	return nil
}

// match returns the most specific matching route for a path. Literal
// segments outrank captures and captures outrank wildcards, so
// "/post/new" beats "/post/{id}".
func (r *Router[State]) match(path string) (*registeredRoute[State], Params) {
	var best *registeredRoute[State]
	var bestParams Params
	for i := range r.routes {
		candidate := &r.routes[i]
		params, ok := candidate.pattern.Match(path)
		if !ok {
			continue
		}
		if best == nil || candidate.pattern.moreSpecificThan(best.pattern) {
			best = candidate
			bestParams = params
		}
	}
	return best, bestParams
}

// Navigate resolves the path and pushes the produced page with the
// router's forward transition. An unmatched path is logged and leaves
// the router untouched; the active page stays visible.
func (r *Router[State]) Navigate(path string) {
	r.NavigateTransition(path, r.forward)
}

// NavigateTransition is Navigate with a one-off transition config.
// Starting a navigation while another transition is in flight discards
// the in-flight transition; only two pages are ever visible at once.
func (r *Router[State]) NavigateTransition(path string, config TransitionConfig) {
	matched, params := r.match(path)
	if matched == nil {
		log.Printf("router: no route matches %q", path)
		return
	}

	route := matched.handler(&Request[State]{Params: params, State: &r.State})
	r.history = append(r.history, historyEntry[State]{path: path, route: route})
	r.current = newActiveTransition(config, directionForward, r.defaultDuration)
}

// Back starts a backward transition to the previous page using the
// router's backward transition. With one entry or fewer on the stack it
// is a no-op. The leaving page stays on the history stack until the
// transition completes, so both pages remain renderable meanwhile.
func (r *Router[State]) Back() {
	r.BackTransition(r.backward)
}

// BackTransition is Back with a one-off transition config.
func (r *Router[State]) BackTransition(config TransitionConfig) {
	if len(r.history) <= 1 {
		return
	}
	r.current = newActiveTransition(config, directionBackward, r.defaultDuration)
}

// CanGoBack reports whether Back would start a transition.
func (r *Router[State]) CanGoBack() bool {
	return len(r.history) > 1
}

// Transitioning reports whether a transition is in flight. Hosts use it
// to keep scheduling frames until the animation settles.
func (r *Router[State]) Transitioning() bool {
	return r.current != nil
}

// Depth returns the number of entries on the history stack, including
// a backward-exiting page that has not finished animating out.
func (r *Router[State]) Depth() int {
	return len(r.history)
}

// CurrentPath returns the path of the page on top of the history
// stack, or empty if nothing has been navigated to.
func (r *Router[State]) CurrentPath() string {
	if len(r.history) == 0 {
		return ""
	}
	return r.history[len(r.history)-1].path
}

// Render draws the current page, advancing any in-flight transition by
// wall-clock time. Call once per frame.
//
// While transitioning, the previous page renders first and the top page
// above it, each into a copy of the surface with the transition's
// offset and opacity applied. Completion returns [TransitionDone] for
// forward navigation, or [TransitionDonePop] after popping the exited
// entry for backward navigation.
func (r *Router[State]) Render(surface *Surface) TransitionEvent {
	if len(r.history) == 0 {
		return TransitionIdle
	}

	top := r.history[len(r.history)-1]
	if r.current == nil {
		top.route.Render(surface, &r.State)
		return TransitionIdle
	}

	progress := r.current.progress(animation.Now())
	eased := r.current.config.easing()(progress)

	var previous *historyEntry[State]
	if len(r.history) > 1 {
		previous = &r.history[len(r.history)-2]
	}

	switch r.current.direction {
	case directionForward:
		// Old page drifts off stage while the new page enters.
		if previous != nil {
			s := *surface
			r.current.config.Out.Apply(&s, 1-eased)
			previous.route.Render(&s, &r.State)
		}
		s := *surface
		r.current.config.In.Apply(&s, eased)
		top.route.Render(&s, &r.State)

	case directionBackward:
		// The entering transition plays in reverse on the leaving page.
		if previous != nil {
			s := *surface
			r.current.config.Out.Apply(&s, eased)
			previous.route.Render(&s, &r.State)
		}
		s := *surface
		r.current.config.In.Apply(&s, 1-eased)
		top.route.Render(&s, &r.State)
	}

	if progress < 1 {
		return TransitionContinue
	}

	direction := r.current.direction
	r.current = nil
	if direction == directionBackward {
		r.history = r.history[:len(r.history)-1]
		return TransitionDonePop
	}
	return TransitionDone
}
