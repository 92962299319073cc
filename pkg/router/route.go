// Package router provides a client-side page router with animated
// transitions for immediate-mode GUIs.
//
// A [Router] maps URL-like paths to handlers, keeps a history stack of
// activated pages, and animates forward and backward navigation by
// rendering the two affected pages with interpolated offsets and
// opacities. Everything runs synchronously inside the host's per-frame
// render callback; progress is wall-clock based, so it stays correct
// under variable frame rates.
//
// Basic usage:
//
//	r := router.New(AppState{Message: "Hello"})
//	r.Route("/", home)
//	r.Route("/post/{id}", post)
//	r.NavigateTransition("/", router.None())
//
//	// once per frame:
//	r.Render(surface)
//
// Handlers receive extracted path parameters and the shared state, and
// return the page to push:
//
//	func post(req *router.Request[AppState]) router.Route[AppState] {
//	    id := req.Params.Get("id")
//	    return router.RouteFunc[AppState](func(s *router.Surface, state *AppState) {
//	        // draw the post page into s
//	    })
//	}
package router

import (
	"github.com/go-drift/uikit/pkg/geometry"
)

// Request carries the extracted path parameters and the shared mutable
// state into a handler.
type Request[State any] struct {
	// Params holds the path parameters from the matched pattern.
	Params Params
	// State is the router's shared application state.
	State *State
}

// Route is a renderable page held on the history stack. Handlers with
// different captured data all satisfy this interface, which is how the
// router stores heterogeneous pages uniformly.
type Route[State any] interface {
	// Render draws the page into the surface. Draw calls are
	// side-effecting; there is no return value.
	Render(surface *Surface, state *State)
}

// RouteFunc adapts a plain function to the [Route] interface.
type RouteFunc[State any] func(surface *Surface, state *State)

// Render calls the function.
func (f RouteFunc[State]) Render(surface *Surface, state *State) {
	f(surface, state)
}

// Handler produces a page instance when its pattern matches a
// navigation target.
type Handler[State any] func(req *Request[State]) Route[State]

// Surface is the mutable render-target handle passed to routes.
//
// The host owns Target and knows its concrete type; the router only
// derives per-page copies with the transition's offset and opacity
// applied. Pages honoring Offset and Opacity while drawing is what
// makes transitions visible.
type Surface struct {
	// Target is the host's render-target handle.
	Target any

	// Rect is the drawable area in host coordinates.
	Rect geometry.Rect

	// Offset is the translation applied by an in-flight transition.
	Offset geometry.Offset

	// Opacity is the page opacity in [0, 1]; 1 is fully opaque.
	Opacity float64
}

// NewSurface creates an opaque, untranslated surface over the given
// target and area.
func NewSurface(target any, rect geometry.Rect) *Surface {
	return &Surface{Target: target, Rect: rect, Opacity: 1}
}
