package flex

import "github.com/go-drift/uikit/pkg/geometry"

// Engine wraps [Flex.Layout] for per-frame use, retaining the previous
// frame's rectangles. Hosts use the cache to bridge item insertion and
// removal: a newly appearing item can be painted into its previous (or
// neighboring) rect for one frame instead of flickering at the origin.
//
// Engine holds no other state between frames; the layout itself is
// recomputed from the declarative item list on every call.
type Engine struct {
	config Flex
	last   []geometry.Rect
	byID   map[string]geometry.Rect
	stable bool
	passes int
}

// NewEngine creates an engine with the given container configuration.
func NewEngine(config Flex) *Engine {
	return &Engine{
		config: config,
		byID:   make(map[string]geometry.Rect),
	}
}

// Config returns the container configuration.
func (e *Engine) Config() Flex {
	return e.config
}

// Layout computes the frame's rectangles and updates the cache.
func (e *Engine) Layout(container geometry.Size, items []Item) []geometry.Rect {
	rects := e.config.Layout(container, items)

	e.stable = e.passes > 0 && rectsEqual(rects, e.last)
	e.passes++
	e.last = rects

	for i := range items {
		if id := items[i].ID; id != "" && i < len(rects) {
			e.byID[id] = rects[i]
		}
	}
	return rects
}

// Stable reports whether the two most recent passes produced identical
// rectangles.
func (e *Engine) Stable() bool {
	return e.stable
}

// PreviousRect returns the rect last computed for the item with the
// given ID, possibly from an earlier frame if the item has since been
// removed.
func (e *Engine) PreviousRect(id string) (geometry.Rect, bool) {
	rect, ok := e.byID[id]
	return rect, ok
}

func rectsEqual(a, b []geometry.Rect) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
