// Package flex implements a CSS-flexbox-style layout engine for
// immediate-mode UIs.
//
// A [Flex] value describes a container: direction, wrapping, main-axis
// justification, cross-axis alignment and gaps. [Layout] turns a container
// size and an ordered list of [Item] specifications into one rectangle per
// item, in input order. The engine is pure computation; rendering the items
// into their rectangles is the caller's concern.
//
// Layout is deterministic: identical inputs produce bit-identical
// rectangles, so a UI re-laid out every frame does not jitter. [Engine]
// adds a thin per-frame cache of the previous result for hosts that need
// to bridge item insertion and removal without flicker.
package flex

import (
	"math"

	"github.com/go-drift/uikit/pkg/geometry"
)

// Flex is the container configuration for a layout pass.
// The zero value is a horizontal, non-wrapping container that packs
// items at the start.
type Flex struct {
	// Direction is the main axis.
	Direction Axis

	// Wrap breaks items into multiple lines when they exceed the
	// container's main-axis size. Without wrapping, everything stays on
	// one line and may overflow.
	Wrap bool

	// Justify positions items along the main axis within their line.
	Justify Justify

	// AlignItems positions items along the cross axis within their line.
	AlignItems CrossAlign

	// AlignContent positions lines along the cross axis when wrapping
	// produces more than one line.
	AlignContent ContentAlign

	// Gap is the main-axis spacing between adjacent items in a line.
	Gap float64

	// LineGap is the cross-axis spacing between adjacent lines.
	LineGap float64
}

// Horizontal returns a row container.
func Horizontal() Flex {
	return Flex{Direction: AxisHorizontal}
}

// Vertical returns a column container.
func Vertical() Flex {
	return Flex{Direction: AxisVertical}
}

// Node pairs an item's computed rectangle with the recursively computed
// rectangles of its nested children. All rectangles share the root
// container's coordinate space.
type Node struct {
	Rect     geometry.Rect
	Children []Node
}

// Layout computes one rectangle per item, in input order, within a
// container of the given size. Negative container dimensions clamp to
// zero; zero items produce an empty result.
func (f Flex) Layout(container geometry.Size, items []Item) []geometry.Rect {
	nodes := f.LayoutTree(container, items)
	rects := make([]geometry.Rect, len(nodes))
	for i, node := range nodes {
		rects[i] = node.Rect
	}
	return rects
}

// LayoutTree computes rectangles like [Flex.Layout] and additionally
// recurses into items configured with a nested container, laying their
// children out inside the allocated rectangle.
func (f Flex) LayoutTree(container geometry.Size, items []Item) []Node {
	container = container.ClampNonNegative()
	if len(items) == 0 {
		return nil
	}

	measured := make([]measuredItem, len(items))
	for i := range items {
		measured[i] = f.measure(container, &items[i])
		measured[i].index = i
	}

	lines := f.partition(measured, f.main(container))
	for li := range lines {
		f.resolveLine(&lines[li], f.main(container))
	}
	lineOffsets, lineSizes := f.placeLines(lines, f.cross(container))

	nodes := make([]Node, len(items))
	for li := range lines {
		line := &lines[li]
		free := math.Max(f.main(container)-line.used(f.Gap), 0)
		spacing, cursor := f.computeSpacing(free, len(line.items))
		for _, mi := range line.items {
			crossSize, crossOffset := f.placeItem(mi, lineSizes[li])
			origin := f.makeOffset(cursor, lineOffsets[li]+crossOffset)
			size := f.makeSize(mi.main, crossSize).ClampNonNegative()
			rect := geometry.RectFromOffsetSize(origin, size)

			item := mi.item
			node := Node{Rect: rect}
			if item.Nested != nil {
				node.Children = item.Nested.LayoutTree(rect.Size(), item.NestedItems)
				for ci := range node.Children {
					translateNode(&node.Children[ci], rect.Origin())
				}
			}
			nodes[mi.index] = node

			cursor += mi.main + f.Gap + spacing
		}
	}
	return nodes
}

// measuredItem carries per-item layout state through a pass.
type measuredItem struct {
	item     *Item
	index    int
	main     float64 // current main-axis size, starts at the basis
	basis    float64 // original basis, weights shrink distribution
	floor    float64 // minimum main-axis size
	cross    float64 // preferred cross-axis size
	hasCross bool    // explicit or content-driven cross size present
	frozen   bool    // reached its floor during shrinking
}

func (f Flex) measure(container geometry.Size, item *Item) measuredItem {
	var intrinsic geometry.Size
	hasIntrinsic := item.IntrinsicSize != nil
	if hasIntrinsic {
		intrinsic = item.IntrinsicSize(container).ClampNonNegative()
	} else if item.Nested != nil {
		intrinsic = f.measureNested(*item.Nested, container, item.NestedItems)
		hasIntrinsic = true
	}

	main, ok := item.BasisSize.Resolve(f.main(container))
	if !ok {
		main, ok = f.mainSize(item).Resolve(f.main(container))
	}
	if !ok {
		if hasIntrinsic {
			main = f.main(intrinsic)
		} else {
			main = f.main(geometry.Size{Width: item.MinWidth, Height: item.MinHeight})
		}
	}

	floor := math.Max(f.main(geometry.Size{Width: item.MinWidth, Height: item.MinHeight}), 0)
	if hasIntrinsic && !item.AllowTruncate {
		// Content reports what it needs to render untruncated; never
		// shrink below that unless the caller opted in.
		floor = math.Max(floor, f.main(intrinsic))
	}
	main = math.Max(main, floor)

	cross, hasCross := f.crossSize(item).Resolve(f.cross(container))
	if !hasCross && hasIntrinsic {
		cross = f.cross(intrinsic)
		hasCross = true
	}

	return measuredItem{
		item:     item,
		main:     main,
		basis:    main,
		floor:    floor,
		cross:    cross,
		hasCross: hasCross,
	}
}

// measureNested reports the content size of a nested container: the sum
// of its children's bases along its main axis, the maximum along its
// cross axis.
func (f Flex) measureNested(nested Flex, container geometry.Size, items []Item) geometry.Size {
	totalMain := 0.0
	maxCross := 0.0
	for i := range items {
		mi := nested.measure(container, &items[i])
		totalMain += mi.main
		if i > 0 {
			totalMain += nested.Gap
		}
		if mi.cross > maxCross {
			maxCross = mi.cross
		}
	}
	return nested.makeSize(totalMain, maxCross)
}

// line groups items laid out together along the main axis.
type line struct {
	items []measuredItem
	cross float64
}

func (l *line) used(gap float64) float64 {
	total := 0.0
	for i, mi := range l.items {
		total += mi.main
		if i > 0 {
			total += gap
		}
	}
	return total
}

// partition splits measured items into lines. Without wrapping
// everything lands on a single line, overflow included. A line always
// holds at least one item.
func (f Flex) partition(measured []measuredItem, maxMain float64) []line {
	lines := []line{{}}
	current := &lines[0]
	used := 0.0
	for _, mi := range measured {
		needed := mi.main
		if len(current.items) > 0 {
			needed += f.Gap
		}
		if f.Wrap && len(current.items) > 0 && used+needed > maxMain+1e-9 {
			lines = append(lines, line{})
			current = &lines[len(lines)-1]
			used = 0
			needed = mi.main
		}
		current.items = append(current.items, mi)
		used += needed
	}
	return lines
}

// resolveLine distributes leftover space to grow factors, or reclaims a
// deficit from shrinkable items down to their floors.
func (f Flex) resolveLine(l *line, maxMain float64) {
	leftover := maxMain - l.used(f.Gap)

	switch {
	case leftover > 0:
		totalGrow := 0.0
		for _, mi := range l.items {
			totalGrow += mi.item.GrowFactor
		}
		if totalGrow <= 0 {
			break
		}
		for i := range l.items {
			mi := &l.items[i]
			mi.main += leftover * mi.item.GrowFactor / totalGrow
		}

	case leftover < 0:
		f.shrinkLine(l, -leftover)
	}

	l.cross = 0
	for _, mi := range l.items {
		if mi.hasCross && mi.cross > l.cross {
			l.cross = mi.cross
		}
	}
}

// shrinkLine reduces shrinkable items proportionally to factor times
// basis. Items bottoming out at their floor freeze, and the remaining
// deficit redistributes among the rest. Overflow past all floors is
// allowed, not clipped.
func (f Flex) shrinkLine(l *line, deficit float64) {
	for deficit > 1e-9 {
		totalWeight := 0.0
		for _, mi := range l.items {
			if !mi.frozen && mi.item.ShrinkFactor > 0 {
				totalWeight += mi.item.ShrinkFactor * mi.basis
			}
		}
		if totalWeight <= 0 {
			return
		}

		froze := false
		remaining := deficit
		for i := range l.items {
			mi := &l.items[i]
			if mi.frozen || mi.item.ShrinkFactor <= 0 {
				continue
			}
			reduce := deficit * mi.item.ShrinkFactor * mi.basis / totalWeight
			if mi.main-reduce <= mi.floor+1e-9 {
				remaining -= mi.main - mi.floor
				mi.main = mi.floor
				mi.frozen = true
				froze = true
			}
		}
		if froze {
			// Frozen items absorbed part of the deficit; redistribute
			// the rest among the survivors.
			deficit = math.Max(remaining, 0)
			continue
		}

		for i := range l.items {
			mi := &l.items[i]
			if mi.frozen || mi.item.ShrinkFactor <= 0 {
				continue
			}
			mi.main -= deficit * mi.item.ShrinkFactor * mi.basis / totalWeight
		}
		return
	}
}

// placeLines positions lines along the cross axis, returning per-line
// offsets and (possibly stretched) cross sizes.
func (f Flex) placeLines(lines []line, maxCross float64) (offsets, sizes []float64) {
	offsets = make([]float64, len(lines))
	sizes = make([]float64, len(lines))

	if !f.Wrap || len(lines) == 1 {
		// A single unwrapped line spans the full cross axis, unless its
		// content already overflows it.
		cross := lines[0].cross
		if f.Wrap && f.AlignContent != ContentAlignStretch {
			sizes[0] = cross
			offsets[0] = f.lineOffset(maxCross-cross, 1)
		} else {
			sizes[0] = math.Max(maxCross, cross)
		}
		return offsets, sizes
	}

	total := 0.0
	for i, l := range lines {
		sizes[i] = l.cross
		total += l.cross
		if i > 0 {
			total += f.LineGap
		}
	}
	free := math.Max(maxCross-total, 0)

	if f.AlignContent == ContentAlignStretch {
		extra := free / float64(len(lines))
		cursor := 0.0
		for i := range lines {
			sizes[i] += extra
			offsets[i] = cursor
			cursor += sizes[i] + f.LineGap
		}
		return offsets, sizes
	}

	spacing, cursor := f.computeLineSpacing(free, len(lines))
	for i := range lines {
		offsets[i] = cursor
		cursor += sizes[i] + f.LineGap + spacing
	}
	return offsets, sizes
}

// lineOffset positions a wrapped single line per AlignContent.
func (f Flex) lineOffset(free float64, n int) float64 {
	if free <= 0 {
		return 0
	}
	_, offset := f.computeLineSpacing(free, n)
	return offset
}

// placeItem resolves an item's cross size and offset within its line.
func (f Flex) placeItem(mi measuredItem, lineCross float64) (size, offset float64) {
	align := f.AlignItems
	switch mi.item.AlignSelf {
	case ItemAlignStart:
		align = CrossAlignStart
	case ItemAlignEnd:
		align = CrossAlignEnd
	case ItemAlignCenter:
		align = CrossAlignCenter
	case ItemAlignStretch:
		align = CrossAlignStretch
	}

	size = mi.cross
	if !mi.hasCross {
		// No explicit or content size on the cross axis: fill the line.
		return lineCross, 0
	}
	if align == CrossAlignStretch && !f.hasExplicitCross(mi.item) {
		return math.Max(lineCross, size), 0
	}

	free := lineCross - size
	if free <= 0 {
		return size, 0
	}
	switch align {
	case CrossAlignEnd:
		offset = free
	case CrossAlignCenter:
		offset = free * 0.5
	}
	return size, offset
}

func (f Flex) hasExplicitCross(item *Item) bool {
	return f.crossSize(item).Kind != SizeAuto
}

// computeSpacing maps main-axis free space to extra inter-item spacing
// and a start offset, per the container's Justify.
func (f Flex) computeSpacing(freeSpace float64, n int) (spacing, offset float64) {
	switch f.Justify {
	case JustifyEnd:
		offset = freeSpace
	case JustifyCenter:
		offset = freeSpace * 0.5
	case JustifySpaceBetween:
		if n > 1 {
			spacing = freeSpace / float64(n-1)
		}
	case JustifySpaceAround:
		if n > 0 {
			spacing = freeSpace / float64(n)
			offset = spacing * 0.5
		}
	case JustifySpaceEvenly:
		if n > 0 {
			spacing = freeSpace / float64(n+1)
			offset = spacing
		}
	}
	return spacing, offset
}

// computeLineSpacing is the cross-axis analogue of computeSpacing,
// operating on lines per AlignContent.
func (f Flex) computeLineSpacing(freeSpace float64, n int) (spacing, offset float64) {
	switch f.AlignContent {
	case ContentAlignEnd:
		offset = freeSpace
	case ContentAlignCenter:
		offset = freeSpace * 0.5
	case ContentAlignSpaceBetween:
		if n > 1 {
			spacing = freeSpace / float64(n-1)
		}
	case ContentAlignSpaceAround:
		if n > 0 {
			spacing = freeSpace / float64(n)
			offset = spacing * 0.5
		}
	case ContentAlignSpaceEvenly:
		if n > 0 {
			spacing = freeSpace / float64(n+1)
			offset = spacing
		}
	}
	return spacing, offset
}

func (f Flex) main(size geometry.Size) float64 {
	if f.Direction == AxisHorizontal {
		return size.Width
	}
	return size.Height
}

func (f Flex) cross(size geometry.Size) float64 {
	if f.Direction == AxisHorizontal {
		return size.Height
	}
	return size.Width
}

func (f Flex) makeSize(main, cross float64) geometry.Size {
	if f.Direction == AxisHorizontal {
		return geometry.Size{Width: main, Height: cross}
	}
	return geometry.Size{Width: cross, Height: main}
}

func (f Flex) makeOffset(main, cross float64) geometry.Offset {
	if f.Direction == AxisHorizontal {
		return geometry.Offset{X: main, Y: cross}
	}
	return geometry.Offset{X: cross, Y: main}
}

func (f Flex) mainSize(item *Item) Size {
	if f.Direction == AxisHorizontal {
		return item.Width
	}
	return item.Height
}

func (f Flex) crossSize(item *Item) Size {
	if f.Direction == AxisHorizontal {
		return item.Height
	}
	return item.Width
}

func translateNode(n *Node, by geometry.Offset) {
	n.Rect = n.Rect.Translate(by)
	for i := range n.Children {
		translateNode(&n.Children[i], by)
	}
}
