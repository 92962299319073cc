package flex

import (
	"fmt"
	"math"

	"github.com/go-drift/uikit/pkg/geometry"
)

// SizeKind identifies how a [Size] value is interpreted.
type SizeKind int

const (
	// SizeAuto defers to the item's intrinsic content size.
	SizeAuto SizeKind = iota
	// SizePoints is an absolute length in pixels.
	SizePoints
	// SizePercent is a fraction of the outer container's size.
	SizePercent
)

// String returns a human-readable representation of the size kind.
func (k SizeKind) String() string {
	switch k {
	case SizeAuto:
		return "auto"
	case SizePoints:
		return "points"
	case SizePercent:
		return "percent"
	default:
		return fmt.Sprintf("SizeKind(%d)", int(k))
	}
}

// Size is a length specification: automatic, absolute points, or a
// percentage of the outer container. The zero value is auto.
type Size struct {
	Kind  SizeKind
	Value float64
}

// Points returns an absolute size in pixels.
func Points(v float64) Size {
	return Size{Kind: SizePoints, Value: v}
}

// Percent returns a size relative to the outer container.
// The fraction is given in [0, 1]; Percent(0.5) is half the container.
func Percent(fraction float64) Size {
	return Size{Kind: SizePercent, Value: fraction}
}

// Resolve returns the concrete length against the given container
// dimension. The second return value is false for auto sizes.
// Percentages resolve against the outer container size, never against
// leftover space. Negative results clamp to zero.
func (s Size) Resolve(container float64) (float64, bool) {
	switch s.Kind {
	case SizePoints:
		return math.Max(s.Value, 0), true
	case SizePercent:
		return math.Max(s.Value*container, 0), true
	default:
		return 0, false
	}
}

// Item is the per-child layout specification for a flex container.
//
// Construct items with struct literals or the fluent helpers:
//
//	flex.NewItem().Grow(1).Basis(flex.Points(100))
type Item struct {
	// ID identifies the item across frames for [Engine] rect caching.
	// Optional; items without an ID are tracked by position.
	ID string

	// GrowFactor is the item's share of leftover main-axis space.
	// Zero keeps the item at its basis.
	GrowFactor float64

	// ShrinkFactor is the item's share of main-axis deficit when the
	// line overflows. Zero disables shrinking. Shrinking is weighted by
	// factor times basis, matching CSS flex-shrink.
	ShrinkFactor float64

	// BasisSize is the preferred main-axis size before grow and shrink
	// redistribution. Auto falls back to the explicit main-axis size,
	// then to the intrinsic content size.
	BasisSize Size

	// Width and Height are optional explicit dimensions.
	Width  Size
	Height Size

	// MinWidth and MinHeight are hard floors during shrink distribution.
	MinWidth  float64
	MinHeight float64

	// AlignSelf overrides the container's AlignItems for this item.
	AlignSelf ItemAlign

	// IntrinsicSize reports the content's preferred size given the
	// available space. Content-driven items (labels, buttons) supply
	// this; the reported size also acts as the shrink floor unless
	// AllowTruncate is set.
	IntrinsicSize func(available geometry.Size) geometry.Size

	// AllowTruncate permits shrinking below the intrinsic content size.
	// The content is then expected to truncate or wrap itself.
	AllowTruncate bool

	// Nested lays the item out as a flex container of its own. The
	// allocated rect becomes the nested container's size, and NestedItems
	// are laid out recursively inside it.
	Nested      *Flex
	NestedItems []Item
}

// NewItem returns an empty item for fluent configuration.
func NewItem() Item {
	return Item{}
}

// Grow sets the grow factor.
func (it Item) Grow(factor float64) Item {
	it.GrowFactor = factor
	return it
}

// Shrink enables shrinking with the given factor.
func (it Item) Shrink(factor float64) Item {
	it.ShrinkFactor = factor
	return it
}

// Basis sets the preferred main-axis size.
func (it Item) Basis(size Size) Item {
	it.BasisSize = size
	return it
}

// Align overrides the cross-axis alignment for this item.
func (it Item) Align(align ItemAlign) Item {
	it.AlignSelf = align
	return it
}

// WithSize sets explicit width and height.
func (it Item) WithSize(width, height Size) Item {
	it.Width = width
	it.Height = height
	return it
}

// WithIntrinsic sets the intrinsic content size callback.
func (it Item) WithIntrinsic(measure func(available geometry.Size) geometry.Size) Item {
	it.IntrinsicSize = measure
	return it
}

// WithNested configures the item as a nested flex container.
func (it Item) WithNested(container Flex, items ...Item) Item {
	it.Nested = &container
	it.NestedItems = items
	return it
}
