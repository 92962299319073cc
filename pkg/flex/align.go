package flex

import "fmt"

// Axis represents the layout direction.
// AxisHorizontal is the zero value, matching the common row container.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Justify controls how items are positioned along the main axis within
// their line (horizontal for [Horizontal] containers, vertical for
// [Vertical]).
type Justify int

const (
	// JustifyStart packs items at the start of the line.
	JustifyStart Justify = iota
	// JustifyEnd packs items at the end of the line.
	JustifyEnd
	// JustifyCenter centers the group of items.
	JustifyCenter
	// JustifySpaceBetween distributes free space evenly between items.
	// No space before the first or after the last item; a single item
	// packs at the start.
	JustifySpaceBetween
	// JustifySpaceAround distributes free space evenly, with half-sized
	// spaces at the start and end.
	JustifySpaceAround
	// JustifySpaceEvenly distributes free space evenly, including equal
	// space before the first and after the last item.
	JustifySpaceEvenly
)

// String returns a human-readable representation of the justification.
func (j Justify) String() string {
	switch j {
	case JustifyStart:
		return "start"
	case JustifyEnd:
		return "end"
	case JustifyCenter:
		return "center"
	case JustifySpaceBetween:
		return "space_between"
	case JustifySpaceAround:
		return "space_around"
	case JustifySpaceEvenly:
		return "space_evenly"
	default:
		return fmt.Sprintf("Justify(%d)", int(j))
	}
}

// CrossAlign controls how items are positioned along the cross axis
// within their line.
type CrossAlign int

const (
	// CrossAlignStart places items at the start of the cross axis.
	CrossAlignStart CrossAlign = iota
	// CrossAlignEnd places items at the end of the cross axis.
	CrossAlignEnd
	// CrossAlignCenter centers items along the cross axis.
	CrossAlignCenter
	// CrossAlignStretch stretches items without an explicit cross size
	// to fill the line.
	CrossAlignStretch
)

// String returns a human-readable representation of the cross alignment.
func (a CrossAlign) String() string {
	switch a {
	case CrossAlignStart:
		return "start"
	case CrossAlignEnd:
		return "end"
	case CrossAlignCenter:
		return "center"
	case CrossAlignStretch:
		return "stretch"
	default:
		return fmt.Sprintf("CrossAlign(%d)", int(a))
	}
}

// ItemAlign overrides the container's CrossAlign for a single item.
// The zero value inherits from the container.
type ItemAlign int

const (
	// ItemAlignAuto inherits the container's AlignItems setting.
	ItemAlignAuto ItemAlign = iota
	// ItemAlignStart places the item at the start of the cross axis.
	ItemAlignStart
	// ItemAlignEnd places the item at the end of the cross axis.
	ItemAlignEnd
	// ItemAlignCenter centers the item along the cross axis.
	ItemAlignCenter
	// ItemAlignStretch stretches the item to fill the line.
	ItemAlignStretch
)

// String returns a human-readable representation of the item alignment.
func (a ItemAlign) String() string {
	switch a {
	case ItemAlignAuto:
		return "auto"
	case ItemAlignStart:
		return "start"
	case ItemAlignEnd:
		return "end"
	case ItemAlignCenter:
		return "center"
	case ItemAlignStretch:
		return "stretch"
	default:
		return fmt.Sprintf("ItemAlign(%d)", int(a))
	}
}

// ContentAlign controls how lines are positioned along the cross axis
// when a wrapped container produces more than one line. It mirrors
// [Justify], but operates on lines instead of items, with the addition
// of ContentAlignStretch.
type ContentAlign int

const (
	// ContentAlignStart packs lines at the start of the cross axis.
	ContentAlignStart ContentAlign = iota
	// ContentAlignEnd packs lines at the end of the cross axis.
	ContentAlignEnd
	// ContentAlignCenter centers the group of lines.
	ContentAlignCenter
	// ContentAlignStretch grows lines equally to fill the cross axis.
	ContentAlignStretch
	// ContentAlignSpaceBetween distributes free space evenly between lines.
	ContentAlignSpaceBetween
	// ContentAlignSpaceAround distributes free space evenly, with
	// half-sized spaces at the start and end.
	ContentAlignSpaceAround
	// ContentAlignSpaceEvenly distributes free space evenly, including
	// the ends.
	ContentAlignSpaceEvenly
)

// String returns a human-readable representation of the content alignment.
func (a ContentAlign) String() string {
	switch a {
	case ContentAlignStart:
		return "start"
	case ContentAlignEnd:
		return "end"
	case ContentAlignCenter:
		return "center"
	case ContentAlignStretch:
		return "stretch"
	case ContentAlignSpaceBetween:
		return "space_between"
	case ContentAlignSpaceAround:
		return "space_around"
	case ContentAlignSpaceEvenly:
		return "space_evenly"
	default:
		return fmt.Sprintf("ContentAlign(%d)", int(a))
	}
}
