package tui

const unknownViewType = "unknown"

// ViewType represents which tab is active.
type ViewType int

const (
	ViewGrid ViewType = iota
	ViewTimeline
)

// viewOrder is the tab order used by tab/shift+tab.
var viewOrder = []ViewType{ViewGrid, ViewTimeline}

// String returns the lowercase name of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewGrid:
		return "grid"
	case ViewTimeline:
		return "timeline"
	default:
		return unknownViewType
	}
}

// Title returns the tab label.
func (v ViewType) Title() string {
	switch v {
	case ViewGrid:
		return "Events"
	case ViewTimeline:
		return "Timeline"
	default:
		return unknownViewType
	}
}

// next returns the view after v, wrapping around. A negative step moves
// backwards.
func (v ViewType) next(step int) ViewType {
	n := len(viewOrder)
	for i, vt := range viewOrder {
		if vt == v {
			return viewOrder[((i+step)%n+n)%n]
		}
	}
	return viewOrder[0]
}
