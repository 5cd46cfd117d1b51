// Package timeline is the day carousel tab.
package timeline

import (
	"github.com/colonyops/eventboard/internal/core/event"
	"github.com/colonyops/eventboard/internal/core/timeline"
)

// Controller tracks the grouped events, the carousel window, and the focused
// event. Focus is an index into the flattened group order and is kept inside
// the visible window.
type Controller struct {
	groups   []timeline.DayGroup
	total    int
	carousel timeline.Carousel
	focus    int
}

// NewController creates a controller with the given carousel window.
func NewController(window int) *Controller {
	return &Controller{carousel: timeline.NewCarousel(window)}
}

// SetEvents regroups events. Focus follows the previously focused event when
// it still exists; otherwise it is clamped into range.
func (c *Controller) SetEvents(events []event.Event) {
	var prevID string
	if e := c.Focused(); e != nil {
		prevID = e.ID
	}

	c.groups = timeline.GroupByDate(events)
	c.total = len(events)
	c.carousel.SetTotal(len(c.groups))

	if idx := timeline.IndexOf(c.groups, prevID); prevID != "" && idx >= 0 {
		c.focus = idx
	} else {
		c.focus = min(c.focus, max(c.total-1, 0))
	}
	c.reveal()
}

// Groups returns every day group.
func (c *Controller) Groups() []timeline.DayGroup { return c.groups }

// Visible returns the day groups inside the carousel window.
func (c *Controller) Visible() []timeline.DayGroup { return c.carousel.Visible(c.groups) }

// Carousel returns a copy of the carousel.
func (c *Controller) Carousel() timeline.Carousel { return c.carousel }

// Empty reports whether there are no events.
func (c *Controller) Empty() bool { return c.total == 0 }

// Focused returns the focused event, or nil when there are none.
func (c *Controller) Focused() *event.Event {
	gi, ii, ok := timeline.Locate(c.groups, c.focus)
	if !ok {
		return nil
	}
	return &c.groups[gi].Events[ii]
}

// FocusPosition returns the group and in-group index of the focused event.
func (c *Controller) FocusPosition() (group, item int, ok bool) {
	return timeline.Locate(c.groups, c.focus)
}

// Next moves focus to the next event in flattened order.
func (c *Controller) Next() {
	if c.focus < c.total-1 {
		c.focus++
		c.reveal()
	}
}

// Prev moves focus to the previous event in flattened order.
func (c *Controller) Prev() {
	if c.focus > 0 {
		c.focus--
		c.reveal()
	}
}

// Advance slides the window forward by one day. Focus that falls off the
// window moves to the first event of the first visible day.
func (c *Controller) Advance() {
	c.carousel.Advance()
	c.keepFocusVisible()
}

// Retreat slides the window back by one day. Focus that falls off the window
// moves to the first event of the last visible day.
func (c *Controller) Retreat() {
	c.carousel.Retreat()
	c.keepFocusVisible()
}

// Select focuses the event with id and reveals its day.
func (c *Controller) Select(id string) bool {
	idx := timeline.IndexOf(c.groups, id)
	if idx < 0 {
		return false
	}
	c.focus = idx
	c.reveal()
	return true
}

func (c *Controller) reveal() {
	if gi, _, ok := timeline.Locate(c.groups, c.focus); ok {
		c.carousel.Reveal(gi)
	}
}

func (c *Controller) keepFocusVisible() {
	gi, _, ok := timeline.Locate(c.groups, c.focus)
	if !ok || c.carousel.Contains(gi) {
		return
	}

	start, end := c.carousel.Bounds()
	target := start
	if gi >= end {
		target = end - 1
	}
	if idx := timeline.FirstIndexOf(c.groups, target); idx >= 0 {
		c.focus = idx
	}
}
