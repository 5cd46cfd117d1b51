package timeline

// DefaultWindow is the number of day groups shown at once.
const DefaultWindow = 5

// Carousel is a sliding window over an ordered list of day groups. It moves
// one group at a time and never exposes an offset outside
// [0, max(0, total-window)].
type Carousel struct {
	window int
	offset int
	total  int
}

// NewCarousel returns a carousel with the given window size. Sizes below one
// use DefaultWindow.
func NewCarousel(window int) Carousel {
	if window < 1 {
		window = DefaultWindow
	}
	return Carousel{window: window}
}

func (c Carousel) Window() int { return c.window }
func (c Carousel) Offset() int { return c.offset }
func (c Carousel) Total() int  { return c.total }

// SetTotal updates the number of groups and pulls the offset back in range.
func (c *Carousel) SetTotal(n int) {
	c.total = max(n, 0)
	c.clamp()
}

// SetOffset moves the window start, clamped to the valid range.
func (c *Carousel) SetOffset(offset int) {
	c.offset = offset
	c.clamp()
}

// CanAdvance reports whether groups exist past the window.
func (c Carousel) CanAdvance() bool { return c.offset+c.window < c.total }

// CanRetreat reports whether groups exist before the window.
func (c Carousel) CanRetreat() bool { return c.offset > 0 }

// Advance moves the window forward by one group.
func (c *Carousel) Advance() {
	if c.CanAdvance() {
		c.offset++
	}
}

// Retreat moves the window back by one group.
func (c *Carousel) Retreat() {
	if c.CanRetreat() {
		c.offset--
	}
}

// Bounds returns the half-open range of visible group indices.
func (c Carousel) Bounds() (start, end int) {
	start = c.offset
	end = min(c.offset+c.window, c.total)
	if start > end {
		start = end
	}
	return start, end
}

// Contains reports whether group index gi is inside the window.
func (c Carousel) Contains(gi int) bool {
	start, end := c.Bounds()
	return gi >= start && gi < end
}

// Reveal scrolls the minimum distance needed to make group gi visible.
func (c *Carousel) Reveal(gi int) {
	if gi < 0 || gi >= c.total {
		return
	}
	switch {
	case gi < c.offset:
		c.offset = gi
	case gi >= c.offset+c.window:
		c.offset = gi - c.window + 1
	}
	c.clamp()
}

// Visible returns the groups inside the window.
func (c Carousel) Visible(groups []DayGroup) []DayGroup {
	start, end := c.Bounds()
	end = min(end, len(groups))
	start = min(start, end)
	return groups[start:end]
}

// Keys returns the date keys inside the window.
func (c Carousel) Keys(groups []DayGroup) []string {
	return Dates(c.Visible(groups))
}

func (c *Carousel) clamp() {
	maxOffset := max(c.total-c.window, 0)
	if c.offset > maxOffset {
		c.offset = maxOffset
	}
	if c.offset < 0 {
		c.offset = 0
	}
}
