package tui

// Axis tracks scroll state along one dimension.
//
// The visible window is the pair (offset, page length). The offset is
// clamped into [0, MaxOffset()] after every mutation; all length math
// saturates at zero, so a page larger than the content can never
// produce a negative or wrapped offset.
type Axis struct {
	offset     int
	content    int // Total content length
	page       int // Visible length, set by layout each frame
	step       int // Wheel step, 0 selects the page/10 default
	pageStep   int // Page step override, 0 selects the page length
	overscroll int // Cells the offset may extend past content end
}

// SetContentLength updates the total content extent and reclamps.
// Negative input clamps to zero
func (a *Axis) SetContentLength(n int) {
	if n < 0 {
		n = 0
	}
	a.content = n
	a.clamp()
}

// ContentLength returns the total content extent
func (a *Axis) ContentLength() int {
	return a.content
}

// SetPageLength updates the visible extent and reclamps.
// Negative input clamps to zero
func (a *Axis) SetPageLength(n int) {
	if n < 0 {
		n = 0
	}
	a.page = n
	a.clamp()
}

// PageLength returns the visible extent
func (a *Axis) PageLength() int {
	return a.page
}

// Offset returns the current scroll position
func (a *Axis) Offset() int {
	return a.offset
}

// MaxOffset returns the furthest reachable offset:
// max(0, content-page) plus the overscroll allowance
func (a *Axis) MaxOffset() int {
	m := a.content - a.page
	if m < 0 {
		m = 0
	}
	return m + a.overscroll
}

// CanScroll returns true if any offset other than zero is reachable
func (a *Axis) CanScroll() bool {
	return a.MaxOffset() > 0
}

// SetStep sets the wheel scroll step. Zero restores the default
func (a *Axis) SetStep(n int) {
	if n < 0 {
		n = 0
	}
	a.step = n
}

// Step returns the scroll amount for one wheel tick.
// Defaults to a tenth of the page, at least one cell
func (a *Axis) Step() int {
	if a.step > 0 {
		return a.step
	}
	s := a.page / 10
	if s < 1 {
		s = 1
	}
	return s
}

// SetPageStep overrides the page-wise scroll amount. Zero restores
// the default of one full page
func (a *Axis) SetPageStep(n int) {
	if n < 0 {
		n = 0
	}
	a.pageStep = n
}

// PageDelta returns the scroll amount for a page-up/page-down style
// request; dir is -1 or +1
func (a *Axis) PageDelta(dir int) int {
	d := a.pageStep
	if d == 0 {
		d = a.page
	}
	if d < 1 {
		d = 1
	}
	return dir * d
}

// SetOverscroll sets how far the offset may extend past the natural
// maximum. Negative input clamps to zero
func (a *Axis) SetOverscroll(n int) {
	if n < 0 {
		n = 0
	}
	a.overscroll = n
	a.clamp()
}

// Overscroll returns the overscroll allowance
func (a *Axis) Overscroll() int {
	return a.overscroll
}

// ScrollBy adjusts the offset by delta (may be negative) and returns
// whether the clamped result differs from the previous offset
func (a *Axis) ScrollBy(delta int) bool {
	return a.ScrollTo(a.offset + delta)
}

// ScrollTo sets an absolute offset with the usual clamp and returns
// whether the offset moved
func (a *Axis) ScrollTo(pos int) bool {
	old := a.offset
	a.offset = pos
	a.clamp()
	return a.offset != old
}

// ScrollToVisible adjusts the offset just enough to bring pos into
// the visible window. Does nothing if pos is already visible
func (a *Axis) ScrollToVisible(pos int) bool {
	if pos < a.offset {
		return a.ScrollTo(pos)
	}
	if a.page > 0 && pos >= a.offset+a.page {
		return a.ScrollTo(pos - a.page + 1)
	}
	return false
}

// Home scrolls to offset zero
func (a *Axis) Home() bool {
	return a.ScrollTo(0)
}

// End scrolls to the maximum offset
func (a *Axis) End() bool {
	return a.ScrollTo(a.MaxOffset())
}

// AtStart returns true if scrolled fully toward zero
func (a *Axis) AtStart() bool {
	return a.offset == 0
}

// AtEnd returns true if no further forward scrolling is possible
func (a *Axis) AtEnd() bool {
	return a.offset >= a.MaxOffset()
}

// ItemsAdded keeps the visible window stable after n items were
// inserted at pos
func (a *Axis) ItemsAdded(pos, n int) {
	if n < 0 {
		n = 0
	}
	a.content += n
	if a.offset >= pos {
		a.offset += n
	}
	a.clamp()
}

// ItemsRemoved keeps the visible window stable after n items were
// removed at pos
func (a *Axis) ItemsRemoved(pos, n int) {
	if n < 0 {
		n = 0
	}
	a.content -= n
	if a.content < 0 {
		a.content = 0
	}
	if a.offset >= pos {
		a.offset -= n
	}
	a.clamp()
}

func (a *Axis) clamp() {
	if a.offset < 0 {
		a.offset = 0
	}
	if m := a.MaxOffset(); a.offset > m {
		a.offset = m
	}
}
